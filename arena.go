package genarena

import (
	"iter"
	"slices"

	"github.com/hupe1980/genarena/key"
	"github.com/hupe1980/genarena/version"
)

// minGrow is the number of slots allocated by the first insert into an arena
// created without capacity.
const minGrow = 4

// Arena stores values of type T and hands out keys of type K whose versions
// are of type V.
//
// The zero value is an empty arena ready to use. An Arena must not be copied
// after first use.
//
// Arena performs no locking. Any number of readers (Get, Contains, Len,
// iteration) may share it as long as no writer (Insert, Remove, Clear) runs
// concurrently; see package syncarena for locked wrappers.
type Arena[K key.Key[K, V], V version.Version[V], T any] struct {
	slots []slot[V, T]
	// free is index+1 of the free-list head; 0 means the list is empty.
	free    int
	len     int
	retired int
	opts    options
}

// Default is an arena keyed by key.Default (32-bit index, checked 32-bit version).
type Default[T any] = Arena[key.Default, version.U32, T]

// Unversioned is an arena without stale-key detection.
type Unversioned[T any] = Arena[key.ID[version.Nil], version.Nil, T]

// New creates an empty arena.
func New[K key.Key[K, V], V version.Version[V], T any](opts ...Option) *Arena[K, V, T] {
	a := &Arena[K, V, T]{}
	for _, opt := range opts {
		opt(&a.opts)
	}
	if a.opts.capacity > 0 {
		a.slots = make([]slot[V, T], 0, a.opts.capacity)
	}
	return a
}

// NewDefault creates an empty Default arena.
func NewDefault[T any](opts ...Option) *Default[T] {
	return New[key.Default, version.U32, T](opts...)
}

// NewUnversioned creates an empty Unversioned arena.
func NewUnversioned[T any](opts ...Option) *Unversioned[T] {
	return New[key.ID[version.Nil], version.Nil, T](opts...)
}

// Insert stores value and returns its key.
//
// A vacant slot from the free list is reused first; otherwise a new slot is
// appended. Insert only fails with ErrKeyOverflow when the new slot index
// cannot be represented by K.
func (a *Arena[K, V, T]) Insert(value T) (K, error) {
	k, err := a.nextKey()
	if err != nil {
		return k, err
	}
	a.occupy(k, value)
	return k, nil
}

// InsertWith stores the value returned by f and returns its key. f receives
// the key the value will be stored under, so values can embed their own key.
//
// The arena is not modified until f returns; f must not insert into or remove
// from the arena.
func (a *Arena[K, V, T]) InsertWith(f func(K) T) (K, error) {
	k, err := a.nextKey()
	if err != nil {
		return k, err
	}
	a.occupy(k, f(k))
	return k, nil
}

// nextKey returns the key the next insert will produce without changing any
// state.
func (a *Arena[K, V, T]) nextKey() (K, error) {
	var (
		idx = len(a.slots)
		ver V
	)
	if a.free != 0 {
		idx = a.free - 1
		ver = a.slots[idx].version
	} else {
		ver = ver.New()
	}

	k, ok := key.New[K](idx, ver)
	if !ok {
		if a.opts.logger != nil {
			a.opts.logger.LogKeyOverflow(idx)
		}
		if a.opts.observer != nil {
			a.opts.observer.KeyOverflow(idx)
		}
		var zero K
		return zero, &KeyOverflowError{Index: idx}
	}
	return k, nil
}

// occupy stores value under k, which must come from nextKey.
func (a *Arena[K, V, T]) occupy(k K, value T) {
	idx := k.Index()
	if idx < len(a.slots) {
		s := &a.slots[idx]
		a.free = s.next
		s.next = 0
		s.value = value
		s.state = SlotOccupied
	} else {
		if len(a.slots) == cap(a.slots) {
			a.grow(max(cap(a.slots), minGrow))
		}
		a.slots = append(a.slots, slot[V, T]{
			value:   value,
			version: k.Version(),
			state:   SlotOccupied,
		})
	}
	a.len++
}

// grow makes room for at least n more slots.
func (a *Arena[K, V, T]) grow(n int) {
	from := cap(a.slots)
	a.slots = slices.Grow(a.slots, n)
	to := cap(a.slots)
	if to == from {
		return
	}
	if a.opts.logger != nil {
		a.opts.logger.LogGrow(from, to)
	}
	if a.opts.observer != nil {
		a.opts.observer.StorageGrown(from, to)
	}
}

// Reserve makes room for at least n more slots beyond the current ones.
// Free-list slots are not counted.
func (a *Arena[K, V, T]) Reserve(n int) {
	if n <= cap(a.slots)-len(a.slots) {
		return
	}
	a.grow(n)
}

// lookup returns the slot k refers to if k is valid.
func (a *Arena[K, V, T]) lookup(k K) (*slot[V, T], bool) {
	idx := k.Index()
	if idx < 0 || idx >= len(a.slots) {
		return nil, false
	}
	s := &a.slots[idx]
	if s.state != SlotOccupied || s.version != k.Version() {
		return nil, false
	}
	return s, true
}

// Remove deletes the value stored under k and returns it. It reports false
// if k is stale or out of range.
//
// The slot's version is advanced and the slot is reused by a later insert. If
// the version cannot be advanced the slot is retired and never reused.
func (a *Arena[K, V, T]) Remove(k K) (T, bool) {
	var zero T
	s, ok := a.lookup(k)
	if !ok {
		return zero, false
	}

	value := s.value
	s.value = zero
	a.len--

	idx := k.Index()
	next, ok := s.version.Increment()
	if !ok {
		s.state = SlotRetired
		a.retired++
		if a.opts.logger != nil {
			a.opts.logger.LogRetired(idx, s.version.Uint64())
		}
		if a.opts.observer != nil {
			a.opts.observer.SlotRetired(idx)
		}
		return value, true
	}

	s.version = next
	s.state = SlotVacant
	s.next = a.free
	a.free = idx + 1
	return value, true
}

// Get returns the value stored under k.
func (a *Arena[K, V, T]) Get(k K) (T, bool) {
	s, ok := a.lookup(k)
	if !ok {
		var zero T
		return zero, false
	}
	return s.value, true
}

// GetMut returns a pointer to the value stored under k. The pointer is valid
// until the next Insert, InsertWith, Remove or Clear.
func (a *Arena[K, V, T]) GetMut(k K) (*T, bool) {
	s, ok := a.lookup(k)
	if !ok {
		return nil, false
	}
	return &s.value, true
}

// Contains reports whether k refers to a live value.
func (a *Arena[K, V, T]) Contains(k K) bool {
	_, ok := a.lookup(k)
	return ok
}

// Len returns the number of live values.
func (a *Arena[K, V, T]) Len() int {
	return a.len
}

// Capacity returns the number of slots the arena can hold without
// reallocating.
func (a *Arena[K, V, T]) Capacity() int {
	return cap(a.slots)
}

// Clear removes all values.
//
// Occupied slots become vacant at their current version, so versions are not
// consumed. Retired slots stay retired. The free list is rebuilt in ascending
// slot order.
func (a *Arena[K, V, T]) Clear() {
	var zero T
	a.free = 0
	for i := len(a.slots) - 1; i >= 0; i-- {
		s := &a.slots[i]
		if s.state == SlotRetired {
			continue
		}
		s.value = zero
		s.state = SlotVacant
		s.next = a.free
		a.free = i + 1
	}
	a.len = 0
}

// Retain removes every value for which keep returns false. Removal follows
// the same rules as Remove.
func (a *Arena[K, V, T]) Retain(keep func(K, *T) bool) {
	for i := range a.slots {
		s := &a.slots[i]
		if s.state != SlotOccupied {
			continue
		}
		k, _ := key.New[K](i, s.version)
		if !keep(k, &s.value) {
			a.Remove(k)
		}
	}
}

// All returns an iterator over keys and values in slot order.
//
// The iterator may be ranged over any number of times. Inserting or removing
// while ranging is not supported.
func (a *Arena[K, V, T]) All() iter.Seq2[K, T] {
	return func(yield func(K, T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if s.state != SlotOccupied {
				continue
			}
			k, _ := key.New[K](i, s.version)
			if !yield(k, s.value) {
				return
			}
		}
	}
}

// AllMut is like All but yields pointers to the stored values.
func (a *Arena[K, V, T]) AllMut() iter.Seq2[K, *T] {
	return func(yield func(K, *T) bool) {
		for i := range a.slots {
			s := &a.slots[i]
			if s.state != SlotOccupied {
				continue
			}
			k, _ := key.New[K](i, s.version)
			if !yield(k, &s.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over live keys in slot order.
func (a *Arena[K, V, T]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range a.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over live values in slot order.
func (a *Arena[K, V, T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range a.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Slots returns an iterator over the state of every slot, including vacant
// and retired ones.
func (a *Arena[K, V, T]) Slots() iter.Seq2[int, SlotState] {
	return func(yield func(int, SlotState) bool) {
		for i := range a.slots {
			if !yield(i, a.slots[i].state) {
				return
			}
		}
	}
}
