package syncarena

import (
	"iter"
	"sync"

	"github.com/hupe1980/genarena"
	"github.com/hupe1980/genarena/key"
	"github.com/hupe1980/genarena/version"
)

// Arena is a genarena.Arena guarded by a read-write lock.
type Arena[K key.Key[K, V], V version.Version[V], T any] struct {
	mu    sync.RWMutex
	inner *genarena.Arena[K, V, T]
}

// Default is a locked genarena.Default arena.
type Default[T any] = Arena[key.Default, version.U32, T]

// New creates an empty locked arena.
func New[K key.Key[K, V], V version.Version[V], T any](opts ...genarena.Option) *Arena[K, V, T] {
	return Wrap(genarena.New[K, V, T](opts...))
}

// NewDefault creates an empty locked Default arena.
func NewDefault[T any](opts ...genarena.Option) *Default[T] {
	return New[key.Default, version.U32, T](opts...)
}

// Wrap takes ownership of a. The caller must not use a directly afterwards.
func Wrap[K key.Key[K, V], V version.Version[V], T any](a *genarena.Arena[K, V, T]) *Arena[K, V, T] {
	return &Arena[K, V, T]{inner: a}
}

// Insert stores value and returns its key.
func (a *Arena[K, V, T]) Insert(value T) (K, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inner.Insert(value)
}

// InsertWith stores the value built by f under the key passed to f.
func (a *Arena[K, V, T]) InsertWith(f func(K) T) (K, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inner.InsertWith(f)
}

// Remove deletes and returns the value stored under k.
func (a *Arena[K, V, T]) Remove(k K) (T, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inner.Remove(k)
}

// Update calls f with a pointer to the value stored under k while holding
// the write lock. It reports false if k is not live.
func (a *Arena[K, V, T]) Update(k K, f func(*T)) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	p, ok := a.inner.GetMut(k)
	if !ok {
		return false
	}
	f(p)
	return true
}

// Clear removes all values.
func (a *Arena[K, V, T]) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.inner.Clear()
}

// Get returns a copy of the value stored under k.
func (a *Arena[K, V, T]) Get(k K) (T, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.inner.Get(k)
}

// Contains reports whether k refers to a live value.
func (a *Arena[K, V, T]) Contains(k K) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.inner.Contains(k)
}

// Len returns the number of live values.
func (a *Arena[K, V, T]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.inner.Len()
}

// Stats returns the arena's slot usage.
func (a *Arena[K, V, T]) Stats() genarena.Stats {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.inner.Stats()
}

// Range calls f for each live value in slot order under the read lock,
// stopping early if f returns false.
func (a *Arena[K, V, T]) Range(f func(K, T) bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	for k, v := range a.inner.All() {
		if !f(k, v) {
			return
		}
	}
}

// View calls f with the underlying arena under the read lock. f must only
// read from it.
func (a *Arena[K, V, T]) View(f func(*genarena.Arena[K, V, T])) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	f(a.inner)
}

// Slots returns the slot states as of the call. The states are copied under
// the read lock, so ranging over the result does not hold the lock.
func (a *Arena[K, V, T]) Slots() iter.Seq2[int, genarena.SlotState] {
	a.mu.RLock()
	states := make([]genarena.SlotState, 0, a.inner.Stats().Slots)
	for _, s := range a.inner.Slots() {
		states = append(states, s)
	}
	a.mu.RUnlock()

	return func(yield func(int, genarena.SlotState) bool) {
		for i, s := range states {
			if !yield(i, s) {
				return
			}
		}
	}
}
