package version

import (
	"cmp"
	"strconv"
)

// Version is the constraint satisfied by every generation strategy.
//
// New and Increment never mutate the receiver. Increment reports false when the
// generation space is exhausted.
type Version[V any] interface {
	comparable

	// New returns the initial generation. It is called on the zero value.
	New() V

	// Increment returns the next generation, or false if there is none.
	Increment() (V, bool)

	// Compare orders generations. It returns -1, 0 or +1.
	Compare(other V) int

	// Uint64 returns the generation as a number, for logs and diagnostics.
	Uint64() uint64
}

// Unsigned is the set of integer types that can back a Checked counter.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Checked is a strictly positive generation counter.
//
// The first generation is 1. Increment fails at the maximum value of T, so the
// zero value of Checked is never handed out by New or Increment.
type Checked[T Unsigned] struct {
	n T
}

// Common checked widths. U32 is the default strategy of key.ID.
type (
	U8   = Checked[uint8]
	U16  = Checked[uint16]
	U32  = Checked[uint32]
	U64  = Checked[uint64]
	Uint = Checked[uint]
)

// NewChecked returns the generation n. It fails for n == 0.
func NewChecked[T Unsigned](n T) (Checked[T], bool) {
	if n == 0 {
		return Checked[T]{}, false
	}
	return Checked[T]{n: n}, true
}

// New implements Version.
func (Checked[T]) New() Checked[T] {
	return Checked[T]{n: 1}
}

// Increment implements Version.
func (c Checked[T]) Increment() (Checked[T], bool) {
	if c.n == ^T(0) {
		return Checked[T]{}, false
	}
	return Checked[T]{n: c.n + 1}, true
}

// Compare implements Version.
func (c Checked[T]) Compare(other Checked[T]) int {
	return cmp.Compare(c.n, other.n)
}

// Uint64 implements Version.
func (c Checked[T]) Uint64() uint64 {
	return uint64(c.n)
}

// Get returns the raw counter.
func (c Checked[T]) Get() T {
	return c.n
}

func (c Checked[T]) String() string {
	return "v" + strconv.FormatUint(uint64(c.n), 10)
}

// Wrapping wraps another strategy and restarts at its initial generation when
// it is exhausted. Increment never fails.
type Wrapping[V Version[V]] struct {
	inner V
}

// NewWrapping wraps the given generation.
func NewWrapping[V Version[V]](inner V) Wrapping[V] {
	return Wrapping[V]{inner: inner}
}

// New implements Version.
func (Wrapping[V]) New() Wrapping[V] {
	var zero V
	return Wrapping[V]{inner: zero.New()}
}

// Increment implements Version.
func (w Wrapping[V]) Increment() (Wrapping[V], bool) {
	next, ok := w.inner.Increment()
	if !ok {
		return w.New(), true
	}
	return Wrapping[V]{inner: next}, true
}

// Compare implements Version.
func (w Wrapping[V]) Compare(other Wrapping[V]) int {
	return w.inner.Compare(other.inner)
}

// Uint64 implements Version.
func (w Wrapping[V]) Uint64() uint64 {
	return w.inner.Uint64()
}

// Inner returns the wrapped generation.
func (w Wrapping[V]) Inner() V {
	return w.inner
}

// Nil opts out of stale-key detection entirely. All Nil values are equal, so a
// key issued before a slot was reused still matches the new occupant.
type Nil struct{}

// New implements Version.
func (Nil) New() Nil { return Nil{} }

// Increment implements Version.
func (Nil) Increment() (Nil, bool) { return Nil{}, true }

// Compare implements Version.
func (Nil) Compare(Nil) int { return 0 }

// Uint64 implements Version.
func (Nil) Uint64() uint64 { return 0 }
