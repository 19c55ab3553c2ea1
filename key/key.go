// Package key defines the handles an arena hands out for its values.
//
// A key packs a slot index and the slot's version at the time of insertion.
// Keys are small comparable values: they can be copied freely, stored inside
// other values and used as map keys.
package key

import (
	"cmp"
	"math"
	"strconv"

	"github.com/hupe1980/genarena/internal/conv"
	"github.com/hupe1980/genarena/version"
)

// Key is the constraint satisfied by arena keys.
//
// New is called on the zero value and fails if index does not fit the key's
// index width.
type Key[K any, V version.Version[V]] interface {
	comparable

	// New builds a key from a slot index and a version.
	New(index int, v V) (K, bool)

	// Index returns the slot index.
	Index() int

	// Version returns the version the key was issued with.
	Version() V
}

// New builds a key of type K.
func New[K Key[K, V], V version.Version[V]](index int, v V) (K, bool) {
	var zero K
	return zero.New(index, v)
}

// ID is the default key: a 32-bit slot index plus a version.
//
// ID values order by index first and version second.
type ID[V version.Version[V]] struct {
	index   uint32
	version V
}

// Default is an ID with a checked 32-bit version.
type Default = ID[version.U32]

// NewID builds an ID directly from its parts.
func NewID[V version.Version[V]](index uint32, v V) ID[V] {
	return ID[V]{index: index, version: v}
}

// Nil returns a key that never validates against a live arena slot in
// practice: its index is the largest representable one.
func Nil[V version.Version[V]]() ID[V] {
	var v V
	return ID[V]{index: math.MaxUint32, version: v.New()}
}

// New implements Key.
func (ID[V]) New(index int, v V) (ID[V], bool) {
	i, err := conv.IntToUint32(index)
	if err != nil {
		return ID[V]{}, false
	}
	return ID[V]{index: i, version: v}, true
}

// Index implements Key.
func (id ID[V]) Index() int {
	return int(id.index)
}

// Version implements Key.
func (id ID[V]) Version() V {
	return id.version
}

// IsNil reports whether id equals Nil.
func (id ID[V]) IsNil() bool {
	return id == Nil[V]()
}

// Compare orders ids by index, then by version.
func (id ID[V]) Compare(other ID[V]) int {
	if c := cmp.Compare(id.index, other.index); c != 0 {
		return c
	}
	return id.version.Compare(other.version)
}

func (id ID[V]) String() string {
	return "I" + strconv.FormatUint(uint64(id.index), 10)
}

// Small is a key with a 16-bit index, for arenas that never exceed 65536
// slots and want the smallest possible handle.
type Small[V version.Version[V]] struct {
	index   uint16
	version V
}

// New implements Key.
func (Small[V]) New(index int, v V) (Small[V], bool) {
	i, err := conv.IntToUint16(index)
	if err != nil {
		return Small[V]{}, false
	}
	return Small[V]{index: i, version: v}, true
}

// Index implements Key.
func (s Small[V]) Index() int {
	return int(s.index)
}

// Version implements Key.
func (s Small[V]) Version() V {
	return s.version
}

// Compare orders keys by index, then by version.
func (s Small[V]) Compare(other Small[V]) int {
	if c := cmp.Compare(s.index, other.index); c != 0 {
		return c
	}
	return s.version.Compare(other.version)
}

func (s Small[V]) String() string {
	return "S" + strconv.FormatUint(uint64(s.index), 10)
}

// Indexer is anything that carries a slot index.
type Indexer interface {
	Index() int
}

// Lookup returns s[k.Index()] without any version check. It panics if the
// index is out of range; the caller guarantees the key belongs to s.
func Lookup[T any, K Indexer](s []T, k K) T {
	return s[k.Index()]
}

// Ptr is like Lookup but returns a pointer to the element.
func Ptr[T any, K Indexer](s []T, k K) *T {
	return &s[k.Index()]
}
