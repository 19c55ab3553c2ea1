//go:build amd64 || arm64

package key_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/genarena/key"
	"github.com/hupe1980/genarena/version"
)

func TestID_New(t *testing.T) {
	var v version.U32

	t.Run("valid index", func(t *testing.T) {
		k, ok := key.New[key.Default](42, v.New())
		require.True(t, ok)
		assert.Equal(t, 42, k.Index())
		assert.Equal(t, v.New(), k.Version())
	})

	t.Run("max index", func(t *testing.T) {
		k, ok := key.New[key.Default](math.MaxUint32, v.New())
		require.True(t, ok)
		assert.Equal(t, math.MaxUint32, k.Index())
	})

	t.Run("index too large", func(t *testing.T) {
		_, ok := key.New[key.Default](math.MaxUint32+1, v.New())
		assert.False(t, ok)
	})

	t.Run("negative index", func(t *testing.T) {
		_, ok := key.New[key.Default](-1, v.New())
		assert.False(t, ok)
	})
}

func TestID_Equality(t *testing.T) {
	v1, _ := version.NewChecked[uint32](1)
	v2, _ := version.NewChecked[uint32](2)

	a := key.NewID(3, v1)
	b := key.NewID(3, v2)
	c := key.NewID(3, v1)

	assert.Equal(t, a, c)
	assert.NotEqual(t, a, b, "same index, newer occupant")

	set := map[key.Default]string{a: "old", b: "new"}
	assert.Len(t, set, 2)
	assert.Equal(t, "old", set[c])
}

func TestID_Compare(t *testing.T) {
	v1, _ := version.NewChecked[uint32](1)
	v2, _ := version.NewChecked[uint32](2)

	keys := []key.Default{
		key.NewID(2, v1),
		key.NewID(1, v2),
		key.NewID(1, v1),
		key.NewID(0, v2),
	}
	slices.SortFunc(keys, key.Default.Compare)

	want := []key.Default{
		key.NewID(0, v2),
		key.NewID(1, v1),
		key.NewID(1, v2),
		key.NewID(2, v1),
	}
	assert.Equal(t, want, keys)
}

func TestID_Nil(t *testing.T) {
	n := key.Nil[version.U32]()
	assert.True(t, n.IsNil())
	assert.Equal(t, math.MaxUint32, n.Index())

	var v version.U32
	assert.False(t, key.NewID(0, v.New()).IsNil())
}

func TestID_String(t *testing.T) {
	var v version.Nil
	assert.Equal(t, "I7", key.NewID(7, v).String())
}

func TestSmall(t *testing.T) {
	var v version.U16

	t.Run("valid index", func(t *testing.T) {
		k, ok := key.New[key.Small[version.U16]](math.MaxUint16, v.New())
		require.True(t, ok)
		assert.Equal(t, math.MaxUint16, k.Index())
		assert.Equal(t, "S65535", k.String())
	})

	t.Run("index too large", func(t *testing.T) {
		_, ok := key.New[key.Small[version.U16]](math.MaxUint16+1, v.New())
		assert.False(t, ok)
	})

	t.Run("compare", func(t *testing.T) {
		a, _ := key.New[key.Small[version.U16]](1, v.New())
		b, _ := key.New[key.Small[version.U16]](2, v.New())
		assert.Equal(t, -1, a.Compare(b))
		assert.Equal(t, 0, b.Compare(b))
	})
}

func TestLookup(t *testing.T) {
	var v version.U32
	data := []string{"a", "b", "c"}

	assert.Equal(t, "b", key.Lookup(data, key.NewID(1, v.New())))

	*key.Ptr(data, key.NewID(2, v.New())) = "z"
	assert.Equal(t, "z", data[2])

	assert.Panics(t, func() {
		_ = key.Lookup(data, key.NewID(3, v.New()))
	})
}
