package syncarena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/genarena"
	"github.com/hupe1980/genarena/key"
	"github.com/hupe1980/genarena/syncarena"
	"github.com/hupe1980/genarena/version"
)

func TestSharded_Options(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		s := syncarena.NewShardedDefault[int]()
		assert.Equal(t, syncarena.DefaultShards, s.Shards())
	})

	t.Run("rounded up", func(t *testing.T) {
		s := syncarena.NewShardedDefault[int](syncarena.WithShards(5))
		assert.Equal(t, 8, s.Shards())
	})

	t.Run("invalid", func(t *testing.T) {
		s := syncarena.NewShardedDefault[int](syncarena.WithShards(0))
		assert.Equal(t, syncarena.DefaultShards, s.Shards())
	})

	t.Run("capacity per shard", func(t *testing.T) {
		s := syncarena.NewShardedDefault[int](syncarena.WithShards(4), syncarena.WithShardCapacity(10))
		assert.Equal(t, 40, s.Stats().Capacity)
	})

	t.Run("arena options", func(t *testing.T) {
		obs := &genarena.BasicObserver{}
		s := syncarena.NewShardedDefault[int](
			syncarena.WithShards(2),
			syncarena.WithArenaOptions(genarena.WithObserver(obs)),
		)
		_, err := s.Insert(1)
		require.NoError(t, err)
		_, err = s.Insert(2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), obs.GetStats().Grows, "one growth per shard")
	})
}

func TestSharded_RoundRobin(t *testing.T) {
	s := syncarena.NewShardedDefault[int](syncarena.WithShards(4))

	var keys []syncarena.ShardedKey[key.Default]
	for i := range 8 {
		k, err := s.Insert(i)
		require.NoError(t, err)
		assert.Equal(t, uint32(i%4), k.Shard)
		keys = append(keys, k)
	}
	assert.Equal(t, 8, s.Len())
	assert.Equal(t, "1/I0", keys[1].String())

	for i, k := range keys {
		v, ok := s.Get(k)
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}

	t.Run("stale and foreign keys", func(t *testing.T) {
		v, ok := s.Remove(keys[0])
		require.True(t, ok)
		assert.Equal(t, 0, v)
		assert.False(t, s.Contains(keys[0]))

		bogus := keys[1]
		bogus.Shard = 99
		assert.False(t, s.Contains(bogus))
		_, ok = s.Get(bogus)
		assert.False(t, ok)
		_, ok = s.Remove(bogus)
		assert.False(t, ok)
		assert.False(t, s.Update(bogus, func(*int) {}))
	})

	t.Run("update", func(t *testing.T) {
		assert.True(t, s.Update(keys[2], func(v *int) { *v = 200 }))
		v, _ := s.Get(keys[2])
		assert.Equal(t, 200, v)
	})

	t.Run("range stops early", func(t *testing.T) {
		n := 0
		s.Range(func(syncarena.ShardedKey[key.Default], int) bool {
			n++
			return n < 3
		})
		assert.Equal(t, 3, n)
	})

	t.Run("clear", func(t *testing.T) {
		s.Clear()
		assert.Equal(t, 0, s.Len())
		for _, k := range keys {
			assert.False(t, s.Contains(k))
		}
	})
}

func TestSharded_InsertWith(t *testing.T) {
	s := syncarena.NewSharded[key.ID[version.Wrapping[version.U16]], version.Wrapping[version.U16], syncarena.ShardedKey[key.ID[version.Wrapping[version.U16]]]](
		syncarena.WithShards(2),
	)

	for range 4 {
		k, err := s.InsertWith(func(k syncarena.ShardedKey[key.ID[version.Wrapping[version.U16]]]) syncarena.ShardedKey[key.ID[version.Wrapping[version.U16]]] {
			return k
		})
		require.NoError(t, err)
		self, ok := s.Get(k)
		require.True(t, ok)
		assert.Equal(t, k, self)
	}
}

func TestSharded_Concurrent(t *testing.T) {
	s := syncarena.NewShardedDefault[int](syncarena.WithShards(8))

	const workers = 16
	const perWorker = 1000

	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			for i := range perWorker {
				k, err := s.Insert(i)
				if err != nil {
					return err
				}
				if i%4 == 0 {
					s.Remove(k)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, workers*perWorker*3/4, s.Len())
	st := s.Stats()
	assert.Equal(t, st.Len+st.Vacant+st.Retired, st.Slots)
}
