package syncarena

import (
	"fmt"
	"math/bits"
	"sync/atomic"

	"github.com/hupe1980/genarena"
	"github.com/hupe1980/genarena/key"
	"github.com/hupe1980/genarena/version"
)

// DefaultShards is the shard count used when WithShards is not given.
const DefaultShards = 16

// ShardedKey identifies a value in a Sharded arena.
type ShardedKey[K any] struct {
	Shard uint32
	Key   K
}

func (k ShardedKey[K]) String() string {
	return fmt.Sprintf("%d/%v", k.Shard, k.Key)
}

type shardOptions struct {
	shards   int
	capacity int
	arena    []genarena.Option
}

// ShardOption configures a Sharded arena.
type ShardOption func(*shardOptions)

// WithShards sets the number of shards. It is rounded up to a power of two;
// values < 1 select DefaultShards.
func WithShards(n int) ShardOption {
	return func(o *shardOptions) {
		o.shards = n
	}
}

// WithShardCapacity reserves n slots in every shard.
func WithShardCapacity(n int) ShardOption {
	return func(o *shardOptions) {
		o.capacity = n
	}
}

// WithArenaOptions passes options to every shard's arena.
func WithArenaOptions(opts ...genarena.Option) ShardOption {
	return func(o *shardOptions) {
		o.arena = append(o.arena, opts...)
	}
}

// Sharded distributes values round-robin over independently locked arenas.
// Writers on different shards do not contend.
type Sharded[K key.Key[K, V], V version.Version[V], T any] struct {
	shards []*Arena[K, V, T]
	mask   uint32
	next   atomic.Uint32
}

// NewSharded creates an empty sharded arena.
func NewSharded[K key.Key[K, V], V version.Version[V], T any](opts ...ShardOption) *Sharded[K, V, T] {
	o := shardOptions{shards: DefaultShards}
	for _, opt := range opts {
		opt(&o)
	}
	n := o.shards
	if n < 1 {
		n = DefaultShards
	}
	if n&(n-1) != 0 {
		n = 1 << bits.Len(uint(n))
	}

	arenaOpts := o.arena
	if o.capacity > 0 {
		arenaOpts = append(arenaOpts[:len(arenaOpts):len(arenaOpts)], genarena.WithCapacity(o.capacity))
	}

	s := &Sharded[K, V, T]{
		shards: make([]*Arena[K, V, T], n),
		mask:   uint32(n - 1), //nolint:gosec // n is a small power of two
	}
	for i := range s.shards {
		s.shards[i] = New[K, V, T](arenaOpts...)
	}
	return s
}

// NewShardedDefault creates an empty sharded arena of Default keys.
func NewShardedDefault[T any](opts ...ShardOption) *Sharded[key.Default, version.U32, T] {
	return NewSharded[key.Default, version.U32, T](opts...)
}

// Shards returns the number of shards.
func (s *Sharded[K, V, T]) Shards() int {
	return len(s.shards)
}

func (s *Sharded[K, V, T]) shard(k ShardedKey[K]) (*Arena[K, V, T], bool) {
	if k.Shard > s.mask {
		return nil, false
	}
	return s.shards[k.Shard], true
}

func (s *Sharded[K, V, T]) pick() uint32 {
	return (s.next.Add(1) - 1) & s.mask
}

// Insert stores value in the next shard and returns its key.
//
// If that shard's key space is exhausted the error is returned as is; other
// shards are not tried.
func (s *Sharded[K, V, T]) Insert(value T) (ShardedKey[K], error) {
	i := s.pick()
	k, err := s.shards[i].Insert(value)
	if err != nil {
		return ShardedKey[K]{}, err
	}
	return ShardedKey[K]{Shard: i, Key: k}, nil
}

// InsertWith stores the value built by f under the key passed to f.
func (s *Sharded[K, V, T]) InsertWith(f func(ShardedKey[K]) T) (ShardedKey[K], error) {
	i := s.pick()
	k, err := s.shards[i].InsertWith(func(k K) T {
		return f(ShardedKey[K]{Shard: i, Key: k})
	})
	if err != nil {
		return ShardedKey[K]{}, err
	}
	return ShardedKey[K]{Shard: i, Key: k}, nil
}

// Remove deletes and returns the value stored under k.
func (s *Sharded[K, V, T]) Remove(k ShardedKey[K]) (T, bool) {
	a, ok := s.shard(k)
	if !ok {
		var zero T
		return zero, false
	}
	return a.Remove(k.Key)
}

// Get returns a copy of the value stored under k.
func (s *Sharded[K, V, T]) Get(k ShardedKey[K]) (T, bool) {
	a, ok := s.shard(k)
	if !ok {
		var zero T
		return zero, false
	}
	return a.Get(k.Key)
}

// Contains reports whether k refers to a live value.
func (s *Sharded[K, V, T]) Contains(k ShardedKey[K]) bool {
	a, ok := s.shard(k)
	return ok && a.Contains(k.Key)
}

// Update calls f with the value stored under k while holding its shard's
// write lock.
func (s *Sharded[K, V, T]) Update(k ShardedKey[K], f func(*T)) bool {
	a, ok := s.shard(k)
	return ok && a.Update(k.Key, f)
}

// Clear removes all values from every shard. Shards are cleared one after
// another, so concurrent inserts may survive.
func (s *Sharded[K, V, T]) Clear() {
	for _, a := range s.shards {
		a.Clear()
	}
}

// Len returns the number of live values across all shards. Under concurrent
// writes the result is approximate.
func (s *Sharded[K, V, T]) Len() int {
	n := 0
	for _, a := range s.shards {
		n += a.Len()
	}
	return n
}

// Stats returns the summed slot usage of all shards.
func (s *Sharded[K, V, T]) Stats() genarena.Stats {
	var st genarena.Stats
	for _, a := range s.shards {
		st = st.Add(a.Stats())
	}
	return st
}

// Range calls f for each live value, shard by shard in slot order. Each shard
// is read-locked only while it is being visited.
func (s *Sharded[K, V, T]) Range(f func(ShardedKey[K], T) bool) {
	for i, a := range s.shards {
		shard := uint32(i) //nolint:gosec // bounded by the shard count
		stopped := false
		a.Range(func(k K, v T) bool {
			if !f(ShardedKey[K]{Shard: shard, Key: k}, v) {
				stopped = true
				return false
			}
			return true
		})
		if stopped {
			return
		}
	}
}
