package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Ints returns n pseudo-random values in [0, limit).
// Locks only once per call (preferred over calling Intn in a loop).
func (r *RNG) Ints(n, limit int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.Intn(limit)
	}
	return out
}

// OpKind is the kind of a generated arena operation.
type OpKind uint8

const (
	OpInsert OpKind = iota
	OpRemove
	OpGet
	OpReinsert
	OpClear
)

func (k OpKind) String() string {
	switch k {
	case OpInsert:
		return "insert"
	case OpRemove:
		return "remove"
	case OpGet:
		return "get"
	case OpReinsert:
		return "reinsert"
	case OpClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Op is one step of a generated workload.
//
// Pick selects a previously issued key (modulo the number of issued keys), so
// the same Op sequence can be replayed against any arena implementation.
// Removed keys stay in the pick set, which exercises stale-key handling.
type Op struct {
	Kind  OpKind
	Pick  int
	Value int
}

// OpMix weights the operation kinds. Zero weights disable a kind.
type OpMix struct {
	Insert   int
	Remove   int
	Get      int
	Reinsert int
	Clear    int
}

// DefaultOpMix is insert heavy with frequent removals and rare clears.
var DefaultOpMix = OpMix{Insert: 40, Remove: 25, Get: 25, Reinsert: 9, Clear: 1}

// Ops generates n operations drawn from mix.
func (r *RNG) Ops(n int, mix OpMix) []Op {
	weights := []struct {
		kind OpKind
		w    int
	}{
		{OpInsert, mix.Insert},
		{OpRemove, mix.Remove},
		{OpGet, mix.Get},
		{OpReinsert, mix.Reinsert},
		{OpClear, mix.Clear},
	}
	total := 0
	for _, w := range weights {
		total += w.w
	}
	if total <= 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ops := make([]Op, n)
	for i := range ops {
		roll := r.rand.Intn(total)
		for _, w := range weights {
			if roll < w.w {
				ops[i].Kind = w.kind
				break
			}
			roll -= w.w
		}
		ops[i].Pick = r.rand.Int()
		ops[i].Value = r.rand.Int()
	}
	return ops
}
