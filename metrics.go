package genarena

import "sync/atomic"

// Observer receives structural events from an arena.
// Implement this interface to integrate with monitoring systems like Prometheus
// (see package arenametrics).
//
// Callbacks run synchronously inside the arena operation that caused them and
// must not call back into the arena.
type Observer interface {
	// SlotRetired is called when a removal exhausts the slot's version.
	SlotRetired(index int)

	// StorageGrown is called when the slot storage is reallocated.
	// from and to are capacities in slots.
	StorageGrown(from, to int)

	// KeyOverflow is called when an insert fails because the next slot
	// index does not fit the key type.
	KeyOverflow(index int)
}

// NoopObserver is a no-op implementation of Observer.
type NoopObserver struct{}

func (NoopObserver) SlotRetired(int)       {}
func (NoopObserver) StorageGrown(int, int) {}
func (NoopObserver) KeyOverflow(int)       {}

// BasicObserver provides simple in-memory event counters.
// Useful for debugging and tests without external dependencies.
// It is safe for concurrent use, so one observer can serve many arenas.
type BasicObserver struct {
	Retired   atomic.Int64
	Grows     atomic.Int64
	Overflows atomic.Int64
	// MaxCapacity is the largest capacity ever reported by StorageGrown.
	MaxCapacity atomic.Int64
}

// SlotRetired implements Observer.
func (b *BasicObserver) SlotRetired(int) {
	b.Retired.Add(1)
}

// StorageGrown implements Observer.
func (b *BasicObserver) StorageGrown(_, to int) {
	b.Grows.Add(1)
	for {
		cur := b.MaxCapacity.Load()
		if int64(to) <= cur || b.MaxCapacity.CompareAndSwap(cur, int64(to)) {
			return
		}
	}
}

// KeyOverflow implements Observer.
func (b *BasicObserver) KeyOverflow(int) {
	b.Overflows.Add(1)
}

// GetStats returns a snapshot of current counters.
func (b *BasicObserver) GetStats() BasicObserverStats {
	return BasicObserverStats{
		Retired:     b.Retired.Load(),
		Grows:       b.Grows.Load(),
		Overflows:   b.Overflows.Load(),
		MaxCapacity: b.MaxCapacity.Load(),
	}
}

// BasicObserverStats is a snapshot of BasicObserver state.
type BasicObserverStats struct {
	Retired     int64
	Grows       int64
	Overflows   int64
	MaxCapacity int64
}
