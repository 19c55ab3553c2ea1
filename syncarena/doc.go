// Package syncarena provides goroutine-safe wrappers around genarena.Arena.
//
// The core arena performs no locking. This package adds it from the outside:
//
//   - Arena guards a single arena with a sync.RWMutex. Lookups share the read
//     lock, mutations take the write lock.
//   - Sharded spreads values over independently locked arenas to reduce
//     writer contention. Its keys carry the shard number.
//
// Callbacks passed to Update, Range and View run while the lock is held and
// must not call back into the same wrapper.
package syncarena
