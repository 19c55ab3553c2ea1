// Package genarena provides a generational arena for Go.
//
// An arena stores values in a contiguous slice of slots and hands out small,
// comparable keys instead of pointers. Keys remember the version of their
// slot, so a key whose value was removed is rejected even after the slot has
// been reused by another value.
//
// # Quick Start
//
//	a := genarena.NewDefault[string]()
//	k, _ := a.Insert("hello")
//	v, ok := a.Get(k)         // "hello", true
//	a.Remove(k)               // "hello", true
//	_, ok = a.Get(k)          // false, even after the slot is reused
//
// # Self-referential values
//
// InsertWith passes the key to the constructor of the value, which makes
// graphs whose nodes know their own handle straightforward:
//
//	type node struct {
//	    self  key.Default
//	    edges []key.Default
//	}
//	g := genarena.NewDefault[node]()
//	root, _ := g.InsertWith(func(k key.Default) node { return node{self: k} })
//
// # Versioning strategies
//
// The version type parameter decides how stale keys are detected:
//
//   - version.Checked (default U32): exact detection. A slot whose version
//     reaches the maximum is retired and never reused.
//   - version.Wrapping: restarts the counter instead of retiring slots.
//   - version.Nil: no detection, smallest keys.
//
// # Operations
//
// Insert, Remove, Get and Contains run in O(1); growth is amortized O(1) by
// doubling the slot storage. Iteration and Clear walk all slots.
//
// # Concurrency
//
// Arena performs no locking. Concurrent readers are fine without writers.
// Package syncarena provides a read-write locked arena and a sharded arena.
package genarena
