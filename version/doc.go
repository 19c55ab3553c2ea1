// Package version provides generation counters for arena slots.
//
// A version is attached to every slot and advanced each time the slot is
// reused. Keys carry the version that was current when they were issued, so a
// key that outlived its value no longer matches the slot (the ABA problem).
//
// # Strategies
//
//   - Checked: a strictly positive counter. Increment fails at the maximum of
//     the underlying integer, which makes the arena retire the slot for good.
//   - Wrapping: restarts at the initial generation instead of failing. Slots
//     are never retired, at the cost of a tiny collision window after a full
//     wrap.
//   - Nil: no generation at all. Stale keys alias new occupants.
//
// # Zero values
//
// Go has no static methods, so New is called on the zero value:
//
//	var v version.U32
//	v = v.New() // generation 1
package version
