package genarena

// SlotState is the lifecycle state of a single slot.
//
//	Vacant -> Occupied    (insert)
//	Occupied -> Vacant    (remove, version advanced)
//	Occupied -> Retired   (remove, version exhausted)
//
// Retired is terminal.
type SlotState uint8

const (
	SlotVacant SlotState = iota
	SlotOccupied
	SlotRetired
)

func (s SlotState) String() string {
	switch s {
	case SlotVacant:
		return "vacant"
	case SlotOccupied:
		return "occupied"
	case SlotRetired:
		return "retired"
	default:
		return "unknown"
	}
}

// slot is one entry of the backing storage.
//
// For an occupied slot, version is the version of the current value. For a
// vacant slot it is the version the next occupant receives, and next links to
// the following vacant slot. A retired slot keeps its exhausted version and no
// link.
type slot[V, T any] struct {
	value   T
	version V
	// next is index+1 of the next vacant slot; 0 terminates the free list.
	next  int
	state SlotState
}
