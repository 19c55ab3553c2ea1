// Package inspect summarizes the slot layout of an arena as roaring bitmaps.
//
// A Report answers questions such as "which slots are retired" or "how
// fragmented is the free list" without exposing the arena's internals:
//
//	r, err := inspect.Occupancy(a)
//	fmt.Println(r.Retired.ToArray(), r.Fragmentation())
package inspect

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/genarena"
	"github.com/hupe1980/genarena/internal/conv"
)

// Source is anything that can enumerate slot states in index order.
// *genarena.Arena and *syncarena.Arena both satisfy it.
type Source interface {
	Slots() iter.Seq2[int, genarena.SlotState]
}

// Report partitions the slot indices of an arena by state.
type Report struct {
	Occupied *roaring.Bitmap
	Vacant   *roaring.Bitmap
	Retired  *roaring.Bitmap
}

// Occupancy walks src once and returns its slot partition. It fails if a slot
// index does not fit in 32 bits.
func Occupancy(src Source) (Report, error) {
	r := Report{
		Occupied: roaring.New(),
		Vacant:   roaring.New(),
		Retired:  roaring.New(),
	}

	for i, state := range src.Slots() {
		idx, err := conv.IntToUint32(i)
		if err != nil {
			return Report{}, fmt.Errorf("inspect: slot %d: %w", i, err)
		}

		switch state {
		case genarena.SlotOccupied:
			r.Occupied.Add(idx)
		case genarena.SlotVacant:
			r.Vacant.Add(idx)
		case genarena.SlotRetired:
			r.Retired.Add(idx)
		default:
			return Report{}, fmt.Errorf("inspect: slot %d has unknown state %d", i, state)
		}
	}

	r.Occupied.RunOptimize()
	r.Vacant.RunOptimize()
	r.Retired.RunOptimize()

	return r, nil
}

// Slots returns the total number of slots covered by the report.
func (r Report) Slots() uint64 {
	return r.Occupied.GetCardinality() + r.Vacant.GetCardinality() + r.Retired.GetCardinality()
}

// Fragmentation returns the fraction of slots that are vacant, in [0, 1].
// An empty report has no fragmentation.
func (r Report) Fragmentation() float64 {
	n := r.Slots()
	if n == 0 {
		return 0
	}
	return float64(r.Vacant.GetCardinality()) / float64(n)
}

// Holes returns the vacant slot indices that lie below the highest occupied
// slot. These are the gaps a compacting copy would close.
func (r Report) Holes() *roaring.Bitmap {
	if r.Occupied.IsEmpty() {
		return roaring.New()
	}
	below := roaring.New()
	below.AddRange(0, uint64(r.Occupied.Maximum()))
	return roaring.And(r.Vacant, below)
}

func (r Report) String() string {
	return fmt.Sprintf("slots=%d occupied=%d vacant=%d retired=%d fragmentation=%.2f",
		r.Slots(),
		r.Occupied.GetCardinality(),
		r.Vacant.GetCardinality(),
		r.Retired.GetCardinality(),
		r.Fragmentation(),
	)
}
