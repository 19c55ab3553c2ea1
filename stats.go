package genarena

// Stats is a point-in-time summary of an arena's slot usage.
type Stats struct {
	Len      int // occupied slots
	Capacity int // slots allocated, used or not
	Slots    int // slots ever handed out
	Vacant   int // slots waiting on the free list
	Retired  int // slots permanently out of circulation
}

// Add returns the element-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Len:      s.Len + o.Len,
		Capacity: s.Capacity + o.Capacity,
		Slots:    s.Slots + o.Slots,
		Vacant:   s.Vacant + o.Vacant,
		Retired:  s.Retired + o.Retired,
	}
}

// Stats returns the arena's current slot usage.
func (a *Arena[K, V, T]) Stats() Stats {
	return Stats{
		Len:      a.len,
		Capacity: cap(a.slots),
		Slots:    len(a.slots),
		Vacant:   len(a.slots) - a.len - a.retired,
		Retired:  a.retired,
	}
}
