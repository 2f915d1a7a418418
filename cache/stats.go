package cache

// Stats is a point-in-time snapshot of a Memo's bookkeeping.
type Stats struct {
	Name      string
	Size      int
	Capacity  int
	Hits      uint64
	Misses    uint64 // number of computations, failed ones included
	Evictions uint64
}

// Lookups returns the total number of Get calls that produced a value or error.
func (s Stats) Lookups() uint64 {
	return s.Hits + s.Misses
}

// HitRatio returns Hits / Lookups, or 0 when nothing has been looked up.
func (s Stats) HitRatio() float64 {
	total := s.Lookups()
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Stats returns a snapshot of the cache counters.
func (m *Memo[V]) Stats() Stats {
	if m == nil {
		return Stats{}
	}
	return Stats{
		Name:      m.name,
		Size:      m.Len(),
		Capacity:  m.capacity,
		Hits:      m.hits.Load(),
		Misses:    m.misses.Load(),
		Evictions: m.evictions.Load(),
	}
}
