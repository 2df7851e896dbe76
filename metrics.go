package linear

// Len returns the number of bytes currently allocated, measured as the
// allocation frontier. This includes internal fragmentation due to alignment.
func (a *Arena) Len() int {
	return int(a.currOffset)
}

// Cap returns the total capacity of the backing buffer in bytes.
func (a *Arena) Cap() int {
	return len(a.buf)
}

// Remaining returns the number of bytes still available past the frontier,
// before any alignment padding a future allocation might need.
func (a *Arena) Remaining() int {
	return len(a.buf) - int(a.currOffset)
}

// Utilization returns the ratio of bytes in use to total capacity (0.0 to 1.0).
// Returns 0.0 if the arena has no capacity.
func (a *Arena) Utilization() float64 {
	if len(a.buf) == 0 {
		return 0
	}
	return float64(a.currOffset) / float64(len(a.buf))
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena) Metrics() ArenaMetrics {
	return ArenaMetrics{
		SizeInUse:   a.Len(),
		Capacity:    a.Cap(),
		Remaining:   a.Remaining(),
		Utilization: a.Utilization(),
	}
}

// ArenaMetrics contains statistical information about an arena.
type ArenaMetrics struct {
	SizeInUse   int     // Bytes currently allocated
	Capacity    int     // Backing buffer size in bytes
	Remaining   int     // Bytes left past the frontier
	Utilization float64 // Ratio of used to total capacity (0.0-1.0)
}
