package linear

// Temp is a saved arena state for scoped sub-allocation. Allocate freely
// after Begin, then End reclaims everything allocated in between in O(1)
// without touching allocations made before Begin.
//
// Scopes may nest, but must End in reverse order of Begin (stack
// discipline); ending them out of order leaves the arena offsets
// inconsistent. That is the caller's responsibility, not enforced here.
type Temp struct {
	arena      *Arena
	prevOffset uintptr
	currOffset uintptr
}

// Begin snapshots the arena's current offsets.
func Begin(a *Arena) Temp {
	return Temp{
		arena:      a,
		prevOffset: a.prevOffset,
		currOffset: a.currOffset,
	}
}

// End writes the snapshot back into the arena, retroactively invalidating
// every allocation made since Begin.
func (t Temp) End() {
	t.arena.prevOffset = t.prevOffset
	t.arena.currOffset = t.currOffset
}
