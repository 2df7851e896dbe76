package linear

// Allocator is the uniform contract shared by allocation backends. Arena is
// the only implementation in this package; the interface exists so embedding
// code can swap in other backends without touching call sites.
type Allocator interface {
	// AllocAlign allocates size bytes aligned to align. The region is
	// zero-filled.
	AllocAlign(size int, align uintptr) ([]byte, error)

	// ResizeAlign resizes a previously allocated region, in place when the
	// backend supports it, otherwise by allocate-and-copy.
	ResizeAlign(old []byte, newSize int, align uintptr) ([]byte, error)

	// Free releases a single region. Backends without individual
	// deallocation treat it as a no-op.
	Free(old []byte) error

	// FreeAll releases every region handed out by this allocator.
	FreeAll()
}

var _ Allocator = (*Arena)(nil)
