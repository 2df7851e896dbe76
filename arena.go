// Package linear implements a linear (arena) bump allocator over a
// caller-provided backing buffer. Typical usage: carve one buffer per
// request or frame, allocate many temporary objects from it, then
// FreeAll() for O(1) cleanup.
package linear

import "unsafe"

// DefaultAlignment is the alignment used by Alloc and Resize.
// Two machine words, the same guarantee malloc gives on mainstream platforms.
const DefaultAlignment = 2 * unsafe.Sizeof(uintptr(0))

// Arena is a linear allocator over a fixed backing buffer. It hands out
// aligned sub-ranges monotonically and never tracks individual allocation
// lifetimes; memory is reclaimed only via FreeAll or a Temp scope.
// Not goroutine-safe: callers must serialize access externally.
type Arena struct {
	buf        []byte  // borrowed backing memory
	prevOffset uintptr // start of the most recent allocation
	currOffset uintptr // allocation frontier
}

// NewArena binds an allocator to the given backing buffer. The arena borrows
// the buffer; it never grows, shrinks, or frees it. Offsets start at zero.
func NewArena(buf []byte) *Arena {
	return &Arena{buf: buf}
}

func isPowerOfTwo(x uintptr) bool {
	return x != 0 && x&(x-1) == 0
}

// AlignForward rounds ptr up to the next multiple of align. It fails with
// ErrInvalidAlignment unless align is a power of two. Pure function.
func AlignForward(ptr, align uintptr) (uintptr, error) {
	if !isPowerOfTwo(align) {
		return 0, ErrInvalidAlignment
	}
	// Same as ptr % align, but align is a power of two.
	if rem := ptr & (align - 1); rem != 0 {
		ptr += align - rem
	}
	return ptr, nil
}

// base returns the address of the first byte of the backing buffer.
func (a *Arena) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(a.buf)))
}

// AllocAlign allocates size bytes aligned to align from the arena. The
// returned region is zero-filled and capped so appends cannot spill past it.
// On failure the arena offsets are left untouched.
//
// This is the sole mutating allocation primitive; every typed helper
// delegates to it.
func (a *Arena) AllocAlign(size int, align uintptr) ([]byte, error) {
	if size < 0 {
		panic("linear: negative allocation size")
	}
	aligned, err := AlignForward(a.base()+a.currOffset, align)
	if err != nil {
		return nil, err
	}
	offset := aligned - a.base()
	end := offset + uintptr(size)
	if end > uintptr(len(a.buf)) {
		return nil, ErrOutOfMemory
	}

	region := a.buf[offset:end:end]
	clear(region) // buffer may hold stale bytes after FreeAll or Temp.End
	a.prevOffset = offset
	a.currOffset = end
	return region, nil
}

// Alloc allocates size bytes with DefaultAlignment.
func (a *Arena) Alloc(size int) ([]byte, error) {
	return a.AllocAlign(size, DefaultAlignment)
}

// ResizeAlign resizes a region previously returned by this arena.
//
// A nil or empty old region behaves as a fresh allocation. If old is the most
// recent allocation, the resize happens in place by moving the frontier,
// zero-filling any newly exposed bytes; otherwise a fresh region is allocated
// and min(len(old), newSize) bytes are copied across, abandoning the old
// region (linear arenas have no individual free). A region that does not lie
// within the arena's buffer fails with ErrOutOfBounds. On any failure the
// arena offsets are left untouched.
func (a *Arena) ResizeAlign(old []byte, newSize int, align uintptr) ([]byte, error) {
	if newSize < 0 {
		panic("linear: negative allocation size")
	}
	if !isPowerOfTwo(align) {
		return nil, ErrInvalidAlignment
	}
	if len(old) == 0 {
		return a.AllocAlign(newSize, align)
	}

	oldAddr := uintptr(unsafe.Pointer(unsafe.SliceData(old)))
	base := a.base()
	if oldAddr < base || oldAddr >= base+uintptr(len(a.buf)) {
		return nil, ErrOutOfBounds
	}

	if oldAddr == base+a.prevOffset {
		// Most recent allocation: move only the frontier.
		end := a.prevOffset + uintptr(newSize)
		if end > uintptr(len(a.buf)) {
			return nil, ErrOutOfMemory
		}
		if newSize > len(old) {
			clear(a.buf[a.prevOffset+uintptr(len(old)) : end])
		}
		a.currOffset = end
		return a.buf[a.prevOffset:end:end], nil
	}

	region, err := a.AllocAlign(newSize, align)
	if err != nil {
		return nil, err
	}
	copy(region, old[:min(len(old), newSize)])
	return region, nil
}

// Resize resizes old to newSize bytes with DefaultAlignment.
func (a *Arena) Resize(old []byte, newSize int) ([]byte, error) {
	return a.ResizeAlign(old, newSize, DefaultAlignment)
}

// Free is a no-op that always succeeds. Linear arenas do not support
// individual deallocation; the method exists so Arena satisfies Allocator.
func (a *Arena) Free(old []byte) error {
	return nil
}

// FreeAll resets both offsets to zero, instantly invalidating every region
// previously handed out by this arena. O(1).
func (a *Arena) FreeAll() {
	a.prevOffset = 0
	a.currOffset = 0
}
