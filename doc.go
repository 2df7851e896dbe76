// Package linear implements a linear (arena) bump allocator over a fixed,
// caller-provided backing buffer.
//
// # Overview
//
// A linear allocator hands out sub-ranges of one contiguous buffer by
// advancing an offset. There is no per-allocation bookkeeping and no
// individual deallocation; memory is reclaimed all at once. This is
// particularly useful for:
//
//   - Per-request or per-frame scratch space with batch cleanup
//   - Phase-based computations where everything dies together
//   - Reducing garbage collection pressure
//   - Predictable, O(1) allocation in hot paths
//
// # Basic Usage
//
//	buf := make([]byte, 1<<16)
//	a := linear.NewArena(buf)
//
//	// Allocate raw bytes (zero-filled, default alignment)
//	scratch, err := a.Alloc(1024)
//
//	// Allocate typed values
//	ptr, err := linear.Alloc[MyStruct](a)
//	slice, err := linear.AllocSlice[int](a, 100)
//
//	// Reclaim everything at once (O(1))
//	a.FreeAll()
//
// # Temporary Scopes
//
// A Temp snapshots the arena's offsets so a burst of short-lived allocations
// can be rolled back without touching what came before:
//
//	tmp := linear.Begin(a)
//	// ... allocate freely ...
//	tmp.End() // everything since Begin is reclaimed, O(1)
//
// Nested scopes must End in reverse order of Begin.
//
// # Resizing
//
// Resize grows or shrinks a previously returned region. When the region is
// the most recent allocation the resize happens in place by moving only the
// frontier; otherwise a fresh region is allocated and the contents copied.
// The old region is then abandoned; linear arenas never free individually.
//
// # Errors
//
// All fallible operations return typed sentinel errors: ErrOutOfMemory when
// the buffer is exhausted, ErrInvalidAlignment for a non-power-of-two
// alignment, ErrOutOfBounds when a resize target is not inside the buffer.
// Nothing panics on resource exhaustion.
//
// # Important Notes
//
//   - The arena borrows the buffer; the caller controls its lifetime.
//   - Allocated regions are only valid until FreeAll or an enclosing
//     Temp.End invalidates them.
//   - Regions are zero-filled on allocation, including bytes re-exposed by
//     an in-place growth.
//   - Values stored through AllocSlice/Alloc that contain Go pointers are
//     invisible to the garbage collector; keep such referents alive
//     elsewhere.
//   - Not goroutine-safe. Concurrent use of one arena must be serialized by
//     the caller.
//
// The dynarray subpackage builds a generic growable array on top of this
// allocator.
package linear
