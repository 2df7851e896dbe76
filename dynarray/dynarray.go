// Package dynarray implements a generic, contiguous, growable array that can
// draw its storage either from the Go heap or from a linear.Arena.
//
// Slots [0, Len) hold live elements; slots [Len, Cap) are spare storage.
// Removal paths zero vacated slots so stale element values do not pin
// heap objects. An arena-backed array never frees arena memory
// individually: growth abandons the old region and the arena reclaims it
// in bulk. The array must not be used after the arena's buffer is reclaimed.
// Arena-backed element storage is invisible to the garbage collector:
// element types that contain Go pointers need their referents kept alive
// elsewhere. Not goroutine-safe.
package dynarray

import (
	"errors"
	"unsafe"

	"github.com/pavanmanishd/linear"
)

// DefaultCapacity is the capacity floor used when a zero-capacity array
// first grows.
const DefaultCapacity = 8

// Errors returned by array operations. Allocation failures surface the
// allocator's own linear.ErrOutOfMemory, so errors.Is works across both
// packages.
var (
	// ErrOutOfRange is returned when an index or position argument exceeds
	// the valid bounds for the current length.
	ErrOutOfRange = errors.New("dynarray: index out of range")

	// ErrEmptyArray is returned when an operation requiring at least one
	// element is invoked on a zero-length array.
	ErrEmptyArray = errors.New("dynarray: array is empty")
)

// Array is a growable contiguous sequence of T. The zero value is an empty,
// storage-less, heap-backed array ready for use.
type Array[T any] struct {
	data      []T // len(data) is the capacity; [0, size) are live
	size      int
	arena     *linear.Arena // nil means heap-backed
	ownsArena bool          // Destroy resets the arena when set
}

// New creates an empty heap-backed array with DefaultCapacity slots reserved.
func New[T any]() *Array[T] {
	return &Array[T]{data: make([]T, DefaultCapacity)}
}

// NewWithCapacity creates an empty heap-backed array with n slots reserved.
// A non-positive n reserves nothing.
func NewWithCapacity[T any](n int) *Array[T] {
	if n < 0 {
		n = 0
	}
	return &Array[T]{data: make([]T, n)}
}

// Of creates a heap-backed array holding the given elements in order, with
// capacity exactly len(elems).
func Of[T any](elems ...T) *Array[T] {
	a := &Array[T]{data: make([]T, len(elems)), size: len(elems)}
	copy(a.data, elems)
	return a
}

// NewInArena creates an empty array whose storage is carved from the given
// arena, with DefaultCapacity slots reserved. When ownsArena is set, Destroy
// resets the arena via FreeAll; otherwise the array holds a non-owning
// reference and must not outlive the arena. Returns linear.ErrOutOfMemory
// when the first reservation cannot be satisfied.
func NewInArena[T any](arena *linear.Arena, ownsArena bool) (*Array[T], error) {
	return NewInArenaCapacity[T](arena, DefaultCapacity, ownsArena)
}

// NewInArenaCapacity is NewInArena with an explicit initial capacity.
func NewInArenaCapacity[T any](arena *linear.Arena, n int, ownsArena bool) (*Array[T], error) {
	if n < 0 {
		n = 0
	}
	data, err := allocSlots[T](arena, n)
	if err != nil {
		return nil, err
	}
	return &Array[T]{data: data, arena: arena, ownsArena: ownsArena}, nil
}

// allocSlots obtains n element slots from the arena, or from the heap when
// arena is nil. Arena slots are zeroed by the allocator.
func allocSlots[T any](arena *linear.Arena, n int) ([]T, error) {
	if arena == nil || n == 0 {
		return make([]T, n), nil
	}
	return linear.AllocSlice[T](arena, n)
}

// sliceBytes reinterprets the slice's storage as raw bytes. Only meaningful
// for arena-carved slices, whose backing memory is the arena buffer.
func sliceBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero T
	size := len(s) * int(unsafe.Sizeof(zero))
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), size)
}

// Reserve ensures capacity for at least n elements. It is a no-op when
// n <= Cap(). On failure the array is left unchanged.
//
// The heap path allocates a fresh slice and lets the garbage collector
// reclaim the old one. The arena path resizes through the arena, which grows
// in place when this array's storage is the arena's most recent allocation
// and otherwise abandons the old region (arena storage is never freed
// individually).
func (a *Array[T]) Reserve(n int) error {
	if n <= len(a.data) {
		return nil
	}

	if a.arena == nil {
		data := make([]T, n)
		copy(data, a.data[:a.size])
		a.data = data
		return nil
	}

	var zero T
	elemSize := unsafe.Sizeof(zero)
	if elemSize == 0 {
		a.data = make([]T, n)
		return nil
	}
	region, err := a.arena.ResizeAlign(sliceBytes(a.data), n*int(elemSize), unsafe.Alignof(zero))
	if err != nil {
		return err
	}
	a.data = unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(region))), n)
	return nil
}

// grow raises capacity per the growth policy: a zero-capacity array grows to
// DefaultCapacity, otherwise to max(cap + cap/2 + 1, minCap). The +1 keeps
// small capacities moving; the 1.5 factor amortizes appends to O(1).
func (a *Array[T]) grow(minCap int) error {
	newCap := DefaultCapacity
	if c := len(a.data); c > 0 {
		newCap = c + c/2 + 1
	}
	if newCap < minCap {
		newCap = minCap
	}
	return a.Reserve(newCap)
}
