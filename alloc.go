package linear

import (
	"runtime"
	"unsafe"
)

// Alloc returns a pointer to a zeroed T stored inside the arena, aligned for
// T. The pointer is valid until the next FreeAll or enclosing Temp.End.
func Alloc[T any](a *Arena) (*T, error) {
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 {
		return new(T), nil
	}
	b, err := a.AllocAlign(int(size), unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(unsafe.SliceData(b))), nil
}

// AllocSlice allocates a zeroed slice of n elements of type T inside the
// arena, aligned for T. Returns nil with no error if n <= 0.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	if n <= 0 {
		return nil, nil
	}
	var zero T
	elemSize := unsafe.Sizeof(zero)
	if elemSize == 0 {
		return make([]T, n), nil
	}
	b, err := a.AllocAlign(int(elemSize)*n, unsafe.Alignof(zero))
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), nil
}

// PtrAndKeepAlive returns t and calls runtime.KeepAlive on the arena.
// Useful in unsafe code to pin the arena (and the buffer it borrows)
// while the pointer is still in use.
func PtrAndKeepAlive[T any](a *Arena, t *T) *T {
	runtime.KeepAlive(a)
	return t
}
