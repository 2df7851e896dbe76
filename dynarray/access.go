package dynarray

// Len returns the number of live elements.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap returns the number of allocated element slots.
func (a *Array[T]) Cap() int {
	return len(a.data)
}

// Empty reports whether the array holds no elements.
func (a *Array[T]) Empty() bool {
	return a.size == 0
}

// At returns a pointer to the element at index i, or ErrOutOfRange when i is
// not in [0, Len). The pointer stays valid until the next reallocation.
func (a *Array[T]) At(i int) (*T, error) {
	if i < 0 || i >= a.size {
		return nil, ErrOutOfRange
	}
	return &a.data[i], nil
}

// Front returns a pointer to the first element, or ErrEmptyArray.
func (a *Array[T]) Front() (*T, error) {
	if a.size == 0 {
		return nil, ErrEmptyArray
	}
	return &a.data[0], nil
}

// Back returns a pointer to the last element, or ErrEmptyArray.
func (a *Array[T]) Back() (*T, error) {
	if a.size == 0 {
		return nil, ErrEmptyArray
	}
	return &a.data[a.size-1], nil
}

// Index is the unchecked counterpart of At: it panics when i is not in
// [0, Len). For hot paths where the bound has already been established.
func (a *Array[T]) Index(i int) *T {
	return &a.data[:a.size][i]
}

// Slice returns the live elements as a slice view backed by the array's
// storage. The view is invalidated by any operation that reallocates;
// appending to it cannot touch the array's spare slots.
func (a *Array[T]) Slice() []T {
	return a.data[:a.size:a.size]
}
