package dynarray

// Push appends v, growing capacity if needed. On failure the array is
// unchanged and v is not consumed.
func (a *Array[T]) Push(v T) error {
	if a.size == len(a.data) {
		if err := a.grow(a.size + 1); err != nil {
			return err
		}
	}
	a.data[a.size] = v
	a.size++
	return nil
}

// Pop removes and returns the last element. Capacity is retained.
func (a *Array[T]) Pop() (T, error) {
	var zero T
	if a.size == 0 {
		return zero, ErrEmptyArray
	}
	a.size--
	v := a.data[a.size]
	a.data[a.size] = zero
	return v, nil
}

// Insert places v at position i, shifting elements at [i, Len) one slot
// right. i == Len appends. Fails with ErrOutOfRange when i > Len; on any
// failure the array is unchanged.
func (a *Array[T]) Insert(i int, v T) error {
	if i < 0 || i > a.size {
		return ErrOutOfRange
	}
	if a.size == len(a.data) {
		if err := a.grow(a.size + 1); err != nil {
			return err
		}
	}
	copy(a.data[i+1:a.size+1], a.data[i:a.size]) // overlap-safe shift
	a.data[i] = v
	a.size++
	return nil
}

// Erase removes the element at position i.
func (a *Array[T]) Erase(i int) error {
	return a.EraseRange(i, i+1)
}

// EraseRange removes the elements in [first, last), moving the tail left.
// Fails with ErrOutOfRange when last > Len or first > last.
// first == last is a success no-op.
func (a *Array[T]) EraseRange(first, last int) error {
	if first < 0 || first > last || last > a.size {
		return ErrOutOfRange
	}
	if first == last {
		return nil
	}
	copy(a.data[first:], a.data[last:a.size])
	newSize := a.size - (last - first)
	clear(a.data[newSize:a.size]) // drop references in vacated slots
	a.size = newSize
	return nil
}

// Resize sets the length to n. Growth reserves capacity if needed and fills
// the new slots with copies of fill; shrinking destroys elements beyond n.
func (a *Array[T]) Resize(n int, fill T) error {
	if n < 0 {
		return ErrOutOfRange
	}
	if n > len(a.data) {
		if err := a.Reserve(n); err != nil {
			return err
		}
	}
	if n > a.size {
		for i := a.size; i < n; i++ {
			a.data[i] = fill
		}
	} else {
		clear(a.data[n:a.size])
	}
	a.size = n
	return nil
}

// ShrinkToFit reduces capacity to exactly Len. A full array is a no-op; an
// empty array releases its storage entirely. The heap path leaves the old
// buffer to the garbage collector; the arena path only drops the reference,
// since the arena owns disposal.
func (a *Array[T]) ShrinkToFit() error {
	if a.size == len(a.data) {
		return nil
	}
	if a.size == 0 {
		a.data = nil
		return nil
	}
	data, err := allocSlots[T](a.arena, a.size)
	if err != nil {
		return err
	}
	copy(data, a.data[:a.size])
	a.data = data
	return nil
}

// Clear destroys all elements and sets the length to zero. Capacity is
// retained.
func (a *Array[T]) Clear() {
	clear(a.data[:a.size])
	a.size = 0
}

// Clone deep-copies the array: same capacity, same elements, same arena
// binding. A clone never owns the arena. Fails with linear.ErrOutOfMemory
// when the copy's storage cannot be allocated.
func (a *Array[T]) Clone() (*Array[T], error) {
	data, err := allocSlots[T](a.arena, len(a.data))
	if err != nil {
		return nil, err
	}
	copy(data, a.data[:a.size])
	return &Array[T]{data: data, size: a.size, arena: a.arena}, nil
}

// Move transfers the storage, length, and arena binding to a new array in
// O(1), leaving the receiver empty and storage-less. Never fails.
func (a *Array[T]) Move() *Array[T] {
	moved := &Array[T]{data: a.data, size: a.size, arena: a.arena, ownsArena: a.ownsArena}
	*a = Array[T]{}
	return moved
}

// Destroy destroys all live elements and releases the storage. When the
// array owns its arena the arena is reset as well. The receiver is left as
// an empty heap-backed array.
func (a *Array[T]) Destroy() {
	clear(a.data[:a.size])
	if a.ownsArena && a.arena != nil {
		a.arena.FreeAll()
	}
	*a = Array[T]{}
}
