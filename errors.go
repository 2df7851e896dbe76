package linear

import "errors"

// Errors returned by arena operations. They are sentinel values so callers
// can match them with errors.Is.
var (
	// ErrOutOfMemory is returned when the backing buffer cannot satisfy an
	// allocation or an in-place resize.
	ErrOutOfMemory = errors.New("linear: out of memory")

	// ErrInvalidAlignment is returned when a requested alignment is not a
	// power of two.
	ErrInvalidAlignment = errors.New("linear: alignment is not a power of two")

	// ErrOutOfBounds is returned when a resize target does not lie within
	// the arena's backing buffer.
	ErrOutOfBounds = errors.New("linear: memory is outside the arena buffer")
)
