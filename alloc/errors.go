package alloc

import "errors"

var (
	// ErrCapacityExceeded indicates the corpus needs more bits than the
	// register layout can provide.
	ErrCapacityExceeded = errors.New("alloc: capacity exceeded")

	// ErrInvalidRegisterWidth indicates a register width outside 1..64.
	ErrInvalidRegisterWidth = errors.New("alloc: invalid register width")

	// ErrInvalidWidth indicates a requested uniform field width that does
	// not fit the register.
	ErrInvalidWidth = errors.New("alloc: invalid field width")

	// ErrInvalidCount indicates a negative letter count.
	ErrInvalidCount = errors.New("alloc: invalid letter count")

	// ErrInvalidLayout indicates a restored table whose fields are
	// inconsistent with its counts or overlap each other.
	ErrInvalidLayout = errors.New("alloc: invalid layout")
)
