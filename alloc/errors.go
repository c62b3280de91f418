package alloc

import "errors"

var (
	// ErrNoSpace indicates the backing slab for a new chunk could not be obtained.
	ErrNoSpace = errors.New("alloc: no backing memory for chunk")

	// ErrBadFree indicates a freed pointer that no chunk of the selected
	// allocator owns, or a size for which no allocation was ever made.
	ErrBadFree = errors.New("alloc: freed pointer not owned by allocator")

	// ErrZeroSize indicates a zero or negative request size.
	ErrZeroSize = errors.New("alloc: size must be at least 1 byte")
)
