package location

import "errors"

// Hierarchy rule violations. They are permanent: the caller has to change the input.
var (
	// ErrInvalidHierarchy is returned for a missing parent or a parent of the wrong kind.
	ErrInvalidHierarchy = errors.New("invalid location hierarchy")
	// ErrOutOfBounds is returned when a child's box does not fit in its parent's box.
	ErrOutOfBounds = errors.New("location is out of parent bounds")
	// ErrBinLocked is returned on a structural change to a bin that holds inventory.
	ErrBinLocked = errors.New("bin is locked by inventory")
	// ErrNotEmpty is returned when deleting a location that still holds inventory.
	ErrNotEmpty = errors.New("location is not empty")

	ErrLocationIsNotConstructed = errors.New("Location must be created via NewArea, NewShelf or NewBin constructors")
)
