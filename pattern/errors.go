package pattern

import (
	"errors"
	"fmt"
)

var (
	// ErrPatternNotFound reports an identifier absent from the selected catalog.
	ErrPatternNotFound = errors.New("pattern not found")
	// ErrUnknownCatalog reports a catalog identifier the library does not hold.
	ErrUnknownCatalog = errors.New("unknown catalog")
	// ErrInvalidDimension reports a grid dimension outside 3..6.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrPixelOutOfRange reports a frame index outside the grid.
	ErrPixelOutOfRange = errors.New("pixel index out of range")
	// ErrEmptyPattern reports a pattern with no frames.
	ErrEmptyPattern = errors.New("pattern has no frames")
	// ErrUnknownCategory reports a category label the catalog does not have.
	ErrUnknownCategory = errors.New("unknown category")
	// ErrUnknownColor reports a colour outside the green, blue, pink palette.
	ErrUnknownColor = errors.New("unknown color")
)

// LookupError is returned by Catalog.Lookup and the Library resolvers.
type LookupError struct {
	Ref Ref
	Err error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("pattern %s: %v", e.Ref, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }
