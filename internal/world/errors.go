package world

import "errors"

var (
	// ErrInvalidIndex is returned for neighbour slots outside [0, NumNeighbours).
	ErrInvalidIndex = errors.New("world: invalid neighbour index")

	// ErrInvalidTransition is returned when a chamber's visit state cannot
	// move to the requested state.
	ErrInvalidTransition = errors.New("world: invalid visit state transition")

	// ErrEmptyLayout indicates a layout without any chamber.
	ErrEmptyLayout = errors.New("world: layout has no chambers")

	// ErrNoEntrance indicates a layout without an entrance chamber.
	ErrNoEntrance = errors.New("world: layout has no entrance")

	// ErrMultipleEntrances indicates a layout with more than one entrance.
	ErrMultipleEntrances = errors.New("world: layout has more than one entrance")

	// ErrUnknownGlyph is returned for characters that are not map notation.
	ErrUnknownGlyph = errors.New("world: unknown glyph")
)
