package stack

import "errors"

var (
	// ErrEmptyCollection is returned by Pop and Peek on a stack with no elements.
	ErrEmptyCollection = errors.New("stack: empty collection")

	// ErrInvalidPosition is returned by PopAt when k is outside [1, Size()].
	ErrInvalidPosition = errors.New("stack: invalid position")
)
