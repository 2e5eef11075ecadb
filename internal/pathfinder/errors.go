package pathfinder

import "errors"

// ErrAlreadySearched is returned by Run when the entrance already carries a
// visit mark from an earlier search. Reset the pyramid to search it again.
var ErrAlreadySearched = errors.New("pathfinder: pyramid already searched")
