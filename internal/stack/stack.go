// Package stack provides a doubly linked stack that also supports removing an
// element at an arbitrary depth from the top.
//
// Nodes are kept in an arena owned by the Stack and addressed by handles, so
// the links between a node and its neighbours above and below are plain
// integers rather than mutual pointers. Handles never leave the package.
package stack

import (
	"fmt"
	"iter"
)

// none is the link terminator. Live handles are arena indexes plus one, which
// keeps the zero value of Stack usable.
const none = 0

// node is a single arena slot.
type node[T any] struct {
	elem  T
	below int // handle of the node toward the bottom
	above int // handle of the node toward the top
}

// Stack is a LIFO collection backed by a doubly linked list.
// A Stack is not safe for concurrent use.
type Stack[T any] struct {
	nodes []node[T]
	free  []int
	top   int
	count int
}

// New creates an empty stack.
func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// Push places element on top of the stack.
func (s *Stack[T]) Push(element T) {
	h := s.alloc(element)
	if s.top != none {
		s.at(h).below = s.top
		s.at(s.top).above = h
	}
	s.top = h
	s.count++
}

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmptyCollection
	}
	return s.unlink(s.top), nil
}

// PopAt removes and returns the element k positions from the top, where the
// top itself is position 1.
func (s *Stack[T]) PopAt(k int) (T, error) {
	if k < 1 || k > s.count {
		var zero T
		return zero, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidPosition, k, s.count)
	}
	h := s.top
	for i := 1; i < k; i++ {
		h = s.at(h).below
	}
	return s.unlink(h), nil
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	if s.IsEmpty() {
		var zero T
		return zero, ErrEmptyCollection
	}
	return s.at(s.top).elem, nil
}

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool {
	return s.count == 0
}

// Size returns the number of elements on the stack.
func (s *Stack[T]) Size() int {
	return s.count
}

// Items returns the elements ordered from bottom to top.
func (s *Stack[T]) Items() []T {
	items := make([]T, s.count)
	i := s.count - 1
	for h := s.top; h != none; h = s.at(h).below {
		items[i] = s.at(h).elem
		i--
	}
	return items
}

// All iterates over the elements from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for h := s.top; h != none; h = s.at(h).below {
			if !yield(s.at(h).elem) {
				return
			}
		}
	}
}

// unlink detaches the node at h, joins its neighbours and returns its element.
func (s *Stack[T]) unlink(h int) T {
	n := s.at(h)
	elem := n.elem

	if n.above == none {
		s.top = n.below
	} else {
		s.at(n.above).below = n.below
	}
	if n.below != none {
		s.at(n.below).above = n.above
	}

	s.release(h)
	s.count--
	if s.count == 0 {
		// Nothing is reachable any more; drop the free list with the arena.
		s.nodes = s.nodes[:0]
		s.free = s.free[:0]
	}
	return elem
}

func (s *Stack[T]) at(h int) *node[T] {
	return &s.nodes[h-1]
}

func (s *Stack[T]) alloc(elem T) int {
	if n := len(s.free); n > 0 {
		h := s.free[n-1]
		s.free = s.free[:n-1]
		*s.at(h) = node[T]{elem: elem}
		return h
	}
	s.nodes = append(s.nodes, node[T]{elem: elem})
	return len(s.nodes)
}

func (s *Stack[T]) release(h int) {
	*s.at(h) = node[T]{}
	s.free = append(s.free, h)
}
