package world

import "fmt"

// NumNeighbours is the number of neighbour slots of every chamber.
const NumNeighbours = 6

// Neighbour slot indexes, clockwise from north-east.
const (
	NorthEast = iota
	East
	SouthEast
	SouthWest
	West
	NorthWest
)

// Flag is a set of chamber attributes.
type Flag uint8

const (
	Treasure Flag = 1 << iota
	Lighted
	Sealed
	Entrance
)

// VisitState is the traversal state of a chamber.
type VisitState int

const (
	// Unvisited chambers have not been reached by the current traversal.
	Unvisited VisitState = iota
	// Pushed chambers are on the traversal stack.
	Pushed
	// Popped chambers were exhausted and removed from the stack. Terminal.
	Popped
)

// String returns a human-readable state name.
func (s VisitState) String() string {
	switch s {
	case Unvisited:
		return "unvisited"
	case Pushed:
		return "pushed"
	case Popped:
		return "popped"
	default:
		return "unknown"
	}
}

// Chamber is a node of the pyramid graph.
type Chamber struct {
	ID       int
	Row, Col int

	flags      Flag
	state      VisitState
	neighbours [NumNeighbours]*Chamber
}

// NewChamber creates an unvisited chamber with the given attributes and no
// neighbours.
func NewChamber(id int, flags Flag) *Chamber {
	return &Chamber{ID: id, flags: flags}
}

// Neighbour returns the chamber in slot i, or nil if the slot is empty.
func (c *Chamber) Neighbour(i int) (*Chamber, error) {
	if i < 0 || i >= NumNeighbours {
		return nil, fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	return c.neighbours[i], nil
}

// SetNeighbour places n in slot i. It does not wire the reverse direction.
func (c *Chamber) SetNeighbour(i int, n *Chamber) error {
	if i < 0 || i >= NumNeighbours {
		return fmt.Errorf("%w: %d", ErrInvalidIndex, i)
	}
	c.neighbours[i] = n
	return nil
}

// Link connects a and b through slot i of a and the opposite slot of b.
func Link(a *Chamber, i int, b *Chamber) error {
	if err := a.SetNeighbour(i, b); err != nil {
		return err
	}
	return b.SetNeighbour(Opposite(i), a)
}

// Opposite returns the slot facing slot i.
func Opposite(i int) int {
	return (i + NumNeighbours/2) % NumNeighbours
}

func (c *Chamber) IsTreasure() bool { return c.flags&Treasure != 0 }
func (c *Chamber) IsLighted() bool  { return c.flags&Lighted != 0 }
func (c *Chamber) IsSealed() bool   { return c.flags&Sealed != 0 }
func (c *Chamber) IsEntrance() bool { return c.flags&Entrance != 0 }

// IsMarked returns true once the chamber has been pushed, whether or not it
// has been popped since.
func (c *Chamber) IsMarked() bool { return c.state != Unvisited }

// State returns the chamber's visit state.
func (c *Chamber) State() VisitState { return c.state }

// MarkPushed moves an unvisited chamber to Pushed.
func (c *Chamber) MarkPushed() error {
	if c.state != Unvisited {
		return fmt.Errorf("%w: chamber %d %s -> %s", ErrInvalidTransition, c.ID, c.state, Pushed)
	}
	c.state = Pushed
	return nil
}

// MarkPopped moves a pushed chamber to Popped.
func (c *Chamber) MarkPopped() error {
	if c.state != Pushed {
		return fmt.Errorf("%w: chamber %d %s -> %s", ErrInvalidTransition, c.ID, c.state, Popped)
	}
	c.state = Popped
	return nil
}

// Glyph returns the map notation for the chamber.
func (c *Chamber) Glyph() Glyph {
	switch {
	case c.IsEntrance():
		return GlyphEntrance
	case c.IsTreasure():
		return GlyphTreasure
	case c.IsLighted():
		return GlyphLighted
	case c.IsSealed():
		return GlyphSealed
	default:
		return GlyphPlain
	}
}

// String returns a short label such as "T#4(2,3)".
func (c *Chamber) String() string {
	return fmt.Sprintf("%c#%d(%d,%d)", c.Glyph(), c.ID, c.Row, c.Col)
}
