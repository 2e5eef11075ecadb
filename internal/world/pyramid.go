package world

import (
	"fmt"
	"strings"
)

// Pyramid owns a chamber graph laid out on offset hex rows: odd rows are
// shifted half a chamber to the right.
type Pyramid struct {
	Name string
	Rows int
	Cols int

	grid      [][]*Chamber
	chambers  []*Chamber
	entrance  *Chamber
	treasures int
}

// NewPyramid builds a pyramid from glyph rows and wires every chamber to its
// hex neighbours. Exactly one entrance is required.
func NewPyramid(name string, layout []string) (*Pyramid, error) {
	p := &Pyramid{Name: name, Rows: len(layout)}
	p.grid = make([][]*Chamber, len(layout))

	for row, line := range layout {
		runes := []rune(line)
		p.Cols = max(p.Cols, len(runes))
		p.grid[row] = make([]*Chamber, len(runes))

		for col, r := range runes {
			g, err := ParseGlyph(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", row, col, err)
			}
			if !g.IsChamber() {
				continue
			}

			c := NewChamber(len(p.chambers), g.Flags())
			c.Row, c.Col = row, col
			p.grid[row][col] = c
			p.chambers = append(p.chambers, c)

			if c.IsTreasure() {
				p.treasures++
			}
			if c.IsEntrance() {
				if p.entrance != nil {
					return nil, fmt.Errorf("%w: %s and %s", ErrMultipleEntrances, p.entrance, c)
				}
				p.entrance = c
			}
		}
	}

	if len(p.chambers) == 0 {
		return nil, ErrEmptyLayout
	}
	if p.entrance == nil {
		return nil, ErrNoEntrance
	}

	p.wire()
	return p, nil
}

// offsets are the (row, col) deltas for each neighbour slot, for even and odd
// rows respectively.
var offsets = [2][NumNeighbours][2]int{
	{{-1, 0}, {0, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}},
	{{-1, 1}, {0, 1}, {1, 1}, {1, 0}, {0, -1}, {-1, 0}},
}

// wire fills the neighbour slots of every chamber.
func (p *Pyramid) wire() {
	for _, c := range p.chambers {
		for i, d := range offsets[c.Row%2] {
			c.neighbours[i] = p.ChamberAt(c.Row+d[0], c.Col+d[1])
		}
	}
}

// Entrance returns the chamber the search starts from.
func (p *Pyramid) Entrance() *Chamber {
	return p.entrance
}

// NumTreasures returns the number of treasure chambers in the pyramid.
func (p *Pyramid) NumTreasures() int {
	return p.treasures
}

// Chambers returns all chambers in row-major order.
func (p *Pyramid) Chambers() []*Chamber {
	return p.chambers
}

// ChamberAt returns the chamber at the given position, or nil if there is none.
func (p *Pyramid) ChamberAt(row, col int) *Chamber {
	if row < 0 || row >= len(p.grid) || col < 0 || col >= len(p.grid[row]) {
		return nil
	}
	return p.grid[row][col]
}

// Reset returns every chamber to Unvisited so the pyramid can be searched
// again.
func (p *Pyramid) Reset() {
	for _, c := range p.chambers {
		c.state = Unvisited
	}
}

// Layout returns the glyph rows of the pyramid, rock rendered as '#'.
func (p *Pyramid) Layout() []string {
	rows := make([]string, len(p.grid))
	for r, line := range p.grid {
		var b strings.Builder
		for _, c := range line {
			if c == nil {
				b.WriteRune(GlyphRock.Rune())
				continue
			}
			b.WriteRune(c.Glyph().Rune())
		}
		rows[r] = b.String()
	}
	return rows
}
