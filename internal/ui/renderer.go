package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pyramid/internal/mapdata"
	"github.com/samdwyer/pyramid/internal/world"
)

// PathSymbol marks the chamber on top of the search stack.
const PathSymbol = '@'

// View is one picture of a search: the stack contents and the chambers
// already retired at that moment.
type View struct {
	Pyramid *world.Pyramid
	Path    []*world.Chamber // entrance first
	Retired map[*world.Chamber]bool
	Status  string
}

// Renderer handles drawing pyramids to the screen.
type Renderer struct {
	screen  *Screen
	palette mapdata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette mapdata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Cell returns the screen position of the chamber position (row, col). Odd
// rows are shifted half a chamber to the right.
func Cell(row, col int) (x, y int) {
	return 2*col + row%2, row
}

// Render draws the pyramid, the path over it and the status line below it.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	onPath := make(map[*world.Chamber]bool, len(v.Path))
	for _, c := range v.Path {
		onPath[c] = true
	}

	p := v.Pyramid
	for row := range p.Rows {
		for col := range p.Cols {
			x, y := Cell(row, col)
			c := p.ChamberAt(row, col)
			if c == nil {
				r.screen.SetContent(x, y, world.GlyphRock.Rune(), r.glyphStyle(world.GlyphRock))
				continue
			}

			style := r.glyphStyle(c.Glyph())
			switch {
			case onPath[c]:
				style = style.Bold(true).Underline(true)
			case v.Retired[c]:
				style = style.Dim(true)
			}
			r.screen.SetContent(x, y, c.Glyph().Rune(), style)
		}
	}

	if n := len(v.Path); n > 0 {
		top := v.Path[n-1]
		x, y := Cell(top.Row, top.Col)
		topStyle := tcell.StyleDefault.
			Foreground(tcell.ColorYellow).
			Bold(true)
		r.screen.SetContent(x, y, PathSymbol, topStyle)
	}

	r.RenderMessage(v.Status, p.Rows+1)
	r.screen.Show()
}

func (r *Renderer) glyphStyle(g world.Glyph) tcell.Style {
	return tcell.StyleDefault.Foreground(r.palette.Color(g))
}

// RenderMessage displays a message on the given screen row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
