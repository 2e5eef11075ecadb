package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPyramid(t *testing.T) {
	p, err := NewPyramid("small", []string{
		"#T.#",
		".L*.",
		"#.E#",
	})
	require.NoError(t, err)

	assert.Equal(t, "small", p.Name)
	assert.Equal(t, 3, p.Rows)
	assert.Equal(t, 4, p.Cols)
	assert.Len(t, p.Chambers(), 8)
	assert.Equal(t, 1, p.NumTreasures())

	e := p.Entrance()
	require.NotNil(t, e)
	assert.Equal(t, 2, e.Row)
	assert.Equal(t, 2, e.Col)
	assert.True(t, e.IsEntrance())
	assert.False(t, e.IsMarked())

	assert.True(t, p.ChamberAt(0, 1).IsTreasure())
	assert.True(t, p.ChamberAt(1, 1).IsLighted())
	assert.True(t, p.ChamberAt(1, 2).IsSealed())
	assert.Nil(t, p.ChamberAt(0, 0))
	assert.Nil(t, p.ChamberAt(-1, 0))
	assert.Nil(t, p.ChamberAt(5, 5))
}

func TestNewPyramidErrors(t *testing.T) {
	tests := []struct {
		name   string
		layout []string
		want   error
	}{
		{"empty", nil, ErrEmptyLayout},
		{"only rock", []string{"# #"}, ErrEmptyLayout},
		{"no entrance", []string{"..T"}, ErrNoEntrance},
		{"two entrances", []string{"E.E"}, ErrMultipleEntrances},
		{"bad glyph", []string{"E?"}, ErrUnknownGlyph},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPyramid(tt.name, tt.layout)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHexWiring(t *testing.T) {
	p, err := NewPyramid("hex", []string{
		"...",
		".E.",
		"...",
	})
	require.NoError(t, err)

	// Row 1 is odd and shifted right.
	e := p.Entrance()
	want := map[int]*Chamber{
		NorthEast: p.ChamberAt(0, 2),
		East:      p.ChamberAt(1, 2),
		SouthEast: p.ChamberAt(2, 2),
		SouthWest: p.ChamberAt(2, 1),
		West:      p.ChamberAt(1, 0),
		NorthWest: p.ChamberAt(0, 1),
	}
	for slot, c := range want {
		got, err := e.Neighbour(slot)
		require.NoError(t, err)
		assert.Same(t, c, got, "slot %d", slot)
	}

	// Even row corner only has two neighbours: east and south-east.
	corner := p.ChamberAt(0, 0)
	var present int
	for i := range NumNeighbours {
		n, err := corner.Neighbour(i)
		require.NoError(t, err)
		if n != nil {
			present++
		}
	}
	assert.Equal(t, 2, present)
}

func TestHexWiringSymmetric(t *testing.T) {
	p, err := NewPyramid("sym", []string{
		"#..L.#",
		"..T.*.",
		".L..E.",
		"#.*..#",
	})
	require.NoError(t, err)

	for _, c := range p.Chambers() {
		for i := range NumNeighbours {
			n, err := c.Neighbour(i)
			require.NoError(t, err)
			if n == nil {
				continue
			}
			back, err := n.Neighbour(Opposite(i))
			require.NoError(t, err)
			assert.Same(t, c, back, "%s slot %d -> %s", c, i, n)
		}
	}
}

func TestNeighbourInvalidIndex(t *testing.T) {
	c := NewChamber(0, 0)
	for _, i := range []int{-1, NumNeighbours, 42} {
		_, err := c.Neighbour(i)
		assert.ErrorIs(t, err, ErrInvalidIndex)
		assert.ErrorIs(t, c.SetNeighbour(i, nil), ErrInvalidIndex)
	}
}

func TestVisitStateTransitions(t *testing.T) {
	c := NewChamber(1, Lighted)
	assert.Equal(t, Unvisited, c.State())

	assert.ErrorIs(t, c.MarkPopped(), ErrInvalidTransition)

	require.NoError(t, c.MarkPushed())
	assert.True(t, c.IsMarked())
	assert.Equal(t, "pushed", c.State().String())
	assert.ErrorIs(t, c.MarkPushed(), ErrInvalidTransition)

	require.NoError(t, c.MarkPopped())
	assert.True(t, c.IsMarked())
	assert.Equal(t, Popped, c.State())
	assert.ErrorIs(t, c.MarkPushed(), ErrInvalidTransition)
	assert.ErrorIs(t, c.MarkPopped(), ErrInvalidTransition)
}

func TestResetAndLayout(t *testing.T) {
	layout := []string{
		"#TL#",
		"*..E",
	}
	p, err := NewPyramid("reset", layout)
	require.NoError(t, err)
	assert.Equal(t, layout, p.Layout())

	for _, c := range p.Chambers() {
		require.NoError(t, c.MarkPushed())
	}
	p.Reset()
	for _, c := range p.Chambers() {
		assert.Equal(t, Unvisited, c.State())
	}
}

func TestLink(t *testing.T) {
	a, b := NewChamber(0, 0), NewChamber(1, 0)
	require.NoError(t, Link(a, SouthWest, b))

	got, err := b.Neighbour(NorthEast)
	require.NoError(t, err)
	assert.Same(t, a, got)
}
