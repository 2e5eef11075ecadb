package mapdata

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/pyramid/internal/world"
)

const jsonPyramid = `{
  "name": "twin",
  "rows": ["#T.#", ".L*.", "#.E#"]
}`

const hclFixture = `
pyramid "twin" {
  description = "same layout as the JSON fixture"
  rows = ["#T.#", ".L*.", "#.E#"]
}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileFormats(t *testing.T) {
	ctx := context.Background()

	fromJSON, err := LoadFile(ctx, writeFile(t, "twin.json", jsonPyramid))
	require.NoError(t, err)
	fromHCL, err := LoadFile(ctx, writeFile(t, "twin.hcl", hclFixture))
	require.NoError(t, err)

	assert.Equal(t, "twin", fromJSON.Name)
	assert.Equal(t, "twin", fromHCL.Name)
	assert.Equal(t, fromJSON.Layout(), fromHCL.Layout())
	assert.Equal(t, 1, fromHCL.NumTreasures())
}

func TestLoadFileErrors(t *testing.T) {
	ctx := context.Background()

	_, err := LoadFile(ctx, writeFile(t, "twin.yaml", "rows: []"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile(ctx, filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadFile(ctx, writeFile(t, "bad.json", "{"))
	assert.Error(t, err)

	_, err = LoadFile(ctx, writeFile(t, "bad.hcl", `pyramid "x" {`))
	assert.Error(t, err)

	_, err = LoadFile(ctx, writeFile(t, "two.hcl", `
pyramid "a" { rows = ["E"] }
pyramid "b" { rows = ["E"] }
`))
	assert.ErrorContains(t, err, "expected one pyramid block")

	_, err = LoadFile(ctx, writeFile(t, "noentrance.json", `{"rows": ["..T"]}`))
	assert.ErrorIs(t, err, world.ErrNoEntrance)
}

func TestDecodeDefaultsName(t *testing.T) {
	def, err := Decode("dir/unnamed.json", []byte(`{"rows": ["E"]}`))
	require.NoError(t, err)
	assert.Equal(t, "unnamed", def.Name)
}

func TestRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	require.NoError(t, err)

	assert.Equal(t, []string{"chambers", "giza", "sealed"}, registry.Names())
	assert.Equal(t, 3, registry.Count())

	def, ok := registry.Def("sealed")
	require.True(t, ok)
	assert.NotEmpty(t, def.Description)

	p1, err := registry.Get("giza")
	require.NoError(t, err)
	assert.Equal(t, 3, p1.NumTreasures())

	// Each Get builds an independent pyramid.
	p2, err := registry.Get("giza")
	require.NoError(t, err)
	require.NoError(t, p1.Entrance().MarkPushed())
	assert.False(t, p2.Entrance().IsMarked())

	_, err = registry.Get("atlantis")
	assert.ErrorIs(t, err, ErrUnknownPyramid)
}

func TestLoadEmbedded(t *testing.T) {
	p, err := LoadEmbedded("sealed")
	require.NoError(t, err)
	assert.Equal(t, "sealed", p.Name)
	assert.Equal(t, 1, p.NumTreasures())
}

func TestLoadPalette(t *testing.T) {
	palette, err := LoadPalette()
	require.NoError(t, err)

	assert.Len(t, palette, 6)
	assert.Equal(t, tcell.NewHexColor(0xFFD700), palette.Color(world.GlyphTreasure))
	assert.Equal(t, tcell.ColorWhite, palette.Color(world.Glyph('?')))
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid {
			assert.NoError(t, err, tt.input)
		} else {
			assert.Error(t, err, tt.input)
		}
	}
}
