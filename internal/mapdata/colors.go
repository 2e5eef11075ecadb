package mapdata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pyramid/internal/world"
)

// GlyphStyleDef assigns a display colour to a glyph.
type GlyphStyleDef struct {
	Glyph string `json:"glyph"`
	Name  string `json:"name"`
	Color string `json:"color"` // Hex color code (e.g., "#FFD700")
}

// PaletteFile represents the structure of palette.json.
type PaletteFile struct {
	Glyphs []GlyphStyleDef `json:"glyphs"`
}

// Palette maps glyphs to display colours.
type Palette map[world.Glyph]tcell.Color

// Color returns the colour for g, or white when g has none.
func (p Palette) Color(g world.Glyph) tcell.Color {
	if c, ok := p[g]; ok {
		return c
	}
	return tcell.ColorWhite
}

// LoadPalette loads the glyph colours from the embedded palette.json.
func LoadPalette() (Palette, error) {
	file, err := Load[PaletteFile](paletteFile)
	if err != nil {
		return nil, err
	}

	palette := make(Palette, len(file.Glyphs))
	for _, def := range file.Glyphs {
		runes := []rune(def.Glyph)
		if len(runes) != 1 {
			return nil, fmt.Errorf("palette entry %q: glyph must be one character", def.Name)
		}
		g, err := world.ParseGlyph(runes[0])
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", def.Name, err)
		}
		color, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", def.Name, err)
		}
		palette[g] = color
	}
	return palette, nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
