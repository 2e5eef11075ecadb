// Package world provides the chamber graph of a pyramid: chambers, their hex
// neighbour wiring, and random pyramid generation.
package world

import "fmt"

// Glyph is the single-character map notation for a chamber.
type Glyph rune

const (
	// GlyphEntrance marks the chamber the search starts from.
	GlyphEntrance Glyph = 'E'
	// GlyphTreasure marks a treasure chamber.
	GlyphTreasure Glyph = 'T'
	// GlyphLighted marks a lighted chamber.
	GlyphLighted Glyph = 'L'
	// GlyphSealed marks a sealed chamber.
	GlyphSealed Glyph = '*'
	// GlyphPlain marks a chamber with no special attribute.
	GlyphPlain Glyph = '.'
	// GlyphRock marks a position with no chamber.
	GlyphRock Glyph = '#'
)

// ParseGlyph validates r as map notation. A space is read as rock.
func ParseGlyph(r rune) (Glyph, error) {
	switch g := Glyph(r); g {
	case GlyphEntrance, GlyphTreasure, GlyphLighted, GlyphSealed, GlyphPlain, GlyphRock:
		return g, nil
	case ' ':
		return GlyphRock, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownGlyph, r)
	}
}

// IsChamber returns true if the glyph denotes a chamber rather than rock.
func (g Glyph) IsChamber() bool {
	return g != GlyphRock
}

// Flags returns the chamber attributes encoded by the glyph.
func (g Glyph) Flags() Flag {
	switch g {
	case GlyphEntrance:
		return Entrance
	case GlyphTreasure:
		return Treasure
	case GlyphLighted:
		return Lighted
	case GlyphSealed:
		return Sealed
	default:
		return 0
	}
}

// Rune returns the glyph's display character.
func (g Glyph) Rune() rune {
	return rune(g)
}
