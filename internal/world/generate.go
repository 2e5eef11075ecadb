package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pyramid/internal/telemetry"
)

const (
	// Default pyramid dimensions
	DefaultRows = 7
	DefaultCols = 13

	DefaultTreasures  = 3
	DefaultLightRatio = 0.25
	DefaultSealRatio  = 0.15
)

// Options controls random pyramid generation.
type Options struct {
	Rows       int
	Cols       int
	Treasures  int
	LightRatio float64 // chance that a plain position becomes lighted
	SealRatio  float64 // chance that a plain position becomes sealed
}

// DefaultOptions returns the generator defaults.
func DefaultOptions() Options {
	return Options{
		Rows:       DefaultRows,
		Cols:       DefaultCols,
		Treasures:  DefaultTreasures,
		LightRatio: DefaultLightRatio,
		SealRatio:  DefaultSealRatio,
	}
}

// Generate creates a random pyramid. Rows narrow toward the apex, the
// entrance sits on the base row and treasures are spread over the rest.
// The same rng seed always yields the same pyramid.
func Generate(ctx context.Context, opts Options, rng *rand.Rand) (*Pyramid, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "pyramid.generate")
	defer span.End()

	startTime := time.Now()

	if opts.Rows < 1 || opts.Cols < 1 {
		return nil, fmt.Errorf("world: invalid pyramid size %dx%d", opts.Rows, opts.Cols)
	}

	grid := make([][]rune, opts.Rows)
	var open [][2]int
	for r := range grid {
		grid[r] = make([]rune, opts.Cols)
		lo, hi := rowSpan(r, opts.Rows, opts.Cols)
		for c := range grid[r] {
			grid[r][c] = GlyphRock.Rune()
			if c >= lo && c < hi {
				grid[r][c] = GlyphPlain.Rune()
				open = append(open, [2]int{r, c})
			}
		}
	}

	if opts.Treasures < 0 || opts.Treasures > len(open)-1 {
		return nil, fmt.Errorf("world: cannot place %d treasures in %d chambers", opts.Treasures, len(open))
	}

	// Entrance on the base row
	lo, hi := rowSpan(opts.Rows-1, opts.Rows, opts.Cols)
	entranceCol := lo + rng.Intn(hi-lo)
	grid[opts.Rows-1][entranceCol] = GlyphEntrance.Rune()

	rest := make([][2]int, 0, len(open)-1)
	for _, pos := range open {
		if pos != [2]int{opts.Rows - 1, entranceCol} {
			rest = append(rest, pos)
		}
	}
	rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })

	for i, pos := range rest {
		var g Glyph
		switch roll := rng.Float64(); {
		case i < opts.Treasures:
			g = GlyphTreasure
		case roll < opts.SealRatio:
			g = GlyphSealed
		case roll < opts.SealRatio+opts.LightRatio:
			g = GlyphLighted
		default:
			continue
		}
		grid[pos[0]][pos[1]] = g.Rune()
	}

	layout := make([]string, len(grid))
	for r := range grid {
		layout[r] = string(grid[r])
	}

	p, err := NewPyramid("generated", layout)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("pyramid.rows", p.Rows),
		attribute.Int("pyramid.cols", p.Cols),
		attribute.Int("pyramid.chambers", len(p.chambers)),
		attribute.Int("pyramid.treasures", p.treasures),
		attribute.Int64("pyramid.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return p, nil
}

// rowSpan returns the [lo, hi) column range holding chambers on row r.
func rowSpan(r, rows, cols int) (int, int) {
	margin := (rows - 1 - r) * cols / (2 * rows)
	if margin >= cols-margin {
		margin = (cols - 1) / 2
	}
	return margin, cols - margin
}
