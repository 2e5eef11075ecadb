package pathfinder

import (
	"context"
	"strings"

	"github.com/samdwyer/pyramid/internal/mapdata"
	"github.com/samdwyer/pyramid/internal/world"
)

// EmbeddedPrefix selects an embedded sample pyramid in a source identifier,
// as in "embed:giza".
const EmbeddedPrefix = "embed:"

// Open resolves a source identifier into a pyramid: either "embed:<name>" or
// a path to a .json or .hcl file.
func Open(ctx context.Context, source string) (*world.Pyramid, error) {
	if name, ok := strings.CutPrefix(source, EmbeddedPrefix); ok {
		return mapdata.LoadEmbedded(name)
	}
	return mapdata.LoadFile(ctx, source)
}

// NewFromSource opens source and creates a PathFinder over it.
func NewFromSource(ctx context.Context, source string, opts ...Option) (*PathFinder, error) {
	p, err := Open(ctx, source)
	if err != nil {
		return nil, err
	}
	return New(p, opts...), nil
}
