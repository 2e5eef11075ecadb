// Package pathfinder searches a pyramid for its treasure chambers with a
// greedy, stack-based depth-first search.
//
// From the chamber on top of the stack the search moves to the best unmarked
// neighbour: the first treasure chamber, otherwise the first lighted one,
// otherwise the first dim one, scanning neighbour slots in order. A chamber
// with no such neighbour is popped and never revisited. The search stops when
// every treasure has been found or the stack is empty; the stack then holds
// the path from the entrance.
package pathfinder

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pyramid/internal/ctxlog"
	"github.com/samdwyer/pyramid/internal/stack"
	"github.com/samdwyer/pyramid/internal/world"
)

// Pyramid is the chamber graph a PathFinder searches.
type Pyramid interface {
	Entrance() *world.Chamber
	NumTreasures() int
}

// Result describes a finished search.
type Result struct {
	Path  []*world.Chamber // entrance first
	Found int              // treasure chambers pushed
	Total int              // treasure chambers in the pyramid
	Steps int              // pushes and pops, entrance included
}

// Complete returns true if every treasure was found.
func (r Result) Complete() bool {
	return r.Found >= r.Total
}

// PathFinder runs the treasure search over one pyramid. Visit marks are left
// on the chambers, so each pyramid supports one search until it is reset;
// a second Run fails with ErrAlreadySearched.
type PathFinder struct {
	pyramid Pyramid
	opts    options
}

// New creates a PathFinder over p.
func New(p Pyramid, opts ...Option) *PathFinder {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &PathFinder{pyramid: p, opts: o}
}

// Pyramid returns the searched pyramid.
func (pf *PathFinder) Pyramid() Pyramid {
	return pf.pyramid
}

// Path runs the search and returns the chambers left on the stack, entrance
// first. An empty result means the search space was exhausted. Errors from
// Run are logged and yield an empty path; call Run to handle them.
func (pf *PathFinder) Path(ctx context.Context) []*world.Chamber {
	res, err := pf.Run(ctx)
	if err != nil {
		ctxlog.FromContext(ctx).Warn("Pyramid search failed.", "error", err)
		return []*world.Chamber{}
	}
	return res.Path
}

// Run runs the search and returns the path with its counters. It returns
// ErrAlreadySearched if the entrance was marked by an earlier search.
func (pf *PathFinder) Run(ctx context.Context) (Result, error) {
	ctx, span := pf.opts.tracer.Start(ctx, "pathfinder.path")
	defer span.End()

	s := stack.New[*world.Chamber]()
	res := Result{Total: pf.pyramid.NumTreasures(), Path: []*world.Chamber{}}

	entrance := pf.pyramid.Entrance()
	if entrance == nil {
		return res, nil
	}
	if entrance.IsMarked() {
		return res, ErrAlreadySearched
	}
	if err := pf.push(s, entrance, &res); err != nil {
		return res, err
	}

	for !s.IsEmpty() && res.Found < res.Total {
		current, err := s.Peek()
		if err != nil {
			return res, err
		}

		if next := pf.BestChamber(current); next != nil {
			if err := pf.push(s, next, &res); err != nil {
				return res, err
			}
			continue
		}

		// Popped chambers keep their mark and are never chosen again.
		if err := current.MarkPopped(); err != nil {
			return res, fmt.Errorf("pathfinder: pop %s: %w", current, err)
		}
		if _, err := s.Pop(); err != nil {
			return res, err
		}
		res.Steps++
		if pf.opts.onPop != nil {
			pf.opts.onPop(current)
		}
	}

	res.Path = s.Items()

	span.SetAttributes(
		attribute.Int("pyramid.treasures.total", res.Total),
		attribute.Int("pyramid.treasures.found", res.Found),
		attribute.Int("path.length", len(res.Path)),
		attribute.Int("path.steps", res.Steps),
	)
	ctxlog.FromContext(ctx).Debug("Pyramid search finished.",
		"found", res.Found, "total", res.Total, "path_length", len(res.Path), "steps", res.Steps)

	return res, nil
}

func (pf *PathFinder) push(s *stack.Stack[*world.Chamber], c *world.Chamber, res *Result) error {
	if err := c.MarkPushed(); err != nil {
		return fmt.Errorf("pathfinder: push %s: %w", c, err)
	}
	s.Push(c)
	res.Steps++
	if c.IsTreasure() {
		res.Found++
	}
	if pf.opts.onPush != nil {
		pf.opts.onPush(c)
	}
	return nil
}

// BestChamber returns the unmarked neighbour of c the search moves to next,
// or nil if there is none. The first treasure neighbour wins, then the first
// lighted one, then the first dim one.
func (pf *PathFinder) BestChamber(c *world.Chamber) *world.Chamber {
	var treasure, lighted, dim *world.Chamber

	for i := range world.NumNeighbours {
		n := neighbour(c, i)
		if n == nil || n.IsMarked() {
			continue
		}
		switch {
		case n.IsTreasure():
			if treasure == nil {
				treasure = n
			}
		case n.IsLighted():
			if lighted == nil {
				lighted = n
			}
		case IsDim(n):
			if dim == nil {
				dim = n
			}
		}
	}

	switch {
	case treasure != nil:
		return treasure
	case lighted != nil:
		return lighted
	default:
		return dim
	}
}

// IsDim returns true if c is neither sealed nor lighted and has a lighted,
// unsealed neighbour. Whether that neighbour was visited does not matter.
func IsDim(c *world.Chamber) bool {
	if c == nil || c.IsSealed() || c.IsLighted() {
		return false
	}
	for i := range world.NumNeighbours {
		// A sealed lamp does not light its neighbours. Glyph maps cannot
		// produce one; hand-built chambers can.
		if n := neighbour(c, i); n != nil && n.IsLighted() && !n.IsSealed() {
			return true
		}
	}
	return false
}

// neighbour reads slot i of c, treating an invalid slot as empty.
func neighbour(c *world.Chamber, i int) *world.Chamber {
	n, err := c.Neighbour(i)
	if errors.Is(err, world.ErrInvalidIndex) {
		return nil
	}
	return n
}
