// Package expedition runs a treasure search end to end: it resolves the
// pyramid, runs the pathfinder, reports the path and replays the search in
// the terminal.
package expedition

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/pyramid/internal/ctxlog"
	"github.com/samdwyer/pyramid/internal/mapdata"
	"github.com/samdwyer/pyramid/internal/pathfinder"
	"github.com/samdwyer/pyramid/internal/telemetry"
	"github.com/samdwyer/pyramid/internal/ui"
	"github.com/samdwyer/pyramid/internal/world"
)

// Expedition holds everything needed for one search.
type Expedition struct {
	cfg Config

	// newScreen opens the terminal used by the viewer.
	newScreen func() (*ui.Screen, error)
}

// New creates an expedition from cfg.
func New(cfg Config) *Expedition {
	return &Expedition{cfg: cfg, newScreen: ui.NewScreen}
}

// Report is the outcome of a finished expedition.
type Report struct {
	Pyramid *world.Pyramid
	Result  pathfinder.Result
	Outcome Outcome
	Events  []Event
}

// Pyramid resolves the configured pyramid: generated from the seed, or
// loaded from the configured source.
func (e *Expedition) Pyramid(ctx context.Context) (*world.Pyramid, error) {
	if !e.cfg.Generate {
		source := e.cfg.Source
		if source == "" {
			source = DefaultSource
		}
		return pathfinder.Open(ctx, source)
	}

	seed := e.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	ctxlog.FromContext(ctx).Debug("Generating pyramid.", "seed", seed)
	return world.Generate(ctx, world.DefaultOptions(), rand.New(rand.NewSource(seed)))
}

// Run resolves the pyramid, searches it, writes the report to out and, when
// configured, replays the search on the terminal.
func (e *Expedition) Run(ctx context.Context, out io.Writer) (*Report, error) {
	tracer := telemetry.Tracer("expedition")
	ctx, span := tracer.Start(ctx, "expedition.run")
	defer span.End()

	logger := ctxlog.FromContext(ctx)

	p, err := e.Pyramid(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve pyramid: %w", err)
	}
	logger.Info("Searching pyramid.", "name", p.Name, "chambers", len(p.Chambers()), "treasures", p.NumTreasures())

	var events []Event
	pf := pathfinder.New(p,
		pathfinder.WithOnPush(func(c *world.Chamber) { events = append(events, Event{Chamber: c}) }),
		pathfinder.WithOnPop(func(c *world.Chamber) { events = append(events, Event{Chamber: c, Popped: true}) }),
	)
	res, err := pf.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search pyramid %s: %w", p.Name, err)
	}

	report := &Report{Pyramid: p, Result: res, Outcome: OutcomeOf(res), Events: events}
	span.SetAttributes(
		attribute.String("pyramid.name", p.Name),
		attribute.String("expedition.outcome", report.Outcome.String()),
	)
	logger.Info("Search finished.", "outcome", report.Outcome, "found", res.Found, "total", res.Total, "steps", res.Steps)

	if err := WriteReport(out, report); err != nil {
		return report, err
	}

	if e.cfg.View {
		if err := e.view(ctx, report); err != nil {
			return report, err
		}
	}
	return report, nil
}

func (e *Expedition) view(ctx context.Context, report *Report) error {
	palette, err := mapdata.LoadPalette()
	if err != nil {
		return err
	}
	screen, err := e.newScreen()
	if err != nil {
		return fmt.Errorf("failed to open screen: %w", err)
	}
	defer screen.Close()

	replay := NewReplay(report.Pyramid, report.Events, report.Outcome)
	return NewViewer(screen, palette, replay).Run(ctx)
}

// WriteReport prints the outcome and the path, entrance first.
func WriteReport(out io.Writer, r *Report) error {
	res := r.Result
	if _, err := fmt.Fprintf(out, "pyramid %s: found %d/%d treasures in %d steps (%s)\n",
		r.Pyramid.Name, res.Found, res.Total, res.Steps, r.Outcome); err != nil {
		return err
	}

	if len(res.Path) == 0 {
		_, err := fmt.Fprintln(out, "path: (empty)")
		return err
	}
	labels := make([]string, len(res.Path))
	for i, c := range res.Path {
		labels[i] = c.String()
	}
	_, err := fmt.Fprintf(out, "path: %s\n", strings.Join(labels, " -> "))
	return err
}
