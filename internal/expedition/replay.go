package expedition

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/pyramid/internal/mapdata"
	"github.com/samdwyer/pyramid/internal/ui"
	"github.com/samdwyer/pyramid/internal/world"
)

// Event is one stack transition of a search.
type Event struct {
	Chamber *world.Chamber
	Popped  bool
}

// Replay rebuilds intermediate views of a finished search from its events.
type Replay struct {
	pyramid *world.Pyramid
	events  []Event
	total   int
	outcome Outcome
}

// NewReplay creates a replay of events over p.
func NewReplay(p *world.Pyramid, events []Event, outcome Outcome) *Replay {
	return &Replay{pyramid: p, events: events, total: p.NumTreasures(), outcome: outcome}
}

// Len returns the number of frames, one per event.
func (r *Replay) Len() int {
	return len(r.events)
}

// Frame returns the view after event i has been applied.
func (r *Replay) Frame(i int) ui.View {
	if len(r.events) == 0 {
		return ui.View{Pyramid: r.pyramid, Status: r.pyramid.Name + "  no search"}
	}
	i = max(0, min(i, len(r.events)-1))

	var path []*world.Chamber
	retired := make(map[*world.Chamber]bool)
	found := 0
	for _, ev := range r.events[:i+1] {
		if ev.Popped {
			path = path[:len(path)-1]
			retired[ev.Chamber] = true
			continue
		}
		path = append(path, ev.Chamber)
		if ev.Chamber.IsTreasure() {
			found++
		}
	}

	status := fmt.Sprintf("%s  step %d/%d  treasures %d/%d",
		r.pyramid.Name, i+1, len(r.events), found, r.total)
	if i == len(r.events)-1 {
		status += "  " + r.outcome.String()
	}
	return ui.View{Pyramid: r.pyramid, Path: path, Retired: retired, Status: status}
}

// Viewer steps through a replay on a terminal screen.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	replay   *Replay
	frame    int
	running  bool
}

// NewViewer creates a viewer positioned on the first frame.
func NewViewer(screen *ui.Screen, palette mapdata.Palette, replay *Replay) *Viewer {
	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		replay:   replay,
		running:  true,
	}
}

// Frame returns the index of the displayed frame.
func (v *Viewer) Frame() int {
	return v.frame
}

// Running returns false once the user has asked to quit.
func (v *Viewer) Running() bool {
	return v.running
}

// Run draws frames and handles input until the user quits.
func (v *Viewer) Run(ctx context.Context) error {
	for v.running {
		if err := ctx.Err(); err != nil {
			return err
		}

		v.renderer.Render(v.replay.Frame(v.frame))
		v.RenderHelp()

		switch ev := v.screen.PollEvent().(type) {
		case nil:
			// Screen finalized
			v.running = false
		case *tcell.EventKey:
			v.HandleKey(ev)
		case *tcell.EventResize:
			v.screen.Sync()
		}
	}
	return nil
}

// RenderHelp draws the key bindings under the status line.
func (v *Viewer) RenderHelp() {
	v.renderer.RenderMessage("<-/-> step  home/end jump  q quit", v.replay.pyramid.Rows+2)
	v.screen.Show()
}

// HandleKey processes keyboard input.
func (v *Viewer) HandleKey(ev *tcell.EventKey) {
	last := v.replay.Len() - 1

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false
	case tcell.KeyRight:
		v.frame = min(v.frame+1, last)
	case tcell.KeyLeft:
		v.frame = max(v.frame-1, 0)
	case tcell.KeyHome:
		v.frame = 0
	case tcell.KeyEnd:
		v.frame = last
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			v.running = false
		case ' ':
			v.frame = min(v.frame+1, last)
		}
	}
}
