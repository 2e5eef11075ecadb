package pathfinder

import (
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/pyramid/internal/telemetry"
	"github.com/samdwyer/pyramid/internal/world"
)

// Option configures a PathFinder.
type Option func(*options)

type options struct {
	onPush func(*world.Chamber)
	onPop  func(*world.Chamber)
	tracer trace.Tracer
}

func defaultOptions() options {
	return options{tracer: telemetry.Tracer("pathfinder")}
}

// WithOnPush installs fn to be called after a chamber is marked and pushed,
// including the entrance.
func WithOnPush(fn func(*world.Chamber)) Option {
	return func(o *options) {
		o.onPush = fn
	}
}

// WithOnPop installs fn to be called after a chamber is marked popped and
// removed from the stack.
func WithOnPop(fn func(*world.Chamber)) Option {
	return func(o *options) {
		o.onPop = fn
	}
}

// WithTracer overrides the tracer used for search spans. A nil tracer is
// ignored.
func WithTracer(tr trace.Tracer) Option {
	return func(o *options) {
		if tr != nil {
			o.tracer = tr
		}
	}
}
