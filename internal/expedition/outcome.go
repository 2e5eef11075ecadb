package expedition

import "github.com/samdwyer/pyramid/internal/pathfinder"

// Outcome is how a search ended.
type Outcome int

const (
	// OutcomeComplete means every treasure chamber was reached.
	OutcomeComplete Outcome = iota
	// OutcomeExhausted means the stack emptied before all treasures were found.
	OutcomeExhausted
)

// OutcomeOf classifies a search result.
func OutcomeOf(res pathfinder.Result) Outcome {
	if res.Complete() {
		return OutcomeComplete
	}
	return OutcomeExhausted
}

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeComplete:
		return "complete"
	case OutcomeExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}
