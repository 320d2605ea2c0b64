// Package compare event classification.
package compare

import "github.com/algolens/algolens/core"

// EventKind is the comparison-mode classification of one step.
type EventKind int

const (
	// EventOther — narration or milestone, not a countable operation.
	EventOther EventKind = iota
	// EventCompare — a comparison occurred.
	EventCompare
	// EventSwap — data actually moved (swap or shift).
	EventSwap
)

// String returns the lowercase kind name.
func (k EventKind) String() string {
	switch k {
	case EventSwap:
		return "swap"
	case EventCompare:
		return "compare"
	default:
		return "other"
	}
}

// Classify derives the event kind of a step from its move-arrow evidence
// first: any swap- or shift-kind arrow makes it a swap event. Only then is
// a compare-kind arrow, or a non-empty compare highlight set, read as a
// comparison. Highlight sets alone are never trusted as swap evidence — an
// instrumenter may paint swap highlights on a display-only step that moved
// no data, and that must not be double-counted.
func Classify(s core.Step) EventKind {
	var sawCompareArrow bool
	for _, a := range s.MoveArrows {
		switch a.Kind {
		case core.MoveSwap, core.MoveShift:
			return EventSwap
		case core.MoveCompare:
			sawCompareArrow = true
		}
	}
	if sawCompareArrow || len(s.HighlightsAfter.Compare) > 0 {
		return EventCompare
	}
	return EventOther
}
