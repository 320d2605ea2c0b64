package compare

import "github.com/algolens/algolens/core"

// Weights holds the per-event costs of the work estimator. The 3:1
// swap/compare asymmetry models data movement as dominating comparison
// cost — a fixed, documented pedagogical policy with no derivation to
// re-litigate. It is configurable here so deployments can pin different
// constants, but it is never a per-run UI tunable.
type Weights struct {
	Compare int `yaml:"compare"`
	Swap    int `yaml:"swap"`
}

// DefaultWeights returns the canonical compare=1, swap=3 policy.
func DefaultWeights() Weights { return Weights{Compare: 1, Swap: 3} }

// Work scores the filtered event list of a trace: each timeline entry
// classified compare adds Weights.Compare, each swap adds Weights.Swap,
// milestones add nothing. Scoring the raw trace instead of the timeline
// would re-introduce the narration bias the filter exists to remove, so
// Work only ever looks at timeline entries.
func Work(t core.Trace, timeline []int, w Weights) int {
	total := 0
	for _, idx := range timeline {
		if idx < 0 || idx >= len(t) {
			continue
		}
		switch Classify(t[idx]) {
		case EventCompare:
			total += w.Compare
		case EventSwap:
			total += w.Swap
		}
	}
	return total
}

// Winner names the outcome of a two-lane comparison.
type Winner int

const (
	// WinnerNone — verdict unavailable (missing duration).
	WinnerNone Winner = iota
	// WinnerA — lane A wins.
	WinnerA
	// WinnerB — lane B wins.
	WinnerB
	// WinnerTie — equal within policy.
	WinnerTie
)

// String returns the display name of the outcome.
func (w Winner) String() string {
	switch w {
	case WinnerA:
		return "A"
	case WinnerB:
		return "B"
	case WinnerTie:
		return "Tie"
	default:
		return "—"
	}
}

// WorkWinner compares two work scores; the lower score wins, equal scores
// report Tie.
func WorkWinner(workA, workB int) Winner {
	switch {
	case workA == workB:
		return WinnerTie
	case workA < workB:
		return WinnerA
	default:
		return WinnerB
	}
}
