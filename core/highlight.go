package core

// HighlightState is the single resolved visual state of one array index.
// Highlight sets may overlap (the quick-sort pivot is often also the held
// key); a renderer needs exactly one state per cell, so Resolve collapses
// membership through a fixed priority rather than leaving the choice to
// whichever branch a renderer happens to test first.
type HighlightState int

// States in ascending display priority. The resolution order is
// found > swap > compare > pivot > key > sorted > shift > eliminated > none.
const (
	StateNone HighlightState = iota
	StateEliminated
	StateShift
	StateSorted
	StateKey
	StatePivot
	StateCompare
	StateSwap
	StateFound
)

// String returns the lowercase name of the state.
func (s HighlightState) String() string {
	switch s {
	case StateFound:
		return "found"
	case StateSwap:
		return "swap"
	case StateCompare:
		return "compare"
	case StatePivot:
		return "pivot"
	case StateKey:
		return "key"
	case StateSorted:
		return "sorted"
	case StateShift:
		return "shift"
	case StateEliminated:
		return "eliminated"
	default:
		return "none"
	}
}

// Resolve returns the single display state of index i under the fixed
// priority order. Membership in a higher-priority set always wins.
func (h Highlights) Resolve(i int) HighlightState {
	switch {
	case ContainsIndex(h.Found, i):
		return StateFound
	case ContainsIndex(h.Swap, i):
		return StateSwap
	case ContainsIndex(h.Compare, i):
		return StateCompare
	case ContainsIndex(h.Pivot, i):
		return StatePivot
	case ContainsIndex(h.Key, i):
		return StateKey
	case ContainsIndex(h.Sorted, i):
		return StateSorted
	case ContainsIndex(h.Shift, i):
		return StateShift
	case ContainsIndex(h.Eliminated, i):
		return StateEliminated
	default:
		return StateNone
	}
}
