// Package core types: the immutable building blocks of a trace.
package core

import (
	"errors"
	"sort"
)

// Sentinel errors shared across the engine.
var (
	// ErrUnknownAlgorithm is returned when an identifier is outside the
	// closed algorithm enumeration.
	ErrUnknownAlgorithm = errors.New("core: unknown algorithm")

	// ErrEmptyInput is returned when an instrumenter receives an empty
	// array. Callers treat it as a recoverable no-op, not a failure.
	ErrEmptyInput = errors.New("core: input array must be non-empty")
)

// Highlights carries the eight categorical index sets of one array snapshot.
// Each set holds 0-based indices, ascending and duplicate-free, meaning
// "this index currently has property X for rendering purposes". Sets are
// disjoint by convention only; use Resolve to collapse overlaps.
type Highlights struct {
	Compare    []int `json:"compare,omitempty"`
	Swap       []int `json:"swap,omitempty"`
	Key        []int `json:"key,omitempty"`
	Sorted     []int `json:"sorted,omitempty"`
	Found      []int `json:"found,omitempty"`
	Shift      []int `json:"shift,omitempty"`
	Pivot      []int `json:"pivot,omitempty"`
	Eliminated []int `json:"eliminated,omitempty"`
}

// Clone returns a deep copy of h.
func (h Highlights) Clone() Highlights {
	return Highlights{
		Compare:    cloneInts(h.Compare),
		Swap:       cloneInts(h.Swap),
		Key:        cloneInts(h.Key),
		Sorted:     cloneInts(h.Sorted),
		Found:      cloneInts(h.Found),
		Shift:      cloneInts(h.Shift),
		Pivot:      cloneInts(h.Pivot),
		Eliminated: cloneInts(h.Eliminated),
	}
}

// MoveKind categorizes a MoveArrow.
type MoveKind string

const (
	// MoveSwap marks a two-way exchange of values.
	MoveSwap MoveKind = "swap"
	// MoveShift marks a one-way value displacement (insertion, merge write).
	MoveShift MoveKind = "shift"
	// MoveCompare marks a comparison between two positions.
	MoveCompare MoveKind = "compare"
)

// MoveArrow is a directed annotation: the value moved (or was compared) from
// From to To within this step. Arrows are the authoritative event evidence —
// highlight sets may be used loosely for visual effect, arrows may not.
type MoveArrow struct {
	From int      `json:"fromIndex"`
	To   int      `json:"toIndex"`
	Kind MoveKind `json:"kind"`
}

// Metrics holds the running cost counters of a trace. Both Comparisons and
// Swaps are monotonically non-decreasing across consecutive steps. Passes
// counts outer-loop iterations and stays 0 for divide-and-conquer
// algorithms, which have no discrete passes.
type Metrics struct {
	Comparisons int `json:"comparisons"`
	Swaps       int `json:"swaps"`
	Passes      int `json:"passes"`
}

// Pointers maps a pointer name (see the Pointer… constants) to the array
// index it currently designates.
type Pointers map[string]int

// Clone returns a copy of p; nil stays nil.
func (p Pointers) Clone() Pointers {
	if p == nil {
		return nil
	}
	out := make(Pointers, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Step is the atomic replay unit: full snapshots of the working array at the
// start and end of one conceptual operation, highlight sets for both states,
// pointer positions, move arrows, a narration line, and the metrics totals
// as of this step.
type Step struct {
	Label            string      `json:"label"`
	Before           []int       `json:"before"`
	After            []int       `json:"after"`
	HighlightsBefore Highlights  `json:"highlightsBefore"`
	HighlightsAfter  Highlights  `json:"highlightsAfter"`
	Pointers         Pointers    `json:"pointers,omitempty"`
	MoveArrows       []MoveArrow `json:"moveArrows,omitempty"`
	Explanation      string      `json:"explanation,omitempty"`
	Metrics          Metrics     `json:"metrics"`
}

// Trace is the full ordered step sequence of one algorithm run. It is
// produced once, never mutated, and is a pure function of
// (algorithm, input, target).
type Trace []Step

// First returns the opening step; the zero Step for an empty trace.
func (t Trace) First() Step {
	if len(t) == 0 {
		return Step{}
	}
	return t[0]
}

// Last returns the terminal step; the zero Step for an empty trace.
func (t Trace) Last() Step {
	if len(t) == 0 {
		return Step{}
	}
	return t[len(t)-1]
}

// AddIndex inserts i into the ascending duplicate-free set and returns it.
func AddIndex(set []int, i int) []int {
	pos := sort.SearchInts(set, i)
	if pos < len(set) && set[pos] == i {
		return set
	}
	set = append(set, 0)
	copy(set[pos+1:], set[pos:])
	set[pos] = i
	return set
}

// ContainsIndex reports whether the ascending set contains i.
func ContainsIndex(set []int, i int) bool {
	pos := sort.SearchInts(set, i)
	return pos < len(set) && set[pos] == i
}

// Range returns the ascending set {from, …, to}; empty when from > to.
func Range(from, to int) []int {
	if from > to {
		return nil
	}
	out := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, i)
	}
	return out
}

// cloneInts copies a slice; nil stays nil so zero-value sets survive
// round-trips unchanged.
func cloneInts(s []int) []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s))
	copy(out, s)
	return out
}
