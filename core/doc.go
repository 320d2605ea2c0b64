// Package core defines the shared data model of the algolens trace engine:
// Steps, Highlights, MoveArrows, Metrics, the Trace sequence, the closed
// Algorithm enumeration, and the Recorder every instrumenter emits through.
//
// 🚀 What is a trace?
//
//	A Trace is the full, ordered replay of one algorithm run. Each Step is a
//	self-contained snapshot: the working array before and after the step's
//	conceptual operation, categorical highlight sets for both states, named
//	pointer positions, directed move arrows, a narration line, and running
//	cost metrics. Carrying both array states is intentional redundancy — any
//	consumer can render either side without replaying history.
//
// ✨ Guarantees every producer must honor:
//
//   - Continuity    – step[i].After equals step[i+1].Before for all i
//   - Determinism   – identical inputs produce structurally identical traces
//   - Monotonicity  – Comparisons and Swaps never decrease along a trace
//   - Boundaries    – the first step is the labeled initial snapshot, the
//     last carries the final metrics totals
//
// The Recorder enforces continuity by construction: each emitted Step's
// Before state is the previous Step's After state, captured once.
//
// Highlight sets are disjoint by convention, not by enforcement. To pick one
// visual state per index, call Highlights.Resolve — it applies the fixed
// priority found > swap > compare > pivot > key > sorted > shift >
// eliminated > none, so overlapping sets always collapse deterministically.
//
// ⚙️ Usage:
//
//	rec := core.NewRecorder([]int{3, 1, 2})
//	rec.Emit(core.Snap{Label: core.LabelInitialArray, Explanation: "…"})
//	rec.Swap(0, 1)
//	rec.Emit(core.Snap{
//	  Label:      "Swap",
//	  Highlights: core.Highlights{Swap: []int{0, 1}},
//	  Arrows:     []core.MoveArrow{{From: 0, To: 1, Kind: core.MoveSwap}},
//	})
//	trace := rec.Steps()
//
// See sorting/ and searching/ for the instrumenters that produce traces,
// and compare/ for the event classification built on MoveArrows.
package core
