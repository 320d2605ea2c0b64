// Package sorting instruments six classic sorting algorithms, replaying each
// run as a core.Trace of inspectable before/after snapshots.
//
// 🚀 What does an instrumenter do?
//
//	Each function is a faithful, side-effect-free replay of the named
//	algorithm over a private working copy of the input. Every comparison,
//	swap and shift is both counted in the running metrics and emitted as a
//	Step with highlight sets, pointer positions and move arrows — so a
//	consumer can single-step the run or score it, without re-running
//	anything.
//
// ✨ Fixed semantic choices (pinned by tests, not tunable):
//
//   - Bubble        – in-place, early exit on a swap-free pass, and an
//     explicit "Pass Complete" boundary step after every outer pass
//   - Selection     – in-place minimum selection, one pass per slot
//   - Insertion     – key extraction, rightward shifting, keyed insert
//   - Merge         – top-down recursive split; divide steps appear before
//     the merges of their children (depth-first order)
//   - Quick         – Lomuto partition, pivot = last element of the active
//     range; placement is two-phase (decided, then executed); indices
//     outside [low,high] are marked eliminated; fixed pivot positions
//     accumulate in a persistent sorted-style marker set
//   - Heap          – in-place binary max-heap, sift-down heapify
//
// Every trace opens with the "Initial Array" step and closes with the
// "Sorted!" step carrying the final metrics totals.
//
// ⚙️ Usage:
//
//	trace, err := sorting.Bubble([]int{23, 1, 10, 5, 2, 7, 15})
//	if err != nil {
//	  // core.ErrEmptyInput for empty arrays — a recoverable no-op
//	}
//	fmt.Println(trace.Last().After) // [1 2 5 7 10 15 23]
//
// Instrument dispatches by core.Algorithm identifier when the caller holds
// one instead of a concrete function.
//
// Complexity is that of the underlying algorithm; the emitted trace adds
// O(n) memory per step (full snapshots).
package sorting
