// Package searching instruments four classic search algorithms, replaying
// each run as a core.Trace of inspectable snapshots over a private working
// copy of the input.
//
// 🚀 What does a search trace look like?
//
//	Every trace opens with the "Start Search" step and ends in exactly one
//	of two terminals: "Found!" with the resolved index in the Found
//	highlight set, or "Not Found" with every remaining candidate marked
//	eliminated. No intermediate step ever claims Found.
//
// ✨ Fixed semantic choices (pinned by tests, not tunable):
//
//   - Linear         – left-to-right scan over the array as given
//   - Binary         – halving; terminal not-found condition is low > high
//   - Jump           – √n block jumps, then a linear scan inside the block
//   - Interpolation  – value-proportional probe
//     pos = low + ⌊(target−arr[low])·(high−low)/(arr[high]−arr[low])⌋,
//     clamped into [low,high]; the degenerate slope arr[high]==arr[low]
//     falls back to checking arr[low] directly — a designed branch, not
//     an error
//
// Binary, jump and interpolation search require sorted input, and never
// assume the caller pre-sorted: each sorts its working copy first. The
// preparation is visible as the opening step's Before→After transition
// (original order → sorted order) and is not counted in the metrics; from
// then on the array never changes, so every later step's After equals the
// sorted working copy.
//
// Metrics: Comparisons counts probes against the target; Swaps and Passes
// stay 0 — a search moves no data and has no pass structure.
//
// ⚙️ Usage:
//
//	trace, err := searching.Binary([]int{23, 1, 10, 5, 2, 7, 15}, 10)
//	if err != nil {
//	  // core.ErrEmptyInput for empty arrays — a recoverable no-op
//	}
//	fmt.Println(trace.Last().Label)                  // Found!
//	fmt.Println(trace.Last().HighlightsAfter.Found)  // [4]
//
// A missing or non-numeric target is a front-end concern: callers fall back
// to the array's first element (see dataset.ParseTarget), which is a
// documented default, not a failure.
package searching
