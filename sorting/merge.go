package sorting

import (
	"fmt"

	"github.com/algolens/algolens/core"
)

// Merge — Merge Sort (top-down)
//
// Description:
//
//	Recursively splits the active range at its midpoint, sorts both halves,
//	then merges them back with an explicit merge step per internal node.
//	The step sequence follows the depth-first divide-then-merge recursion:
//	a range's "Divide" step always appears before the merges of its
//	children, and a node's "Merged" step appears after both.
//
// Trace shape: "Divide" per internal node, a "Compare" step per head-to-head
// candidate comparison, a "Merge Place" step per write-back, and a "Merged"
// closer per node. Passes stays 0 — divide-and-conquer has no discrete
// passes. Terminal "Sorted!".
//
// Complexity: Θ(n·log n) comparisons and writes.
func Merge(arr []int, opts ...Option) (core.Trace, error) {
	o := buildOptions(opts)
	if len(arr) == 0 {
		return nil, core.ErrEmptyInput
	}

	rec := core.NewRecorder(arr)
	emitInitial(rec, core.MergeSort)

	var sortRange func(low, high int) error
	sortRange = func(low, high int) error {
		if low >= high {
			return nil
		}
		if err := canceled(o.Ctx); err != nil {
			return err
		}

		mid := low + (high-low)/2
		rec.Emit(core.Snap{
			Label:      "Divide",
			Highlights: core.Highlights{Key: core.Range(low, high)},
			Pointers: core.Pointers{
				core.PointerLow:  low,
				core.PointerMid:  mid,
				core.PointerHigh: high,
			},
			Explanation: fmt.Sprintf("Splitting %d..%d at %d.", low, high, mid),
		})

		if err := sortRange(low, mid); err != nil {
			return err
		}
		if err := sortRange(mid+1, high); err != nil {
			return err
		}
		return mergeRanges(rec, low, mid, high)
	}

	if err := sortRange(0, rec.Len()-1); err != nil {
		return nil, err
	}

	emitSorted(rec)
	return rec.Steps(), nil
}

// mergeRanges merges the sorted halves [low,mid] and [mid+1,high] back into
// the working array, emitting one step per comparison and per write.
func mergeRanges(rec *core.Recorder, low, mid, high int) error {
	v := rec.Values()
	left := append([]int(nil), v[low:mid+1]...)
	right := append([]int(nil), v[mid+1:high+1]...)

	li, ri := 0, 0
	for k := low; k <= high; k++ {
		var value, src int
		switch {
		case li < len(left) && ri < len(right):
			rec.CountCompare()
			rec.Emit(core.Snap{
				Label: "Compare",
				Highlights: core.Highlights{
					Compare: []int{low + li, mid + 1 + ri},
					Key:     core.Range(low, high),
				},
				Pointers: core.Pointers{
					core.PointerLow:  low,
					core.PointerHigh: high,
					core.PointerI:    low + li,
					core.PointerJ:    mid + 1 + ri,
				},
				Arrows:      []core.MoveArrow{{From: low + li, To: mid + 1 + ri, Kind: core.MoveCompare}},
				Explanation: fmt.Sprintf("Comparing %d (left) with %d (right).", left[li], right[ri]),
			})
			if left[li] <= right[ri] {
				value, src = left[li], low+li
				li++
			} else {
				value, src = right[ri], mid+1+ri
				ri++
			}
		case li < len(left):
			value, src = left[li], low+li
			li++
		default:
			value, src = right[ri], mid+1+ri
			ri++
		}

		rec.Assign(k, value)
		rec.Emit(core.Snap{
			Label: "Merge Place",
			Highlights: core.Highlights{
				Shift: []int{k},
				Key:   core.Range(low, high),
			},
			Pointers:    core.Pointers{core.PointerLow: low, core.PointerHigh: high, core.PointerI: k},
			Arrows:      []core.MoveArrow{{From: src, To: k, Kind: core.MoveShift}},
			Explanation: fmt.Sprintf("Placing %d at position %d.", value, k),
		})
	}

	rec.Emit(core.Snap{
		Label:       "Merged",
		Highlights:  core.Highlights{Sorted: core.Range(low, high)},
		Pointers:    core.Pointers{core.PointerLow: low, core.PointerHigh: high},
		Explanation: fmt.Sprintf("Range %d..%d is merged and ordered.", low, high),
	})
	return nil
}
