package sorting

import (
	"fmt"

	"github.com/algolens/algolens/core"
)

// Heap — Heap Sort (in-place binary max-heap)
//
// Description:
//
//	Builds a max-heap over the whole array by sifting down every internal
//	node, then repeatedly swaps the root to the shrinking boundary and
//	re-heapifies the remainder. Each extraction fixes one position at the
//	tail, accumulating in the sorted marker set. Extractions count as
//	passes — heap sort's outer loop is its only pass structure.
//
// Trace shape: "Build Heap" opener, "Compare"/"Swap" steps inside every
// sift-down, an "Extract Max" step per root extraction. Terminal "Sorted!".
//
// Complexity: Θ(n·log n) comparisons and swaps.
func Heap(arr []int, opts ...Option) (core.Trace, error) {
	o := buildOptions(opts)
	if len(arr) == 0 {
		return nil, core.ErrEmptyInput
	}

	rec := core.NewRecorder(arr)
	emitInitial(rec, core.HeapSort)

	n := rec.Len()
	var sorted []int

	// siftDown restores the max-heap property for the subtree rooted at
	// root, bounded by size.
	var siftDown func(size, root int) error
	siftDown = func(size, root int) error {
		if err := canceled(o.Ctx); err != nil {
			return err
		}
		largest := root
		left, right := 2*root+1, 2*root+2

		for _, child := range []int{left, right} {
			if child >= size {
				continue
			}
			v := rec.Values()
			rec.CountCompare()
			rec.Emit(core.Snap{
				Label: "Compare",
				Highlights: core.Highlights{
					Compare: []int{child},
					Key:     []int{largest},
					Sorted:  sorted,
				},
				Pointers:    core.Pointers{core.PointerI: root, core.PointerJ: child, core.PointerKey: largest},
				Arrows:      []core.MoveArrow{{From: child, To: largest, Kind: core.MoveCompare}},
				Explanation: fmt.Sprintf("Comparing child %d with current largest %d.", v[child], v[largest]),
			})
			if v[child] > v[largest] {
				largest = child
			}
		}

		if largest == root {
			return nil
		}

		rec.Swap(root, largest)
		v := rec.Values()
		rec.Emit(core.Snap{
			Label:      "Swap",
			Highlights: core.Highlights{Swap: []int{root, largest}, Sorted: sorted},
			Pointers:   core.Pointers{core.PointerI: root, core.PointerJ: largest},
			Arrows: []core.MoveArrow{
				{From: largest, To: root, Kind: core.MoveSwap},
				{From: root, To: largest, Kind: core.MoveSwap},
			},
			Explanation: fmt.Sprintf("Sifting %d up to position %d.", v[root], root),
		})
		return siftDown(size, largest)
	}

	rec.Emit(core.Snap{
		Label:       "Build Heap",
		Highlights:  core.Highlights{Key: core.Range(0, n-1)},
		Explanation: fmt.Sprintf("Heapifying all %d internal nodes.", n/2),
	})
	for i := n/2 - 1; i >= 0; i-- {
		if err := siftDown(n, i); err != nil {
			return nil, err
		}
	}

	for end := n - 1; end > 0; end-- {
		if err := canceled(o.Ctx); err != nil {
			return nil, err
		}
		rec.Swap(0, end)
		rec.CountPass()
		sorted = core.AddIndex(sorted, end)
		v := rec.Values()
		rec.Emit(core.Snap{
			Label:      "Extract Max",
			Highlights: core.Highlights{Swap: []int{0, end}, Sorted: sorted},
			Pointers:   core.Pointers{core.PointerI: end},
			Arrows: []core.MoveArrow{
				{From: 0, To: end, Kind: core.MoveSwap},
				{From: end, To: 0, Kind: core.MoveSwap},
			},
			Explanation: fmt.Sprintf("Extracting max %d to position %d.", v[end], end),
		})
		if err := siftDown(end, 0); err != nil {
			return nil, err
		}
	}

	emitSorted(rec)
	return rec.Steps(), nil
}
