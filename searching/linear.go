package searching

import (
	"fmt"

	"github.com/algolens/algolens/core"
)

// Linear — Linear Search
//
// Description:
//
//	Scans the array left to right, comparing each value against the
//	target. Checked positions accumulate in the eliminated set so a
//	consumer can watch the candidate space shrink. The only search here
//	with no sorted-input prerequisite.
//
// Complexity: O(n) comparisons.
func Linear(arr []int, target int, opts ...Option) (core.Trace, error) {
	o := buildOptions(opts)
	if len(arr) == 0 {
		return nil, core.ErrEmptyInput
	}

	rec := core.NewRecorder(arr)
	start(rec, core.LinearSearch, target, false)

	var checked []int
	for i, v := range rec.Values() {
		if err := canceled(o.Ctx); err != nil {
			return nil, err
		}

		rec.CountCompare()
		rec.Emit(core.Snap{
			Label: "Check",
			Highlights: core.Highlights{
				Compare:    []int{i},
				Eliminated: checked,
			},
			Pointers:    core.Pointers{core.PointerI: i},
			Explanation: fmt.Sprintf("Checking position %d: %d vs %d.", i, v, target),
		})
		if v == target {
			emitFound(rec, i, target)
			return rec.Steps(), nil
		}
		checked = core.AddIndex(checked, i)
	}

	emitNotFound(rec, target)
	return rec.Steps(), nil
}
