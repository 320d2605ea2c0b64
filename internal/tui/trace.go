package tui

import (
	"github.com/algolens/algolens/core"
	"github.com/algolens/algolens/searching"
	"github.com/algolens/algolens/sorting"
)

// BuildTrace dispatches to the right instrumenter family. Searching
// algorithms consume the target; sorting ones ignore it.
func BuildTrace(algo core.Algorithm, values []int, target int) (core.Trace, error) {
	if algo.IsSearch() {
		return searching.Instrument(algo, values, target)
	}

	return sorting.Instrument(algo, values)
}

// cycleAlgorithm returns the entry after algo in its family list,
// wrapping around at the end. Stepping through the whole enumeration
// crosses from sorts into searches and back.
func cycleAlgorithm(algo core.Algorithm) core.Algorithm {
	all := make([]core.Algorithm, 0, len(core.SortingAlgorithms)+len(core.SearchAlgorithms))
	all = append(all, core.SortingAlgorithms...)
	all = append(all, core.SearchAlgorithms...)

	for i, a := range all {
		if a == algo {
			return all[(i+1)%len(all)]
		}
	}

	return all[0]
}
