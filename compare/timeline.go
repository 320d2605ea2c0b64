package compare

import "github.com/algolens/algolens/core"

// Timeline filters a trace down to the ordered, deduplicated list of step
// indices meaningful for head-to-head comparison. Index 0 and the final
// index are always included; an intermediate index is included iff it
// classifies as compare/swap, or it carries any pivot/key/found/sorted/
// eliminated milestone marker. Milestones count because they represent
// algorithm progress even when the step itself performed no raw operation.
func Timeline(t core.Trace) []int {
	if len(t) == 0 {
		return nil
	}

	out := []int{0}
	for i := 1; i < len(t)-1; i++ {
		if eventworthy(t[i]) {
			out = append(out, i)
		}
	}
	if len(t) > 1 {
		out = append(out, len(t)-1)
	}
	return out
}

// eventworthy reports whether a step earns a timeline slot on its own.
func eventworthy(s core.Step) bool {
	if Classify(s) != EventOther {
		return true
	}
	h := s.HighlightsAfter
	return len(h.Pivot) > 0 ||
		len(h.Key) > 0 ||
		len(h.Found) > 0 ||
		len(h.Sorted) > 0 ||
		len(h.Eliminated) > 0
}
