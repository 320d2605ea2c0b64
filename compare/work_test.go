package compare_test

import (
	"testing"

	"github.com/algolens/algolens/compare"
	"github.com/algolens/algolens/core"
	"github.com/algolens/algolens/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWork_WeightPolicy verifies the 3:1 scoring over a hand-built trace.
func TestWork_WeightPolicy(t *testing.T) {
	trace := core.Trace{
		{Label: "start"},
		{Label: "compare", MoveArrows: []core.MoveArrow{{From: 0, To: 1, Kind: core.MoveCompare}}},
		{Label: "swap", MoveArrows: []core.MoveArrow{{From: 0, To: 1, Kind: core.MoveSwap}}},
		{Label: "milestone", HighlightsAfter: core.Highlights{Sorted: []int{1}}},
		{Label: "end"},
	}
	timeline := compare.Timeline(trace)
	require.Equal(t, []int{0, 1, 2, 3, 4}, timeline)

	// 1 compare + 1 swap; boundary and milestone steps score nothing
	assert.Equal(t, 1*1+1*3, compare.Work(trace, timeline, compare.DefaultWeights()))
	assert.Equal(t, 1*2+1*7, compare.Work(trace, timeline, compare.Weights{Compare: 2, Swap: 7}))
}

// TestWork_ScoresTimelineNotRawTrace verifies narration outside the
// timeline can never leak into the score.
func TestWork_ScoresTimelineNotRawTrace(t *testing.T) {
	trace := core.Trace{
		{Label: "start"},
		{Label: "compare", MoveArrows: []core.MoveArrow{{From: 0, To: 1, Kind: core.MoveCompare}}},
		{Label: "end"},
	}
	assert.Equal(t, 0, compare.Work(trace, []int{0, 2}, compare.DefaultWeights()),
		"a timeline omitting the compare step scores zero")
	assert.Equal(t, 1, compare.Work(trace, []int{0, 1, 2}, compare.DefaultWeights()))
}

// TestWork_SelectionBeatsBubbleOnSwaps pins the pedagogical point of the
// asymmetry: on a reversed input selection sort's single-swap-per-pass
// strategy must score below bubble sort's swap storm.
func TestWork_SelectionBeatsBubbleOnSwaps(t *testing.T) {
	input := []int{9, 8, 7, 6, 5, 4, 3, 2, 1}

	bubble, err := sorting.Bubble(input)
	require.NoError(t, err)
	selection, err := sorting.Selection(input)
	require.NoError(t, err)

	w := compare.DefaultWeights()
	workBubble := compare.Work(bubble, compare.Timeline(bubble), w)
	workSelection := compare.Work(selection, compare.Timeline(selection), w)
	assert.Less(t, workSelection, workBubble)
	assert.Equal(t, compare.WinnerB, compare.WorkWinner(workBubble, workSelection))
}

// TestWorkWinner covers the tie and both directions.
func TestWorkWinner(t *testing.T) {
	assert.Equal(t, compare.WinnerTie, compare.WorkWinner(12, 12))
	assert.Equal(t, compare.WinnerA, compare.WorkWinner(3, 9))
	assert.Equal(t, compare.WinnerB, compare.WorkWinner(9, 3))
	assert.Equal(t, "Tie", compare.WinnerTie.String())
	assert.Equal(t, "—", compare.WinnerNone.String())
}
