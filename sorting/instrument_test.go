package sorting_test

import (
	"context"
	"sort"
	"testing"

	"github.com/algolens/algolens/core"
	"github.com/algolens/algolens/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inputs exercised by every property test: empty is handled separately.
var sortInputs = map[string][]int{
	"single":        {42},
	"pair":          {2, 1},
	"duplicates":    {5, 3, 5, 1, 3, 5},
	"alreadySorted": {1, 2, 3, 4, 5, 6},
	"reverseSorted": {9, 7, 5, 3, 1},
	"mixed":         {23, 1, 10, 5, 2, 7, 15},
	"negatives":     {0, -3, 8, -3, 2},
}

// checkTrace asserts the cross-algorithm trace invariants: boundary labels,
// continuity, sortedness, permutation, and metrics monotonicity.
func checkTrace(t *testing.T, input []int, trace core.Trace) {
	t.Helper()
	require.NotEmpty(t, trace)

	assert.Equal(t, core.LabelInitialArray, trace.First().Label)
	assert.Equal(t, input, trace.First().Before, "first Before is the input")
	assert.Equal(t, core.LabelSorted, trace.Last().Label)

	final := trace.Last().After
	assert.True(t, sort.IntsAreSorted(final), "final array must be sorted: %v", final)

	want := append([]int(nil), input...)
	sort.Ints(want)
	got := append([]int(nil), final...)
	assert.Equal(t, want, got, "final array must be a permutation of the input")

	for i := 0; i+1 < len(trace); i++ {
		assert.Equal(t, trace[i].After, trace[i+1].Before, "continuity broken at step %d", i)
		assert.LessOrEqual(t, trace[i].Metrics.Comparisons, trace[i+1].Metrics.Comparisons,
			"comparisons decreased at step %d", i)
		assert.LessOrEqual(t, trace[i].Metrics.Swaps, trace[i+1].Metrics.Swaps,
			"swaps decreased at step %d", i)
	}
}

// TestInstrument_SortsEverything runs the full property suite over every
// sorting algorithm and every fixture input.
func TestInstrument_SortsEverything(t *testing.T) {
	for _, algo := range core.SortingAlgorithms {
		for name, input := range sortInputs {
			t.Run(string(algo)+"/"+name, func(t *testing.T) {
				trace, err := sorting.Instrument(algo, input)
				require.NoError(t, err)
				checkTrace(t, input, trace)
			})
		}
	}
}

// TestInstrument_Deterministic verifies two runs over identical input yield
// structurally identical traces.
func TestInstrument_Deterministic(t *testing.T) {
	input := []int{23, 1, 10, 5, 2, 7, 15}
	for _, algo := range core.SortingAlgorithms {
		a, err := sorting.Instrument(algo, input)
		require.NoError(t, err)
		b, err := sorting.Instrument(algo, input)
		require.NoError(t, err)
		assert.Equal(t, a, b, "%s must be deterministic", algo)
	}
}

// TestInstrument_EmptyInput verifies the recoverable empty-input sentinel.
func TestInstrument_EmptyInput(t *testing.T) {
	for _, algo := range core.SortingAlgorithms {
		trace, err := sorting.Instrument(algo, nil)
		assert.ErrorIs(t, err, core.ErrEmptyInput, "%s", algo)
		assert.Nil(t, trace)
	}
}

// TestInstrument_RejectsSearchIdentifiers verifies the dispatcher stays
// inside the sorting half of the enumeration.
func TestInstrument_RejectsSearchIdentifiers(t *testing.T) {
	_, err := sorting.Instrument(core.BinarySearch, []int{1, 2})
	assert.ErrorIs(t, err, core.ErrUnknownAlgorithm)
}

// TestInstrument_Cancellation verifies a canceled context aborts the replay
// and discards the partial trace.
func TestInstrument_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for _, algo := range core.SortingAlgorithms {
		trace, err := sorting.Instrument(algo, []int{5, 4, 3, 2, 1}, sorting.WithContext(ctx))
		assert.ErrorIs(t, err, context.Canceled, "%s", algo)
		assert.Nil(t, trace)
	}
}

// TestInstrument_InputNeverMutated verifies instrumenters work on a copy.
func TestInstrument_InputNeverMutated(t *testing.T) {
	input := []int{3, 2, 1}
	for _, algo := range core.SortingAlgorithms {
		_, err := sorting.Instrument(algo, input)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 2, 1}, input, "%s mutated its input", algo)
	}
}
