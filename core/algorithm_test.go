package core_test

import (
	"testing"

	"github.com/algolens/algolens/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseAlgorithm_Known verifies every member of the closed enumeration
// round-trips through the parser.
func TestParseAlgorithm_Known(t *testing.T) {
	all := append(append([]core.Algorithm{}, core.SortingAlgorithms...), core.SearchAlgorithms...)
	require.Len(t, all, 10, "6 sorting + 4 searching")
	for _, want := range all {
		got, err := core.ParseAlgorithm(string(want))
		assert.NoError(t, err, "parsing %q", want)
		assert.Equal(t, want, got)
	}
}

// TestParseAlgorithm_Unknown verifies identifiers outside the enumeration
// surface ErrUnknownAlgorithm.
func TestParseAlgorithm_Unknown(t *testing.T) {
	_, err := core.ParseAlgorithm("bogo")
	assert.ErrorIs(t, err, core.ErrUnknownAlgorithm)

	_, err = core.ParseAlgorithm("")
	assert.ErrorIs(t, err, core.ErrUnknownAlgorithm)
}

// TestAlgorithm_IsSearch splits the enumeration correctly.
func TestAlgorithm_IsSearch(t *testing.T) {
	for _, a := range core.SortingAlgorithms {
		assert.False(t, a.IsSearch(), "%s is a sort", a)
	}
	for _, a := range core.SearchAlgorithms {
		assert.True(t, a.IsSearch(), "%s is a search", a)
	}
}

// TestAlgorithm_Title spot-checks display names.
func TestAlgorithm_Title(t *testing.T) {
	assert.Equal(t, "Bubble Sort", core.BubbleSort.Title())
	assert.Equal(t, "Interpolation Search", core.InterpolationSearch.Title())
}
