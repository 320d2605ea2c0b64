package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algolens/algolens/dataset"
)

func TestParseList_CommaSeparated(t *testing.T) {
	out, err := dataset.ParseList("23, 1,10,5 , 2")
	require.NoError(t, err)
	assert.Equal(t, []int{23, 1, 10, 5, 2}, out)
}

func TestParseList_DropsNonNumericTokens(t *testing.T) {
	out, err := dataset.ParseList("5, banana, 3, , 7.5, -2")
	require.NoError(t, err)
	// "banana", the empty token and "7.5" vanish; negatives survive.
	assert.Equal(t, []int{5, 3, -2}, out)
}

func TestParseList_NoValues(t *testing.T) {
	for _, raw := range []string{"", "  ", "a, b, c", ",,,"} {
		_, err := dataset.ParseList(raw)
		assert.ErrorIs(t, err, dataset.ErrNoValues, "input %q", raw)
	}
}

func TestParseTarget_NumericWins(t *testing.T) {
	assert.Equal(t, 42, dataset.ParseTarget(" 42 ", []int{1, 2, 3}))
}

func TestParseTarget_FallsBackToFirstElement(t *testing.T) {
	assert.Equal(t, 9, dataset.ParseTarget("not a number", []int{9, 2, 3}))
	assert.Equal(t, 9, dataset.ParseTarget("", []int{9, 2, 3}))
}

func TestParseTarget_EmptyValues(t *testing.T) {
	assert.Equal(t, 0, dataset.ParseTarget("junk", nil))
}
