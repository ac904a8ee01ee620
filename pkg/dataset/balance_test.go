package dataset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelprep/pkg/dataset"
)

// TestBalance_TwoClasses checks {A:5, B:3} becomes {A:3, B:3} in input order.
func TestBalance_TwoClasses(t *testing.T) {
	a := dataset.Arrays[string, float64]{
		X: [][]float64{{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7}},
		Y: []string{"A", "B", "A", "A", "B", "A", "B", "A"},
	}
	got, err := dataset.Balance(a)
	require.NoError(t, err)

	assert.Equal(t, dataset.Dataset[string, float64]{
		"A": {{0}, {2}, {3}},
		"B": {{1}, {4}, {6}},
	}, got)
}

// TestBalance_LabelNumber keeps only the most frequent labels.
func TestBalance_LabelNumber(t *testing.T) {
	a := dataset.Arrays[int, float64]{
		X: [][]float64{{0}, {1}, {2}, {3}, {4}, {5}, {6}, {7}, {8}},
		Y: []int{1, 2, 3, 1, 2, 1, 1, 2, 3},
	}

	got, err := dataset.Balance(a, dataset.WithLabelNumber(2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got.Labels())
	assert.Len(t, got[1], 3)
	assert.Len(t, got[2], 3)
	assert.NotContains(t, got, 3, "dropped labels are absent, not empty")

	got, err = dataset.Balance(a, dataset.WithLabelNumber(1))
	require.NoError(t, err)
	assert.Equal(t, dataset.Dataset[int, float64]{1: {{0}, {3}, {5}, {6}}}, got)
}

// TestBalance_TieBreak checks that equal counts are ranked by label value.
func TestBalance_TieBreak(t *testing.T) {
	a := dataset.Arrays[string, float64]{
		X: [][]float64{{0}, {1}, {2}, {3}, {4}},
		Y: []string{"c", "a", "b", "a", "b"},
	}

	got, err := dataset.Balance(a, dataset.WithLabelNumber(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, got.Labels())

	got, err = dataset.Balance(a, dataset.WithLabelNumber(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got.Labels())
}

// TestBalance_AllLabelsWhenTooMany checks an oversized label number keeps all.
func TestBalance_AllLabelsWhenTooMany(t *testing.T) {
	a := dataset.Arrays[string, float64]{
		X: [][]float64{{0}, {1}, {2}},
		Y: []string{"x", "y", "x"},
	}
	got, err := dataset.Balance(a, dataset.WithLabelNumber(10))
	require.NoError(t, err)
	assert.Equal(t, dataset.Dataset[string, float64]{"x": {{0}}, "y": {{1}}}, got)
}

// TestBalance_CopiesSamples ensures buckets hold copies.
func TestBalance_CopiesSamples(t *testing.T) {
	a := dataset.Arrays[string, float64]{X: [][]float64{{1}}, Y: []string{"x"}}
	got, err := dataset.Balance(a)
	require.NoError(t, err)
	got["x"][0][0] = 5
	assert.Equal(t, 1.0, a.X[0][0])
}

// TestBalance_Errors covers invalid inputs.
func TestBalance_Errors(t *testing.T) {
	_, err := dataset.Balance(dataset.Arrays[string, float64]{})
	assert.ErrorIs(t, err, dataset.ErrEmptyInput)

	_, err = dataset.Balance(dataset.Arrays[string, float64]{X: [][]float64{{1}}})
	assert.ErrorIs(t, err, dataset.ErrLengthMismatch)

	a := dataset.Arrays[string, float64]{X: [][]float64{{1}}, Y: []string{"x"}}
	_, err = dataset.Balance(a, dataset.WithLabelNumber(-1))
	assert.ErrorIs(t, err, dataset.ErrInvalidLabelNumber)
}
