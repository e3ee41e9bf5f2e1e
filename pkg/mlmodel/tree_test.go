package mlmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTreeFitsStepFunction(t *testing.T) {
	// y = 10 for x < 0, y = 20 for x >= 0; one split separates it exactly.
	X := [][]float64{{-3}, {-2}, {-1}, {1}, {2}, {3}}
	y := []float64{10, 10, 10, 20, 20, 20}

	tree := NewDecisionTreeRegressor(WithRandomState(1))
	require.NoError(t, tree.Fit(X, y, nil))

	assert.InDelta(t, 10, tree.PredictOne([]float64{-5}), 1e-9)
	assert.InDelta(t, 20, tree.PredictOne([]float64{5}), 1e-9)
}

func TestTreeLeafPredictsMean(t *testing.T) {
	// With a depth limit of 0 splits impossible targets collapse to the mean.
	X := [][]float64{{1}, {1}, {1}}
	y := []float64{3, 6, 9}

	tree := NewDecisionTreeRegressor(WithRandomState(1))
	require.NoError(t, tree.Fit(X, y, nil))
	assert.InDelta(t, 6, tree.PredictOne([]float64{1}), 1e-9)
}

func TestTreeRespectsMinSamplesLeaf(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}, {4}}
	y := []float64{1, 2, 3, 4}

	tree := NewDecisionTreeRegressor(WithMinSamplesLeaf(2), WithRandomState(1))
	require.NoError(t, tree.Fit(X, y, nil))

	// The only admissible split is between 2 and 3; each leaf is a pair mean.
	assert.InDelta(t, 1.5, tree.PredictOne([]float64{1}), 1e-9)
	assert.InDelta(t, 3.5, tree.PredictOne([]float64{4}), 1e-9)
}

func TestTreeInputValidation(t *testing.T) {
	tree := NewDecisionTreeRegressor()
	assert.Error(t, tree.Fit(nil, nil, nil))
	assert.Error(t, tree.Fit([][]float64{{1}}, []float64{1, 2}, nil))
	assert.Error(t, tree.Fit([][]float64{{1}, {1, 2}}, []float64{1, 2}, nil))
}

func TestTreeFitOnIndexSubset(t *testing.T) {
	X := [][]float64{{-1}, {1}, {100}}
	y := []float64{10, 20, 999}

	// Row 2 is excluded from the sample; the tree must never predict near it.
	tree := NewDecisionTreeRegressor(WithRandomState(1))
	require.NoError(t, tree.Fit(X, y, []int{0, 1}))
	assert.Less(t, tree.PredictOne([]float64{100}), 21.0)
}
