package mlmodel

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linearData generates y = 3*x0 - 2*x1 + noise.
func linearData(n int, seed int64) (X [][]float64, y []float64) {
	rnd := rand.New(rand.NewSource(seed))
	X = make([][]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x0 := rnd.Float64() * 10
		x1 := rnd.Float64() * 10
		X[i] = []float64{x0, x1}
		y[i] = 3*x0 - 2*x1 + rnd.NormFloat64()*0.5
	}
	return
}

func TestForestTrainingR2IsNonNegative(t *testing.T) {
	X, y := linearData(300, 7)

	rf := NewRandomForestRegressor(WithNEstimators(30), WithSeed(42))
	require.NoError(t, rf.Fit(X, y))

	r2 := R2(y, rf.Predict(X))
	assert.GreaterOrEqual(t, r2, 0.0)
	// On its own training data a forest should fit well.
	assert.Greater(t, r2, 0.8)
}

func TestForestIsReproducibleWithFixedSeed(t *testing.T) {
	X, y := linearData(200, 11)

	a := NewRandomForestRegressor(WithNEstimators(10), WithSeed(42))
	b := NewRandomForestRegressor(WithNEstimators(10), WithSeed(42))
	require.NoError(t, a.Fit(X, y))
	require.NoError(t, b.Fit(X, y))

	probe := [][]float64{{1, 1}, {5, 5}, {9, 2}}
	assert.Equal(t, a.Predict(probe), b.Predict(probe))
}

func TestForestPredictionIsTreeMean(t *testing.T) {
	X, y := linearData(100, 3)

	rf := NewRandomForestRegressor(WithNEstimators(5), WithSeed(1))
	require.NoError(t, rf.Fit(X, y))

	x := []float64{4, 4}
	sum := 0.0
	for _, tree := range rf.Trees {
		sum += tree.PredictOne(x)
	}
	assert.InDelta(t, sum/5, rf.PredictOne(x), 1e-12)
}

func TestForestInputValidation(t *testing.T) {
	rf := NewRandomForestRegressor(WithNEstimators(2))
	assert.Error(t, rf.Fit(nil, nil))
	assert.Error(t, rf.Fit([][]float64{{1}}, []float64{1, 2}))
}

func TestUntrainedForestPredictsZero(t *testing.T) {
	rf := NewRandomForestRegressor()
	assert.Equal(t, 0.0, rf.PredictOne([]float64{1}))
}
