package mlmodel

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsOnKnownVectors(t *testing.T) {
	yTrue := []float64{1, 2, 3, 4}
	yPred := []float64{1, 2, 3, 4}

	assert.Equal(t, 0.0, MAE(yTrue, yPred))
	assert.Equal(t, 0.0, RMSE(yTrue, yPred))
	assert.Equal(t, 1.0, R2(yTrue, yPred))
}

func TestMetricsWithConstantError(t *testing.T) {
	yTrue := []float64{10, 20, 30}
	yPred := []float64{12, 22, 32}

	assert.InDelta(t, 2.0, MAE(yTrue, yPred), 1e-12)
	assert.InDelta(t, 4.0, MSE(yTrue, yPred), 1e-12)
	assert.InDelta(t, 2.0, RMSE(yTrue, yPred), 1e-12)
}

func TestR2OfMeanPredictorIsZero(t *testing.T) {
	yTrue := []float64{1, 2, 3}
	yPred := []float64{2, 2, 2}
	assert.InDelta(t, 0.0, R2(yTrue, yPred), 1e-12)
}

func TestR2CanBeNegative(t *testing.T) {
	yTrue := []float64{1, 2, 3}
	yPred := []float64{3, 3, 100}
	assert.Less(t, R2(yTrue, yPred), 0.0)
}

func TestR2ConstantTargetIsZero(t *testing.T) {
	yTrue := []float64{5, 5, 5}
	yPred := []float64{4, 5, 6}
	assert.Equal(t, 0.0, R2(yTrue, yPred))
}

func TestRMSEIsSqrtOfMSE(t *testing.T) {
	yTrue := []float64{0, 1, 5, 9}
	yPred := []float64{1, 1, 4, 11}
	assert.InDelta(t, math.Sqrt(MSE(yTrue, yPred)), RMSE(yTrue, yPred), 1e-12)
}
