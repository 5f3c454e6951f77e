package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFitLinear_PerfectTrend(t *testing.T) {
	xs := []float64{0, 1, 2}
	ys := []float64{1000, 1500, 2000}

	m := FitLinear(xs, ys)

	assert.InDelta(t, 500, m.Slope, 1e-9)
	assert.InDelta(t, 1000, m.Intercept, 1e-9)
	assert.InDelta(t, 1, m.RSquared, 1e-9)
	assert.InDelta(t, 0, m.StdError, 1e-9)
	assert.InDelta(t, 2500, m.Predict(3), 1e-9)
}

func TestFitLinear_NoisyTrend(t *testing.T) {
	xs := []float64{0, 1, 2, 3, 4, 5}
	ys := []float64{100, 210, 290, 420, 480, 610}

	m := FitLinear(xs, ys)

	assert.Greater(t, m.Slope, 0.0)
	assert.Greater(t, m.RSquared, 0.9)
	assert.Greater(t, m.StdError, 0.0)
	assert.Equal(t, 6, m.N)
}

func TestFitLinear_FlatSeries(t *testing.T) {
	xs := []float64{0, 1, 2, 3}
	ys := []float64{500, 500, 500, 500}

	m := FitLinear(xs, ys)

	assert.InDelta(t, 0, m.Slope, 1e-9)
	assert.InDelta(t, 500, m.Predict(10), 1e-9)
	// R-squared is undefined with zero variance; it is reported as zero.
	assert.InDelta(t, 0, m.RSquared, 1e-9)
}

func TestFitLinear_TwoPoints(t *testing.T) {
	m := FitLinear([]float64{0, 1}, []float64{100, 200})

	assert.InDelta(t, 100, m.Slope, 1e-9)
	assert.InDelta(t, 0, m.StdError, 1e-9, "std error undefined below three points")
}
