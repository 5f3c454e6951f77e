// Package regression provides the small forecasting primitives behind the
// revenue prediction and inventory demand endpoints: an ordinary
// least-squares line fit and a deterministic bagged regression forest.
package regression

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// LinearModel is an ordinary least-squares fit of y against x.
type LinearModel struct {
	Intercept float64
	Slope     float64
	RSquared  float64
	StdError  float64
	N         int
}

// FitLinear fits a least-squares line through the given points. It expects
// len(xs) == len(ys) and at least two points; with fewer the caller should
// not be forecasting at all.
func FitLinear(xs, ys []float64) LinearModel {
	n := len(xs)
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	rsq := stat.RSquared(xs, ys, nil, intercept, slope)
	if math.IsNaN(rsq) {
		rsq = 0
	}

	// Residual standard error, undefined below three points.
	stdErr := 0.0
	if n > 2 {
		var sse float64
		for i := range xs {
			resid := ys[i] - (intercept + slope*xs[i])
			sse += resid * resid
		}
		stdErr = math.Sqrt(sse / float64(n-2))
	}

	return LinearModel{
		Intercept: intercept,
		Slope:     slope,
		RSquared:  rsq,
		StdError:  stdErr,
		N:         n,
	}
}

// Predict evaluates the fitted line at x.
func (m LinearModel) Predict(x float64) float64 {
	return m.Intercept + m.Slope*x
}
