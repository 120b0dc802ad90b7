package calculator

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"HedgeLens/internal/model"
)

var (
	ErrLengthMismatch   = errors.New("series lengths differ")
	ErrInsufficientData = errors.New("not enough data points")
	ErrZeroVariance     = errors.New("series has zero variance")
)

// Correlation returns the Pearson correlation coefficient of x and y.
func Correlation(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("correlation: %w (%d vs %d)", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) < 2 {
		return 0, fmt.Errorf("correlation: %w (have %d, need 2)", ErrInsufficientData, len(x))
	}
	if stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return 0, fmt.Errorf("correlation: %w", ErrZeroVariance)
	}
	return stat.Correlation(x, y, nil), nil
}

// LinearRegression fits y = slope*x + intercept by ordinary least squares.
// PValue is the two-sided p-value of the slope under a Student's t with n-2
// degrees of freedom. StdErr is the standard error of the slope.
func LinearRegression(x, y []float64) (model.RegressionResult, error) {
	n := len(x)
	if n != len(y) {
		return model.RegressionResult{}, fmt.Errorf("regression: %w (%d vs %d)", ErrLengthMismatch, n, len(y))
	}
	if n < 3 {
		return model.RegressionResult{}, fmt.Errorf("regression: %w (have %d, need 3)", ErrInsufficientData, n)
	}

	meanX := stat.Mean(x, nil)
	var sxx float64
	for _, v := range x {
		sxx += (v - meanX) * (v - meanX)
	}
	if sxx == 0 {
		return model.RegressionResult{}, fmt.Errorf("regression: %w in predictor", ErrZeroVariance)
	}

	intercept, slope := stat.LinearRegression(x, y, nil, false)

	var sse float64
	for i := range x {
		resid := y[i] - (intercept + slope*x[i])
		sse += resid * resid
	}
	df := float64(n - 2)
	stdErr := math.Sqrt(sse/df) / math.Sqrt(sxx)

	res := model.RegressionResult{
		Slope:     slope,
		Intercept: intercept,
		StdErr:    stdErr,
		N:         n,
	}
	if stat.Variance(y, nil) != 0 {
		res.RValue = stat.Correlation(x, y, nil)
	}

	// Residuals below rounding noise mean an exact fit.
	if stdErr == 0 || stdErr <= 1e-12*math.Abs(slope) {
		res.StdErr = 0
		if slope == 0 {
			res.PValue = 1
		}
		return res, nil
	}
	t := slope / stdErr
	res.PValue = 2 * distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}.CDF(-math.Abs(t))
	return res, nil
}
