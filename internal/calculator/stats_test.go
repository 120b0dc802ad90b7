package calculator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleReturns = []float64{0.012, -0.004, 0.007, -0.015, 0.003, 0.021, -0.009}

func TestCorrelation_IdenticalIsOne(t *testing.T) {
	r, err := Correlation(sampleReturns, sampleReturns)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, r, 1e-12)
}

func TestCorrelation_NegationIsMinusOne(t *testing.T) {
	neg := make([]float64, len(sampleReturns))
	for i, v := range sampleReturns {
		neg[i] = -v
	}
	r, err := Correlation(sampleReturns, neg)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, r, 1e-12)
}

func TestCorrelation_Errors(t *testing.T) {
	_, err := Correlation([]float64{1, 2}, []float64{1})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = Correlation([]float64{1}, []float64{1})
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = Correlation([]float64{1, 1, 1}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrZeroVariance)
}

func TestLinearRegression_ExactLine(t *testing.T) {
	y := make([]float64, len(sampleReturns))
	for i, v := range sampleReturns {
		y[i] = 2 * v
	}
	res, err := LinearRegression(sampleReturns, y)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.Slope, 1e-9)
	assert.InDelta(t, 0.0, res.Intercept, 1e-12)
	assert.InDelta(t, 1.0, res.RValue, 1e-9)
	assert.InDelta(t, 0.0, res.PValue, 1e-9)
	assert.Equal(t, len(sampleReturns), res.N)
}

func TestLinearRegression_NoisyFit(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	y := []float64{2, 4, 5, 4, 5}

	res, err := LinearRegression(x, y)
	require.NoError(t, err)
	assert.InDelta(t, 0.6, res.Slope, 1e-12)
	assert.InDelta(t, 2.2, res.Intercept, 1e-12)
	assert.InDelta(t, 0.7746, res.RValue, 1e-4)
	assert.InDelta(t, 0.2828, res.StdErr, 1e-4)
	// t = 2.1213 with 3 degrees of freedom.
	assert.InDelta(t, 0.1240, res.PValue, 1e-3)
}

func TestLinearRegression_Errors(t *testing.T) {
	_, err := LinearRegression([]float64{1, 2, 3}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrLengthMismatch)

	_, err = LinearRegression([]float64{1, 2}, []float64{1, 2})
	assert.ErrorIs(t, err, ErrInsufficientData)

	_, err = LinearRegression([]float64{3, 3, 3}, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrZeroVariance)
}

func TestLinearRegression_FlatResponse(t *testing.T) {
	res, err := LinearRegression([]float64{1, 2, 3}, []float64{4, 4, 4})
	require.NoError(t, err)
	assert.Zero(t, res.Slope)
	assert.Zero(t, res.RValue)
	assert.Equal(t, 1.0, res.PValue)
}
