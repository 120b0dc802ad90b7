package hedge

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"HedgeLens/internal/collector"
	"HedgeLens/internal/model"
)

var t0 = time.Date(2024, 1, 1, 14, 30, 0, 0, time.UTC)

func baseReq() model.AnalysisRequest {
	return model.AnalysisRequest{Symbol1: "AAA", Symbol2: "BBB", StartDate: "2024-01-01", EndDate: "2024-12-31"}
}

// wave gives a price path with varied daily returns.
func wave(i int) float64 { return 100 * (1 + 0.05*math.Sin(float64(i)*0.7)) }

func TestRun_HedgedPair(t *testing.T) {
	// BBB's daily return is exactly twice AAA's.
	a := collector.GenerateMockBars(t0, 40, wave)
	b := make([]model.OHLCV, len(a))
	b[0] = model.OHLCV{Time: a[0].Time, Close: 50}
	for i := 1; i < len(a); i++ {
		r := a[i].Close/a[i-1].Close - 1
		b[i] = model.OHLCV{Time: a[i].Time, Close: b[i-1].Close * (1 + 2*r)}
	}
	m := &collector.MockFetcher{Bars: map[string][]model.OHLCV{"AAA": a, "BBB": b}}

	res, err := Run(context.Background(), m, baseReq())
	require.NoError(t, err)
	assert.Equal(t, []string{"AAA", "BBB"}, m.Calls)
	assert.Equal(t, 40, res.Frame.Len())
	assert.Len(t, res.Returns1, 39)
	assert.InDelta(t, 1.0, res.Correlation, 1e-9)
	assert.InDelta(t, 2.0, res.Regression.Slope, 1e-9)
	assert.InDelta(t, 0.0, res.Regression.Intercept, 1e-9)
	assert.True(t, res.Verdict.HedgeRelationship)
}

func TestRun_NoDataForFirstSymbolStopsEarly(t *testing.T) {
	m := &collector.MockFetcher{Bars: map[string][]model.OHLCV{
		"BBB": collector.GenerateMockBars(t0, 10, wave),
	}}

	res, err := Run(context.Background(), m, baseReq())
	assert.Nil(t, res)
	var nd *NoDataError
	require.ErrorAs(t, err, &nd)
	assert.Equal(t, "AAA", nd.Symbol)
	assert.Equal(t, []string{"AAA"}, m.Calls, "second symbol must not be fetched")
}

func TestRun_NoDataForSecondSymbol(t *testing.T) {
	m := &collector.MockFetcher{Bars: map[string][]model.OHLCV{
		"AAA": collector.GenerateMockBars(t0, 10, wave),
	}}

	_, err := Run(context.Background(), m, baseReq())
	var nd *NoDataError
	require.ErrorAs(t, err, &nd)
	assert.Equal(t, "BBB", nd.Symbol)
}

func TestRun_InvalidDateIsAcquisitionError(t *testing.T) {
	m := &collector.MockFetcher{}
	req := baseReq()
	req.StartDate = "last tuesday"

	_, err := Run(context.Background(), m, req)
	var ae *AcquisitionError
	require.ErrorAs(t, err, &ae)
	assert.Empty(t, ae.Symbol)
	assert.Empty(t, m.Calls)
}

func TestRun_FetchFailureIsAcquisitionError(t *testing.T) {
	boom := errors.New("dial tcp: timeout")
	m := &collector.MockFetcher{Err: boom}

	_, err := Run(context.Background(), m, baseReq())
	var ae *AcquisitionError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, "AAA", ae.Symbol)
	assert.ErrorIs(t, err, boom)
}

func TestRun_DisjointDatesIsInsufficientOverlap(t *testing.T) {
	m := &collector.MockFetcher{Bars: map[string][]model.OHLCV{
		"AAA": collector.GenerateMockBars(t0, 10, wave),
		"BBB": collector.GenerateMockBars(t0.AddDate(0, 1, 0), 10, wave),
	}}

	_, err := Run(context.Background(), m, baseReq())
	var ce *ComputationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "align", ce.Stage)
	assert.ErrorIs(t, err, ErrInsufficientOverlap)
}

func TestRun_SingleOverlappingDay(t *testing.T) {
	m := &collector.MockFetcher{Bars: map[string][]model.OHLCV{
		"AAA": collector.GenerateMockBars(t0, 5, wave),
		"BBB": collector.GenerateMockBars(t0.AddDate(0, 0, 4), 5, wave),
	}}

	_, err := Run(context.Background(), m, baseReq())
	assert.ErrorIs(t, err, ErrInsufficientOverlap)
}

func TestRun_FlatSeriesIsComputationError(t *testing.T) {
	m := &collector.MockFetcher{Bars: map[string][]model.OHLCV{
		"AAA": collector.GenerateMockBars(t0, 10, func(int) float64 { return 42 }),
		"BBB": collector.GenerateMockBars(t0, 10, wave),
	}}

	_, err := Run(context.Background(), m, baseReq())
	var ce *ComputationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "correlation", ce.Stage)
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "no data found for XYZ", (&NoDataError{Symbol: "XYZ"}).Error())
	assert.Equal(t, "acquire prices for XYZ: boom",
		(&AcquisitionError{Symbol: "XYZ", Err: errors.New("boom")}).Error())
	assert.Equal(t, "regression: boom",
		(&ComputationError{Stage: "regression", Err: errors.New("boom")}).Error())
}
