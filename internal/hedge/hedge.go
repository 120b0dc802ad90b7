// Package hedge runs the two-symbol correlation and hedge-ratio analysis.
package hedge

import (
	"context"
	"errors"
	"fmt"
	"log"

	"HedgeLens/internal/calculator"
	"HedgeLens/internal/collector"
	"HedgeLens/internal/model"
	"HedgeLens/internal/strategy"
)

// MinObservations is the fewest paired daily returns Run will analyze.
// A slope p-value needs at least one residual degree of freedom.
const MinObservations = 3

// Run fetches both series sequentially, aligns them, and computes the
// correlation, regression and verdict. Errors are one of *NoDataError,
// *AcquisitionError or *ComputationError.
func Run(ctx context.Context, fetcher collector.Fetcher, req model.AnalysisRequest) (*model.Analysis, error) {
	rng, err := collector.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, &AcquisitionError{Err: err}
	}

	col := collector.NewCollector(fetcher)
	s1, err := collect(ctx, col, req.Symbol1, rng)
	if err != nil {
		return nil, err
	}
	s2, err := collect(ctx, col, req.Symbol2, rng)
	if err != nil {
		return nil, err
	}

	frame := calculator.Align(s1, s2)
	r1, r2 := calculator.PairedReturns(frame)
	log.Printf("[INFO] %d overlapping days, %d paired returns", frame.Len(), len(r1))
	if len(r1) < MinObservations {
		err := fmt.Errorf("%w: %s and %s share %d trading days, need at least %d",
			ErrInsufficientOverlap, req.Symbol1, req.Symbol2, frame.Len(), MinObservations+1)
		return nil, &ComputationError{Stage: "align", Err: err}
	}

	corr, err := calculator.Correlation(r1, r2)
	if err != nil {
		return nil, &ComputationError{Stage: "correlation", Err: err}
	}
	reg, err := calculator.LinearRegression(r1, r2)
	if err != nil {
		return nil, &ComputationError{Stage: "regression", Err: err}
	}

	return &model.Analysis{
		Request:     req,
		Range:       rng,
		Series1:     s1,
		Series2:     s2,
		Frame:       frame,
		Returns1:    r1,
		Returns2:    r2,
		Correlation: corr,
		Regression:  reg,
		Verdict:     strategy.Classify(corr, reg.PValue),
	}, nil
}

func collect(ctx context.Context, col *collector.Collector, symbol string, rng model.DateRange) (*model.PriceSeries, error) {
	s, err := col.Collect(ctx, symbol, rng)
	if errors.Is(err, collector.ErrNoData) {
		log.Printf("[WARN] %s: %v", symbol, err)
		return nil, &NoDataError{Symbol: symbol}
	}
	if err != nil {
		return nil, &AcquisitionError{Symbol: symbol, Err: err}
	}
	return s, nil
}
