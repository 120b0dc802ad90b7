package model

import "time"

// AnalysisRequest is normalized user input. Dates are still unparsed strings.
type AnalysisRequest struct {
	Symbol1   string
	Symbol2   string
	StartDate string
	EndDate   string
}

// AlignedPoint is one date present in both series.
type AlignedPoint struct {
	Date   time.Time
	Price1 float64
	Price2 float64
}

// AlignedFrame is the inner join of two price series on date.
type AlignedFrame struct {
	Symbol1 string
	Symbol2 string
	Points  []AlignedPoint
}

// Len returns the number of aligned dates.
func (f AlignedFrame) Len() int { return len(f.Points) }

// RegressionResult holds the OLS fit of returns2 on returns1.
type RegressionResult struct {
	Slope     float64
	Intercept float64
	RValue    float64
	PValue    float64
	StdErr    float64
	N         int
}

// Verdict is the threshold-based classification of a regression.
type Verdict struct {
	StrongCorrelation bool
	Significant       bool
	HedgeRelationship bool
}

// Analysis is the full result of one pipeline run.
type Analysis struct {
	Request     AnalysisRequest
	Range       DateRange
	Series1     *PriceSeries
	Series2     *PriceSeries
	Frame       AlignedFrame
	Returns1    []float64
	Returns2    []float64
	Correlation float64
	Regression  RegressionResult
	Verdict     Verdict
}
