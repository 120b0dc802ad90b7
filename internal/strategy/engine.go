package strategy

import (
	"math"

	"HedgeLens/internal/model"
)

// Fixed classification thresholds.
const (
	StrongCorrelationThreshold = 0.7
	SignificanceLevel          = 0.05
)

// Classify maps a correlation and slope p-value to a hedge verdict.
// A hedge relationship needs both a strong correlation and a significant slope.
func Classify(correlation, pValue float64) model.Verdict {
	strong := math.Abs(correlation) > StrongCorrelationThreshold
	significant := pValue < SignificanceLevel
	return model.Verdict{
		StrongCorrelation: strong,
		Significant:       significant,
		HedgeRelationship: strong && significant,
	}
}

// Evaluate classifies a completed regression.
func Evaluate(res model.RegressionResult) model.Verdict {
	return Classify(res.RValue, res.PValue)
}
