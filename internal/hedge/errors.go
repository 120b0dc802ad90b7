package hedge

import (
	"errors"
	"fmt"
)

// ErrInsufficientOverlap is returned when the two series share too few dates
// for a correlation and regression.
var ErrInsufficientOverlap = errors.New("insufficient overlapping trading days")

// NoDataError reports that the provider returned nothing for Symbol.
type NoDataError struct {
	Symbol string
}

func (e *NoDataError) Error() string {
	return fmt.Sprintf("no data found for %s", e.Symbol)
}

// AcquisitionError wraps a failure to obtain prices for Symbol.
// Symbol is empty when the date range itself is unusable.
type AcquisitionError struct {
	Symbol string
	Err    error
}

func (e *AcquisitionError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("acquire prices: %v", e.Err)
	}
	return fmt.Sprintf("acquire prices for %s: %v", e.Symbol, e.Err)
}

func (e *AcquisitionError) Unwrap() error { return e.Err }

// ComputationError wraps a failure in the named analysis stage.
type ComputationError struct {
	Stage string
	Err   error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *ComputationError) Unwrap() error { return e.Err }
