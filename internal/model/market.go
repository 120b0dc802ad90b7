package model

import "time"

// DateLayout is the calendar-date format used for user input and alignment keys.
const DateLayout = "2006-01-02"

// OHLCV represents a single daily bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Date returns the bar's calendar date in its own location.
func (b OHLCV) Date() string { return b.Time.Format(DateLayout) }

// PriceSeries holds the daily bars fetched for one symbol.
type PriceSeries struct {
	Symbol    string
	Bars      []OHLCV
	Source    string
	FetchedAt time.Time
}

// Closes returns the closing prices in bar order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// DateRange is an inclusive range of calendar days.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls on a day within the range.
func (r DateRange) Contains(t time.Time) bool {
	d := t.Format(DateLayout)
	return d >= r.Start.Format(DateLayout) && d <= r.End.Format(DateLayout)
}
