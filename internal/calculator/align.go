package calculator

import (
	"math"
	"sort"

	"HedgeLens/internal/model"
)

// Align inner-joins two series on the calendar date of each bar.
// Points are returned in ascending date order. If a series repeats a date, the last bar wins.
func Align(s1, s2 *model.PriceSeries) model.AlignedFrame {
	frame := model.AlignedFrame{Symbol1: s1.Symbol, Symbol2: s2.Symbol}

	byDate := make(map[string]model.OHLCV, len(s2.Bars))
	for _, b := range s2.Bars {
		byDate[b.Date()] = b
	}

	seen := make(map[string]int, len(s1.Bars))
	for _, b := range s1.Bars {
		other, ok := byDate[b.Date()]
		if !ok {
			continue
		}
		p := model.AlignedPoint{Date: b.Time, Price1: b.Close, Price2: other.Close}
		if i, dup := seen[b.Date()]; dup {
			frame.Points[i] = p
			continue
		}
		seen[b.Date()] = len(frame.Points)
		frame.Points = append(frame.Points, p)
	}

	sort.Slice(frame.Points, func(i, j int) bool {
		return frame.Points[i].Date.Before(frame.Points[j].Date)
	})
	return frame
}

// DailyReturns computes fractional day-over-day changes, p[i]/p[i-1] - 1.
// The result has one entry fewer than prices. A zero or non-finite previous price yields NaN.
func DailyReturns(prices []float64) []float64 {
	if len(prices) < 2 {
		return []float64{}
	}
	returns := make([]float64, len(prices)-1)
	for i := 1; i < len(prices); i++ {
		prev := prices[i-1]
		if prev == 0 || !isFinite(prev) || !isFinite(prices[i]) {
			returns[i-1] = math.NaN()
			continue
		}
		returns[i-1] = prices[i]/prev - 1
	}
	return returns
}

// PairedReturns computes returns for both columns of the frame and drops
// every row in which either return is not finite.
func PairedReturns(frame model.AlignedFrame) (r1, r2 []float64) {
	p1 := make([]float64, frame.Len())
	p2 := make([]float64, frame.Len())
	for i, p := range frame.Points {
		p1[i] = p.Price1
		p2[i] = p.Price2
	}

	raw1 := DailyReturns(p1)
	raw2 := DailyReturns(p2)
	r1 = make([]float64, 0, len(raw1))
	r2 = make([]float64, 0, len(raw2))
	for i := range raw1 {
		if !isFinite(raw1[i]) || !isFinite(raw2[i]) {
			continue
		}
		r1 = append(r1, raw1[i])
		r2 = append(r2, raw2[i])
	}
	return r1, r2
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
