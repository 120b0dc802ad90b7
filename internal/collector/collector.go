package collector

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"time"

	"HedgeLens/internal/model"
)

// MockFetcher returns fixed bars per symbol for development and testing.
// Symbols without an entry yield ErrNoData.
type MockFetcher struct {
	Bars  map[string][]model.OHLCV
	Err   error
	Calls []string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ context.Context, symbol string, _, _ time.Time) ([]model.OHLCV, error) {
	m.Calls = append(m.Calls, symbol)
	if m.Err != nil {
		return nil, m.Err
	}
	bars, ok := m.Bars[symbol]
	if !ok || len(bars) == 0 {
		return nil, fmt.Errorf("mock: %s: %w", symbol, ErrNoData)
	}
	return bars, nil
}

// GenerateMockBars builds count consecutive daily bars starting at start,
// with closes produced by price(i).
func GenerateMockBars(start time.Time, count int, price func(i int) float64) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := price(i)
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// ParseRange parses YYYY-MM-DD start and end dates into an inclusive range.
func ParseRange(start, end string) (model.DateRange, error) {
	s, err := time.Parse(model.DateLayout, start)
	if err != nil {
		return model.DateRange{}, fmt.Errorf("invalid start date %q: expected YYYY-MM-DD", start)
	}
	e, err := time.Parse(model.DateLayout, end)
	if err != nil {
		return model.DateRange{}, fmt.Errorf("invalid end date %q: expected YYYY-MM-DD", end)
	}
	if e.Before(s) {
		return model.DateRange{}, fmt.Errorf("end date %s is before start date %s", end, start)
	}
	return model.DateRange{Start: s, End: e}, nil
}

// Collector fetches and normalizes price series through a Fetcher.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches daily bars for symbol, orders them chronologically and
// trims them to the range. An empty result wraps ErrNoData.
func (c *Collector) Collect(ctx context.Context, symbol string, rng model.DateRange) (*model.PriceSeries, error) {
	bars, err := c.Fetcher.FetchDailyBars(ctx, symbol, rng.Start, rng.End)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			return nil, err
		}
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}

	kept := make([]model.OHLCV, 0, len(bars))
	for _, b := range bars {
		if rng.Contains(b.Time) {
			kept = append(kept, b)
		}
	}
	if dropped := len(bars) - len(kept); dropped > 0 {
		log.Printf("[WARN] %s: dropped %d bars outside %s..%s", symbol, dropped,
			rng.Start.Format(model.DateLayout), rng.End.Format(model.DateLayout))
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%s: no bars in range: %w", symbol, ErrNoData)
	}
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Time.Before(kept[j].Time) })

	log.Printf("[INFO] %s: %d daily bars from %s", symbol, len(kept), c.Fetcher.Name())
	return &model.PriceSeries{
		Symbol:    symbol,
		Bars:      kept,
		Source:    c.Fetcher.Name(),
		FetchedAt: time.Now(),
	}, nil
}
