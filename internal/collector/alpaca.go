package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"HedgeLens/internal/model"
)

// AlpacaFetcher implements Fetcher using the Alpaca market data API.
type AlpacaFetcher struct {
	Client *marketdata.Client
	Feed   marketdata.Feed
	Now    func() time.Time
}

// NewAlpacaFetcher creates a fetcher for the IEX feed. An empty baseURL uses Alpaca's default.
func NewAlpacaFetcher(apiKey, apiSecret, baseURL string) *AlpacaFetcher {
	return &AlpacaFetcher{
		Client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: apiSecret,
			BaseURL:   baseURL,
		}),
		Feed: marketdata.IEX,
		Now:  time.Now,
	}
}

func (f *AlpacaFetcher) Name() string { return "alpaca" }

func (f *AlpacaFetcher) FetchDailyBars(ctx context.Context, symbol string, start, end time.Time) ([]model.OHLCV, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// Alpaca rejects ranges ending in the future.
	until := end.AddDate(0, 0, 1)
	if now := f.Now(); until.After(now) {
		until = now
	}
	if !start.Before(until) {
		return nil, fmt.Errorf("alpaca: range starts after %s: %w", until.Format(model.DateLayout), ErrNoData)
	}

	bars, err := f.Client.GetBars(symbol, marketdata.GetBarsRequest{
		TimeFrame:  marketdata.OneDay,
		Adjustment: marketdata.All,
		Start:      start,
		End:        until,
		Feed:       f.Feed,
	})
	if err != nil {
		return nil, fmt.Errorf("alpaca get bars: %w", err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("alpaca: symbol %s: %w", symbol, ErrNoData)
	}
	return barsFromAlpaca(bars), nil
}

func barsFromAlpaca(bars []marketdata.Bar) []model.OHLCV {
	out := make([]model.OHLCV, len(bars))
	for i, b := range bars {
		out[i] = model.OHLCV{
			Time:   b.Timestamp.UTC(),
			Open:   b.Open,
			High:   b.High,
			Low:    b.Low,
			Close:  b.Close,
			Volume: float64(b.Volume),
		}
	}
	return out
}
