package collector

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"HedgeLens/internal/model"
)

// ErrNoData signals that the provider has no bars for the symbol and range.
var ErrNoData = errors.New("no data")

// DefaultTimeout applies when no HTTP timeout is configured.
const DefaultTimeout = 30 * time.Second

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	// FetchDailyBars returns daily bars covering start through end, both days
	// inclusive. It returns an error wrapping ErrNoData if nothing exists.
	FetchDailyBars(ctx context.Context, symbol string, start, end time.Time) ([]model.OHLCV, error)
	Name() string
}

func newHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
