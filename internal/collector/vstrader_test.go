package collector

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVsTrader_FetchDailyBars(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/bars/daily", r.URL.Path)
		assert.Equal(t, "KO", r.URL.Query().Get("symbol"))
		assert.Equal(t, "2024-01-01", r.URL.Query().Get("start"))
		assert.Equal(t, "2024-01-31", r.URL.Query().Get("end"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[{"timestamp":1704326400,"close":61.2},{"timestamp":1704240000,"close":60.1}]`))
	}))
	defer srv.Close()

	f := NewVsTraderFetcher(srv.URL, "secret", "", time.Second)
	bars, err := f.FetchDailyBars(context.Background(), "KO",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, bars, 2)
	assert.Equal(t, "2024-01-03", bars[0].Date())
	assert.Equal(t, 61.2, bars[1].Close)
}

func TestVsTrader_NoData(t *testing.T) {
	for _, tc := range []struct {
		name   string
		status int
		body   string
	}{
		{"empty array", http.StatusOK, `[]`},
		{"not found", http.StatusNotFound, `{"error":"unknown symbol"}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			f := NewVsTraderFetcher(srv.URL, "", "", time.Second)
			_, err := f.FetchDailyBars(context.Background(), "ZZZ", time.Now(), time.Now())
			assert.ErrorIs(t, err, ErrNoData)
		})
	}
}
