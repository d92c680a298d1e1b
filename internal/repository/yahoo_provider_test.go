package repository

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	xhttp "QuoteFrame/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartBody = `{
  "chart": {
    "result": [{
      "timestamp": [1704153600, 1704240000, 1704326400],
      "indicators": {
        "quote": [{
          "open":   [10.0, null, 12.0],
          "high":   [11.0, 12.5, 13.0],
          "low":    [9.5, 10.5, 11.5],
          "close":  [10.5, 11.5, null],
          "volume": [1000, null, 3000]
        }],
        "adjclose": [{"adjclose": [10.4, 11.4, null]}]
      }
    }],
    "error": null
  }
}`

func newChartServer(t *testing.T, status int, body string, seen *http.Request) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			*seen = *r.Clone(context.Background())
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestYahooFetchHistory(t *testing.T) {
	var seen http.Request
	srv := newChartServer(t, http.StatusOK, chartBody, &seen)
	p := NewYahooProvider(xhttp.NewClient(), WithYahooBaseURL(srv.URL), WithRateLimit(100, 1))

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	got, err := p.FetchHistory(context.Background(), "BRK.B", start, end)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "/BRK.B", seen.URL.Path)
	assert.Equal(t, "1704067200", seen.URL.Query().Get("period1"))
	assert.Equal(t, "1704412800", seen.URL.Query().Get("period2"))
	assert.Equal(t, "1d", seen.URL.Query().Get("interval"))
	assert.Equal(t, DefaultYahooUserAgent, seen.Header.Get("User-Agent"))

	assert.Equal(t, int64(1704153600), got[0].Timestamp)
	assert.Equal(t, 10.0, got[0].Open)
	assert.Equal(t, uint64(1000), got[0].Volume)
	assert.Equal(t, 10.4, got[0].AdjClose)

	assert.True(t, math.IsNaN(got[1].Open), "null becomes NaN")
	assert.Equal(t, uint64(0), got[1].Volume)
	assert.True(t, math.IsNaN(got[2].Close))
	assert.True(t, math.IsNaN(got[2].AdjClose))
}

func TestYahooChartError(t *testing.T) {
	body := `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`
	srv := newChartServer(t, http.StatusOK, body, nil)
	p := NewYahooProvider(xhttp.NewClient(), WithYahooBaseURL(srv.URL))

	_, err := p.FetchHistory(context.Background(), "NOPE", time.Unix(0, 0), time.Unix(86400, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "No data found")
}

func TestYahooHTTPError(t *testing.T) {
	srv := newChartServer(t, http.StatusTooManyRequests, "slow down", nil)
	p := NewYahooProvider(xhttp.NewClient(), WithYahooBaseURL(srv.URL))

	_, err := p.FetchHistory(context.Background(), "AAPL", time.Unix(0, 0), time.Unix(86400, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestYahooEmptyRange(t *testing.T) {
	body := `{"chart":{"result":[{"indicators":{"quote":[{}]}}],"error":null}}`
	srv := newChartServer(t, http.StatusOK, body, nil)
	p := NewYahooProvider(xhttp.NewClient(), WithYahooBaseURL(srv.URL))

	got, err := p.FetchHistory(context.Background(), "AAPL", time.Unix(0, 0), time.Unix(86400, 0))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestYahooRateLimitHonoursContext(t *testing.T) {
	srv := newChartServer(t, http.StatusOK, chartBody, nil)
	p := NewYahooProvider(xhttp.NewClient(), WithYahooBaseURL(srv.URL), WithRateLimit(0.001, 1))

	_, err := p.FetchHistory(context.Background(), "AAPL", time.Unix(0, 0), time.Unix(86400, 0))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = p.FetchHistory(ctx, "AAPL", time.Unix(0, 0), time.Unix(86400, 0))
	require.Error(t, err)
}
