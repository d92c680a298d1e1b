package repository

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"QuoteFrame/internal/domain/models"
	domrepo "QuoteFrame/internal/domain/repository"
	xhttp "QuoteFrame/pkg/http"
	applogger "QuoteFrame/pkg/logger"

	"golang.org/x/time/rate"
)

const (
	DefaultYahooBaseURL   = "https://query1.finance.yahoo.com/v8/finance/chart"
	DefaultYahooUserAgent = "Mozilla/5.0 (compatible; QuoteFrame/1.0)"
	DefaultYahooInterval  = "1d"
)

// YahooOption configures YahooProvider.
type YahooOption func(*YahooProvider)

// YahooProvider fetches daily history from the Yahoo chart v8 API.
type YahooProvider struct {
	client    *xhttp.Client
	limiter   *rate.Limiter
	baseURL   string
	userAgent string
	interval  string
	l         *applogger.Logger
}

var _ domrepo.QuoteProvider = (*YahooProvider)(nil)

// NewYahooProvider creates a provider. Without WithRateLimit requests are not throttled.
func NewYahooProvider(client *xhttp.Client, opts ...YahooOption) *YahooProvider {
	p := &YahooProvider{
		client:    client,
		limiter:   rate.NewLimiter(rate.Inf, 1),
		baseURL:   DefaultYahooBaseURL,
		userAgent: DefaultYahooUserAgent,
		interval:  DefaultYahooInterval,
		l:         applogger.Nop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WithYahooBaseURL overrides the chart endpoint, mostly for tests.
func WithYahooBaseURL(u string) YahooOption {
	return func(p *YahooProvider) {
		if u != "" {
			p.baseURL = u
		}
	}
}

// WithRateLimit allows rps requests per second with the given burst.
func WithRateLimit(rps float64, burst int) YahooOption {
	return func(p *YahooProvider) {
		if rps > 0 {
			if burst < 1 {
				burst = 1
			}
			p.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

// WithUserAgent sets the User-Agent header. Yahoo rejects requests without one.
func WithUserAgent(ua string) YahooOption {
	return func(p *YahooProvider) {
		if ua != "" {
			p.userAgent = ua
		}
	}
}

// WithInterval sets the bar interval, "1d" by default.
func WithInterval(interval string) YahooOption {
	return func(p *YahooProvider) {
		if interval != "" {
			p.interval = interval
		}
	}
}

// WithYahooLogger injects a structured logger.
func WithYahooLogger(l *applogger.Logger) YahooOption {
	return func(p *YahooProvider) {
		if l != nil {
			p.l = l
		}
	}
}

func (p *YahooProvider) Name() string { return "yahoo" }

// FetchHistory returns the bars of ticker between start and end. Gaps are NaN.
func (p *YahooProvider) FetchHistory(ctx context.Context, ticker string, start, end time.Time) ([]models.Quote, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("yahoo rate limit: %w", err)
	}

	var resp yahooChartResponse
	err := p.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    p.baseURL + "/" + url.PathEscape(ticker),
		Headers: map[string]string{
			"User-Agent": p.userAgent,
			"Accept":     "application/json",
		},
		QueryParams: map[string][]string{
			"period1":              {strconv.FormatInt(start.Unix(), 10)},
			"period2":              {strconv.FormatInt(end.Unix(), 10)},
			"interval":             {p.interval},
			"events":               {"history"},
			"includeAdjustedClose": {"true"},
		},
	}, &resp)
	if err != nil {
		p.l.Warn("yahoo: chart request failed", applogger.String("ticker", ticker), applogger.Error(err))
		return nil, fmt.Errorf("yahoo chart %s: %w", ticker, err)
	}

	out, err := resp.quotes()
	if err != nil {
		return nil, fmt.Errorf("yahoo chart %s: %w", ticker, err)
	}
	return out, nil
}
