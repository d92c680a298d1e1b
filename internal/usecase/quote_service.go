package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"QuoteFrame/internal/domain/models"
	"QuoteFrame/internal/domain/repository"
	"QuoteFrame/internal/services/quotes"
	"QuoteFrame/internal/services/stats"
	"QuoteFrame/pkg/cache"
	"QuoteFrame/pkg/frame"
	applogger "QuoteFrame/pkg/logger"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	tableCacheName = "frame"
	quoteCacheName = "quotes"

	defaultMaxConcurrency = 4
)

// ServiceOption configures QuoteService.
type ServiceOption func(*QuoteService)

// WithMaxConcurrency bounds the number of tickers fetched at once.
func WithMaxConcurrency(n int) ServiceOption {
	return func(s *QuoteService) {
		if n > 0 {
			s.maxConcurrency = n
		}
	}
}

// WithCoalescing makes concurrent misses on the same key share one upstream fetch.
func WithCoalescing(enabled bool) ServiceOption {
	return func(s *QuoteService) {
		s.coalesce = enabled
	}
}

// QuoteService assembles quote tables on top of a QuoteProvider and two caches,
// one for assembled tables and one for raw single-ticker history.
type QuoteService struct {
	provider repository.QuoteProvider
	tables   cache.Store[string, *frame.Table]
	quotes   cache.Store[string, []models.Quote]
	metrics  repository.Metrics
	l        *applogger.Logger

	maxConcurrency int
	coalesce       bool
	group          singleflight.Group
}

// NewQuoteService creates a QuoteService. The caches are owned by the caller
// and may be shared with other services.
func NewQuoteService(
	provider repository.QuoteProvider,
	tables cache.Store[string, *frame.Table],
	quoteCache cache.Store[string, []models.Quote],
	metrics repository.Metrics,
	l *applogger.Logger,
	opts ...ServiceOption,
) *QuoteService {
	s := &QuoteService{
		provider:       provider,
		tables:         tables,
		quotes:         quoteCache,
		metrics:        metrics,
		l:              l,
		maxConcurrency: defaultMaxConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Table returns the combined table for q, served from cache when possible.
func (s *QuoteService) Table(ctx context.Context, q models.QuoteQuery) (*frame.Table, error) {
	p, err := ParseQuery(q)
	if err != nil {
		return nil, s.fail("table", err)
	}
	t, err := s.table(ctx, p)
	if err != nil {
		return nil, s.fail("table", err)
	}
	s.metrics.RecordRows("table", t.Height())
	return t, nil
}

// MissingMask returns the NaN mask of the table for q.
func (s *QuoteService) MissingMask(ctx context.Context, q models.QuoteQuery) (*frame.Table, error) {
	return s.derive(ctx, "missing_mask", q, stats.MaskTable)
}

// MissingCount returns the per-column NaN counts of the table for q.
func (s *QuoteService) MissingCount(ctx context.Context, q models.QuoteQuery) (*frame.Table, error) {
	return s.derive(ctx, "missing_count", q, stats.CountTable)
}

// MissingPercent returns the per-column NaN ratios of the table for q.
func (s *QuoteService) MissingPercent(ctx context.Context, q models.QuoteQuery) (*frame.Table, error) {
	return s.derive(ctx, "missing_percent", q, stats.PercentTable)
}

// Normalized returns the table for q with every price column rebased to 100.
func (s *QuoteService) Normalized(ctx context.Context, q models.QuoteQuery) (*frame.Table, error) {
	return s.derive(ctx, "normalized", q, stats.NormalizeByFirst)
}

// Quotes returns the raw history of exactly one ticker.
func (s *QuoteService) Quotes(ctx context.Context, q models.QuoteQuery) ([]models.Quote, error) {
	p, err := ParseQuery(q)
	if err != nil {
		return nil, s.fail("quotes", err)
	}
	if len(p.Tickers) != 1 {
		return nil, s.fail("quotes", fmt.Errorf("%w: raw quotes take exactly one ticker, got %d",
			models.ErrQueryParse, len(p.Tickers)))
	}

	ticker := p.Tickers[0]
	key := cache.Key(quoteCacheName, fmt.Sprintf("%q", ticker), p.Start.UnixNano(), p.End.UnixNano())
	if v, ok := s.quotes.Get(key); ok {
		s.hit(quoteCacheName, key)
		return v, nil
	}
	s.miss(quoteCacheName, key)

	v, err := s.load(ctx, key, func(ctx context.Context) (any, error) {
		out, err := s.fetch(ctx, ticker, p.Start, p.End)
		if err != nil {
			return nil, err
		}
		s.quotes.Set(key, out)
		return out, nil
	})
	if err != nil {
		return nil, s.fail("quotes", err)
	}
	out := v.([]models.Quote)
	s.metrics.RecordRows("quotes", len(out))
	return out, nil
}

// BusinessDays lists the weekdays between the query bounds, inclusive.
func (s *QuoteService) BusinessDays(q models.BusinessDaysQuery) ([]time.Time, error) {
	start, end, err := parseRange(q.Start, q.End)
	if err != nil {
		return nil, s.fail("business_days", err)
	}
	return quotes.BusinessDays(start, end), nil
}

func (s *QuoteService) derive(ctx context.Context, op string, q models.QuoteQuery, fn func(*frame.Table) *frame.Table) (*frame.Table, error) {
	p, err := ParseQuery(q)
	if err != nil {
		return nil, s.fail(op, err)
	}
	t, err := s.table(ctx, p)
	if err != nil {
		return nil, s.fail(op, err)
	}
	out := fn(t)
	s.metrics.RecordRows(op, out.Height())
	return out, nil
}

func (s *QuoteService) table(ctx context.Context, p ParsedQuery) (*frame.Table, error) {
	key := p.Key(tableCacheName)
	if t, ok := s.tables.Get(key); ok {
		s.hit(tableCacheName, key)
		return t, nil
	}
	s.miss(tableCacheName, key)

	v, err := s.load(ctx, key, func(ctx context.Context) (any, error) {
		t, err := s.assemble(ctx, p)
		if err != nil {
			return nil, err
		}
		s.tables.Set(key, t)
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*frame.Table), nil
}

// load runs fn under ctx, or through the singleflight group when coalescing
// is on. A shared fetch runs detached from any single caller's cancellation;
// each caller still stops waiting when its own ctx is done.
func (s *QuoteService) load(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error) {
	if !s.coalesce {
		return fn(ctx)
	}

	detached := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		return fn(detached)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			s.l.Debug("quote service: shared in-flight fetch", applogger.String("key", cache.Fingerprint(key)))
		}
		return res.Val, res.Err
	}
}

func (s *QuoteService) assemble(ctx context.Context, p ParsedQuery) (*frame.Table, error) {
	history, err := s.fetchAll(ctx, p.Tickers, p.Start, p.End)
	if err != nil {
		return nil, err
	}
	if len(history) == 0 {
		return nil, fmt.Errorf("%w: no tables after fetch", models.ErrJoin)
	}

	columns := p.projection()
	tables := make([]*frame.Table, len(history))
	for i, h := range history {
		tables[i] = quotes.BuildTable(h, columns)
	}
	return quotes.Combine(tables, p.Tickers)
}

// fetchAll fetches every ticker concurrently and keeps results in ticker order.
// The first failure cancels the remaining fetches.
func (s *QuoteService) fetchAll(ctx context.Context, tickers []string, start, end time.Time) ([][]models.Quote, error) {
	out := make([][]models.Quote, len(tickers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for i, ticker := range tickers {
		g.Go(func() error {
			h, err := s.fetch(gctx, ticker, start, end)
			if err != nil {
				return err
			}
			out[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *QuoteService) fetch(ctx context.Context, ticker string, start, end time.Time) ([]models.Quote, error) {
	began := time.Now()
	h, err := s.provider.FetchHistory(ctx, ticker, start, end)
	elapsed := time.Since(began)
	s.metrics.RecordUpstreamFetch(s.provider.Name(), elapsed.Seconds(), err)
	if err != nil {
		s.l.Error("quote service: upstream fetch failed",
			applogger.String("provider", s.provider.Name()),
			applogger.String("ticker", ticker),
			applogger.Error(err),
		)
		return nil, fmt.Errorf("%w: %s: %w", models.ErrUpstreamFetch, ticker, err)
	}
	s.l.Debug("quote service: upstream fetch ok",
		applogger.String("provider", s.provider.Name()),
		applogger.String("ticker", ticker),
		applogger.Int("rows", len(h)),
		applogger.Duration("duration_ms", elapsed),
	)
	return h, nil
}

func (s *QuoteService) hit(name, key string) {
	s.metrics.RecordCacheLookup(name, true)
	s.l.Debug("quote service: cache hit", applogger.String("cache", name), applogger.String("key", cache.Fingerprint(key)))
}

func (s *QuoteService) miss(name, key string) {
	s.metrics.RecordCacheLookup(name, false)
	s.l.Debug("quote service: cache miss", applogger.String("cache", name), applogger.String("key", cache.Fingerprint(key)))
}

func (s *QuoteService) fail(op string, err error) error {
	s.metrics.RecordError(ErrorKind(err))
	if errors.Is(err, models.ErrQueryParse) {
		s.l.Warn("quote service: bad query", applogger.String("op", op), applogger.Error(err))
	}
	return err
}

// ErrorKind classifies err into a short label for metrics and responses.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, models.ErrQueryParse):
		return "query_parse"
	case errors.Is(err, models.ErrUpstreamFetch):
		return "upstream_fetch"
	case errors.Is(err, models.ErrJoin):
		return "join"
	case errors.Is(err, models.ErrNoData):
		return "no_data"
	default:
		return "internal"
	}
}
