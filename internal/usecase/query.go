package usecase

import (
	"fmt"
	"strings"
	"time"

	"QuoteFrame/internal/domain/models"
	"QuoteFrame/internal/services/quotes"
	"QuoteFrame/pkg/cache"
	"QuoteFrame/pkg/util"
)

const allColumnsMarker = "*"

// ParsedQuery is a validated QuoteQuery.
type ParsedQuery struct {
	Tickers []string
	Start   time.Time
	End     time.Time
	// Columns holds the requested column names; nil selects every column.
	Columns []string
}

// ParseQuery validates q. Tickers come from q.Tickers, falling back to the
// path ticker, and must not repeat. Every failure wraps models.ErrQueryParse.
func ParseQuery(q models.QuoteQuery) (ParsedQuery, error) {
	raw := q.Tickers
	if strings.TrimSpace(raw) == "" {
		raw = q.Ticker
	}
	tickers := util.SplitAndTrim(raw, ",")
	if len(tickers) == 0 {
		return ParsedQuery{}, fmt.Errorf("%w: no tickers", models.ErrQueryParse)
	}
	seen := make(map[string]struct{}, len(tickers))
	for _, t := range tickers {
		if _, dup := seen[t]; dup {
			return ParsedQuery{}, fmt.Errorf("%w: ticker %q repeated", models.ErrQueryParse, t)
		}
		seen[t] = struct{}{}
	}

	start, end, err := parseRange(q.Start, q.End)
	if err != nil {
		return ParsedQuery{}, err
	}

	var columns []string
	if q.Columns != "" {
		columns = util.SplitAndTrim(q.Columns, ",")
		if len(columns) == 0 {
			return ParsedQuery{}, fmt.Errorf("%w: empty column list", models.ErrQueryParse)
		}
	}

	return ParsedQuery{Tickers: tickers, Start: start, End: end, Columns: columns}, nil
}

func parseRange(rawStart, rawEnd string) (time.Time, time.Time, error) {
	start, err := util.ParseRFC3339(rawStart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start: %w", models.ErrQueryParse, err)
	}
	end, err := util.ParseRFC3339(rawEnd)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end: %w", models.ErrQueryParse, err)
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: start %s is after end %s",
			models.ErrQueryParse, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return start, end, nil
}

// Key returns the cache key of the query under prefix. Equal instants and
// column lists that differ only in unknown or repeated names share a key.
func (p ParsedQuery) Key(prefix string) string {
	return cache.Key(prefix,
		fmt.Sprintf("%q", p.Tickers),
		p.Start.UnixNano(),
		p.End.UnixNano(),
		p.columnsKey(),
	)
}

func (p ParsedQuery) columnsKey() string {
	if p.Columns == nil {
		return allColumnsMarker
	}
	return fmt.Sprintf("%q", strings.Join(quotes.ColumnNames(quotes.ParseColumns(p.Columns)), ","))
}

// projection returns the column names to build for every ticker table.
func (p ParsedQuery) projection() []string {
	if p.Columns == nil || len(p.Tickers) < 2 {
		return p.Columns
	}
	return quotes.ColumnNames(quotes.WithDate(quotes.ParseColumns(p.Columns)))
}
