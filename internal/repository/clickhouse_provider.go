package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"QuoteFrame/internal/domain/models"
	domrepo "QuoteFrame/internal/domain/repository"
	pkgch "QuoteFrame/pkg/clickhouse"
	applogger "QuoteFrame/pkg/logger"
)

const DefaultQuoteTable = "quotes_daily"

// QuoteSchema returns the idempotent DDL for the quote history table.
func QuoteSchema(database, table string) []string {
	return []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", database),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.%s (
            ticker   LowCardinality(String),
            ts       DateTime('UTC'),
            open     Float64,
            high     Float64,
            low      Float64,
            close    Float64,
            volume   UInt64,
            adjclose Float64
        ) ENGINE = ReplacingMergeTree ORDER BY (ticker, ts)`, database, table),
	}
}

// ClickHouseProvider serves quote history stored in ClickHouse.
// Missing prices are stored as nan and come back as NaN.
type ClickHouseProvider struct {
	db    *sql.DB
	table string
	l     *applogger.Logger
}

var _ domrepo.QuoteProvider = (*ClickHouseProvider)(nil)

// NewClickHouseProvider reads from database.table.
func NewClickHouseProvider(ch *pkgch.Client, database, table string, l *applogger.Logger) *ClickHouseProvider {
	if l == nil {
		l = applogger.Nop()
	}
	return &ClickHouseProvider{db: ch.DB(), table: database + "." + table, l: l}
}

func (p *ClickHouseProvider) Name() string { return "clickhouse" }

func (p *ClickHouseProvider) FetchHistory(ctx context.Context, ticker string, start, end time.Time) ([]models.Quote, error) {
	began := time.Now()
	q := fmt.Sprintf(`
        SELECT ts, open, high, low, close, volume, adjclose
        FROM %s FINAL
        WHERE ticker = ? AND ts >= ? AND ts <= ?
        ORDER BY ts ASC
    `, p.table)

	rows, err := p.db.QueryContext(ctx, q, ticker, start.UTC(), end.UTC())
	if err != nil {
		p.l.Error("clickhouse history query error",
			applogger.String("table", p.table),
			applogger.String("ticker", ticker),
			applogger.Error(err),
		)
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	out := make([]models.Quote, 0, 256)
	for rows.Next() {
		var (
			ts time.Time
			qt models.Quote
		)
		if err := rows.Scan(&ts, &qt.Open, &qt.High, &qt.Low, &qt.Close, &qt.Volume, &qt.AdjClose); err != nil {
			p.l.Error("clickhouse history scan error",
				applogger.String("table", p.table),
				applogger.String("ticker", ticker),
				applogger.Error(err),
			)
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		qt.Timestamp = ts.Unix()
		out = append(out, qt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	p.l.Debug("clickhouse history ok",
		applogger.String("table", p.table),
		applogger.String("ticker", ticker),
		applogger.Int("rows", len(out)),
		applogger.Duration("duration_ms", time.Since(began)),
	)
	return out, nil
}
