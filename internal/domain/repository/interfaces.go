package repository

import (
	"context"
	"time"

	"QuoteFrame/internal/domain/models"
)

//go:generate mockgen -destination=mocks/mock_interfaces.go -package=mocks QuoteFrame/internal/domain/repository QuoteProvider,Metrics

// QuoteProvider is the upstream source of daily quote history.
// Implementations own their timeouts and retries.
type QuoteProvider interface {
	Name() string
	FetchHistory(ctx context.Context, ticker string, start, end time.Time) ([]models.Quote, error)
}

type Metrics interface {
	RecordCacheLookup(cache string, hit bool)
	RecordUpstreamFetch(provider string, seconds float64, err error)
	RecordError(kind string)
	RecordRows(op string, rows int)
}
