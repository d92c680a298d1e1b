package di

import (
	"context"
	"fmt"
	"os"
	"time"

	"QuoteFrame/internal/domain/models"
	"QuoteFrame/internal/domain/repository"
	"QuoteFrame/internal/handler/api"
	internalrepo "QuoteFrame/internal/repository"
	"QuoteFrame/internal/usecase"
	"QuoteFrame/pkg/cache"
	pkgch "QuoteFrame/pkg/clickhouse"
	"QuoteFrame/pkg/config"
	"QuoteFrame/pkg/frame"
	xhttp "QuoteFrame/pkg/http"
	pkgkafka "QuoteFrame/pkg/kafka"
	applogger "QuoteFrame/pkg/logger"
	"QuoteFrame/pkg/metrics"
	"QuoteFrame/pkg/server"
)

const schemaTimeout = 10 * time.Second

// Caches groups the two caches QuoteService reads through.
type Caches struct {
	Tables *cache.Window[string, *frame.Table]
	Quotes *cache.Window[string, []models.Quote]
}

// ProvideLogger creates the application logger from the logging section.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxBackups: cfg.Logging.MaxBackups,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder on the default registry.
func ProvideMetrics() repository.Metrics {
	return metrics.New(nil)
}

// ProvideCaches creates the table and raw quote caches with the same window.
func ProvideCaches(cfg *config.Config) Caches {
	opts := []cache.WindowOption{
		cache.WithTTL(cfg.Cache.TTL),
		cache.WithCapacity(cfg.Cache.Capacity),
	}
	return Caches{
		Tables: cache.NewWindow[string, *frame.Table](opts...),
		Quotes: cache.NewWindow[string, []models.Quote](opts...),
	}
}

// ProvideCachePurgers exposes the caches to the app janitor.
func ProvideCachePurgers(c Caches) []server.Purger {
	return []server.Purger{c.Tables, c.Quotes}
}

// ProvideClickHouseClient connects to ClickHouse when it is the quote provider
// and returns nil otherwise.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	if cfg.Provider.Type != config.ProviderClickHouse {
		return nil, nil
	}
	chc := cfg.Provider.ClickHouse

	ctx, cancel := context.WithTimeout(context.Background(), schemaTimeout)
	defer cancel()

	client, err := pkgch.NewClient(ctx,
		pkgch.WithHost(chc.Host),
		pkgch.WithPort(chc.Port),
		pkgch.WithDatabase(chc.Database),
		pkgch.WithCredentials(chc.User, chc.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(chc.UseHTTP),
		pkgch.WithTimeouts(chc.DialTimeout, chc.ReadTimeout),
		pkgch.WithMaxExecutionTime(chc.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	if chc.InitSchema {
		if err := client.InitSchema(ctx, internalrepo.QuoteSchema(chc.Database, chc.Table)); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("clickhouse schema: %w", err)
		}
	}
	return client, nil
}

// ProvideQuoteProvider selects the upstream named by provider.type.
func ProvideQuoteProvider(cfg *config.Config, ch *pkgch.Client, l *applogger.Logger) (repository.QuoteProvider, error) {
	switch cfg.Provider.Type {
	case config.ProviderYahoo:
		y := cfg.Provider.Yahoo
		return internalrepo.NewYahooProvider(
			xhttp.NewClient(xhttp.WithTimeout(y.Timeout)),
			internalrepo.WithYahooBaseURL(y.BaseURL),
			internalrepo.WithRateLimit(y.RPS, y.Burst),
			internalrepo.WithUserAgent(y.UserAgent),
			internalrepo.WithInterval(y.Interval),
			internalrepo.WithYahooLogger(l),
		), nil
	case config.ProviderClickHouse:
		if ch == nil {
			return nil, fmt.Errorf("clickhouse provider without client")
		}
		chc := cfg.Provider.ClickHouse
		return internalrepo.NewClickHouseProvider(ch, chc.Database, chc.Table, l), nil
	default:
		return nil, fmt.Errorf("unknown provider type %q", cfg.Provider.Type)
	}
}

// ProvideKafkaProducer creates the log shipping producer, or nil when no
// brokers are configured.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithClientID(cfg.Kafka.ClientID),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithBatchTimeout(cfg.Kafka.BatchTimeout),
		pkgkafka.WithWriteTimeout(cfg.Kafka.WriteTimeout),
		pkgkafka.WithAsync(cfg.Kafka.Async),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideQuoteService creates the quote assembly use case.
func ProvideQuoteService(
	cfg *config.Config,
	provider repository.QuoteProvider,
	caches Caches,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.QuoteService {
	return usecase.NewQuoteService(provider, caches.Tables, caches.Quotes, m, l,
		usecase.WithMaxConcurrency(cfg.Provider.MaxConcurrency),
		usecase.WithCoalescing(cfg.Cache.Coalesce),
	)
}

// ProvideHTTPHandler groups every route handler.
func ProvideHTTPHandler(cfg *config.Config, l *applogger.Logger, svc *usecase.QuoteService) xhttp.Handler {
	return xhttp.Handlers{
		api.NewHealthEchoHandler(cfg.Environment, cfg.Provider.Type),
		api.NewQuotesEchoHandler(l, svc),
	}
}

// ProvideHTTPServer creates the echo server.
func ProvideHTTPServer(cfg *config.Config, h xhttp.Handler, l *applogger.Logger) *xhttp.Server {
	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}
	return xhttp.NewServer(h, l,
		xhttp.WithHost(cfg.Server.Host),
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout),
		xhttp.WithCORS(cfg.Server.CORS),
		xhttp.WithMetricsPath(metricsPath),
	)
}

// ProvideApp creates the application and, when enabled, starts shipping
// aggregated error logs through the Kafka producer.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	srv *xhttp.Server,
	purgers []server.Purger,
	producer *pkgkafka.Producer,
	ch *pkgch.Client,
) *server.App {
	if cfg.Logging.Collector.Enabled && producer != nil {
		l.AddCollector(&applogger.CollectionConfig{
			TimeInterval:   cfg.Logging.Collector.Interval,
			CountThreshold: cfg.Logging.Collector.CountThreshold,
			Topic:          cfg.Logging.Collector.Topic,
			Publisher:      internalrepo.NewKafkaLogPublisher(producer, instanceName(cfg)),
		})
	}
	return server.New(cfg, l, srv, purgers, producer, ch)
}

func instanceName(cfg *config.Config) string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	return cfg.Environment + "/" + host
}
