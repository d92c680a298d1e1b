package server

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	pkgch "QuoteFrame/pkg/clickhouse"
	"QuoteFrame/pkg/config"
	xhttp "QuoteFrame/pkg/http"
	pkgkafka "QuoteFrame/pkg/kafka"
	applogger "QuoteFrame/pkg/logger"
)

// Purger drops expired entries from a cache and reports how many went.
type Purger interface {
	Purge() int
}

// App encapsulates the entire application lifecycle.
type App struct {
	cfg        *config.Config
	l          *applogger.Logger
	httpServer *xhttp.Server
	caches     []Purger
	producer   *pkgkafka.Producer // nil without kafka.brokers
	chClient   *pkgch.Client      // nil unless provider.type is clickhouse

	wg sync.WaitGroup
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	l *applogger.Logger,
	httpServer *xhttp.Server,
	caches []Purger,
	producer *pkgkafka.Producer,
	chClient *pkgch.Client,
) *App {
	return &App{
		cfg:        cfg,
		l:          l,
		httpServer: httpServer,
		caches:     caches,
		producer:   producer,
		chClient:   chClient,
	}
}

// Run starts the application and blocks until SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	if err := a.httpServer.Start(); err != nil {
		a.l.Error("http server start error", applogger.Error(err))
		return err
	}

	janitorCtx, cancelJanitor := context.WithCancel(context.Background())
	a.wg.Add(1)
	go a.janitor(janitorCtx, a.cfg.Cache.JanitorInterval)

	a.l.Info("quoteframe started",
		applogger.String("env", a.cfg.Environment),
		applogger.String("provider", a.cfg.Provider.Type),
		applogger.Int("port", a.cfg.Server.Port),
	)

	<-ctx.Done()
	a.l.Info("shutdown signal received")

	cancelJanitor()
	a.wg.Wait()
	return a.shutdown()
}

// janitor purges expired cache entries so idle keys do not hold memory
// until the next capacity eviction.
func (a *App) janitor(ctx context.Context, every time.Duration) {
	defer a.wg.Done()
	if every <= 0 || len(a.caches) == 0 {
		return
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged := 0
			for _, c := range a.caches {
				purged += c.Purge()
			}
			if purged > 0 {
				a.l.Debug("cache janitor: purged expired entries", applogger.Int("count", purged))
			}
		}
	}
}

// shutdown stops the HTTP server first, then flushes logs and closes clients.
func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	var firstErr error
	if err := a.httpServer.Stop(ctx); err != nil {
		a.l.Error("http shutdown error", applogger.Error(err))
		firstErr = err
	}

	// The collector publishes through the producer, so it goes before it.
	a.l.RemoveCollector()

	if a.producer != nil {
		if err := a.producer.Close(); err != nil {
			a.l.Warn("kafka producer close error", applogger.Error(err))
		}
	}
	if a.chClient != nil {
		if err := a.chClient.Close(); err != nil {
			a.l.Warn("clickhouse close error", applogger.Error(err))
		}
	}

	a.l.Info("shutdown complete")
	return firstErr
}
