//go:build wireinject
// +build wireinject

package di

import (
	"QuoteFrame/pkg/config"
	"QuoteFrame/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Ambient
		ProvideLogger,
		ProvideMetrics,
		ProvideCaches,
		ProvideCachePurgers,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,

		// Repositories
		ProvideQuoteProvider,

		// Use cases
		ProvideQuoteService,

		// Transport
		ProvideHTTPHandler,
		ProvideHTTPServer,

		ProvideApp,
	)
	return nil, nil
}
