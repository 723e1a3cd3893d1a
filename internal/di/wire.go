//go:build wireinject
// +build wireinject

package di

import (
	"lottopick/pkg/config"
	"lottopick/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure
		ProvideDrawStore,
		ProvideCache,
		ProvidePublisher,
		ProvideFetcher,

		// Use cases
		ProvideSyncer,
		ProvideAggregator,

		// HTTP handler
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
