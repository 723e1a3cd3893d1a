package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	domrepo "lottopick/internal/domain/repository"
	"lottopick/internal/usecase"
	"lottopick/pkg/config"
	xhttp "lottopick/pkg/http"
	applogger "lottopick/pkg/logger"
)

// App encapsulates the entire application lifecycle.
type App struct {
	cfg       *config.Config
	logger    *applogger.Logger
	store     domrepo.DrawStore
	publisher domrepo.Publisher
	syncer    *usecase.DrawSyncer
	handler   xhttp.Handler

	httpServer *xhttp.Server
}

// New creates a new App instance with all dependencies.
func New(
	cfg *config.Config,
	logger *applogger.Logger,
	store domrepo.DrawStore,
	publisher domrepo.Publisher,
	syncer *usecase.DrawSyncer,
	handler xhttp.Handler,
) *App {
	return &App{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		publisher: publisher,
		syncer:    syncer,
		handler:   handler,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the draw history snapshot before serving anything.
	if err := a.store.Init(ctx); err != nil {
		a.logger.Error("store init failed", applogger.Error(err))
		return err
	}
	a.logger.Info("draw history loaded", applogger.Int("latest_round", a.store.LatestRound()))

	// Optional catch-up against the official feed. A sync failure is not
	// fatal: the engine still serves off the loaded snapshot.
	if a.cfg.Sync.Enabled && a.syncer != nil {
		added, err := a.syncer.Sync(ctx)
		if err != nil {
			a.logger.Warn("draw sync incomplete", applogger.Error(err), applogger.Int("added", added))
		} else if added > 0 {
			a.logger.Info("draw sync complete", applogger.Int("added", added), applogger.Int("latest_round", a.store.LatestRound()))
		}
	}

	a.httpServer = xhttp.NewServer(a.handler,
		xhttp.WithPort(a.cfg.Server.Port),
		xhttp.WithTimeouts(a.cfg.Server.ReadTimeout.Std(), a.cfg.Server.WriteTimeout.Std(), a.cfg.Server.ShutdownTimeout.Std()),
		xhttp.WithMetrics(a.cfg.Metrics.Enabled, a.cfg.Metrics.Path),
	)

	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}
	a.logger.Info("server started", applogger.Int("port", a.cfg.Server.Port), applogger.String("env", a.cfg.Environment))

	// Wait for interrupt
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	a.logger.Info("shutdown signal received")
	return a.shutdown(ctx)
}

// shutdown gracefully stops all services.
func (a *App) shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout.Std())
	defer cancel()
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
	}

	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			a.logger.Warn("publisher close error", applogger.Error(err))
		}
	}

	if err := a.store.Close(); err != nil {
		a.logger.Warn("store close error", applogger.Error(err))
	}

	a.logger.Info("shutdown complete")
	return nil
}
