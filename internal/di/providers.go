package di

import (
	"context"
	"fmt"
	"time"

	domrepo "lottopick/internal/domain/repository"
	"lottopick/internal/handler/api"
	internalrepo "lottopick/internal/repository"
	icache "lottopick/internal/service/cache"
	"lottopick/internal/service/dhlottery"
	"lottopick/internal/usecase"
	pkgch "lottopick/pkg/clickhouse"
	"lottopick/pkg/config"
	xhttp "lottopick/pkg/http"
	pkgkafka "lottopick/pkg/kafka"
	"lottopick/pkg/logger"
	"lottopick/pkg/metrics"
	"lottopick/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() domrepo.Metrics {
	return metrics.New()
}

// closingStore pairs a ClickHouse-backed store with the client that owns its
// connection pool, so Close tears both down.
type closingStore struct {
	domrepo.DrawStore
	client *pkgch.Client
}

func (s *closingStore) Close() error {
	if err := s.DrawStore.Close(); err != nil {
		return err
	}
	return s.client.Close()
}

// ProvideDrawStore creates the configured draw store backend.
func ProvideDrawStore(cfg *config.Config) (domrepo.DrawStore, error) {
	switch cfg.Store.Type {
	case "csv":
		return internalrepo.NewCSVDrawStore(cfg.Store.CSVPath), nil
	case "clickhouse":
		client, err := pkgch.NewClient(
			pkgch.WithHost(cfg.ClickHouse.Host),
			pkgch.WithPort(cfg.ClickHouse.Port),
			pkgch.WithDatabase(cfg.ClickHouse.Database),
			pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
			pkgch.WithMaxConnections(10, 5),
			pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
			pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout.Std(), cfg.ClickHouse.ReadTimeout.Std(), cfg.ClickHouse.WriteTimeout.Std()),
			pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime.Std()),
		)
		if err != nil {
			return nil, fmt.Errorf("clickhouse client: %w", err)
		}

		// Initialize schema
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		table := cfg.ClickHouse.Database + "." + cfg.Store.Table
		if err := client.InitSchema(ctx, []string{
			"CREATE DATABASE IF NOT EXISTS " + cfg.ClickHouse.Database,
			"CREATE TABLE IF NOT EXISTS " + table + " (round UInt32, draw_date String, n1 UInt8, n2 UInt8, n3 UInt8, n4 UInt8, n5 UInt8, n6 UInt8, bonus UInt8) ENGINE=MergeTree ORDER BY round",
		}); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("clickhouse schema: %w", err)
		}

		store := internalrepo.NewClickHouseDrawStore(client.DB(), table)
		return &closingStore{DrawStore: store, client: client}, nil
	default:
		return nil, fmt.Errorf("unknown store type %q", cfg.Store.Type)
	}
}

// ProvideCache creates the pool cache, or nil when caching is disabled.
func ProvideCache(cfg *config.Config) icache.BytesCache {
	if !cfg.Cache.Enabled {
		return nil
	}
	if cfg.Cache.Redis.Enabled {
		return icache.NewRedisCache(icache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	}
	return icache.NewTTLCache()
}

// ProvidePublisher creates the Kafka audit publisher, or nil when disabled.
func ProvidePublisher(cfg *config.Config) (domrepo.Publisher, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithTimeouts(cfg.Kafka.WriteTimeout.Std(), cfg.Kafka.ReadTimeout.Std()),
		pkgkafka.WithMaxAttempts(cfg.Kafka.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaPublisher(producer, cfg.Kafka.Topic), nil
}

// ProvideFetcher creates the official draw result fetcher.
func ProvideFetcher(cfg *config.Config) domrepo.DrawFetcher {
	timeout := cfg.Sync.Timeout.Std()
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return dhlottery.NewClient(xhttp.NewClient(xhttp.WithTimeout(timeout)), cfg.Sync.BaseURL)
}

// ProvideSyncer creates the startup draw synchronizer.
func ProvideSyncer(store domrepo.DrawStore, fetcher domrepo.DrawFetcher, l *logger.Logger, cfg *config.Config) *usecase.DrawSyncer {
	return usecase.NewDrawSyncer(store, fetcher, l, cfg.Sync.MaxRounds)
}

// ProvideAggregator creates the prediction aggregator use case.
func ProvideAggregator(
	store domrepo.DrawStore,
	cache icache.BytesCache,
	m domrepo.Metrics,
	pub domrepo.Publisher,
	l *logger.Logger,
	cfg *config.Config,
) *usecase.PredictionAggregator {
	return usecase.NewPredictionAggregator(store, cache, m, pub, l, usecase.EngineConfig{
		Windows:       cfg.Engine.Windows,
		DefaultWindow: cfg.Engine.DefaultWindow,
		HotCount:      cfg.Engine.HotCount,
		ColdCount:     cfg.Engine.ColdCount,
		BatchSize:     cfg.Engine.BatchSize,
		MaxAttempts:   cfg.Engine.MaxAttempts,
		CacheTTL:      cfg.Cache.TTL.Std(),
	})
}

// ProvideHandler creates the Echo API handler.
func ProvideHandler(l *logger.Logger, agg *usecase.PredictionAggregator) *api.PredictEchoHandler {
	return api.NewPredictEchoHandler(l, agg)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *logger.Logger,
	store domrepo.DrawStore,
	pub domrepo.Publisher,
	syncer *usecase.DrawSyncer,
	handler *api.PredictEchoHandler,
) *server.App {
	return server.New(cfg, l, store, pub, syncer, handler)
}
