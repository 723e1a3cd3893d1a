package repository

import (
	"context"
	"errors"

	"lottopick/internal/domain/models"
)

// ErrRoundNotDrawn is returned by a DrawFetcher for rounds that have not
// been drawn yet; it terminates synchronization cleanly.
var ErrRoundNotDrawn = errors.New("round not drawn")

// DrawStore provides the immutable draw history snapshot the engine reads.
// History is ordered newest-first: index 0 is the latest round. Draws are
// validated at ingestion; the engine trusts what it receives.
type DrawStore interface {
	Init(ctx context.Context) error // load snapshot, health checks
	History() []models.Draw         // newest-first
	LatestRound() int
	Append(ctx context.Context, d models.Draw) error
	Health(ctx context.Context) error
	Close() error
}

// DrawFetcher retrieves one official draw result by round number.
type DrawFetcher interface {
	Fetch(ctx context.Context, round int) (*models.Draw, error)
}

// Publisher emits prediction audit events.
type Publisher interface {
	PublishPrediction(ctx context.Context, e *models.PredictionEvent) error
	Close() error
}

// Metrics records engine observability signals.
type Metrics interface {
	RecordPrediction(policy string, window int)
	RecordAttempts(policy string, attempts int)
	RecordLatency(op string, seconds float64)
	RecordError(kind string)
	RecordCache(hit bool)
}
