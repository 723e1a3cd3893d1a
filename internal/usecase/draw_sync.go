package usecase

import (
	"context"
	"errors"
	"fmt"

	domrepo "lottopick/internal/domain/repository"
	xlogger "lottopick/pkg/logger"
)

// DrawSyncer appends official draw results newer than the stored latest
// round. It runs at startup before the HTTP server accepts traffic, so the
// engine's history snapshot stays immutable while serving.
type DrawSyncer struct {
	store     domrepo.DrawStore
	fetcher   domrepo.DrawFetcher
	logger    *xlogger.Logger
	maxRounds int
}

func NewDrawSyncer(store domrepo.DrawStore, fetcher domrepo.DrawFetcher, logger *xlogger.Logger, maxRounds int) *DrawSyncer {
	if maxRounds <= 0 {
		maxRounds = 52
	}
	return &DrawSyncer{store: store, fetcher: fetcher, logger: logger, maxRounds: maxRounds}
}

// Sync fetches rounds latest+1, latest+2, ... until the fetcher reports an
// undrawn round or maxRounds is reached. Returns the number of draws added.
func (s *DrawSyncer) Sync(ctx context.Context) (int, error) {
	added := 0
	round := s.store.LatestRound() + 1
	for added < s.maxRounds {
		d, err := s.fetcher.Fetch(ctx, round)
		if errors.Is(err, domrepo.ErrRoundNotDrawn) {
			break
		}
		if err != nil {
			return added, fmt.Errorf("fetch round %d: %w", round, err)
		}
		if err := s.store.Append(ctx, *d); err != nil {
			return added, fmt.Errorf("append round %d: %w", round, err)
		}
		if s.logger != nil {
			s.logger.Info("draw synced", xlogger.Int("round", d.Round), xlogger.String("date", d.Date))
		}
		added++
		round++
	}
	return added, nil
}
