package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"sync"

	"lottopick/internal/domain/models"
	domrepo "lottopick/internal/domain/repository"
)

// ClickHouseDrawStore keeps the draw history in a ClickHouse table and loads
// it into memory at Init, so request-time reads never touch the database
// (the engine works off an immutable snapshot).
type ClickHouseDrawStore struct {
	db    *sql.DB
	table string

	mu    sync.RWMutex
	draws []models.Draw
}

// NewClickHouseDrawStore creates a ClickHouse-backed draw store.
func NewClickHouseDrawStore(db *sql.DB, table string) domrepo.DrawStore {
	return &ClickHouseDrawStore{db: db, table: table}
}

func (s *ClickHouseDrawStore) Init(ctx context.Context) error {
	q := fmt.Sprintf("SELECT round, draw_date, n1, n2, n3, n4, n5, n6, bonus FROM %s ORDER BY round DESC", s.table)
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return fmt.Errorf("load draws: %w", err)
	}
	defer rows.Close()

	var draws []models.Draw
	for rows.Next() {
		var d models.Draw
		if err := rows.Scan(&d.Round, &d.Date,
			&d.Numbers[0], &d.Numbers[1], &d.Numbers[2],
			&d.Numbers[3], &d.Numbers[4], &d.Numbers[5],
			&d.Bonus); err != nil {
			return fmt.Errorf("scan draw: %w", err)
		}
		if err := models.Combination(d.Numbers).Valid(); err != nil {
			return fmt.Errorf("round %d: %w", d.Round, err)
		}
		sort.Ints(d.Numbers[:])
		draws = append(draws, d)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load draws: %w", err)
	}
	if len(draws) == 0 {
		return fmt.Errorf("table %s holds no draws", s.table)
	}

	s.mu.Lock()
	s.draws = draws
	s.mu.Unlock()
	return nil
}

func (s *ClickHouseDrawStore) History() []models.Draw {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draws
}

func (s *ClickHouseDrawStore) LatestRound() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.draws) == 0 {
		return 0
	}
	return s.draws[0].Round
}

func (s *ClickHouseDrawStore) Append(ctx context.Context, d models.Draw) error {
	if err := models.Combination(d.Numbers).Valid(); err != nil {
		return err
	}
	q := fmt.Sprintf("INSERT INTO %s (round, draw_date, n1, n2, n3, n4, n5, n6, bonus) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)", s.table)
	if _, err := s.db.ExecContext(ctx, q,
		d.Round, d.Date,
		d.Numbers[0], d.Numbers[1], d.Numbers[2],
		d.Numbers[3], d.Numbers[4], d.Numbers[5],
		d.Bonus); err != nil {
		return fmt.Errorf("insert draw: %w", err)
	}

	s.mu.Lock()
	s.draws = append([]models.Draw{d}, s.draws...)
	s.mu.Unlock()
	return nil
}

func (s *ClickHouseDrawStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *ClickHouseDrawStore) Close() error { return nil } // pool owned by pkg client
