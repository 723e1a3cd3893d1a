package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"

	"lottopick/internal/domain/models"
	domrepo "lottopick/internal/domain/repository"
)

// CSVDrawStore loads the historical draw table from a flat CSV file into
// memory at Init. Expected columns: round, draw date, num1..num6 and an
// optional bonus. The in-memory snapshot is kept newest-first.
type CSVDrawStore struct {
	path string

	mu    sync.RWMutex
	draws []models.Draw
}

// NewCSVDrawStore creates a store backed by the given CSV file.
func NewCSVDrawStore(path string) domrepo.DrawStore {
	return &CSVDrawStore{path: path}
}

func (s *CSVDrawStore) Init(ctx context.Context) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open draws csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("read draws csv: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("draws csv %s is empty", s.path)
	}

	draws := make([]models.Draw, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		d, err := parseDrawRow(row)
		if err != nil {
			return fmt.Errorf("draws csv row %d: %w", i+1, err)
		}
		draws = append(draws, d)
	}
	if len(draws) == 0 {
		return fmt.Errorf("draws csv %s holds no draws", s.path)
	}

	// newest-first: index 0 is the latest round
	sort.Slice(draws, func(i, j int) bool { return draws[i].Round > draws[j].Round })

	s.mu.Lock()
	s.draws = draws
	s.mu.Unlock()
	return nil
}

// History returns the snapshot newest-first. Callers must not mutate it.
func (s *CSVDrawStore) History() []models.Draw {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.draws
}

func (s *CSVDrawStore) LatestRound() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.draws) == 0 {
		return 0
	}
	return s.draws[0].Round
}

// Append prepends a new draw and persists it to the CSV file.
func (s *CSVDrawStore) Append(ctx context.Context, d models.Draw) error {
	if err := models.Combination(d.Numbers).Valid(); err != nil {
		return err
	}

	s.mu.Lock()
	s.draws = append([]models.Draw{d}, s.draws...)
	s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open draws csv for append: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	row := []string{
		strconv.Itoa(d.Round), d.Date,
		strconv.Itoa(d.Numbers[0]), strconv.Itoa(d.Numbers[1]), strconv.Itoa(d.Numbers[2]),
		strconv.Itoa(d.Numbers[3]), strconv.Itoa(d.Numbers[4]), strconv.Itoa(d.Numbers[5]),
		strconv.Itoa(d.Bonus),
	}
	if err := w.Write(row); err != nil {
		return fmt.Errorf("append draws csv: %w", err)
	}
	w.Flush()
	return w.Error()
}

func (s *CSVDrawStore) Health(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.draws) == 0 {
		return fmt.Errorf("draw store not initialized")
	}
	return nil
}

func (s *CSVDrawStore) Close() error { return nil }

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := strconv.Atoi(strings.TrimSpace(row[0]))
	return err != nil
}

func parseDrawRow(row []string) (models.Draw, error) {
	if len(row) < 8 {
		return models.Draw{}, fmt.Errorf("want at least 8 columns, got %d", len(row))
	}
	round, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return models.Draw{}, fmt.Errorf("bad round %q", row[0])
	}
	d := models.Draw{Round: round, Date: strings.TrimSpace(row[1])}
	for i := 0; i < 6; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(row[2+i]))
		if err != nil {
			return models.Draw{}, fmt.Errorf("bad number %q", row[2+i])
		}
		d.Numbers[i] = n
	}
	if len(row) > 8 {
		if b, err := strconv.Atoi(strings.TrimSpace(row[8])); err == nil {
			d.Bonus = b
		}
	}
	if err := models.Combination(d.Numbers).Valid(); err != nil {
		return models.Draw{}, fmt.Errorf("round %d: %w", round, err)
	}
	sort.Ints(d.Numbers[:])
	return d, nil
}
