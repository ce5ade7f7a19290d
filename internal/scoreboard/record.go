// Package scoreboard implements the shared high-score service: an HTTP API
// that accepts numeric scores and serves the top ten, a live feed of the
// ranking over WebSocket, and a client used by the game to submit runs.
package scoreboard

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sync"
	"time"
)

// TopN is the size of the public ranking.
const TopN = 10

// ErrInvalidScore is returned for scores the board refuses to store.
var ErrInvalidScore = errors.New("scoreboard: score must be a non-negative integer")

// Record is one accepted submission.
type Record struct {
	ID    int64     `json:"id"`
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
}

// Repository stores submissions and ranks them.
// Top returns at most n records ordered by score descending; equal scores
// keep submission order.
type Repository interface {
	Add(ctx context.Context, score int) (Record, error)
	Top(ctx context.Context, n int) ([]Record, error)
}

// Rank sorts records by score descending, earlier IDs first on ties.
func Rank(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
}

// MemoryRepository keeps every submission in memory. Safe for concurrent use.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []Record
	nextID  int64
	now     func() time.Time
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{now: time.Now}
}

// Add appends a submission.
func (m *MemoryRepository) Add(_ context.Context, score int) (Record, error) {
	if score < 0 {
		return Record{}, ErrInvalidScore
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	rec := Record{ID: m.nextID, Score: score, Date: m.now().UTC()}
	m.records = append(m.records, rec)
	return rec, nil
}

// Top returns the n best submissions.
func (m *MemoryRepository) Top(_ context.Context, n int) ([]Record, error) {
	if n <= 0 {
		n = TopN
	}

	m.mu.RLock()
	ranked := slices.Clone(m.records)
	m.mu.RUnlock()

	Rank(ranked)
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked, nil
}

// Len returns the number of stored submissions.
func (m *MemoryRepository) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

var _ Repository = (*MemoryRepository)(nil)
