package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/vovakirdan/fruit-catcher/internal/scoreboard"
)

// Board is a durable scoreboard.Repository backed by the board table.
type Board struct {
	store *Store
}

// Board returns the scoreboard repository for this database.
func (s *Store) Board() *Board {
	return &Board{store: s}
}

// Add appends a submission.
func (b *Board) Add(ctx context.Context, score int) (scoreboard.Record, error) {
	if score < 0 {
		return scoreboard.Record{}, scoreboard.ErrInvalidScore
	}

	now := time.Now().UTC()
	result, err := b.store.db.ExecContext(ctx,
		"INSERT INTO board (score, created_at) VALUES (?, ?)",
		score, now.Format(timeLayout),
	)
	if err != nil {
		return scoreboard.Record{}, fmt.Errorf("storage: cannot save submission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return scoreboard.Record{}, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return scoreboard.Record{ID: id, Score: score, Date: now}, nil
}

// Top returns the n best submissions, earlier ones first on ties.
func (b *Board) Top(ctx context.Context, n int) ([]scoreboard.Record, error) {
	if n <= 0 {
		n = scoreboard.TopN
	}

	rows, err := b.store.db.QueryContext(ctx,
		`SELECT id, score, created_at
		 FROM board
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		n,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query board: %w", err)
	}
	defer rows.Close()

	records := make([]scoreboard.Record, 0, n)
	for rows.Next() {
		var r scoreboard.Record
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Score, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Date = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

var _ scoreboard.Repository = (*Board)(nil)
