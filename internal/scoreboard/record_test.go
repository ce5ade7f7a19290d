package scoreboard

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestMemoryRepositoryTies(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	first, _ := repo.Add(ctx, 50)
	_, _ = repo.Add(ctx, 70)
	second, _ := repo.Add(ctx, 50)

	top, err := repo.Top(ctx, TopN)
	if err != nil {
		t.Fatalf("Top: %v", err)
	}
	if len(top) != 3 || top[0].Score != 70 {
		t.Fatalf("Top = %+v", top)
	}
	if top[1].ID != first.ID || top[2].ID != second.ID {
		t.Errorf("equal scores should keep submission order: %+v", top[1:])
	}
}

func TestMemoryRepositoryLimit(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	for i := range 25 {
		_, _ = repo.Add(ctx, i)
	}

	top, _ := repo.Top(ctx, 5)
	if len(top) != 5 || top[0].Score != 24 || top[4].Score != 20 {
		t.Errorf("Top(5) = %+v", top)
	}

	// Non-positive n falls back to the default size
	if top, _ := repo.Top(ctx, 0); len(top) != TopN {
		t.Errorf("Top(0) returned %d records, want %d", len(top), TopN)
	}
	if repo.Len() != 25 {
		t.Errorf("history should be append-only, got %d records", repo.Len())
	}
}

func TestMemoryRepositoryRejectsNegative(t *testing.T) {
	repo := NewMemoryRepository()
	if _, err := repo.Add(context.Background(), -1); !errors.Is(err, ErrInvalidScore) {
		t.Errorf("Add(-1) error = %v, want ErrInvalidScore", err)
	}
}

func TestMemoryRepositoryConcurrent(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Add(ctx, i)
			_, _ = repo.Top(ctx, TopN)
		}()
	}
	wg.Wait()

	seen := make(map[int64]bool)
	top, _ := repo.Top(ctx, 100)
	for _, r := range top {
		if seen[r.ID] {
			t.Fatalf("duplicate ID %d", r.ID)
		}
		seen[r.ID] = true
	}
	if len(top) != 50 {
		t.Errorf("stored %d records, want 50", len(top))
	}
}
