package catcher

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

func newTestStore() *Store {
	return NewStore(800, 600, Paddle{Y: 540, Width: 100, Height: 60})
}

func TestStoreSpawnBounds(t *testing.T) {
	s := newTestStore()
	p := SpawnParams{
		Size:     48,
		MinSpeed: 140,
		MaxSpeed: 260,
		Kinds:    []Kind{KindApple, KindGrape},
	}

	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		for range 200 {
			f := s.Spawn(rng, p)
			if f.X < 0 || f.X > 800-p.Size {
				t.Fatalf("seed %d: spawn X %v outside [0, %v]", seed, f.X, 800-p.Size)
			}
			if f.Y != -p.Size {
				t.Fatalf("seed %d: spawn Y = %v, want %v", seed, f.Y, -p.Size)
			}
			if f.FallSpeed < p.MinSpeed || f.FallSpeed > p.MaxSpeed {
				t.Fatalf("seed %d: fall speed %v outside [%v, %v]", seed, f.FallSpeed, p.MinSpeed, p.MaxSpeed)
			}
			if f.Kind != KindApple && f.Kind != KindGrape {
				t.Fatalf("seed %d: unexpected kind %v", seed, f.Kind)
			}
		}
		s.Clear()
	}
}

func TestStoreSpawnUniqueIDs(t *testing.T) {
	s := newTestStore()
	rng := rand.New(rand.NewSource(1))
	seen := make(map[uint64]bool)
	for range 100 {
		f := s.Spawn(rng, SpawnParams{Size: 10, MinSpeed: 1, MaxSpeed: 2})
		if seen[f.ID] {
			t.Fatalf("duplicate fruit ID %d", f.ID)
		}
		seen[f.ID] = true
	}
}

func TestStoreAdvance(t *testing.T) {
	s := newTestStore()
	s.Add(Fruit{X: 10, Y: 0, Size: 40, FallSpeed: 100})
	s.Add(Fruit{X: 50, Y: -40, Size: 40, FallSpeed: 300})

	s.Advance(0.5)

	fruits := s.Fruits()
	if len(fruits) != 2 {
		t.Fatalf("Advance should not remove fruit, got %d", len(fruits))
	}
	if fruits[0].Y != 50 {
		t.Errorf("fruit 0 Y = %v, want 50", fruits[0].Y)
	}
	if fruits[1].Y != 110 {
		t.Errorf("fruit 1 Y = %v, want 110", fruits[1].Y)
	}
}

func TestStoreAdvanceIntegrates(t *testing.T) {
	// Summing many frames equals one frame of the summed delta.
	a, b := newTestStore(), newTestStore()
	a.Add(Fruit{Size: 40, FallSpeed: 123})
	b.Add(Fruit{Size: 40, FallSpeed: 123})

	for range 10 {
		a.Advance(0.01)
	}
	b.Advance(0.1)

	if d := a.Fruits()[0].Y - b.Fruits()[0].Y; d > 1e-9 || d < -1e-9 {
		t.Errorf("integrated Y differs by %v", d)
	}
}

func TestStoreSetPaddleX(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"inside", 300, 300},
		{"left edge", -50, 0},
		{"right edge", 790, 700},
		{"exact max", 700, 700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore()
			s.SetPaddleX(tt.x)
			if got := s.Paddle().X; got != tt.want {
				t.Errorf("SetPaddleX(%v) -> X = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestStoreCentersPaddle(t *testing.T) {
	s := newTestStore()
	if got := s.Paddle().X; got != 350 {
		t.Errorf("paddle X = %v, want 350", got)
	}
}

func TestStoreRemoveIf(t *testing.T) {
	s := newTestStore()
	for i := range 5 {
		s.Add(Fruit{X: float64(i * 10), Size: 10})
	}

	removed := s.RemoveIf(func(f Fruit) bool { return f.ID%2 == 0 })
	if removed != 2 {
		t.Errorf("RemoveIf removed %d, want 2", removed)
	}
	for _, f := range s.Fruits() {
		if f.ID%2 == 0 {
			t.Errorf("fruit %d should have been removed", f.ID)
		}
	}
	if len(s.Fruits()) != 3 {
		t.Errorf("expected 3 fruits left, got %d", len(s.Fruits()))
	}
}

func TestParseKinds(t *testing.T) {
	kinds, err := ParseKinds([]string{"apple", "pineapple"})
	if err != nil {
		t.Fatalf("ParseKinds: %v", err)
	}
	if len(kinds) != 2 || kinds[0] != KindApple || kinds[1] != KindPineapple {
		t.Errorf("ParseKinds = %v", kinds)
	}

	if _, err := ParseKinds([]string{"durian"}); err == nil {
		t.Error("unknown kind should fail")
	}
}

func TestFruitRect(t *testing.T) {
	f := Fruit{X: 140, Y: 520, Size: 40}
	want := core.NewRect(140, 520, 40, 40)
	if f.Rect() != want {
		t.Errorf("Rect() = %+v, want %+v", f.Rect(), want)
	}
}
