package catcher

import (
	"testing"

	"github.com/vovakirdan/fruit-catcher/internal/core"
)

func TestClassify(t *testing.T) {
	// Paddle spans x [100,200], y [540,600]; the floor is at 600.
	paddle := core.NewRect(100, 540, 100, 60)

	tests := []struct {
		name  string
		fruit Fruit
		want  Outcome
	}{
		{"overlaps basket", Fruit{X: 140, Y: 520, Size: 40}, OutcomeCatch},
		{"falling freely", Fruit{X: 400, Y: 100, Size: 40}, OutcomeNone},
		{"touching basket edge only", Fruit{X: 200, Y: 540, Size: 40}, OutcomeNone},
		{"resting on floor", Fruit{X: 600, Y: 560, Size: 40}, OutcomeNone},
		{"past the floor", Fruit{X: 600, Y: 570, Size: 40}, OutcomeMiss},
		{"past the floor inside basket", Fruit{X: 150, Y: 570, Size: 40}, OutcomeCatch},
		{"above the arena", Fruit{X: 140, Y: -40, Size: 40}, OutcomeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(paddle, tt.fruit, 600); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveOrderAndPurity(t *testing.T) {
	paddle := core.NewRect(100, 540, 100, 60)
	fruits := []Fruit{
		{ID: 1, X: 140, Y: 520, Size: 40, Kind: KindBanana},
		{ID: 2, X: 400, Y: 100, Size: 40},
		{ID: 3, X: 600, Y: 580, Size: 40, Kind: KindGrape},
	}
	before := append([]Fruit(nil), fruits...)

	got := Resolve(paddle, fruits, 600)
	want := []Resolution{
		{ID: 1, Kind: KindBanana, Outcome: OutcomeCatch},
		{ID: 3, Kind: KindGrape, Outcome: OutcomeMiss},
	}

	if len(got) != len(want) {
		t.Fatalf("Resolve returned %d results, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	for i := range fruits {
		if fruits[i] != before[i] {
			t.Errorf("Resolve modified fruit %d", i)
		}
	}
}

func TestResolveEmpty(t *testing.T) {
	if got := Resolve(core.NewRect(0, 0, 10, 10), nil, 600); len(got) != 0 {
		t.Errorf("Resolve(nil) = %v, want empty", got)
	}
}
