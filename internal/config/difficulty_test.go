package config

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDifficultyLevelByScore(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
	})

	tests := []struct {
		score    int
		expected float64
	}{
		{0, 0},
		{50, 0.5},
		{100, 1},
		{500, 1}, // clamped
	}
	for _, tc := range tests {
		if got := d.Level(tc.score, 0); !approx(got, tc.expected) {
			t.Errorf("Level(%d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}

func TestDifficultyLevelByTime(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 60},
	})

	if got := d.Level(0, 30); !approx(got, 0.75) {
		t.Errorf("Level at 30s = %v, expected 0.75", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 10},
	})
	if d.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := d.Level(1000, 1000); !approx(got, 0.3) {
		t.Errorf("disabled Level = %v, expected initial 0.3", got)
	}
}

func TestDifficultySpeedAndInterval(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 0.5},
	})

	if got := d.SpeedFactor(0, 0); !approx(got, 1) {
		t.Errorf("SpeedFactor at start = %v, expected 1", got)
	}
	if got := d.SpeedFactor(100, 0); !approx(got, 2) {
		t.Errorf("SpeedFactor at max = %v, expected 2", got)
	}
	if got := d.Interval(1.2, 0.5, 0, 0); !approx(got, 1.2) {
		t.Errorf("Interval at start = %v, expected 1.2", got)
	}
	if got := d.Interval(1.2, 0.5, 100, 0); !approx(got, 0.6) {
		t.Errorf("Interval at max = %v, expected 0.6", got)
	}
	if got := d.Interval(1.2, 0.8, 100, 0); !approx(got, 0.8) {
		t.Errorf("Interval should respect the floor, got %v", got)
	}
}
