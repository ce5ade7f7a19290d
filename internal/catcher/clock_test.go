package catcher

import (
	"math"
	"testing"
	"time"
)

func TestClockTick(t *testing.T) {
	t0 := time.Unix(1000, 0)
	c := NewClock(50 * time.Millisecond)

	if _, ok := c.Tick(t0); ok {
		t.Fatal("stopped clock should not tick")
	}

	c.Arm(t0)
	tests := []struct {
		name  string
		after time.Duration
		want  float64
	}{
		{"normal frame", 16 * time.Millisecond, 0.016},
		{"late frame is clamped", 2 * time.Second, 0.05},
		{"time going backwards", -time.Second, 0},
		{"exact max step", 50 * time.Millisecond, 0.05},
	}

	now := t0
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now = now.Add(tt.after)
			dt, ok := c.Tick(now)
			if !ok {
				t.Fatal("armed clock should tick")
			}
			if math.Abs(dt-tt.want) > 1e-9 {
				t.Errorf("Tick() = %v, want %v", dt, tt.want)
			}
		})
	}
}

func TestClockStopAndRearm(t *testing.T) {
	t0 := time.Unix(1000, 0)
	c := NewClock(time.Second)
	c.Arm(t0)
	c.Stop()

	if c.Armed() {
		t.Error("clock should report stopped")
	}
	if _, ok := c.Tick(t0.Add(time.Millisecond)); ok {
		t.Error("stopped clock should not tick")
	}

	// Re-arming starts from the new timestamp, not the old one
	c.Arm(t0.Add(10 * time.Second))
	dt, ok := c.Tick(t0.Add(10*time.Second + 20*time.Millisecond))
	if !ok || math.Abs(dt-0.02) > 1e-9 {
		t.Errorf("Tick after re-arm = (%v, %v), want (0.02, true)", dt, ok)
	}
}

func TestTimerAdvance(t *testing.T) {
	tm := NewTimer(1.0)

	if n := tm.Advance(5); n != 0 {
		t.Errorf("stopped timer fired %d times", n)
	}

	tm.Arm(time.Time{})
	if n := tm.Advance(0.6); n != 0 {
		t.Errorf("Advance(0.6) fired %d times, want 0", n)
	}
	if n := tm.Advance(0.6); n != 1 {
		t.Errorf("Advance(0.6) fired %d times, want 1 (remainder carried)", n)
	}
	if n := tm.Advance(2.5); n != 2 {
		t.Errorf("Advance(2.5) fired %d times, want 2", n)
	}

	// Arm discards the accumulator
	tm.Arm(time.Time{})
	if n := tm.Advance(0.9); n != 0 {
		t.Errorf("re-armed timer fired %d times, want 0", n)
	}
}

func TestTimerSetInterval(t *testing.T) {
	tm := NewTimer(1.0)
	tm.SetInterval(0)
	tm.SetInterval(-2)
	if tm.Interval() != 1.0 {
		t.Errorf("non-positive interval should be ignored, got %v", tm.Interval())
	}

	tm.SetInterval(0.25)
	tm.Arm(time.Time{})
	if n := tm.Advance(1.0); n != 4 {
		t.Errorf("Advance(1.0) at 0.25s interval fired %d times, want 4", n)
	}
}

func TestTimerStop(t *testing.T) {
	tm := NewTimer(0.5)
	tm.Arm(time.Time{})
	tm.Stop()

	if tm.Running() {
		t.Error("timer should not be running after Stop")
	}
	if n := tm.Advance(10); n != 0 {
		t.Errorf("stopped timer fired %d times", n)
	}
}
