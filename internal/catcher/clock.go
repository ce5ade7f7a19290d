package catcher

import "time"

// Scheduler is anything the session arms on start and stops on end or reset.
type Scheduler interface {
	Arm(now time.Time)
	Stop()
}

// Clock turns frame timestamps into bounded delta-times.
// A stopped clock yields nothing until it is armed again.
type Clock struct {
	maxStep  time.Duration
	lastTick time.Time
	armed    bool
}

// NewClock creates a stopped clock whose deltas never exceed maxStep.
func NewClock(maxStep time.Duration) *Clock {
	return &Clock{maxStep: maxStep}
}

// Arm starts (or restarts) the clock from now.
func (c *Clock) Arm(now time.Time) {
	c.lastTick = now
	c.armed = true
}

// Stop cancels scheduling; Tick reports false until the next Arm.
func (c *Clock) Stop() {
	c.armed = false
}

// Armed reports whether the clock is producing ticks.
func (c *Clock) Armed() bool {
	return c.armed
}

// Tick returns clamp(now - lastTick, 0, maxStep) in seconds and moves
// lastTick to now. Time lost to a late or missed tick is absorbed here.
func (c *Clock) Tick(now time.Time) (float64, bool) {
	if !c.armed {
		return 0, false
	}
	d := now.Sub(c.lastTick)
	if d < 0 {
		d = 0
	}
	if d > c.maxStep {
		d = c.maxStep
	}
	c.lastTick = now
	return d.Seconds(), true
}

// Timer is a repeating trigger driven by elapsed simulation time rather than
// wall-clock callbacks, so firing is a deterministic function of the deltas
// it is fed.
type Timer struct {
	interval float64
	elapsed  float64
	running  bool
}

// NewTimer creates a stopped timer firing every interval seconds.
func NewTimer(interval float64) *Timer {
	return &Timer{interval: interval}
}

// Arm restarts the timer with an empty accumulator.
func (t *Timer) Arm(time.Time) {
	t.elapsed = 0
	t.running = true
}

// Stop cancels the timer; Advance fires nothing until it is armed again.
func (t *Timer) Stop() {
	t.running = false
}

// Running reports whether the timer is armed.
func (t *Timer) Running() bool {
	return t.running
}

// Interval returns the current period in seconds.
func (t *Timer) Interval() float64 {
	return t.interval
}

// SetInterval changes the period. Accumulated time is kept.
// Non-positive values are ignored.
func (t *Timer) SetInterval(interval float64) {
	if interval > 0 {
		t.interval = interval
	}
}

// Advance feeds dt seconds and returns how many times the timer fired.
func (t *Timer) Advance(dt float64) int {
	if !t.running || t.interval <= 0 {
		return 0
	}
	t.elapsed += dt
	fired := 0
	for t.elapsed >= t.interval {
		t.elapsed -= t.interval
		fired++
	}
	return fired
}
