// Package catcher implements Fruit Catcher: fruit falls from the top of the
// arena and the player moves a basket along the floor to catch it.
//
// The Engine is a pure simulation driven by frame timestamps; Game adapts
// it to the platform's registry.Game interface and renders it.
package catcher

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/fruit-catcher/internal/config"
)

// countdownStep is how much time each countdown tick removes, in seconds.
const countdownStep = 1.0

// FrameReport summarizes what one frame did.
type FrameReport struct {
	Spawned int
	Caught  int
	Missed  int
	Ended   bool // the run ended during this frame
}

// Engine runs one catcher session.
type Engine struct {
	cfg        config.CatcherConfig
	kinds      []Kind
	rng        *rand.Rand
	difficulty *config.DifficultyManager

	store     *Store
	session   *Session
	intent    Intent
	clock     *Clock
	spawner   *Timer
	countdown *Timer

	paused bool
	tick   uint64
}

// NewEngine validates cfg and builds an idle engine seeded with seed.
func NewEngine(cfg config.CatcherConfig, seed int64) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("catcher: %w", err)
	}
	kinds, err := ParseKinds(cfg.Fruit.Kinds)
	if err != nil {
		return nil, err
	}

	maxStep := time.Duration(cfg.Gameplay.MaxStep * float64(time.Second))
	e := &Engine{
		cfg:        cfg,
		kinds:      kinds,
		rng:        rand.New(rand.NewSource(seed)),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		clock:      NewClock(maxStep),
		spawner:    NewTimer(cfg.Spawn.Interval),
		countdown:  NewTimer(countdownStep),
	}

	paddleY := cfg.Arena.Height - cfg.Paddle.FloorGap - cfg.Paddle.Height
	e.store = NewStore(cfg.Arena.Width, cfg.Arena.Height, Paddle{
		Y:      paddleY,
		Width:  cfg.Paddle.Width,
		Height: cfg.Paddle.Height,
	})

	schedulers := []Scheduler{e.clock, e.spawner}
	if cfg.Gameplay.Mode == config.ModeTimed {
		schedulers = append(schedulers, e.countdown)
	}
	e.session = NewSession(cfg.Gameplay, schedulers...)

	return e, nil
}

// Start begins a run at now from Idle or Ended: the arena is cleared, the
// paddle centered, and the clock, spawner and countdown re-armed.
func (e *Engine) Start(now time.Time) bool {
	if !e.session.Start(now) {
		return false
	}
	e.store.Clear()
	e.store.CenterPaddle()
	e.spawner.SetInterval(e.cfg.Spawn.Interval)
	e.paused = false
	e.tick = 0
	return true
}

// Reset stops every timer and returns to Idle with an empty arena.
func (e *Engine) Reset() {
	e.session.Reset()
	e.store.Clear()
	e.store.CenterPaddle()
	e.intent.Clear()
	e.paused = false
	e.tick = 0
}

// TogglePause freezes or resumes a running session. Resuming re-arms the
// frame clock at now so the pause is not replayed as a delta.
func (e *Engine) TogglePause(now time.Time) {
	if e.session.Status() != StatusRunning {
		return
	}
	e.paused = !e.paused
	if e.paused {
		e.clock.Stop()
	} else {
		e.clock.Arm(now)
	}
}

// Frame advances the simulation to now. In order: spawn, move the paddle,
// advance fruit, resolve catches and misses, then count down.
func (e *Engine) Frame(now time.Time) FrameReport {
	var report FrameReport
	if e.session.Status() != StatusRunning || e.paused {
		return report
	}

	dt, ok := e.clock.Tick(now)
	if !ok {
		return report
	}
	e.tick++
	e.session.Elapse(dt)

	score, elapsed := e.session.Score(), e.session.Elapsed()
	e.spawner.SetInterval(e.difficulty.Interval(e.cfg.Spawn.Interval, e.cfg.Spawn.MinInterval, score, elapsed))
	for n := e.spawner.Advance(dt); n > 0; n-- {
		e.spawn(score, elapsed)
		report.Spawned++
	}

	if dir := e.intent.Direction(); dir != 0 {
		paddle := e.store.Paddle()
		e.store.SetPaddleX(paddle.X + float64(dir)*e.cfg.Paddle.Speed*dt)
	}

	e.store.Advance(dt)

	resolutions := Resolve(e.store.Paddle().Rect(), e.store.Fruits(), e.cfg.Arena.Height)
	if len(resolutions) > 0 {
		done := make(map[uint64]bool, len(resolutions))
		for _, r := range resolutions {
			done[r.ID] = true
			switch r.Outcome {
			case OutcomeCatch:
				if e.session.AddScore(e.cfg.Gameplay.CatchReward) {
					report.Caught++
				}
			case OutcomeMiss:
				if e.session.Status() == StatusRunning {
					report.Missed++
				}
				e.session.LoseLife()
			}
		}
		e.store.RemoveIf(func(f Fruit) bool { return done[f.ID] })
	}

	if n := e.countdown.Advance(dt); n > 0 {
		e.session.Countdown(float64(n) * countdownStep)
	}

	report.Ended = e.session.Status() == StatusEnded
	return report
}

func (e *Engine) spawn(score int, elapsed float64) {
	factor := e.difficulty.SpeedFactor(score, elapsed)
	e.store.Spawn(e.rng, SpawnParams{
		Size:     e.cfg.Fruit.Size,
		MinSpeed: e.cfg.Fruit.MinSpeed * factor,
		MaxSpeed: e.cfg.Fruit.MaxSpeed * factor,
		Kinds:    e.kinds,
	})
}

// Intent exposes the input mapper fed by the platform.
func (e *Engine) Intent() *Intent { return &e.intent }

// Session exposes the session state machine.
func (e *Engine) Session() *Session { return e.session }

// Store exposes the entity store.
func (e *Engine) Store() *Store { return e.store }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() config.CatcherConfig { return e.cfg }

// Paused reports whether a running session is paused.
func (e *Engine) Paused() bool { return e.paused }

// Tick returns the number of frames simulated since the last start.
func (e *Engine) Tick() uint64 { return e.tick }
