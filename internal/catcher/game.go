package catcher

import (
	"fmt"
	"time"

	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/registry"
)

// Game adapts an Engine to registry.Game. One Game serves one variant.
type Game struct {
	id    string
	title string
	cfg   config.CatcherConfig

	engine  *Engine
	runtime core.RuntimeConfig
	best    int
}

// New creates the classic, lives-based variant.
func New() *Game {
	return newGame(config.GameClassic, "Fruit Catcher")
}

// NewTimed creates the 60 second variant.
func NewTimed() *Game {
	return newGame(config.GameTimed, "Fruit Catcher: Time Attack")
}

func newGame(id, title string) *Game {
	g := &Game{
		id:    id,
		title: title,
		cfg:   config.Default(id),
	}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this variant.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this variant.
func (g *Game) Title() string {
	return g.title
}

// Configure loads the variant's YAML config (customPath may be empty) and
// applies a difficulty preset. The engine is rebuilt on the next Reset.
func (g *Game) Configure(customPath, preset string) error {
	cfg, err := config.Load(g.id, customPath)
	if err != nil {
		return err
	}
	if preset != "" {
		p := config.ParsePreset(preset)
		if p == "" {
			return fmt.Errorf("catcher: unknown difficulty %q", preset)
		}
		config.ApplyPreset(&cfg, p)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("catcher: %w", err)
	}
	g.cfg = cfg
	return nil
}

// Reset builds a fresh idle engine. The best score survives resets.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	if g.engine != nil {
		g.best = max(g.best, g.engine.Session().Best())
	}

	e, err := NewEngine(g.cfg, rc.Seed)
	if err != nil {
		// g.cfg is validated on every path that sets it
		panic(err)
	}
	e.Session().SetBest(g.best)
	g.engine = e
}

// Step handles the frame's input and advances the engine to now.
func (g *Game) Step(now time.Time, in core.InputFrame) core.StepResult {
	e := g.engine

	if in.Has(core.ActionBack) {
		e.Reset()
		return core.StepResult{State: g.State()}
	}

	switch e.Session().Status() {
	case StatusIdle:
		if in.Has(core.ActionStart) {
			e.Start(now)
		}
	case StatusEnded:
		if in.Has(core.ActionStart) || in.Has(core.ActionRestart) {
			e.Start(now)
		}
	case StatusRunning:
		if in.Has(core.ActionPause) {
			e.TogglePause(now)
		}
	}

	if e.Session().Status() == StatusRunning {
		e.Intent().Apply(in)
	} else {
		e.Intent().Clear()
	}

	e.Frame(now)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.engine.Session()
	return core.GameState{
		Score:    s.Score(),
		Best:     s.Best(),
		NewBest:  s.NewBest(),
		Started:  s.Status() != StatusIdle,
		GameOver: s.Status() == StatusEnded,
		Paused:   g.engine.Paused(),
	}
}

// BestKey names the setting the best score is persisted under.
func (g *Game) BestKey() string {
	return g.id + ".best"
}

// SetBest seeds the best score loaded from storage.
func (g *Game) SetBest(best int) {
	g.best = max(g.best, best)
	g.engine.Session().SetBest(g.best)
}

// Engine exposes the underlying simulation.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Config returns the active configuration.
func (g *Game) Config() config.CatcherConfig {
	return g.cfg
}

func init() {
	registry.Register(config.GameClassic, func() registry.Game {
		return New()
	})
	registry.Register(config.GameTimed, func() registry.Game {
		return NewTimed()
	})
}
