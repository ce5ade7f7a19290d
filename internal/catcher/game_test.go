package catcher

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/fruit-catcher/internal/config"
	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/registry"
)

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameRegistered(t *testing.T) {
	for _, id := range []string{config.GameClassic, config.GameTimed} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q): %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
		if _, ok := g.(registry.BestTracker); !ok {
			t.Errorf("%s should track a best score", id)
		}
		if _, ok := g.(registry.Configurable); !ok {
			t.Errorf("%s should be configurable", id)
		}
	}
}

func TestGameStartAndBack(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})

	state := g.Step(t0, core.NewInputFrame()).State
	if state.Started {
		t.Fatal("game should wait for start")
	}

	state = g.Step(t0.Add(frame), press(core.ActionStart)).State
	if !state.Started || state.GameOver {
		t.Fatalf("after start: %+v", state)
	}

	state = g.Step(t0.Add(2*frame), press(core.ActionBack)).State
	if state.Started {
		t.Error("back should return to idle")
	}
}

func TestGameIgnoresMovementWhenIdle(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	x := g.Engine().Store().Paddle().X

	g.Step(t0, press(core.ActionLeft))
	if g.Engine().Intent().Direction() != 0 {
		t.Error("intent should be ignored while idle")
	}
	if g.Engine().Store().Paddle().X != x {
		t.Error("paddle should not move while idle")
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := NewTimed()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	g.Step(t0, press(core.ActionStart))

	if !g.Step(t0.Add(frame), press(core.ActionPause)).State.Paused {
		t.Fatal("game should be paused")
	}
	if g.Step(t0.Add(2*frame), press(core.ActionPause)).State.Paused {
		t.Error("game should be resumed")
	}
}

func TestGameRestartAfterGameOver(t *testing.T) {
	g := New()
	g.cfg.Gameplay.Lives = 1
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	g.Step(t0, press(core.ActionStart))

	e := g.Engine()
	e.Store().SetPaddleX(0)
	e.Store().Add(Fruit{X: 600, Y: 570, Size: 48})
	state := g.Step(t0.Add(frame), core.NewInputFrame()).State
	if !state.GameOver {
		t.Fatal("missing the only life should end the game")
	}

	state = g.Step(t0.Add(2*frame), press(core.ActionRestart)).State
	if state.GameOver || !state.Started {
		t.Errorf("restart should begin a new run: %+v", state)
	}
}

func TestGameBestSurvivesReset(t *testing.T) {
	g := New()
	if g.BestKey() != "catcher.best" {
		t.Errorf("BestKey() = %q", g.BestKey())
	}

	g.SetBest(120)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 2})
	if got := g.State().Best; got != 120 {
		t.Errorf("best after reset = %d, want 120", got)
	}
}

func TestGameConfigure(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g := New()
	if err := g.Configure("", "hard"); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if g.Config().Gameplay.Lives != 2 {
		t.Errorf("hard preset lives = %d, want 2", g.Config().Gameplay.Lives)
	}

	if err := g.Configure("", "impossible"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestGameRender(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "Press Enter to start") {
		t.Error("idle screen should show the start prompt")
	}

	g.Step(t0, press(core.ActionStart))
	g.Engine().Store().Add(Fruit{X: 400, Y: 300, Size: 48, Kind: KindGrape})
	g.Render(screen)
	out = screen.String()

	if !strings.Contains(screen.Row(0), "Score: 0") {
		t.Errorf("HUD row = %q", screen.Row(0))
	}
	if !strings.ContainsRune(out, '♣') {
		t.Error("grape should be drawn")
	}
	if !strings.ContainsRune(out, BasketRim) {
		t.Error("basket should be drawn")
	}
}

func TestGameRenderTinyScreen(t *testing.T) {
	g := NewTimed()
	g.Reset(core.RuntimeConfig{ScreenW: 3, ScreenH: 3, Seed: 1})
	g.Step(time.Unix(0, 0), press(core.ActionStart))
	// Must not panic
	g.Render(core.NewScreen(3, 3))
}
