package tui

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/fruit-catcher/internal/catcher"
	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/scoreboard"
	"github.com/vovakirdan/fruit-catcher/internal/storage"
)

// fakeGame replays a scripted state and records what the platform sends it.
type fakeGame struct {
	state  core.GameState
	best   int
	resets int
	nows   []time.Time
	inputs []core.InputFrame
}

func (g *fakeGame) ID() string { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *fakeGame) Render(dst *core.Screen) { dst.Clear(); dst.DrawText(0, 0, "FAKE") }
func (g *fakeGame) State() core.GameState { return g.state }
func (g *fakeGame) BestKey() string { return "fake.best" }
func (g *fakeGame) SetBest(best int) { g.best = best }
func (g *fakeGame) Step(now time.Time, in core.InputFrame) core.StepResult {
	g.nows = append(g.nows, now)
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.state}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return gm, cmd
}

func TestNewGameModelLoadsBest(t *testing.T) {
	store := openStore(t)
	if err := store.SaveBest("fake.best", 42); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}

	game := &fakeGame{}
	NewGameModel(game, testConfig(), GameOptions{Store: store})

	if game.best != 42 {
		t.Errorf("best = %d, expected 42", game.best)
	}
}

func TestGameModelStepsAtTickTime(t *testing.T) {
	game := &fakeGame{}
	m := NewGameModel(game, testConfig(), GameOptions{})
	t0 := time.Unix(1_700_000_000, 0)
	m.now = func() time.Time { return t0 }

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))

	if len(game.nows) != 1 || !game.nows[0].Equal(t0.Add(16*time.Millisecond)) {
		t.Fatalf("Step times = %v", game.nows)
	}
	if !game.inputs[0].Has(core.ActionLeft) {
		t.Error("first frame should carry the left press")
	}

	// The press is consumed; the latch releases once the window passes
	update(t, m, TickMsg(t0.Add(DefaultFirstRepeat)))
	if game.inputs[1].Has(core.ActionLeft) {
		t.Error("press should not repeat into the next frame")
	}
	if !game.inputs[1].WasReleased(core.ActionLeft) {
		t.Error("left should be released after the first repeat window")
	}
}

func TestGameModelBack(t *testing.T) {
	t.Run("in menu", func(t *testing.T) {
		m := NewGameModel(&fakeGame{}, testConfig(), GameOptions{InMenu: true})
		m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if !m.BackToMenu() || cmd == nil {
			t.Error("Esc should leave for the menu")
		}
	})

	t.Run("standalone", func(t *testing.T) {
		game := &fakeGame{}
		m := NewGameModel(game, testConfig(), GameOptions{})
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
		if m.BackToMenu() {
			t.Error("standalone play has no menu")
		}
		update(t, m, TickMsg(time.Now()))
		if !game.inputs[0].Has(core.ActionBack) {
			t.Error("Back should reach the game")
		}
	})
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(&fakeGame{}, testConfig(), GameOptions{})
	m, cmd := update(t, m, runeKey("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelRecordsFinishedRun(t *testing.T) {
	store := openStore(t)
	game := &fakeGame{}
	m := NewGameModel(game, testConfig(), GameOptions{Store: store})

	state := core.GameState{Score: 30, Best: 30, NewBest: true, Started: true, GameOver: true}
	cmds := m.recordRun(state)
	if len(cmds) != 1 {
		t.Fatalf("expected 1 command without a scoreboard, got %d", len(cmds))
	}

	msg, ok := cmds[0]().(runRecordedMsg)
	if !ok || msg.err != nil {
		t.Fatalf("unexpected result %#v", msg)
	}

	scores, _ := store.TopScores("fake", 10)
	if len(scores) != 1 || scores[0].Score != 30 {
		t.Errorf("stored scores = %v", scores)
	}
	if best, _ := store.LoadBest("fake.best"); best != 30 {
		t.Errorf("stored best = %d, expected 30", best)
	}

	m, _ = update(t, m, msg)
	if m.Status() != "New best 30 saved" {
		t.Errorf("status = %q", m.Status())
	}
}

func TestGameModelSkipsEmptyRun(t *testing.T) {
	m := NewGameModel(&fakeGame{}, testConfig(), GameOptions{Store: openStore(t)})
	if cmds := m.recordRun(core.GameState{GameOver: true}); len(cmds) != 0 {
		t.Errorf("zero-score run should not be recorded, got %d commands", len(cmds))
	}
}

func TestGameModelScoreboardUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := scoreboard.NewClient(srv.URL, time.Second)
	m := NewGameModel(&fakeGame{}, testConfig(), GameOptions{Scoreboard: client})

	cmds := m.recordRun(core.GameState{Score: 5, GameOver: true})
	if len(cmds) != 1 {
		t.Fatalf("expected 1 submission command, got %d", len(cmds))
	}
	m, _ = update(t, m, cmds[0]())

	if m.Status() != "scoreboard unavailable" {
		t.Errorf("status = %q", m.Status())
	}
	if !strings.Contains(m.View(), "scoreboard unavailable") {
		t.Error("status line should be rendered")
	}
}

func TestGameModelRecordsOncePerRun(t *testing.T) {
	game := &fakeGame{state: core.GameState{Score: 10, Started: true, GameOver: true}}
	m := NewGameModel(game, testConfig(), GameOptions{})
	t0 := time.Now()

	m, _ = update(t, m, TickMsg(t0))
	if !m.recorded {
		t.Fatal("finished run should be marked recorded")
	}
	m.status = "Score 10 saved"

	game.state = core.GameState{Started: true}
	m, _ = update(t, m, TickMsg(t0.Add(time.Second)))
	if m.recorded || m.Status() != "" {
		t.Error("a new run should clear the recorded flag and status")
	}
}

func TestGameModelView(t *testing.T) {
	m := NewGameModel(&fakeGame{}, testConfig(), GameOptions{})
	m.status = "hello"

	view := m.View()
	if !strings.Contains(view, "FAKE") || !strings.Contains(view, "hello") {
		t.Errorf("view missing game or status: %q", view)
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 6})
	if m.screen.Width() != 20 || m.screen.Height() != 5 {
		t.Errorf("screen = %dx%d, expected 20x5", m.screen.Width(), m.screen.Height())
	}
}

func TestSessionModelFlow(t *testing.T) {
	s := NewSessionModel(testConfig(), "alice", GameOptions{})
	if s.SessionID() == "" {
		t.Fatal("session should have an ID")
	}

	step := func(msg tea.Msg) {
		t.Helper()
		next, _ := s.Update(msg)
		var ok bool
		if s, ok = next.(SessionModel); !ok {
			t.Fatalf("Update returned %T", next)
		}
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if s.gameModel == nil {
		t.Fatal("Enter should start the selected game")
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.gameModel != nil {
		t.Fatal("Esc should return to the menu")
	}

	step(tea.KeyMsg{Type: tea.KeyTab})
	if s.scoreboard == nil {
		t.Fatal("Tab should open the scoreboard")
	}
	if !strings.Contains(s.View(), "HIGH SCORES") {
		t.Error("scoreboard view expected")
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if s.scoreboard != nil {
		t.Fatal("Esc should close the scoreboard")
	}
	if !strings.Contains(s.View(), "F R U I T") {
		t.Error("menu view expected")
	}

	step(runeKey("q"))
	if !s.quitting {
		t.Error("q should end the session")
	}
}
