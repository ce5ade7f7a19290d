package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/logging"
	"github.com/vovakirdan/fruit-catcher/internal/registry"
	"github.com/vovakirdan/fruit-catcher/internal/scoreboard"
	"github.com/vovakirdan/fruit-catcher/internal/storage"
)

// submitTimeout bounds a single scoreboard submission.
const submitTimeout = 5 * time.Second

// GameOptions wires a game screen to its collaborators. Every field is optional.
type GameOptions struct {
	Store      *storage.Store
	Scoreboard *scoreboard.Client
	Logger     *log.Logger

	// InMenu makes Back leave the game for the menu instead of the title screen.
	InMenu bool
}

// runRecordedMsg reports the outcome of saving a finished run locally.
type runRecordedMsg struct {
	score   int
	newBest bool
	err     error
}

// submittedMsg reports the outcome of a scoreboard submission.
type submittedMsg struct {
	record scoreboard.Record
	err    error
}

// GameModel is the Bubble Tea model that runs one game.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	opts       GameOptions
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	status     string
	quitting   bool
	backToMenu bool
	recorded   bool // Whether the current finished run has been recorded
	now        func() time.Time
}

// NewGameModel creates a game model. The stored best score is loaded
// before the first frame.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Nop()
	}

	loadBest(game, opts.Store, opts.Logger)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
}

// loadBest hands the persisted best score to games that track one.
func loadBest(game registry.Game, store *storage.Store, logger *log.Logger) {
	tracker, ok := game.(registry.BestTracker)
	if !ok || store == nil {
		return
	}
	best, err := store.LoadBest(tracker.BestKey())
	if err != nil {
		logger.Warn("could not load best score", "game", game.ID(), "error", err)
		return
	}
	tracker.SetBest(best)
}

// playfieldHeight leaves the bottom row for the status line.
func playfieldHeight(screenH int) int {
	if screenH > 1 {
		return screenH - 1
	}
	return screenH
}

// Init resets the game and starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game scales to any screen, so a resize never resets the run.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case runRecordedMsg:
		switch {
		case msg.err != nil:
			m.opts.Logger.Warn("could not record run", "game", m.game.ID(), "error", msg.err)
			m.status = "Could not save score"
		case msg.newBest:
			m.status = fmt.Sprintf("New best %d saved", msg.score)
		default:
			m.status = fmt.Sprintf("Score %d saved", msg.score)
		}
		return m, nil

	case submittedMsg:
		if msg.err != nil {
			m.opts.Logger.Warn("scoreboard submission failed", "error", msg.err)
			m.status = "scoreboard unavailable"
		} else {
			m.status = fmt.Sprintf("Submitted %d to the scoreboard", msg.record.Score)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionBack && m.opts.InMenu {
		m.keyMapper.ReleaseAll(&m.inputFrame)
		m.backToMenu = true
		return m, tea.Quit
	}

	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.now())
	return m, nil
}

// handleTick runs one frame at the tick timestamp.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.keyMapper.ExpireHeld(now, &m.inputFrame)

	wasOver := m.gameState.GameOver
	result := m.game.Step(now, m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}

	if wasOver && !m.gameState.GameOver {
		// A new run started or the game went back to its title.
		m.recorded = false
		m.status = ""
	}
	if m.gameState.GameOver && !m.recorded {
		m.recorded = true
		cmds = append(cmds, m.recordRun(m.gameState)...)
	}

	return m, tea.Batch(cmds...)
}

// recordRun persists a finished run and submits it to the scoreboard.
// Both happen off the frame loop.
func (m GameModel) recordRun(state core.GameState) []tea.Cmd {
	if state.Score <= 0 {
		return nil
	}

	var cmds []tea.Cmd
	if store := m.opts.Store; store != nil {
		gameID := m.game.ID()
		bestKey := ""
		if tracker, ok := m.game.(registry.BestTracker); ok && state.NewBest {
			bestKey = tracker.BestKey()
		}
		cmds = append(cmds, func() tea.Msg {
			return saveRun(store, gameID, bestKey, state)
		})
	}
	if client := m.opts.Scoreboard; client != nil {
		cmds = append(cmds, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
			defer cancel()
			rec, err := client.Submit(ctx, state.Score)
			return submittedMsg{record: rec, err: err}
		})
	}
	return cmds
}

func saveRun(store *storage.Store, gameID, bestKey string, state core.GameState) runRecordedMsg {
	msg := runRecordedMsg{score: state.Score, newBest: bestKey != ""}
	if _, err := store.SaveScore(gameID, state.Score); err != nil {
		msg.err = err
		return msg
	}
	if bestKey != "" {
		msg.err = store.SaveBest(bestKey, state.Score)
	}
	return msg
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.status = "Could not save screenshot"
		return
	}
	dir := filepath.Join(home, ".catcher", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.status = "Could not save screenshot"
		return
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.status = "Could not save screenshot"
		return
	}
	m.status = "Screenshot saved to " + path
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + statusStyle.Render(m.status)
}

// State returns the game state after the last frame.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Status returns the text shown under the playfield.
func (m GameModel) Status() string {
	return m.status
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the user quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) error {
	opts.InMenu = false
	p := tea.NewProgram(
		NewGameModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}

// RunInMenu plays a game until the user quits or goes back.
// Returns true if the user asked for the menu.
func RunInMenu(game registry.Game, cfg core.RuntimeConfig, opts GameOptions) (backToMenu bool, err error) {
	opts.InMenu = true
	p := tea.NewProgram(
		NewGameModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(GameModel)
	return ok && m.BackToMenu(), nil
}
