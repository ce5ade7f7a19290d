package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-catcher/internal/platform/tui"
	"github.com/vovakirdan/fruit-catcher/internal/registry"
	"github.com/vovakirdan/fruit-catcher/internal/scoreboard"
	"github.com/vovakirdan/fruit-catcher/internal/storage"
)

var (
	flagConfig        string
	flagDifficulty    string
	flagScoreboardURL string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game variant",
	Long: `Start playing the specified variant.

Controls:
  Left/Right, A/D, H/L  - Move the basket
  Enter/Space           - Start
  P                     - Pause
  R                     - Replay (after game over)
  Esc/B                 - Back to the title screen
  Ctrl+S                - Save a screenshot
  Q/Ctrl+C              - Quit

Difficulty options:
  easy   - Slower fruit, more lives or time
  normal - The config file's values
  hard   - Faster fruit from the start
  fixed  - No progression

Examples:
  catcher play catcher
  catcher play catcher_timed --difficulty easy
  catcher play catcher --config ./my-catcher.yaml
  catcher play catcher --scoreboard-url http://localhost:5000`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

// addGameFlags registers the flags shared by every command that starts games.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagScoreboardURL, "scoreboard-url", "", "Submit finished runs to this scoreboard")
}

// createGame builds a registered variant and applies --config and --difficulty.
func createGame(gameID string) (registry.Game, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return nil, err
	}
	if c, ok := game.(registry.Configurable); ok {
		if err := c.Configure(flagConfig, flagDifficulty); err != nil {
			return nil, err
		}
	}
	return game, nil
}

// scoreboardClient returns the client for --scoreboard-url, or nil.
func scoreboardClient() *scoreboard.Client {
	if flagScoreboardURL == "" {
		return nil
	}
	return scoreboard.NewClient(flagScoreboardURL, 5*time.Second)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'catcher list' to see available games.")
		os.Exit(1)
	}

	game, err := createGame(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closer := newLogger("catcher", nil)
	defer closer.Close()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, runtimeConfig(), tui.GameOptions{
		Store:      store,
		Scoreboard: scoreboardClient(),
		Logger:     logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
