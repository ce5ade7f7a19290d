// catcher is Fruit Catcher: a falling-fruit arcade game for the terminal
// plus the HTTP scoreboard it reports to.
//
// Usage:
//
//	catcher list              - List game variants
//	catcher play <game>       - Play a variant
//	catcher menu              - Pick variants interactively
//	catcher scores [game]     - Show local or shared high scores
//	catcher serve             - Start SSH server for remote play
//	catcher api               - Serve the HTTP scoreboard
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.catcher/scores.db)
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a rotating file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-catcher/internal/core"
	"github.com/vovakirdan/fruit-catcher/internal/logging"

	// Register the game variants
	_ "github.com/vovakirdan/fruit-catcher/internal/catcher"
)

const defaultDBPath = "~/.catcher/scores.db"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "catcher",
	Short: "Fruit Catcher - catch falling fruit in your terminal",
	Long: `Fruit Catcher is a terminal arcade game: move the basket, catch the
falling fruit, and don't let it hit the floor.

Available commands:
  list     - Show the game variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  scores   - View high scores
  serve    - Start SSH server for remote play
  api      - Serve the HTTP scoreboard

Examples:
  catcher play catcher
  catcher play catcher_timed --difficulty hard
  catcher menu --scoreboard-url http://localhost:5000
  catcher api --store sqlite`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this rotating file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(apiCmd)
}

// newLogger builds the logger for a command. Terminal UIs pass a nil
// fallback so nothing is written over the alternate screen.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, io.Closer) {
	opts := logging.DefaultOptions()
	opts.Level = flagLogLevel
	opts.File = flagLogFile
	opts.Prefix = prefix

	logger, closer, err := logging.New(opts, fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closer
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
