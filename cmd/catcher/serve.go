package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-catcher/internal/platform/tui"
)

var (
	flagSSHAddr          string
	flagHostKey          string
	flagIdleTimeout      int
	flagSSHScoreboardURL string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Fruit Catcher SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with a variant picker menu.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.catcher/host_key

Examples:
  catcher serve                           # Listen on :23234 with auto-generated key
  catcher serve --ssh :2222               # Listen on port 2222
  catcher serve --host-key ./my_host_key  # Use specific host key
  catcher serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().StringVar(&flagSSHScoreboardURL, "scoreboard-url", "", "Submit finished runs to this scoreboard")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closer := newLogger("catcher-ssh", os.Stderr)
	defer closer.Close()

	cfg := tui.SSHServerConfig{
		Address:       flagSSHAddr,
		HostKeyPath:   flagHostKey,
		DBPath:        flagDBPath,
		IdleTimeout:   time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:      flagFPS,
		ScoreboardURL: flagSSHScoreboardURL,
		Logger:        logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Fruit Catcher SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.ListenAndServe(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
