package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-catcher/internal/scoreboard"
	"github.com/vovakirdan/fruit-catcher/internal/storage"
)

// Environment variables read by the api command. Flags win over them.
const (
	envAPIAddr  = "CATCHER_API_ADDR"
	envAPIStore = "CATCHER_API_STORE"
	envDBPath   = "CATCHER_DB"
)

var (
	flagAPIAddr  string
	flagAPIStore string
)

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the HTTP scoreboard",
	Long: `Serve the shared scoreboard over HTTP.

Endpoints:
  GET  /scores        - Top 10 submissions, best first
  POST /scores        - Submit {"score": <int>}
  GET  /scores/live   - WebSocket feed of the top 10
  GET  /healthz       - Liveness probe
  /api/scores         - Alias of /scores

Settings are read from flags, then the environment, then an optional
.env file in the working directory:
  CATCHER_API_ADDR    - Listen address (default :5000)
  CATCHER_API_STORE   - memory or sqlite (default memory)
  CATCHER_DB          - Database path for the sqlite store

Examples:
  catcher api
  catcher api --addr :8080
  catcher api --store sqlite --db ./board.db`,
	Run: runAPI,
}

func init() {
	apiCmd.Flags().StringVar(&flagAPIAddr, "addr", scoreboard.DefaultAddr, "Listen address (host:port)")
	apiCmd.Flags().StringVar(&flagAPIStore, "store", "memory", "Scoreboard store: memory or sqlite")
}

// setting returns the flag value if it was set, else the environment
// value if present, else the flag default.
func setting(cmd *cobra.Command, flagName, envName string) string {
	f := cmd.Flag(flagName)
	if f.Changed {
		return f.Value.String()
	}
	if v, ok := os.LookupEnv(envName); ok && v != "" {
		return v
	}
	return f.Value.String()
}

func runAPI(cmd *cobra.Command, _ []string) {
	logger, closer := newLogger("catcher-api", os.Stderr)
	defer closer.Close()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn("could not read .env", "error", err)
	}

	addr := setting(cmd, "addr", envAPIAddr)
	kind := setting(cmd, "store", envAPIStore)

	var repo scoreboard.Repository
	switch kind {
	case "memory":
		repo = scoreboard.NewMemoryRepository()
	case "sqlite":
		dbPath := setting(cmd, "db", envDBPath)
		store, err := storage.Open(dbPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()
		repo = store.Board()
		logger.Info("using sqlite store", "db", dbPath)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown store %q (want memory or sqlite)\n", kind)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting scoreboard", "addr", addr, "store", kind)
	if err := scoreboard.NewServer(repo, logger).ListenAndServe(ctx, addr); err != nil {
		logger.Error("server error", "error", err)
		stop()
		closer.Close()
		os.Exit(1)
	}
	logger.Info("scoreboard stopped")
}
