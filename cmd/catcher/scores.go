package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-catcher/internal/registry"
	"github.com/vovakirdan/fruit-catcher/internal/scoreboard"
	"github.com/vovakirdan/fruit-catcher/internal/storage"
)

var (
	flagOnline    bool
	flagOnlineURL string
	flagClear     bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 local scores for a variant, or the shared top 10
from a scoreboard server with --online.

Examples:
  catcher scores catcher
  catcher scores catcher_timed
  catcher scores catcher --clear
  catcher scores --online --scoreboard-url http://localhost:5000`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagOnline, "online", false, "Show the shared scoreboard instead of local scores")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Clear the local score history for the game")
	scoresCmd.Flags().StringVar(&flagOnlineURL, "scoreboard-url", "http://localhost"+scoreboard.DefaultAddr, "Scoreboard server URL")
}

func runScores(_ *cobra.Command, args []string) {
	if flagOnline {
		runOnlineScores()
		return
	}
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Error: a game is required without --online")
		fmt.Fprintln(os.Stderr, "Run 'catcher list' to see available games.")
		os.Exit(1)
	}
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'catcher list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}

	if flagClear {
		err := store.ClearScores(gameID)
		store.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared score history for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, scoreboard.TopN)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'catcher play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Runs: %d  Average: %.1f  Last played: %s\n",
			stats.GamesCount, stats.AvgScore, stats.LastPlayed.Local().Format("2006-01-02 15:04"))
	}

	// The persisted best survives clearing the history
	if tracker, ok := game.(registry.BestTracker); ok {
		if best, err := store.LoadBest(tracker.BestKey()); err == nil && best > 0 {
			fmt.Printf("Best: %d\n", best)
		}
	}
}

func runOnlineScores() {
	client := scoreboard.NewClient(flagOnlineURL, 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	records, err := client.Top(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Shared Top %d - %s\n", scoreboard.TopN, flagOnlineURL)
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No scores submitted yet.")
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, r := range records {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, r.Score, r.Date.Local().Format("2006-01-02 15:04"))
	}
}
