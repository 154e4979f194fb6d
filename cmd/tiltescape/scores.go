package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-escape/internal/registry"
	"github.com/vovakirdan/tilt-escape/internal/storage"
)

var (
	flagScoresBoards bool
	flagScoresRecent int
	flagScoresClear  bool
)

var scoresCmd = newScoresCmd()

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores [game]",
		Short: "Show high scores for a game",
		Long: `Display the top 10 high scores for the specified game, or an
overview of every game when no game is given.

With --boards the per-board run stats are shown instead: how often each
board was attempted, how the runs ended, and the fastest escape.

Examples:
  tiltescape scores
  tiltescape scores escape
  tiltescape scores escape --boards
  tiltescape scores escape_practice --recent 20
  tiltescape scores escape_practice --clear`,
		Args: cobra.MaximumNArgs(1),
		Run:  runScores,
	}

	cmd.Flags().BoolVar(&flagScoresBoards, "boards", false, "Show per-board run stats")
	cmd.Flags().IntVar(&flagScoresRecent, "recent", 0, "Show the N most recent runs")
	cmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs for the game")
	return cmd
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a game, e.g. 'tiltescape scores escape --clear'")
			os.Exit(1)
		}
		showAllGames(store)
		return
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tiltescape list' to see available games.")
		os.Exit(1)
	}

	// The title is only reachable through an instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	if flagScoresClear {
		clearGame(store, gameID, title)
		return
	}
	if flagScoresBoards {
		showBoardStats(store, gameID, title)
		return
	}
	if flagScoresRecent > 0 {
		showRecentRuns(store, gameID, title, flagScoresRecent)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tiltescape play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
	if stats, err := store.GetGameStats(gameID); err == nil && stats.GamesCount > 0 {
		fmt.Printf("Played %d times, average score %.1f, last played %s\n",
			stats.GamesCount, stats.AvgScore, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
}

// showAllGames prints a per-game aggregate overview.
func showAllGames(store *storage.Store) {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Scores Overview")
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tiltescape play' to set the first high score!")
		return
	}

	fmt.Printf("  %-24s  %-7s  %-6s  %s\n", "Game", "Played", "Best", "Average")
	fmt.Printf("  %-24s  %-7s  %-6s  %s\n", "----", "------", "----", "-------")

	for _, info := range registry.List() {
		s, ok := stats[info.ID]
		if !ok {
			continue
		}
		fmt.Printf("  %-24s  %-7d  %-6d  %.1f\n", info.Title, s.GamesCount, s.HighScore, s.AvgScore)
	}
}

// clearGame wipes the score table and the run log for one game.
func clearGame(store *storage.Store, gameID, title string) {
	if err := store.ClearScores(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
		os.Exit(1)
	}
	if err := store.ClearRuns(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing runs: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Cleared all scores and runs for %s.\n", title)
}

// showBoardStats prints the per-board run aggregates.
func showBoardStats(store *storage.Store, gameID, title string) {
	stats, err := store.GetLevelStats(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving board stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Board Stats - %s\n", title)
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-12s  %-6s  %-8s  %-7s  %-5s  %s\n", "Board", "Runs", "Escaped", "Caught", "Fell", "Best")
	fmt.Printf("  %-12s  %-6s  %-8s  %-7s  %-5s  %s\n", "-----", "----", "-------", "------", "----", "----")

	for _, s := range stats {
		best := "-"
		if s.BestTicks > 0 {
			best = fmt.Sprintf("%d", s.BestTicks)
		}
		fmt.Printf("  %-12s  %-6d  %-8d  %-7d  %-5d  %s\n",
			s.LevelName, s.Attempts, s.Escapes, s.Catches, s.Falls, best)
	}
}

// showRecentRuns prints the most recent run log entries.
func showRecentRuns(store *storage.Store, gameID, title string, limit int) {
	runs, err := store.RecentRuns(gameID, limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent Runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-12s  %-8s  %-6s  %s\n", "Board", "Outcome", "Ticks", "Date")
	fmt.Printf("  %-12s  %-8s  %-6s  %s\n", "-----", "-------", "-----", "----")

	for _, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-12s  %-8s  %-6d  %s\n", r.LevelName, r.Outcome, r.DurationTicks, dateStr)
	}
}
