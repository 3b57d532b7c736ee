package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cuberun/internal/registry"
	"github.com/vovakirdan/cuberun/internal/storage"
)

var flagRecent int

var scoresCmd = &cobra.Command{
	Use:   "scores [arena]",
	Short: "Show high scores for an arena",
	Long: `Display the top 10 scores, run statistics and the most recent
runs for the specified arena. Without an arena, prints a summary line per arena.

Examples:
  cuberun scores
  cuberun scores meadow
  cuberun scores practice --recent 20`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagRecent, "recent", 5, "Number of recent runs to show (0 hides them)")
}

func runScores(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runScoresSummary()
	}
	arenaID := args[0]

	layout, err := registry.Layout(arenaID)
	if err != nil {
		return fmt.Errorf("%w, run 'cuberun list' to see available arenas", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	scores, err := store.TopScores(arenaID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", layout.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'cuberun play %s' to set the first high score!\n", arenaID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "Rank", "Score", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "----", "-----", "----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %-8s  %s\n", i+1, entry.Score,
			fmt.Sprintf("%.2fs", entry.Elapsed), entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetArenaStats(arenaID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Wins: %d  Losses: %d  Best time: %.2fs\n",
		stats.Runs, stats.Wins, stats.Losses, stats.BestElapsed)

	if flagRecent <= 0 {
		return nil
	}
	runs, err := store.RecentRuns(arenaID, flagRecent)
	if err != nil {
		return fmt.Errorf("retrieving runs: %w", err)
	}
	if len(runs) == 0 {
		return nil
	}

	fmt.Println()
	fmt.Println("Recent runs:")
	for _, r := range runs {
		outcome := r.Outcome
		if r.Cause != "" {
			outcome += " (" + r.Cause + ")"
		}
		fmt.Printf("  %s  %-16s  %8.2fs  %5d ticks  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"), outcome, r.Elapsed, r.Ticks, shortID(r.RunID))
	}
	return nil
}

func runScoresSummary() error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	fmt.Printf("  %-12s  %-5s  %-5s  %-6s  %-9s  %s\n", "Arena", "Runs", "Wins", "Best", "Best time", "Last played")
	fmt.Printf("  %-12s  %-5s  %-5s  %-6s  %-9s  %s\n", "-----", "----", "----", "----", "---------", "-----------")
	for _, a := range registry.List() {
		stats, err := store.GetArenaStats(a.ID)
		if err != nil {
			return fmt.Errorf("retrieving stats for %s: %w", a.ID, err)
		}
		last := "never"
		if !stats.LastPlayed.IsZero() {
			last = stats.LastPlayed.Format("2006-01-02 15:04")
		}
		fmt.Printf("  %-12s  %-5d  %-5d  %-6d  %-9s  %s\n", a.ID, stats.Runs, stats.Wins,
			stats.HighScore, fmt.Sprintf("%.2fs", stats.BestElapsed), last)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
