package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit int
	flagReset bool
	flagTop   bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the high score and recent runs",
	Long: `Display the stored high score and the most recent finished games.

Examples:
  snake scores
  snake scores --top --limit 5
  snake scores --reset`,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagTop, "top", false, "Show the best runs instead of the most recent")
	scoresCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the high score and run history")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening score database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagReset {
		if err := store.Reset(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Scores cleared.")
		return nil
	}

	high, _, err := store.Get(game.HighScoreKey)
	if err != nil {
		return err
	}

	var runs []storage.RunEntry
	title := "Recent runs"
	if flagTop {
		title = "Best runs"
		runs, err = store.TopRuns(flagLimit)
	} else {
		runs, err = store.RecentRuns(flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High score: %d\n", high)
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No games recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'snake' or 'snake sim' to record the first one!")
		return nil
	}

	fmt.Fprintln(out, title)
	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-8s  %-6s  %s\n", "#", "Score", "Length", "Ticks", "Mode", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-6s  %-8s  %-6s  %s\n", "-", "-----", "------", "-----", "----", "----")
	for i, r := range runs {
		dateStr := r.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-6d  %-6d  %-8d  %-6s  %s\n", i+1, r.Score, r.Length, r.Ticks, r.Mode, dateStr)
	}

	stats, err := store.Stats()
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Games: %d  Average: %.1f  Longest snake: %d\n", stats.Games, stats.AvgScore, stats.LongestLen)
	}
	return nil
}
