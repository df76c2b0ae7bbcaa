package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/sim"
)

var (
	flagGames    int
	flagMaxTicks uint64
	flagCheck    bool
	flagLogLevel string
	flagNoSave   bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run autopilot games headless",
	Long: `Play autopilot games without a terminal UI and print how each one ended.
Game i uses seed+i, so a run can be reproduced with the same --seed.

Examples:
  snake sim
  snake sim --games 50 --max-ticks 20000 --check
  snake sim --seed 42 --log-level debug`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagGames, "games", 10, "Number of games to play")
	simCmd.Flags().Uint64Var(&flagMaxTicks, "max-ticks", 100000, "Stop a game after this many ticks (0 = no limit)")
	simCmd.Flags().BoolVar(&flagCheck, "check", false, "Validate the body after every tick")
	simCmd.Flags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	simCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record results in the score database")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake-sim",
		Level:           level,
	})

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	opts := sim.Options{
		Games:    flagGames,
		MaxTicks: flagMaxTicks,
		Seed:     seed,
		Check:    flagCheck,
		Logger:   logger,
	}
	if !flagNoSave {
		if store := openStore(); store != nil {
			opts.Store = store
			defer store.Close()
		}
	}

	rep, err := sim.Run(cfg.SessionConfig(), opts)
	printReport(cmd, rep)
	return err
}

func printReport(cmd *cobra.Command, rep sim.Report) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-4s  %-20s  %-6s  %-6s  %-8s  %s\n", "Game", "Seed", "Score", "Length", "Ticks", "End")
	fmt.Fprintf(out, "  %-4s  %-20s  %-6s  %-6s  %-8s  %s\n", "----", "----", "-----", "------", "-----", "---")
	for i, r := range rep.Results {
		end := "crashed (" + r.LastMove.String() + ")"
		if !r.Finished {
			end = "tick limit"
		}
		fmt.Fprintf(out, "  %-4d  %-20d  %-6d  %-6d  %-8d  %s\n", i+1, r.Seed, r.Score, r.Length, r.Ticks, end)
	}
	if len(rep.Results) == 0 {
		return
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d  Average: %.1f  Hit tick limit: %d/%d\n",
		rep.BestScore, rep.AvgScore, rep.Survived, len(rep.Results))
}
