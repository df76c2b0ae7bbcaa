// snake is a terminal snake game with an autopilot that plays by itself.
//
// Usage:
//
//	snake                    - Play (same as snake play)
//	snake play [--manual]    - Play in the terminal
//	snake sim                - Run autopilot games headless and report results
//	snake scores             - Show the high score and recent runs
//	snake config             - Print the effective configuration
//
// Global flags:
//
//	--config <path> - Use a custom config YAML
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.snake/snake.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	// Global flags
	flagConfig string
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake in your terminal, with an autopilot",
	Long: `A grid snake game. By default an autopilot steers: it follows the
shortest safe route to the goal and otherwise keeps as much room to reach
its own tail as it can. Press m at any time to take over.

Available commands:
  play     - Play in the terminal (default)
  sim      - Run autopilot games without a terminal UI
  scores   - View the high score and run history
  config   - Print the effective configuration

Examples:
  snake
  snake play --manual
  snake sim --games 20 --seed 42
  snake scores --limit 5`,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.snake/snake.db", "Path to score database")

	addPlayFlags(rootCmd)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads and validates the configuration named by --config.
func loadConfig() (config.SnakeConfig, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, source, fmt.Errorf("loading config: %w", err)
	}
	return cfg, source, nil
}

// openStore opens the score database. A failure is reported on stderr and
// the caller continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open score database: %v\n", err)
		return nil
	}
	return store
}
