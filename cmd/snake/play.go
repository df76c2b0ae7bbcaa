package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagManual  bool
	flagLogFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal. The autopilot steers unless --manual is
given or the mode is switched with m.

Controls:
  Arrows/WASD - Steer (player mode)
  P/Esc       - Pause
  M/Tab       - Switch between AI and player
  Ctrl+S      - Save a screenshot to ~/.snake/screenshots
  Q/Ctrl+C    - Quit
  Any key     - Restart after game over

Examples:
  snake play
  snake play --manual
  snake play --log /tmp/snake.log --seed 7`,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagManual, "manual", false, "Start in player mode")
	cmd.Flags().StringVar(&flagLogFile, "log", "", "Write debug log to this file")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := playLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg := cfg.SessionConfig()
	if flagManual {
		gameCfg.Mode = game.ModeManual
	}

	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	opts := tui.Options{
		Game:     gameCfg,
		CellSize: cfg.Grid.CellSize,
		Runtime:  runtime,
		Logger:   logger,
	}

	store := openStore()
	if store != nil {
		opts.Store = store
		defer store.Close()
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// playLogger returns a logger writing to path, or a discarding logger when
// path is empty. The terminal belongs to the game while it runs.
func playLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           log.DebugLevel,
	})
	return logger, func() { f.Close() }, nil
}
