// Package config provides YAML-based configuration loading for the snake
// game: board size, start position, scoring, mode and tick intervals.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid     GridConfig     `yaml:"grid"`
	Start    StartConfig    `yaml:"start"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Timing   TimingConfig   `yaml:"timing"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Cols     int `yaml:"cols"`
	Rows     int `yaml:"rows"`
	CellSize int `yaml:"cell_size"` // Characters per cell, rendering only
}

// StartConfig defines where a new game begins.
type StartConfig struct {
	X         int    `yaml:"x"`
	Y         int    `yaml:"y"`
	Direction string `yaml:"direction"`
}

// GameplayConfig defines scoring and the initial mode.
type GameplayConfig struct {
	GoalPoints int    `yaml:"goal_points"`
	Mode       string `yaml:"mode"` // "ai" or "player"
}

// TimingConfig defines the tick intervals in milliseconds.
type TimingConfig struct {
	AutonomousMS int `yaml:"autonomous_ms"`
	ManualMS     int `yaml:"manual_ms"`
}

// Validate reports every problem with the configuration.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Grid.Cols < 2 || c.Grid.Rows < 2 {
		errs = append(errs, fmt.Errorf("grid must be at least 2x2, got %dx%d", c.Grid.Cols, c.Grid.Rows))
	}
	if c.Grid.CellSize < 1 {
		errs = append(errs, fmt.Errorf("cell_size must be at least 1, got %d", c.Grid.CellSize))
	}
	if !core.NewGrid(c.Grid.Cols, c.Grid.Rows).InBounds(core.Cell{X: c.Start.X, Y: c.Start.Y}) {
		errs = append(errs, fmt.Errorf("start (%d,%d) is outside the grid", c.Start.X, c.Start.Y))
	}
	if _, err := core.ParseDirection(c.Start.Direction); err != nil {
		errs = append(errs, err)
	}
	if c.Gameplay.GoalPoints < 0 {
		errs = append(errs, fmt.Errorf("goal_points must not be negative, got %d", c.Gameplay.GoalPoints))
	}
	if _, ok := game.ParseMode(c.Gameplay.Mode); !ok {
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Gameplay.Mode))
	}
	if c.Timing.AutonomousMS <= 0 || c.Timing.ManualMS <= 0 {
		errs = append(errs, fmt.Errorf("tick intervals must be positive, got %d/%d ms", c.Timing.AutonomousMS, c.Timing.ManualMS))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// SessionConfig converts the YAML configuration to game rules.
// The configuration must be valid.
func (c SnakeConfig) SessionConfig() game.Config {
	dir, err := core.ParseDirection(c.Start.Direction)
	if err != nil {
		dir = core.Right
	}
	mode, _ := game.ParseMode(c.Gameplay.Mode)
	return game.Config{
		Grid:               core.NewGrid(c.Grid.Cols, c.Grid.Rows),
		Start:              core.Cell{X: c.Start.X, Y: c.Start.Y},
		StartDirection:     dir,
		GoalPoints:         c.Gameplay.GoalPoints,
		AutonomousInterval: time.Duration(c.Timing.AutonomousMS) * time.Millisecond,
		ManualInterval:     time.Duration(c.Timing.ManualMS) * time.Millisecond,
		Mode:               mode,
	}
}
