package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Cols:     20,
			Rows:     20,
			CellSize: 2,
		},
		Start: StartConfig{
			X:         10,
			Y:         10,
			Direction: "right",
		},
		Gameplay: GameplayConfig{
			GoalPoints: 10,
			Mode:       "ai",
		},
		Timing: TimingConfig{
			AutonomousMS: 20,
			ManualMS:     100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
