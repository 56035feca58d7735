package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the classic 400x400 configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Unit: 10,
			Cols: 40,
			Rows: 40,
		},
		Timing: TimingConfig{
			TickMS: 100,
		},
		Scoring: ScoringConfig{
			FoodReward: 10,
		},
		Snake: StartConfig{
			StartX:    200,
			StartY:    200,
			Length:    5,
			Direction: "right",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
