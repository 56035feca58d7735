// Package config provides YAML-based game configuration loading and
// board presets for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Snake   StartConfig   `yaml:"snake"`
}

// GridConfig defines the board size.
type GridConfig struct {
	Unit int `yaml:"unit"` // Cell size in pixels
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// TimingConfig defines the tick interval.
type TimingConfig struct {
	TickMS int `yaml:"tick_ms"`
}

// ScoringConfig defines points per food.
type ScoringConfig struct {
	FoodReward int `yaml:"food_reward"`
}

// StartConfig defines the canonical starting snake.
type StartConfig struct {
	StartX    int    `yaml:"start_x"`
	StartY    int    `yaml:"start_y"`
	Length    int    `yaml:"length"`
	Direction string `yaml:"direction"`
}

// Engine converts the YAML view into an engine configuration.
func (c SnakeConfig) Engine(seed int64) (engine.Config, error) {
	dir, err := engine.ParseDirection(c.Snake.Direction)
	if err != nil {
		return engine.Config{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return engine.Config{
		Grid:      c.Grid.Engine(),
		Interval:  time.Duration(c.Timing.TickMS) * time.Millisecond,
		Reward:    c.Scoring.FoodReward,
		Start:     engine.Cell{X: c.Snake.StartX, Y: c.Snake.StartY},
		Length:    c.Snake.Length,
		Direction: dir,
		Seed:      seed,
	}, nil
}

// Engine returns the grid geometry.
func (g GridConfig) Engine() engine.Grid {
	return engine.Grid{Unit: g.Unit, Cols: g.Cols, Rows: g.Rows}
}

// Validate checks the configuration through the engine's own rules.
func (c SnakeConfig) Validate() error {
	ec, err := c.Engine(0)
	if err != nil {
		return err
	}
	if err := ec.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
