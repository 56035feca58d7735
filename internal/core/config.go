package core

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

// RuntimeConfig carries everything a host needs to run one game session.
type RuntimeConfig struct {
	Engine  engine.Config
	Player  string // name stored with high scores
	Title   string // status line label; empty keeps "Snake"
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
}

// DefaultConfig returns a RuntimeConfig for the classic board.
// A zero Engine.Seed means the platform layer picks a time-based seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Engine:  engine.DefaultConfig(),
		Player:  "player",
		ScreenW: 80,
		ScreenH: 24,
	}
}

// Board returns the key high scores are filed under.
func (c RuntimeConfig) Board() string {
	return BoardKey(c.Engine.Grid)
}

// BoardTitle labels the status line for a named board preset.
func BoardTitle(preset string) string {
	if preset == "" {
		return "Snake"
	}
	return "Snake (" + preset + ")"
}

// BoardKey names a grid by its cell dimensions, e.g. "40x40".
func BoardKey(g engine.Grid) string {
	return fmt.Sprintf("%dx%d", g.Cols, g.Rows)
}
