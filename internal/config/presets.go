package config

import "fmt"

// BoardPreset names a board size.
type BoardPreset string

const (
	BoardClassic BoardPreset = "classic"
	BoardSmall   BoardPreset = "small"
	BoardLarge   BoardPreset = "large"
)

// BoardPresets lists the accepted preset names.
func BoardPresets() []BoardPreset {
	return []BoardPreset{BoardClassic, BoardSmall, BoardLarge}
}

// ApplyBoardPreset resizes the grid and recenters the starting snake.
// An empty preset leaves cfg untouched.
func ApplyBoardPreset(cfg *SnakeConfig, preset BoardPreset) error {
	switch preset {
	case "":
		return nil
	case BoardClassic:
		cfg.Grid.Cols, cfg.Grid.Rows = 40, 40
	case BoardSmall:
		cfg.Grid.Cols, cfg.Grid.Rows = 20, 20
	case BoardLarge:
		cfg.Grid.Cols, cfg.Grid.Rows = 60, 30
	default:
		return fmt.Errorf("%w: unknown board preset %q", ErrInvalid, preset)
	}

	// Keep the start on the unit grid, near the middle.
	cfg.Snake.StartX = (cfg.Grid.Cols / 2) * cfg.Grid.Unit
	cfg.Snake.StartY = (cfg.Grid.Rows / 2) * cfg.Grid.Unit
	return nil
}
