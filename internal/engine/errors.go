package engine

import "errors"

var (
	// ErrBoardFull is returned by FoodPlacer.Place when no free cell remains.
	ErrBoardFull = errors.New("engine: no free cell for food")

	// ErrNotRunning is returned by Controller.Tick once the game is over.
	// Reaching it means a tick escaped cancellation.
	ErrNotRunning = errors.New("engine: tick on a finished game")

	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("engine: invalid config")
)
