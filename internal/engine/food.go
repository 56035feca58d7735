package engine

import "math/rand"

// maxSampleAttempts bounds blind resampling before FoodPlacer falls back to
// scanning the free cells directly.
const maxSampleAttempts = 16

// FoodPlacer picks food cells uniformly among the cells not occupied by the snake.
type FoodPlacer struct {
	grid Grid
	rng  *rand.Rand
}

// NewFoodPlacer creates a placer for grid drawing from rng.
func NewFoodPlacer(grid Grid, rng *rand.Rand) *FoodPlacer {
	return &FoodPlacer{grid: grid, rng: rng}
}

// Place returns a random on-board cell that is not in occupied.
// It returns ErrBoardFull when every cell is taken.
func (p *FoodPlacer) Place(occupied *CellSet) (Cell, error) {
	total := p.grid.Cells()
	free := total - occupied.Len()
	if free <= 0 {
		return Cell{}, ErrBoardFull
	}

	// Sampling is cheap while the board is sparse.
	for range maxSampleAttempts {
		idx := p.rng.Intn(total)
		if !occupied.hasIndex(idx) {
			return p.grid.CellAt(idx), nil
		}
	}

	// Dense board: choose the k-th free cell.
	k := p.rng.Intn(free)
	for idx := range total {
		if occupied.hasIndex(idx) {
			continue
		}
		if k == 0 {
			return p.grid.CellAt(idx), nil
		}
		k--
	}

	return Cell{}, ErrBoardFull
}
