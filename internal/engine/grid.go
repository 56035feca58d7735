// Package engine implements the snake game state machine: grid geometry,
// food placement, snake movement, collision detection and the tick-driven
// controller. It has no terminal or timer dependencies of its own; hosts
// plug in a Renderer and a Scheduler.
package engine

import "fmt"

// Cell is a grid-aligned position measured in pixel units.
// Valid cells have coordinates that are multiples of Grid.Unit.
type Cell struct {
	X, Y int
}

// Add returns the cell translated by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Grid describes the playable area: a Cols x Rows board of square cells,
// each Unit pixels wide.
type Grid struct {
	Unit int `yaml:"unit"`
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// Classic returns the 400x400 board with a 10 pixel unit.
func Classic() Grid {
	return Grid{Unit: 10, Cols: 40, Rows: 40}
}

// Width returns the board width in pixels.
func (g Grid) Width() int {
	return g.Cols * g.Unit
}

// Height returns the board height in pixels.
func (g Grid) Height() int {
	return g.Rows * g.Unit
}

// Cells returns the total number of cells on the board.
func (g Grid) Cells() int {
	return g.Cols * g.Rows
}

// Contains reports whether c lies on the board. Upper bounds are exclusive.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.Width() && c.Y >= 0 && c.Y < g.Height()
}

// Aligned reports whether c sits on a unit boundary.
func (g Grid) Aligned(c Cell) bool {
	return g.Unit > 0 && c.X%g.Unit == 0 && c.Y%g.Unit == 0
}

// Index maps an on-board cell to row*Cols+col.
// The result is undefined for cells outside the board.
func (g Grid) Index(c Cell) int {
	return (c.Y/g.Unit)*g.Cols + c.X/g.Unit
}

// CellAt is the inverse of Index.
func (g Grid) CellAt(index int) Cell {
	return Cell{
		X: (index % g.Cols) * g.Unit,
		Y: (index / g.Cols) * g.Unit,
	}
}

// Validate checks that the grid has a positive size.
func (g Grid) Validate() error {
	if g.Unit <= 0 || g.Cols <= 0 || g.Rows <= 0 {
		return fmt.Errorf("%w: grid %dx%d with unit %d", ErrInvalidConfig, g.Cols, g.Rows, g.Unit)
	}
	return nil
}
