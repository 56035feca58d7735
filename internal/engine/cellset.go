package engine

import "github.com/kamstrup/intmap"

// CellSet is a set of on-board cells keyed by their grid index.
// Cells outside the grid are never members.
type CellSet struct {
	grid  Grid
	cells *intmap.Map[int, struct{}]
}

// NewCellSet creates a set over grid containing the given cells.
func NewCellSet(grid Grid, cells ...Cell) *CellSet {
	s := &CellSet{
		grid:  grid,
		cells: intmap.New[int, struct{}](len(cells)),
	}
	for _, c := range cells {
		s.Add(c)
	}
	return s
}

// Add inserts c. Off-board cells are ignored.
func (s *CellSet) Add(c Cell) {
	if !s.grid.Contains(c) {
		return
	}
	s.cells.Put(s.grid.Index(c), struct{}{})
}

// Has reports whether c is in the set.
func (s *CellSet) Has(c Cell) bool {
	if s == nil || !s.grid.Contains(c) {
		return false
	}
	_, ok := s.cells.Get(s.grid.Index(c))
	return ok
}

// Len returns the number of distinct cells in the set.
func (s *CellSet) Len() int {
	if s == nil {
		return 0
	}
	return s.cells.Len()
}

// hasIndex reports membership by raw grid index.
func (s *CellSet) hasIndex(index int) bool {
	if s == nil {
		return false
	}
	_, ok := s.cells.Get(index)
	return ok
}
