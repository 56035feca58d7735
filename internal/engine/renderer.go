package engine

// Role tells a Renderer what occupies a cell.
type Role int

const (
	RoleSnake Role = iota
	RoleFood
	RoleHead
)

// Renderer draws frames. The controller calls it once per tick while
// holding its lock, so implementations must not call back into the controller.
type Renderer interface {
	Clear()
	DrawCell(c Cell, role Role)
	DrawScore(score int)
	DrawGameOver(outcome Outcome)
}

// Flusher is implemented by renderers that buffer a frame. Flush is called
// after the last draw call of every frame.
type Flusher interface {
	Flush()
}

// NopRenderer discards every frame.
type NopRenderer struct{}

func (NopRenderer) Clear()               {}
func (NopRenderer) DrawCell(Cell, Role)  {}
func (NopRenderer) DrawScore(int)        {}
func (NopRenderer) DrawGameOver(Outcome) {}
