package engine

// Snake owns the body and heading. Head is at index 0.
type Snake struct {
	body    []Cell
	unit    int
	heading Direction // direction of the last committed move
	next    Direction // direction the next Step will use
}

// NewSnake lays out length segments behind head, facing dir.
func NewSnake(head Cell, length int, dir Direction, unit int) *Snake {
	if length < 1 {
		length = 1
	}
	back := dir.Opposite().Delta(unit)
	body := make([]Cell, length)
	body[0] = head
	for i := 1; i < length; i++ {
		body[i] = body[i-1].Add(back)
	}
	return &Snake{
		body:    body,
		unit:    unit,
		heading: dir,
		next:    dir,
	}
}

// NewSnakeFromBody builds a snake from an explicit body, head first.
// The heading is set to dir without validating the body shape.
func NewSnakeFromBody(body []Cell, dir Direction, unit int) *Snake {
	cp := make([]Cell, len(body))
	copy(cp, body)
	return &Snake{body: cp, unit: unit, heading: dir, next: dir}
}

// Head returns the first segment.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Cell {
	cp := make([]Cell, len(s.body))
	copy(cp, s.body)
	return cp
}

// Direction returns the heading the next Step will use.
func (s *Snake) Direction() Direction {
	return s.next
}

// Heading returns the direction of the last committed move.
func (s *Snake) Heading() Direction {
	return s.heading
}

// SetDirection queues req for the next move. Requests that would reverse
// the last committed move are ignored and the queued direction is kept.
func (s *Snake) SetDirection(req Direction) bool {
	if !req.Valid() || req == s.heading.Opposite() {
		return false
	}
	s.next = req
	return true
}

// Step advances one cell in the queued direction.
func (s *Snake) Step(food Cell) (Cell, bool) {
	return s.Advance(s.next, food)
}

// Advance moves the head one cell in dir. When the new head lands on food
// the tail is kept and the snake grows by one; otherwise the tail is dropped.
// No bounds checks are made here.
func (s *Snake) Advance(dir Direction, food Cell) (Cell, bool) {
	newHead := s.body[0].Add(dir.Delta(s.unit))
	s.heading = dir
	s.next = dir

	ate := newHead == food
	if ate {
		s.body = append(s.body, Cell{})
	}
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead

	return newHead, ate
}

// Occupied returns the on-board cells covered by the body.
func (s *Snake) Occupied(grid Grid) *CellSet {
	return NewCellSet(grid, s.body...)
}
