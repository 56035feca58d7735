package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSnakeLayout(t *testing.T) {
	s := NewSnake(Cell{200, 200}, 5, Right, 10)

	expected := []Cell{{200, 200}, {190, 200}, {180, 200}, {170, 200}, {160, 200}}
	assert.Equal(t, expected, s.Body())
	assert.Equal(t, Right, s.Direction())
	assert.Equal(t, Right, s.Heading())
}

func TestSnakeMovement(t *testing.T) {
	noFood := Cell{-100, -100}

	tests := []struct {
		dir      Direction
		expected Cell
	}{
		{Right, Cell{210, 200}},
		{Down, Cell{200, 210}},
		{Up, Cell{200, 190}},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			s := NewSnake(Cell{200, 200}, 5, Right, 10)
			head, ate := s.Advance(tc.dir, noFood)

			assert.Equal(t, tc.expected, head)
			assert.Equal(t, tc.expected, s.Head())
			assert.False(t, ate)
			assert.Equal(t, 5, s.Len())
			assert.Equal(t, Cell{170, 200}, s.Body()[4], "tail should have moved up")
		})
	}

	t.Run("left", func(t *testing.T) {
		s := NewSnake(Cell{200, 200}, 5, Left, 10)
		head, ate := s.Advance(Left, noFood)

		assert.Equal(t, Cell{190, 200}, head)
		assert.False(t, ate)
		assert.Equal(t, 5, s.Len())
	})
}

func TestSnakeGrowth(t *testing.T) {
	s := NewSnake(Cell{200, 200}, 5, Right, 10)
	before := s.Body()

	head, ate := s.Step(Cell{210, 200})

	assert.True(t, ate)
	assert.Equal(t, Cell{210, 200}, head)
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, before, s.Body()[1:], "tail must be kept on growth")
}

func TestSnakeAdvanceAllowsOffBoardHead(t *testing.T) {
	s := NewSnake(Cell{0, 0}, 2, Left, 10)
	head, _ := s.Step(Cell{200, 200})

	assert.Equal(t, Cell{-10, 0}, head)
}

func TestReversalGuard(t *testing.T) {
	s := NewSnake(Cell{200, 200}, 5, Right, 10)

	assert.False(t, s.SetDirection(Left))
	assert.Equal(t, Right, s.Direction())
	assert.Equal(t, Cell{10, 0}, s.Direction().Delta(10))

	assert.True(t, s.SetDirection(Down))
	assert.Equal(t, Down, s.Direction())
}

func TestReversalGuardWithinOneTick(t *testing.T) {
	s := NewSnake(Cell{200, 200}, 5, Right, 10)

	// Up then Left before the next move must not turn the snake back on itself.
	assert.True(t, s.SetDirection(Up))
	assert.False(t, s.SetDirection(Left))
	assert.Equal(t, Up, s.Direction())

	s.Step(Cell{-100, -100})
	assert.Equal(t, Up, s.Heading())

	// After moving up, left is a legal turn.
	assert.True(t, s.SetDirection(Left))
}

func TestSnakeBodyIsCopy(t *testing.T) {
	s := NewSnake(Cell{200, 200}, 3, Right, 10)
	body := s.Body()
	body[0] = Cell{0, 0}

	assert.Equal(t, Cell{200, 200}, s.Head())
}

func TestNewSnakeFromBody(t *testing.T) {
	body := []Cell{{30, 0}, {30, 10}, {20, 10}}
	s := NewSnakeFromBody(body, Up, 10)
	body[0] = Cell{99, 99}

	assert.Equal(t, Cell{30, 0}, s.Head(), "the body is copied")
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, Up, s.Heading())
	assert.False(t, s.SetDirection(Down), "reversal of the given heading")
	assert.False(t, s.SetDirection(Direction(9)))

	head, ate := s.Step(Cell{30, -10})
	assert.True(t, ate)
	assert.Equal(t, Cell{30, -10}, head)
	assert.Equal(t, 4, s.Len())
}
