package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWallCollisionBoundary(t *testing.T) {
	g := Classic()

	tests := []struct {
		name     string
		head     Cell
		expected bool
	}{
		{"left wall", Cell{-10, 200}, true},
		{"right wall", Cell{400, 200}, true},
		{"top wall", Cell{200, -10}, true},
		{"bottom wall", Cell{200, 400}, true},
		{"last column", Cell{390, 200}, false},
		{"last row", Cell{200, 390}, false},
		{"origin", Cell{0, 0}, false},
		{"far corner", Cell{390, 390}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsWallCollision(tc.head, g))
		})
	}
}

func TestWallCollisionInterior(t *testing.T) {
	g := Grid{Unit: 10, Cols: 5, Rows: 4}
	for i := range g.Cells() {
		assert.False(t, IsWallCollision(g.CellAt(i), g), "cell %s", g.CellAt(i))
	}
}

func TestSelfCollision(t *testing.T) {
	tests := []struct {
		name     string
		body     []Cell
		expected bool
	}{
		{
			name:     "head repeated at tail",
			body:     []Cell{{180, 200}, {190, 200}, {200, 200}, {180, 200}},
			expected: true,
		},
		{
			name:     "all distinct",
			body:     []Cell{{200, 200}, {190, 200}, {180, 200}, {170, 200}},
			expected: false,
		},
		{
			name:     "duplicate not involving head",
			body:     []Cell{{200, 200}, {190, 200}, {190, 200}},
			expected: false,
		},
		{
			name:     "single segment",
			body:     []Cell{{0, 0}},
			expected: false,
		},
		{
			name:     "adjacent is not collision",
			body:     []Cell{{200, 200}, {200, 210}},
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsSelfCollision(tc.body))
		})
	}
}

func TestIsTerminal(t *testing.T) {
	g := Classic()

	assert.True(t, IsTerminal([]Cell{{400, 0}, {390, 0}}, g))
	assert.True(t, IsTerminal([]Cell{{10, 0}, {20, 0}, {10, 0}}, g))
	assert.False(t, IsTerminal([]Cell{{10, 0}, {20, 0}}, g))
	assert.False(t, IsTerminal(nil, g))

	assert.Equal(t, OutcomeWall, classify([]Cell{{-10, 0}, {0, 0}}, g))
	assert.Equal(t, OutcomeSelf, classify([]Cell{{10, 0}, {20, 0}, {10, 0}}, g))
	assert.Equal(t, OutcomeNone, classify([]Cell{{10, 0}}, g))
}
