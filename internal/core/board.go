package core

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

// CellWidth is the number of terminal columns one grid cell occupies.
// Terminal characters are about twice as tall as wide.
const CellWidth = 2

// hudHeight is the status line above the frame.
const hudHeight = 1

// BoardSize returns the terminal size needed to show g with its frame and status line.
func BoardSize(g engine.Grid) (w, h int) {
	return g.Cols*CellWidth + 2, g.Rows + 2 + hudHeight
}

// BoardRenderer implements engine.Renderer on a Screen. The board is drawn
// inside a frame, centered horizontally, below a one-line status bar.
type BoardRenderer struct {
	screen *Screen
	grid   engine.Grid
	title  string
	best   int
	frame  Rect
	fits   bool
}

var _ engine.Renderer = (*BoardRenderer)(nil)

// NewBoardRenderer creates a renderer for grid on s.
func NewBoardRenderer(s *Screen, grid engine.Grid) *BoardRenderer {
	b := &BoardRenderer{screen: s, grid: grid, title: "Snake"}
	b.Layout()
	return b
}

// SetTitle sets the label at the start of the status line.
func (b *BoardRenderer) SetTitle(title string) {
	b.title = title
}

// SetBest sets the stored high score shown next to the current score.
func (b *BoardRenderer) SetBest(best int) {
	b.best = best
}

// Layout recomputes the frame position. Call it after resizing the screen.
func (b *BoardRenderer) Layout() {
	w, h := BoardSize(b.grid)
	sw, sh := b.screen.Width(), b.screen.Height()
	b.fits = sw >= w && sh >= h
	b.frame = NewRect(max((sw-w)/2, 0), hudHeight, w, h-hudHeight)
}

// Fits reports whether the whole board is visible on the screen.
func (b *BoardRenderer) Fits() bool {
	return b.fits
}

// Clear blanks the screen and draws the frame.
func (b *BoardRenderer) Clear() {
	b.screen.Clear()
	if !b.fits {
		w, h := BoardSize(b.grid)
		mid := b.screen.Height() / 2
		b.screen.DrawTextCentered(b.screen.Bounds(), mid-1, "Window too small", ColorYellow)
		b.screen.DrawTextCentered(b.screen.Bounds(), mid+1, fmt.Sprintf("Resize to at least %dx%d", w, h), ColorGray)
		return
	}
	b.screen.DrawBox(b.frame, ColorGray)
}

// DrawCell paints one grid cell. Cells outside the grid are skipped; a head
// that just crossed the wall is not drawn.
func (b *BoardRenderer) DrawCell(c engine.Cell, role engine.Role) {
	if !b.fits || !b.grid.Contains(c) {
		return
	}

	var glyph string
	var color Color
	switch role {
	case engine.RoleHead:
		glyph, color = "██", ColorBrightGreen
	case engine.RoleFood:
		glyph, color = "()", ColorRed
	default:
		glyph, color = "▓▓", ColorGreen
	}

	x := b.frame.X + 1 + (c.X/b.grid.Unit)*CellWidth
	y := b.frame.Y + 1 + c.Y/b.grid.Unit
	b.screen.DrawText(x, y, glyph, color)
}

// DrawScore writes the status line.
func (b *BoardRenderer) DrawScore(score int) {
	hud := fmt.Sprintf(" %s  Score: %d  Best: %d", b.title, score, max(b.best, score))
	b.screen.DrawText(b.frame.X, 0, hud, ColorBrightWhite)
}

// DrawGameOver draws a centered box over the board.
func (b *BoardRenderer) DrawGameOver(outcome engine.Outcome) {
	if !b.fits {
		return
	}

	headline, color := "Game Over", ColorRed
	if outcome.Won() {
		headline, color = "You Win!", ColorYellow
	}
	lines := []string{headline, outcomeReason(outcome), "Press R to restart"}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	box := CenteredIn(b.frame, width+4, len(lines)*2+1)

	b.screen.FillRect(box, ' ', ColorDefault)
	b.screen.DrawBox(box, color)
	for i, l := range lines {
		c := ColorDefault
		if i == 0 {
			c = color
		}
		b.screen.DrawTextCentered(box, box.Y+1+i*2, l, c)
	}
}

func outcomeReason(o engine.Outcome) string {
	switch o {
	case engine.OutcomeWall:
		return "Hit the wall"
	case engine.OutcomeSelf:
		return "Bit your own tail"
	case engine.OutcomeBoardFull:
		return "The board is full"
	default:
		return ""
	}
}
