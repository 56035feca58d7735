// Package term runs the snake engine directly on a tcell screen.
//
// Frames are drawn by core.BoardRenderer into an off-screen buffer and copied
// to the terminal when the controller flushes. Ticks come from timers, so
// the controller is driven from timer goroutines and the input loop at once;
// its lock serializes them.
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

var palette = map[core.Color]tcell.Style{
	core.ColorDefault:     tcell.StyleDefault,
	core.ColorGreen:       tcell.StyleDefault.Foreground(tcell.ColorGreen),
	core.ColorBrightGreen: tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true),
	core.ColorRed:         tcell.StyleDefault.Foreground(tcell.ColorRed),
	core.ColorYellow:      tcell.StyleDefault.Foreground(tcell.ColorYellow),
	core.ColorCyan:        tcell.StyleDefault.Foreground(tcell.ColorAqua),
	core.ColorGray:        tcell.StyleDefault.Foreground(tcell.ColorGray),
	core.ColorBrightWhite: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
}

func styleFor(c core.Color) tcell.Style {
	if s, ok := palette[c]; ok {
		return s
	}
	return tcell.StyleDefault
}

// screenRenderer draws board frames into buf and shows them on screen.
type screenRenderer struct {
	*core.BoardRenderer
	buf    *core.Screen
	grid   engine.Grid
	screen tcell.Screen
}

var (
	_ engine.Renderer = (*screenRenderer)(nil)
	_ engine.Flusher  = (*screenRenderer)(nil)
)

func newScreenRenderer(screen tcell.Screen, grid engine.Grid) *screenRenderer {
	w, h := screen.Size()
	buf := core.NewScreen(w, h)
	return &screenRenderer{
		BoardRenderer: core.NewBoardRenderer(buf, grid),
		buf:           buf,
		grid:          grid,
		screen:        screen,
	}
}

// visible reports whether the terminal is large enough for the whole board.
// It reads the terminal size directly, so it is safe to call without the
// controller lock.
func (r *screenRenderer) visible() bool {
	w, h := r.screen.Size()
	bw, bh := core.BoardSize(r.grid)
	return w >= bw && h >= bh
}

// Clear starts a frame, first following any terminal resize.
func (r *screenRenderer) Clear() {
	w, h := r.screen.Size()
	if w != r.buf.Width() || h != r.buf.Height() {
		r.buf.Resize(w, h)
		r.Layout()
	}
	r.BoardRenderer.Clear()
}

// Flush copies the buffered frame to the terminal.
func (r *screenRenderer) Flush() {
	for y := 0; y < r.buf.Height(); y++ {
		for x := 0; x < r.buf.Width(); x++ {
			c := r.buf.GetCell(x, y)
			r.screen.SetContent(x, y, c.Rune, nil, styleFor(c.Color))
		}
	}
	r.screen.Show()
}
