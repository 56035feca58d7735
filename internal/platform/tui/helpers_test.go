package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
)

// keyPress builds the KeyMsg Bubble Tea would deliver for a key name.
func keyPress(name string) tea.KeyMsg {
	switch name {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

func testRuntime() core.RuntimeConfig {
	ec := engine.DefaultConfig()
	ec.Grid = engine.Grid{Unit: 10, Cols: 20, Rows: 10}
	ec.Start = engine.Cell{X: 100, Y: 50}
	ec.Seed = 1
	return core.RuntimeConfig{Engine: ec, Player: "tester", ScreenW: 80, ScreenH: 24}
}

// fireNext delivers the TickMsg for the newest pending callback.
func fireNext(t *testing.T, m Model) Model {
	t.Helper()
	hs := m.sched.handles()
	require.NotEmpty(t, hs, "no tick pending")
	next, _ := m.Update(m.sched.tick(hs[len(hs)-1]))
	return next.(Model)
}

func press(m Model, name string) (Model, tea.Cmd) {
	next, cmd := m.Update(keyPress(name))
	return next.(Model), cmd
}
