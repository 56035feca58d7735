package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store, rc core.RuntimeConfig) Model {
	t.Helper()
	m, err := NewModel(store, rc, nil)
	require.NoError(t, err)
	require.NotNil(t, m.Init())
	return m
}

func TestModelInitSchedulesOneTick(t *testing.T) {
	m := newTestModel(t, nil, testRuntime())

	assert.Len(t, m.sched.handles(), 1)
	assert.Equal(t, uint64(0), m.Snapshot().Ticks)
	assert.Contains(t, m.View(), "Score: 0")
}

func TestModelTickAdvances(t *testing.T) {
	m := newTestModel(t, nil, testRuntime())

	m = fireNext(t, m)

	snap := m.Snapshot()
	assert.Equal(t, uint64(1), snap.Ticks)
	assert.Equal(t, engine.Cell{X: 110, Y: 50}, snap.Head)
	assert.Len(t, m.sched.handles(), 1, "next tick is scheduled")
}

func TestModelIgnoresUnknownTick(t *testing.T) {
	m := newTestModel(t, nil, testRuntime())
	h := m.sched.handles()[0]

	next, _ := m.Update(m.sched.tick(h + 100))
	m = next.(Model)

	assert.Equal(t, uint64(0), m.Snapshot().Ticks)
	assert.Equal(t, []engine.Handle{h}, m.sched.handles())
}

func TestModelSteering(t *testing.T) {
	m := newTestModel(t, nil, testRuntime())

	m, _ = press(m, "left") // reversal, ignored
	m = fireNext(t, m)
	assert.Equal(t, engine.Cell{X: 110, Y: 50}, m.Snapshot().Head)

	m, _ = press(m, "w")
	m = fireNext(t, m)
	assert.Equal(t, engine.Cell{X: 110, Y: 40}, m.Snapshot().Head)
	assert.Equal(t, engine.Up, m.Snapshot().Direction)
}

func TestModelQuitStopsTicking(t *testing.T) {
	m := newTestModel(t, nil, testRuntime())

	m, cmd := press(m, "ctrl+c")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.sched.handles())
	assert.Empty(t, m.View())
}

func TestModelBackOnlyInSession(t *testing.T) {
	m := newTestModel(t, nil, testRuntime())

	m, _ = press(m, "esc")
	assert.False(t, m.BackToMenu(), "standalone games have no menu")

	m = m.inSession()
	m, cmd := press(m, "esc")
	assert.Nil(t, cmd)
	assert.True(t, m.BackToMenu())
	assert.Empty(t, m.sched.handles())
}

// fullBoard is a 3x1 board where the first tick eats the only food and fills it.
func fullBoard() core.RuntimeConfig {
	rc := testRuntime()
	rc.Engine.Grid = engine.Grid{Unit: 1, Cols: 3, Rows: 1}
	rc.Engine.Start = engine.Cell{X: 1, Y: 0}
	rc.Engine.Length = 2
	return rc
}

func TestModelGameOverSavesScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	m := newTestModel(t, store, fullBoard())
	m = fireNext(t, m)

	snap := m.Snapshot()
	require.Equal(t, engine.Over, snap.Lifecycle)
	assert.Equal(t, engine.OutcomeBoardFull, snap.Outcome)
	assert.Empty(t, m.sched.handles(), "no tick after game over")
	assert.Contains(t, m.View(), "You Win!")

	scores, err := store.TopScores("3x1", 10)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "tester", scores[0].Player)
	assert.Equal(t, 10, scores[0].Score)
	assert.Equal(t, 3, scores[0].Length)
	assert.Equal(t, "board_full", scores[0].Outcome)

	// A new model on the same board starts with the stored best.
	again := newTestModel(t, store, fullBoard())
	assert.Contains(t, again.View(), "Best: 10")
}

func TestModelRestartAfterGameOver(t *testing.T) {
	m := newTestModel(t, nil, fullBoard())
	m = fireNext(t, m)
	require.Equal(t, engine.Over, m.Snapshot().Lifecycle)

	m, cmd := press(m, "r")
	assert.NotNil(t, cmd, "restart schedules the first tick")
	assert.Equal(t, engine.Running, m.Snapshot().Lifecycle)
	assert.Equal(t, 0, m.Snapshot().Score)
	assert.Len(t, m.sched.handles(), 1)
}

func TestModelRestartIgnoredWhileRunning(t *testing.T) {
	m := newTestModel(t, nil, testRuntime())
	m = fireNext(t, m)

	m, _ = press(m, "r")
	assert.Equal(t, uint64(1), m.Snapshot().Ticks)
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil, testRuntime())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 6})
	m = next.(Model)
	assert.Contains(t, m.View(), "Window too small")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	assert.NotContains(t, m.View(), "Window too small")
}

func TestModelHoldsWhileBoardHidden(t *testing.T) {
	m := newTestModel(t, nil, testRuntime())
	m = fireNext(t, m)
	require.Equal(t, uint64(1), m.Snapshot().Ticks)
	stale := m.sched.handles()

	next, _ := m.Update(tea.WindowSizeMsg{Width: 20, Height: 6})
	m = next.(Model)
	require.False(t, m.board.Fits())
	assert.Empty(t, m.sched.handles(), "a hidden board schedules no tick")

	// The tick queued before the resize still arrives.
	next, _ = m.Update(m.sched.tick(stale[0]))
	m = next.(Model)
	snap := m.Snapshot()
	assert.Equal(t, uint64(1), snap.Ticks)
	assert.Equal(t, engine.Running, snap.Lifecycle)

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = next.(Model)
	require.True(t, m.board.Fits())
	assert.NotNil(t, cmd, "the game resumes once the board fits")
	assert.Len(t, m.sched.handles(), 1)

	m = fireNext(t, m)
	assert.Equal(t, uint64(2), m.Snapshot().Ticks)
}

func TestModelClassicBoardOnSmallTerminal(t *testing.T) {
	m, err := NewModel(nil, core.DefaultConfig(), nil)
	require.NoError(t, err)

	assert.Nil(t, m.Init(), "82x43 board cannot start on 80x24")
	assert.Empty(t, m.sched.handles())
	assert.Contains(t, m.View(), "Window too small")
	assert.Equal(t, engine.Running, m.Snapshot().Lifecycle)

	next, cmd := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	m = next.(Model)
	assert.NotNil(t, cmd)
	assert.Len(t, m.sched.handles(), 1)
	assert.Contains(t, m.View(), "Score: 0")
}

func TestModelHelpToggle(t *testing.T) {
	m := newTestModel(t, nil, testRuntime())
	short := m.screen.Height()

	m, _ = press(m, "?")
	assert.True(t, m.help.ShowAll)
	assert.Less(t, m.screen.Height(), short, "full help takes rows from the board area")
	assert.Contains(t, m.View(), "left")

	m, _ = press(m, "?")
	assert.False(t, m.help.ShowAll)
	assert.Equal(t, short, m.screen.Height())
}
