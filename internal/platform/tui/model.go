package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one snake game.
type Model struct {
	ctrl   *engine.Controller
	sched  *teaScheduler
	screen *core.Screen
	board  *core.BoardRenderer
	keys   KeyMap
	help   help.Model
	logger *log.Logger

	width      int
	height     int
	quitting   bool
	backToMenu bool
}

// NewModel builds a controller for cfg.Engine and wires it to a screen.
// A zero seed is replaced with a time-based one. store may be nil.
func NewModel(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Engine.Seed == 0 {
		cfg.Engine.Seed = time.Now().UnixNano()
	}

	keys := DefaultKeyMap()
	keys.Back.SetEnabled(false)

	m := Model{
		sched:  newTeaScheduler(),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   keys,
		help:   help.New(),
		logger: logger,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
	m.board = core.NewBoardRenderer(m.screen, cfg.Engine.Grid)
	if cfg.Title != "" {
		m.board.SetTitle(cfg.Title)
	}

	scores := storage.NewRecorder(store, cfg.Board(), cfg.Player, logger)
	m.board.SetBest(scores.Best())

	board := m.board
	ctrl, err := engine.NewController(cfg.Engine, m.sched, m.board,
		engine.WithLogger(logger),
		engine.WithGameOverHook(func(s engine.Snapshot) {
			scores.Record(s)
			board.SetBest(scores.Best())
		}),
	)
	if err != nil {
		return Model{}, err
	}
	m.ctrl = ctrl
	m.fitScreen()
	return m, nil
}

// inSession enables the back-to-menu binding.
func (m Model) inSession() Model {
	m.keys.Back.SetEnabled(true)
	return m
}

// Init starts the game loop, or holds it until the board fits the window.
func (m Model) Init() tea.Cmd {
	return m.follow()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.fitScreen()
		return m, m.follow()

	case TickMsg:
		m.sched.run(msg)
		return m, m.sched.drain()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil

	case core.ActionQuit:
		m.ctrl.Stop()
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.ctrl.Stop()
		m.backToMenu = true
		return m, nil

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, m.follow()
	}

	if core.Apply(action, m.ctrl) {
		m.logger.Debug("input accepted", "action", action)
	}
	return m, m.sched.drain()
}

// fitScreen sizes the board area to the window minus the help footer.
func (m *Model) fitScreen() {
	helpLines := lipgloss.Height(m.help.View(m.keys))
	m.screen.Resize(m.width, max(m.height-helpLines, 0))
	m.board.Layout()
}

// follow runs the game while the whole board is visible and holds it while
// the window is too small. A held game keeps its state and is still drawn.
func (m *Model) follow() tea.Cmd {
	if m.board.Fits() {
		m.ctrl.Start()
	} else {
		m.ctrl.Stop()
	}
	m.ctrl.Redraw()
	return m.sched.drain()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Snapshot returns the controller's current state.
func (m Model) Snapshot() engine.Snapshot {
	return m.ctrl.Snapshot()
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays one game in the terminal until the user quits.
func Run(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(store, cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
