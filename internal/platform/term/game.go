package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Game binds a controller to a tcell screen.
type Game struct {
	ctrl     *engine.Controller
	renderer *screenRenderer
	screen   tcell.Screen
	scores   *storage.Recorder
	logger   *log.Logger
}

// NewGame builds a controller for cfg.Engine drawing on screen. The screen
// must already be initialized. store may be nil; a zero seed is replaced
// with a time-based one.
func NewGame(screen tcell.Screen, sched engine.Scheduler, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.Engine.Seed == 0 {
		cfg.Engine.Seed = time.Now().UnixNano()
	}

	g := &Game{
		renderer: newScreenRenderer(screen, cfg.Engine.Grid),
		screen:   screen,
		scores:   storage.NewRecorder(store, cfg.Board(), cfg.Player, logger),
		logger:   logger,
	}
	g.renderer.SetBest(g.scores.Best())
	if cfg.Title != "" {
		g.renderer.SetTitle(cfg.Title)
	}

	ctrl, err := engine.NewController(cfg.Engine, sched, g.renderer,
		engine.WithLogger(logger),
		engine.WithGameOverHook(func(s engine.Snapshot) {
			if g.scores.Record(s) {
				logger.Info("new high score", "board", g.scores.Board(), "score", s.Score)
			}
			g.renderer.SetBest(g.scores.Best())
		}),
	)
	if err != nil {
		return nil, err
	}
	g.ctrl = ctrl
	return g, nil
}

// Controller returns the game's controller.
func (g *Game) Controller() *engine.Controller {
	return g.ctrl
}

// Follow runs the game while the whole board is visible and holds it while
// the terminal is too small. A held game keeps its state and is still drawn.
func (g *Game) Follow() {
	if g.renderer.visible() {
		g.ctrl.Start()
	} else {
		g.ctrl.Stop()
	}
	g.ctrl.Redraw()
}

// Play starts the game and feeds it events until the player quits, events
// closes or ctx is cancelled. Cancellation is not reported as an error.
func (g *Game) Play(ctx context.Context, events <-chan tcell.Event) error {
	g.Follow()
	defer g.ctrl.Stop()

	src := NewKeySource(events, func() {
		g.screen.Sync()
		g.Follow()
	})
	err := src.Run(ctx, g.ctrl)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Run plays on the controlling terminal until the player quits.
func Run(ctx context.Context, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: cannot create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: cannot initialize screen: %w", err)
	}
	defer screen.Fini()

	sched := engine.NewTimerScheduler()
	defer sched.Stop()

	game, err := NewGame(screen, sched, store, cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go pollEvents(ctx, screen, events)

	return game.Play(ctx, events)
}

// pollEvents forwards screen events until the screen is finalized.
func pollEvents(ctx context.Context, screen tcell.Screen, events chan<- tcell.Event) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return
		}
	}
}
