package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Config holds everything needed to build a game.
type Config struct {
	Grid      Grid
	Interval  time.Duration // delay between the end of one tick and the start of the next
	Reward    int           // points per food
	Start     Cell          // initial head
	Length    int           // initial body length
	Direction Direction     // initial heading
	Seed      int64
}

// DefaultConfig returns the classic 400x400 game: five segments heading
// right from (200,200), a tick every 100ms and 10 points per food.
func DefaultConfig() Config {
	return Config{
		Grid:      Classic(),
		Interval:  100 * time.Millisecond,
		Reward:    10,
		Start:     Cell{X: 200, Y: 200},
		Length:    5,
		Direction: Right,
	}
}

// Validate reports the first problem that would make the game unplayable.
func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return err
	}
	if c.Interval <= 0 {
		return fmt.Errorf("%w: interval %s", ErrInvalidConfig, c.Interval)
	}
	if c.Reward < 0 {
		return fmt.Errorf("%w: negative reward %d", ErrInvalidConfig, c.Reward)
	}
	if c.Length < 1 {
		return fmt.Errorf("%w: length %d", ErrInvalidConfig, c.Length)
	}
	if c.Length >= c.Grid.Cells() {
		return fmt.Errorf("%w: length %d leaves no room for food on %d cells", ErrInvalidConfig, c.Length, c.Grid.Cells())
	}
	if !c.Direction.Valid() {
		return fmt.Errorf("%w: direction %d", ErrInvalidConfig, int(c.Direction))
	}
	if !c.Grid.Aligned(c.Start) {
		return fmt.Errorf("%w: start %s is not a multiple of unit %d", ErrInvalidConfig, c.Start, c.Grid.Unit)
	}
	for _, seg := range NewSnake(c.Start, c.Length, c.Direction, c.Grid.Unit).body {
		if !c.Grid.Contains(seg) {
			return fmt.Errorf("%w: initial body leaves the board at %s", ErrInvalidConfig, seg)
		}
	}
	return nil
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for lifecycle events.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithGameOverHook registers fn to run on every transition to Over.
// It runs with the controller locked and must not call back into it.
func WithGameOverHook(fn func(Snapshot)) Option {
	return func(c *Controller) {
		c.onOver = fn
	}
}

// WithRand overrides the RNG derived from Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(c *Controller) {
		if rng != nil {
			c.rng = rng
		}
	}
}

// Controller drives the tick state machine. Every exported method is safe
// for concurrent use; ticks and input requests are serialized by one lock.
type Controller struct {
	mu       sync.Mutex
	cfg      Config
	state    State
	rng      *rand.Rand
	placer   *FoodPlacer
	sched    Scheduler
	renderer Renderer
	logger   *log.Logger
	onOver   func(Snapshot)

	started bool
	pending Handle // zero when no tick is scheduled
	gen     uint64 // bumped on every cancel; stale callbacks carry an old value
}

// NewController validates cfg and builds a game in the Running state.
// Nothing is scheduled until Start.
func NewController(cfg Config, sched Scheduler, r Renderer, opts ...Option) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sched == nil {
		return nil, fmt.Errorf("%w: nil scheduler", ErrInvalidConfig)
	}
	if r == nil {
		r = NopRenderer{}
	}

	c := &Controller{
		cfg:      cfg,
		sched:    sched,
		renderer: r,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(cfg.Seed))
	}
	c.placer = NewFoodPlacer(cfg.Grid, c.rng)

	if err := c.reset(); err != nil {
		return nil, err
	}
	return c, nil
}

// reset puts the canonical snake back, zeroes the score and places food.
func (c *Controller) reset() error {
	c.state = State{
		Snake:     NewSnake(c.cfg.Start, c.cfg.Length, c.cfg.Direction, c.cfg.Grid.Unit),
		Lifecycle: Running,
	}
	food, err := c.placer.Place(c.state.Snake.Occupied(c.cfg.Grid))
	if err != nil {
		return fmt.Errorf("engine: initial food: %w", err)
	}
	c.state.Food = food
	c.state.HasFood = true
	return nil
}

// Start draws the first frame and schedules the first tick.
// Calling Start on a started controller does nothing.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.started {
		return
	}
	c.started = true
	c.render()
	if c.state.Lifecycle == Running {
		c.schedule()
	}
	c.logger.Debug("game started", "head", c.state.Snake.Head(), "food", c.state.Food)
}

// Stop cancels the pending tick. The state is kept.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancel()
	c.started = false
}

// Tick runs one tick synchronously, replacing any scheduled one.
// It returns ErrNotRunning once the game is over.
func (c *Controller) Tick() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancel()
	return c.tick()
}

// OnDirectionRequest queues a turn. Reversals and requests after game over
// are ignored; the return value reports whether the turn was accepted.
func (c *Controller) OnDirectionRequest(d Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Lifecycle != Running {
		return false
	}
	return c.state.Snake.SetDirection(d)
}

// OnRestartRequest restarts a finished game. While Running it does nothing
// and returns false.
func (c *Controller) OnRestartRequest() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Lifecycle == Running {
		return false
	}
	c.restart()
	return true
}

// Restart resets the game regardless of lifecycle, cancelling any pending tick first.
func (c *Controller) Restart() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.restart()
}

// Redraw renders the current state without advancing it.
func (c *Controller) Redraw() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.render()
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Snapshot()
}

// Body returns a copy of the snake body, head first.
func (c *Controller) Body() []Cell {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Snake.Body()
}

// Lifecycle returns the current lifecycle.
func (c *Controller) Lifecycle() Lifecycle {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Lifecycle
}

// Grid returns the board geometry.
func (c *Controller) Grid() Grid {
	return c.cfg.Grid
}

// Config returns the configuration the controller was built with.
func (c *Controller) Config() Config {
	return c.cfg
}

func (c *Controller) restart() {
	c.cancel()
	if err := c.reset(); err != nil {
		// Validate guarantees a free cell for the canonical body.
		c.logger.Error("restart failed", "err", err)
		return
	}
	c.logger.Info("game restarted")
	c.render()
	if c.started {
		c.schedule()
	}
}

func (c *Controller) tick() error {
	st := &c.state
	if st.Lifecycle != Running {
		return ErrNotRunning
	}
	st.Ticks++

	_, ate := st.Snake.Step(st.Food)
	if ate {
		st.Score += c.cfg.Reward
		st.FoodEaten++
	}

	// Collisions are judged on the head this tick just committed.
	if outcome := classify(st.Snake.body, c.cfg.Grid); outcome != OutcomeNone {
		c.finish(outcome)
		return nil
	}

	if ate {
		food, err := c.placer.Place(st.Snake.Occupied(c.cfg.Grid))
		if errors.Is(err, ErrBoardFull) {
			st.HasFood = false
			c.finish(OutcomeBoardFull)
			return nil
		}
		if err != nil {
			return err
		}
		st.Food = food
	}

	c.render()
	if c.started {
		c.schedule()
	}
	return nil
}

func (c *Controller) finish(outcome Outcome) {
	c.cancel()
	c.state.Lifecycle = Over
	c.state.Outcome = outcome
	c.render()

	snap := c.state.Snapshot()
	c.logger.Info("game over",
		"outcome", outcome,
		"score", snap.Score,
		"length", snap.Length,
		"ticks", snap.Ticks,
	)
	if c.onOver != nil {
		c.onOver(snap)
	}
}

func (c *Controller) render() {
	st := &c.state
	r := c.renderer

	r.Clear()
	if st.HasFood {
		r.DrawCell(st.Food, RoleFood)
	}
	for i, seg := range st.Snake.body {
		role := RoleSnake
		if i == 0 {
			role = RoleHead
		}
		r.DrawCell(seg, role)
	}
	r.DrawScore(st.Score)
	if st.Lifecycle == Over {
		r.DrawGameOver(st.Outcome)
	}
	if f, ok := r.(Flusher); ok {
		f.Flush()
	}
}

func (c *Controller) schedule() {
	gen := c.gen
	c.pending = c.sched.ScheduleAfter(c.cfg.Interval, func() {
		c.fire(gen)
	})
}

func (c *Controller) cancel() {
	if c.pending != 0 {
		c.sched.Cancel(c.pending)
		c.pending = 0
	}
	c.gen++
}

// fire is the scheduled callback. Callbacks from a cancelled generation are dropped.
func (c *Controller) fire(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen || c.pending == 0 {
		return
	}
	c.pending = 0
	c.gen++
	if err := c.tick(); err != nil {
		c.logger.Error("scheduled tick rejected", "err", err)
	}
}
