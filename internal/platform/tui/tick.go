// Package tui hosts the snake engine in a Bubble Tea program, locally or over SSH.
package tui

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

// TickMsg is delivered when a scheduled engine callback is due. Scheduler
// identifies the game that queued it; handles are only unique per scheduler.
type TickMsg struct {
	Scheduler uint64
	Handle    engine.Handle
	At        time.Time
}

var schedulerIDs atomic.Uint64

// teaScheduler implements engine.Scheduler on top of the Bubble Tea loop.
// ScheduleAfter only records the callback and queues a tea.Tick; the model
// hands queued commands to Bubble Tea with drain and runs due callbacks from
// Update, so engine code never executes outside the program's goroutine.
type teaScheduler struct {
	id      uint64
	mu      sync.Mutex
	next    engine.Handle
	pending map[engine.Handle]func()
	queued  []tea.Cmd
}

var _ engine.Scheduler = (*teaScheduler)(nil)

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{
		id:      schedulerIDs.Add(1),
		pending: make(map[engine.Handle]func()),
	}
}

func (s *teaScheduler) ScheduleAfter(d time.Duration, fn func()) engine.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	h := s.next
	s.pending[h] = fn
	id := s.id
	s.queued = append(s.queued, tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Scheduler: id, Handle: h, At: t}
	}))
	return h
}

// Cancel forgets the callback. Its tea.Tick still arrives and is ignored by run.
func (s *teaScheduler) Cancel(h engine.Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, h)
}

// run executes the callback msg refers to, if it belongs to this scheduler
// and is still pending.
func (s *teaScheduler) run(msg TickMsg) bool {
	if msg.Scheduler != s.id {
		return false
	}
	s.mu.Lock()
	fn, ok := s.pending[msg.Handle]
	delete(s.pending, msg.Handle)
	s.mu.Unlock()

	if ok {
		fn()
	}
	return ok
}

// drain returns the commands queued since the last call, batched.
func (s *teaScheduler) drain() tea.Cmd {
	s.mu.Lock()
	cmds := s.queued
	s.queued = nil
	s.mu.Unlock()

	return tea.Batch(cmds...)
}

// tick builds the message the scheduler delivers for h.
func (s *teaScheduler) tick(h engine.Handle) TickMsg {
	return TickMsg{Scheduler: s.id, Handle: h}
}

// handles returns the pending handles, oldest first.
func (s *teaScheduler) handles() []engine.Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]engine.Handle, 0, len(s.pending))
	for h := range s.pending {
		out = append(out, h)
	}
	slices.Sort(out)
	return out
}
