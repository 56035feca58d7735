package engine

import (
	"sort"
	"sync"
	"time"
)

// Handle identifies a scheduled callback. The zero Handle is never issued.
type Handle uint64

// Scheduler runs callbacks after a delay. Cancel must be safe to call with
// a handle that already fired or was never issued.
type Scheduler interface {
	ScheduleAfter(d time.Duration, fn func()) Handle
	Cancel(h Handle)
}

// TimerScheduler runs callbacks on time.AfterFunc goroutines.
type TimerScheduler struct {
	mu     sync.Mutex
	next   Handle
	timers map[Handle]*time.Timer
}

// NewTimerScheduler creates a scheduler backed by the runtime timers.
func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{timers: make(map[Handle]*time.Timer)}
}

// ScheduleAfter implements Scheduler.
func (s *TimerScheduler) ScheduleAfter(d time.Duration, fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	h := s.next
	s.timers[h] = time.AfterFunc(d, func() {
		s.mu.Lock()
		delete(s.timers, h)
		s.mu.Unlock()
		fn()
	})
	return h
}

// Cancel implements Scheduler.
func (s *TimerScheduler) Cancel(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t, ok := s.timers[h]; ok {
		t.Stop()
		delete(s.timers, h)
	}
}

// Stop cancels every pending timer.
func (s *TimerScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for h, t := range s.timers {
		t.Stop()
		delete(s.timers, h)
	}
}

// ManualScheduler queues callbacks until the caller fires them.
// It keeps a virtual clock so delays are still honored in order.
type ManualScheduler struct {
	mu      sync.Mutex
	next    Handle
	now     time.Duration
	pending map[Handle]manualTask
}

type manualTask struct {
	due time.Duration
	fn  func()
}

// NewManualScheduler creates an empty scheduler at virtual time zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{pending: make(map[Handle]manualTask)}
}

// ScheduleAfter implements Scheduler.
func (s *ManualScheduler) ScheduleAfter(d time.Duration, fn func()) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	s.pending[s.next] = manualTask{due: s.now + d, fn: fn}
	return s.next
}

// Cancel implements Scheduler.
func (s *ManualScheduler) Cancel(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, h)
}

// Pending returns the number of queued callbacks.
func (s *ManualScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Now returns the virtual time.
func (s *ManualScheduler) Now() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Fire runs the earliest queued callback, advancing the virtual clock to its
// due time. It returns false when nothing is queued.
func (s *ManualScheduler) Fire() bool {
	s.mu.Lock()
	if len(s.pending) == 0 {
		s.mu.Unlock()
		return false
	}

	handles := make([]Handle, 0, len(s.pending))
	for h := range s.pending {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool {
		ti, tj := s.pending[handles[i]], s.pending[handles[j]]
		if ti.due != tj.due {
			return ti.due < tj.due
		}
		return handles[i] < handles[j]
	})

	h := handles[0]
	task := s.pending[h]
	delete(s.pending, h)
	if task.due > s.now {
		s.now = task.due
	}
	s.mu.Unlock()

	// Run unlocked so the callback can schedule its successor.
	task.fn()
	return true
}

// RunFor fires up to n callbacks and returns how many ran.
func (s *ManualScheduler) RunFor(n int) int {
	ran := 0
	for ran < n && s.Fire() {
		ran++
	}
	return ran
}
