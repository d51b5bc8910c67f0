package reactive

import (
	"sync"
	"sync/atomic"

	"github.com/go-drift/termdrift/pkg/errors"
)

// Scheduler runs tasks on independent units of execution.
type Scheduler interface {
	Go(task func())
}

// TrackingScheduler runs every task on its own goroutine and counts tasks in
// flight so callers can wait for the system to settle.
type TrackingScheduler struct {
	mu      sync.Mutex
	idle    *sync.Cond
	pending int
	total   atomic.Uint64
}

// NewTrackingScheduler creates an idle scheduler.
func NewTrackingScheduler() *TrackingScheduler {
	s := &TrackingScheduler{}
	s.idle = sync.NewCond(&s.mu)
	return s
}

// Go runs task on a new goroutine. A panic inside task is recovered and
// reported to the global error handler.
func (s *TrackingScheduler) Go(task func()) {
	s.mu.Lock()
	s.pending++
	s.mu.Unlock()
	s.total.Add(1)

	go func() {
		defer s.done()
		defer errors.Recover("reactive.Scheduler.Go")
		task()
	}()
}

func (s *TrackingScheduler) done() {
	s.mu.Lock()
	s.pending--
	if s.pending == 0 {
		s.idle.Broadcast()
	}
	s.mu.Unlock()
}

// Wait blocks until no task is in flight. Tasks spawned by running tasks
// are waited for as well.
func (s *TrackingScheduler) Wait() {
	s.mu.Lock()
	for s.pending > 0 {
		s.idle.Wait()
	}
	s.mu.Unlock()
}

// Pending reports the number of tasks in flight.
func (s *TrackingScheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Total reports how many tasks were ever scheduled.
func (s *TrackingScheduler) Total() uint64 {
	return s.total.Load()
}

type schedulerBox struct{ s Scheduler }

var current atomic.Pointer[schedulerBox]

func init() {
	current.Store(&schedulerBox{s: NewTrackingScheduler()})
}

// SetScheduler replaces the process-wide scheduler and returns the previous
// one. Pass nil to install a fresh TrackingScheduler.
func SetScheduler(s Scheduler) Scheduler {
	if s == nil {
		s = NewTrackingScheduler()
	}
	return current.Swap(&schedulerBox{s: s}).s
}

// CurrentScheduler returns the process-wide scheduler.
func CurrentScheduler() Scheduler {
	return current.Load().s
}

// Go runs task on the current scheduler.
func Go(task func()) {
	CurrentScheduler().Go(task)
}

// Settle waits for the current scheduler to go idle when it supports waiting.
func Settle() {
	if w, ok := CurrentScheduler().(interface{ Wait() }); ok {
		w.Wait()
	}
}
