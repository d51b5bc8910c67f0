package reactive

import (
	goerrors "errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-drift/termdrift/pkg/errors"
)

type cell[T any] struct {
	mu       sync.Mutex
	value    T
	poisoned bool

	snapshot atomic.Pointer[T]

	depMu      sync.Mutex
	dependents []Effect
}

// publish stores a copy of the current value for lock-free readers.
// Callers hold c.mu.
func (c *cell[T]) publish() {
	v := c.value
	c.snapshot.Store(&v)
}

// State is a shared reactive value. Copies of a State share the same value
// and dependents; the cell lives as long as any copy does.
//
// The zero State is not usable; create one with UseState or NewState.
type State[T any] struct {
	c *cell[T]
}

// NewState creates a state cell holding initial.
func NewState[T any](initial T) State[T] {
	c := &cell[T]{value: initial}
	c.publish()
	return State[T]{c: c}
}

// UseState creates a state cell holding initial.
func UseState[T any](initial T) State[T] {
	return NewState(initial)
}

// Clone returns another handle to the same cell.
func (s State[T]) Clone() State[T] {
	return s
}

// Same reports whether s and other share a cell.
func (s State[T]) Same(other State[T]) bool {
	return s.c == other.c
}

// Get acquires the write guard. Mutations made through Guard.Mut notify
// dependents when the guard is released.
//
// Get returns an error of kind KindLock wrapping ErrPoisoned when a previous
// holder panicked inside Update. Calling Get from a dependent of the same
// state is safe because dependents run after the guard is released; calling
// it while already holding the guard in the same goroutine deadlocks.
func (s State[T]) Get() (*Guard[T], error) {
	s.c.mu.Lock()
	if s.c.poisoned {
		s.c.mu.Unlock()
		return nil, &errors.TermError{
			Op:        "reactive.State.Get",
			Kind:      errors.KindLock,
			Err:       errors.ErrPoisoned,
			Timestamp: time.Now(),
		}
	}
	return &Guard[T]{cell: s.c}, nil
}

// GetDL returns a copy of the most recently released value without touching
// the guard, so it never blocks. The copy is shallow: slices and maps still
// share backing storage with the cell.
func (s State[T]) GetDL() T {
	return *s.c.snapshot.Load()
}

// Set overwrites the value and notifies dependents.
func (s State[T]) Set(v T) error {
	g, err := s.Get()
	if err != nil {
		return err
	}
	*g.Mut() = v
	return g.Release()
}

// Update mutates the value through fn and notifies dependents. A panic in fn
// poisons the cell and is returned as a KindLock error.
func (s State[T]) Update(fn func(v *T)) (err error) {
	g, err := s.Get()
	if err != nil {
		return err
	}

	completed := false
	defer func() {
		if completed {
			return
		}
		r := recover()
		g.released = true
		s.c.poisoned = true
		s.c.mu.Unlock()
		err = &errors.TermError{
			Op:   "reactive.State.Update",
			Kind: errors.KindLock,
			Err: &errors.PanicError{
				Op:         "reactive.State.Update",
				Value:      r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			},
			Timestamp: time.Now(),
		}
	}()

	fn(g.Mut())
	completed = true
	return g.Release()
}

// Poisoned reports whether a holder panicked inside Update.
func (s State[T]) Poisoned() bool {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()
	return s.c.poisoned
}

// Heal clears the poisoned flag, accepting whatever value the panicking
// holder left behind.
func (s State[T]) Heal() {
	s.c.mu.Lock()
	s.c.poisoned = false
	s.c.publish()
	s.c.mu.Unlock()
}

// OnUpdate appends e to the dependents. Registering the same effect twice
// makes it fire twice.
func (s State[T]) OnUpdate(e Effect) {
	if e == nil {
		return
	}
	s.c.depMu.Lock()
	s.c.dependents = append(s.c.dependents, e)
	s.c.depMu.Unlock()
}

// ClearDependents drops every registered dependent.
func (s State[T]) ClearDependents() {
	s.c.depMu.Lock()
	s.c.dependents = nil
	s.c.depMu.Unlock()
}

// Dependents reports how many dependents are registered.
func (s State[T]) Dependents() int {
	s.c.depMu.Lock()
	defer s.c.depMu.Unlock()
	return len(s.c.dependents)
}

// notify invokes every live dependent once, in registration order. A
// panicking dependent does not stop the others; all failures are joined.
func (c *cell[T]) notify() error {
	c.depMu.Lock()
	live := c.dependents[:0]
	for _, d := range c.dependents {
		if !isInert(d) {
			live = append(live, d)
		}
	}
	clear(c.dependents[len(live):])
	c.dependents = live
	deps := slices.Clone(live)
	c.depMu.Unlock()

	var errs []error
	for i, d := range deps {
		if err := runIsolated(i, d); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	err := goerrors.Join(errs...)
	reportDependents("reactive.State.notify", err)
	return err
}

// Guard is exclusive access to a State's value. Release it exactly once;
// the guard must not be used afterwards.
type Guard[T any] struct {
	cell     *cell[T]
	updated  bool
	released bool
}

// Value returns the current value without marking the state updated.
func (g *Guard[T]) Value() T {
	return g.cell.value
}

// Mut returns a pointer to the value and marks the state updated.
func (g *Guard[T]) Mut() *T {
	g.updated = true
	return &g.cell.value
}

// Updated reports whether Mut was called.
func (g *Guard[T]) Updated() bool {
	return g.updated
}

// Release unlocks the state and, if it was updated, notifies every dependent
// once. Dependent panics are returned joined; they do not re-lock the cell.
func (g *Guard[T]) Release() error {
	if g == nil || g.released {
		return nil
	}
	g.released = true
	c := g.cell
	if g.updated {
		c.publish()
	}
	c.mu.Unlock()
	if !g.updated {
		return nil
	}
	return c.notify()
}
