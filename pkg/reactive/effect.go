package reactive

import (
	"sync"
	"time"

	"github.com/go-drift/termdrift/pkg/errors"
)

// Effect is a callback invoked when a dependency fires.
type Effect interface {
	Run()
}

// EffectFunc adapts a plain function to Effect. It runs inline.
type EffectFunc func()

// Run calls f.
func (f EffectFunc) Run() { f() }

// Dependency is anything an Effect can be registered against.
type Dependency interface {
	OnUpdate(e Effect)
}

// inert is implemented by effects that no longer need to fire. State cells
// drop inert dependents while notifying.
type inert interface {
	Inert() bool
}

func isInert(e Effect) bool {
	if i, ok := e.(inert); ok {
		return i.Inert()
	}
	return false
}

// Hook is a shared callback with mutually exclusive access: concurrent Runs
// are serialized.
type Hook struct {
	mu sync.Mutex
	fn func()
}

// NewHook wraps fn.
func NewHook(fn func()) *Hook {
	return &Hook{fn: fn}
}

// Run invokes the wrapped callback while holding the hook's lock.
func (h *Hook) Run() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.fn != nil {
		h.fn()
	}
}

// Replace swaps the callback. The next Run uses fn.
func (h *Hook) Replace(fn func()) {
	h.mu.Lock()
	h.fn = fn
	h.mu.Unlock()
}

type asyncEffect struct {
	inner Effect
}

// Async wraps e so that every Run dispatches e onto the current Scheduler
// instead of running it in the caller's goroutine.
func Async(e Effect) Effect {
	return asyncEffect{inner: e}
}

func (a asyncEffect) Run() {
	inner := a.inner
	Go(inner.Run)
}

func (a asyncEffect) Inert() bool {
	return isInert(a.inner)
}

// UseEffect registers f against every dependency in deps. Each firing runs f
// on its own scheduled task; concurrent firings are serialized by a Hook.
func UseEffect(f func(), deps ...Dependency) Effect {
	e := Async(NewHook(f))
	for _, dep := range deps {
		if dep != nil {
			dep.OnUpdate(e)
		}
	}
	return e
}

// runIsolated invokes e, converting a panic into a DependentError.
func runIsolated(index int, e Effect) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &errors.DependentError{
				Index:      index,
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
			}
		}
	}()
	e.Run()
	return nil
}

func reportDependents(op string, err error) {
	errors.Report(&errors.TermError{
		Op:        op,
		Kind:      errors.KindDependent,
		Err:       err,
		Timestamp: time.Now(),
	})
}
