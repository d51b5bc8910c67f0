package core

import (
	"reflect"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/go-drift/termdrift/pkg/errors"
	"github.com/go-drift/termdrift/pkg/logging"
	"github.com/go-drift/termdrift/pkg/reactive"
	"github.com/go-drift/termdrift/pkg/render"
)

// View draws a component's output. See render.View.
type View = render.View

// Component builds a View for a Context. It runs again on every refresh.
type Component func(cx *Context) View

// Status is a Context's lifecycle phase.
type Status int32

const (
	StatusUninitialized Status = iota
	StatusRefreshing
	StatusReady
	StatusRetired
)

// String returns the phase name.
func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusRefreshing:
		return "refreshing"
	case StatusReady:
		return "ready"
	case StatusRetired:
		return "retired"
	default:
		return "unknown"
	}
}

type published struct {
	view   View
	scopes []*Scope
	ok     bool
}

func placeholder(*render.DrawContext) {}

// Context hosts one component instance.
type Context struct {
	id        uuid.UUID
	name      string
	component Component

	// refreshMu serializes refreshes. Hook slots are only touched while it
	// is held.
	refreshMu sync.Mutex
	slots     []any
	cursor    int
	mounts    []*reactive.Mount

	mu        sync.Mutex
	handlers  map[reflect.Type][]func(any)
	scopes    []*Scope
	owned     []interface{ ClearDependents() }
	disposers []func()

	generation atomic.Uint64
	status     atomic.Int32
	retired    atomic.Bool
	view       atomic.Pointer[published]
}

// NewContext creates an uninitialized Context for component. Nothing runs
// until Refresh is called.
func NewContext(component Component) *Context {
	cx := &Context{
		id:        uuid.New(),
		name:      componentName(component),
		component: component,
		handlers:  make(map[reflect.Type][]func(any)),
	}
	cx.view.Store(&published{view: placeholder})
	return cx
}

func componentName(c Component) string {
	if c == nil {
		return "<nil>"
	}
	if fn := runtime.FuncForPC(reflect.ValueOf(c).Pointer()); fn != nil {
		return fn.Name()
	}
	return reflect.TypeOf(c).String()
}

// ID returns the Context's unique identity.
func (cx *Context) ID() uuid.UUID { return cx.id }

// Name returns the component's function name.
func (cx *Context) Name() string { return cx.name }

// Status returns the current lifecycle phase.
func (cx *Context) Status() Status { return Status(cx.status.Load()) }

// Retired reports whether the Context has been retired.
func (cx *Context) Retired() bool { return cx.retired.Load() }

// View returns the last published View without blocking. Before the first
// publish it returns a View that draws nothing.
func (cx *Context) View() View {
	return cx.view.Load().view
}

// Published reports whether a View has been published.
func (cx *Context) Published() bool {
	return cx.view.Load().ok
}

// Refresh schedules the component to run again on the current scheduler.
// Refreshing a retired Context does nothing.
func (cx *Context) Refresh() {
	if cx.retired.Load() {
		return
	}
	reactive.Go(cx.refresh)
}

// RefreshAtomic schedules a refresh and returns a Flag set once it has
// finished, whether it published a View or not.
func (cx *Context) RefreshAtomic() *Flag {
	f := newFlag()
	if cx.retired.Load() {
		f.set()
		return f
	}
	reactive.Go(func() {
		defer f.set()
		cx.refresh()
	})
	return f
}

// RefreshNow runs the component synchronously in the calling goroutine.
func (cx *Context) RefreshNow() {
	cx.refresh()
}

func (cx *Context) refresh() {
	cx.refreshMu.Lock()
	defer cx.refreshMu.Unlock()
	if cx.retired.Load() {
		return
	}

	start := time.Now()
	cx.status.Store(int32(StatusRefreshing))
	obs := currentObserver()
	if obs != nil {
		obs.RefreshStarted(cx)
	}

	cx.generation.Add(1)
	oldScopes, oldHandlers := cx.reset()
	cx.cursor = 0
	cx.mounts = nil

	view, refreshErr := cx.run()

	// stale is retired once the outcome is published: the previous run's
	// scopes on success, the failed run's partial scopes otherwise.
	stale := oldScopes
	if refreshErr != nil {
		errors.ReportRefreshError(refreshErr)
		prev := cx.view.Load()
		view = errorViewBuilder()(refreshErr, prev.view)

		cx.mu.Lock()
		stale = cx.scopes
		cx.scopes = oldScopes
		cx.handlers = oldHandlers
		cx.mu.Unlock()
	}
	defer func() {
		for _, s := range stale {
			s.retire()
		}
	}()
	if view == nil {
		view = placeholder
	}

	cx.mu.Lock()
	if cx.retired.Load() {
		clear(cx.handlers)
		scopes := cx.scopes
		cx.scopes = nil
		cx.mu.Unlock()
		for _, s := range scopes {
			s.retire()
		}
		return
	}
	cx.view.Store(&published{view: view, scopes: append([]*Scope(nil), cx.scopes...), ok: true})
	cx.status.Store(int32(StatusReady))
	cx.mu.Unlock()

	var err error
	if refreshErr != nil {
		err = refreshErr
	}
	if obs != nil {
		obs.RefreshFinished(cx, time.Since(start), err)
	}
	logging.Logger().Debug("context refreshed", "component", cx.name, "id", cx.id, "duration", time.Since(start))

	for _, m := range cx.mounts {
		_ = m.Mount()
	}
}

// reset clears everything the previous run declared and returns its scopes
// and handlers. The scopes keep drawing until the new View is published.
func (cx *Context) reset() ([]*Scope, map[reflect.Type][]func(any)) {
	cx.mu.Lock()
	defer cx.mu.Unlock()
	handlers := cx.handlers
	cx.handlers = make(map[reflect.Type][]func(any))
	old := cx.scopes
	cx.scopes = nil
	for _, st := range cx.owned {
		st.ClearDependents()
	}
	return old, handlers
}

func (cx *Context) run() (view View, refreshErr *errors.RefreshError) {
	defer func() {
		if r := recover(); r != nil {
			refreshErr = &errors.RefreshError{
				Component:  cx.name,
				Context:    cx.id.String(),
				Recovered:  r,
				StackTrace: errors.CaptureStack(),
				Timestamp:  time.Now(),
			}
		}
	}()
	if cx.component == nil {
		return nil, nil
	}
	return cx.component(cx), nil
}

// Retire detaches the Context. Its children are retired, its handlers and
// owned dependents dropped, its disposers run in reverse order, and every
// effect created through its hooks stops firing. A refresh still in flight
// finishes but its result is discarded.
func (cx *Context) Retire() {
	if !cx.retired.CompareAndSwap(false, true) {
		return
	}
	cx.generation.Add(1)
	cx.status.Store(int32(StatusRetired))

	cx.mu.Lock()
	clear(cx.handlers)
	scopes := cx.scopes
	cx.scopes = nil
	owned := cx.owned
	cx.owned = nil
	disposers := cx.disposers
	cx.disposers = nil
	cx.mu.Unlock()

	for _, s := range scopes {
		s.retire()
	}
	for _, st := range owned {
		st.ClearDependents()
	}
	for i := len(disposers) - 1; i >= 0; i-- {
		disposers[i]()
	}
	logging.Logger().Debug("context retired", "component", cx.name, "id", cx.id)
}

// OnRetire registers cleanup to run when the Context retires. If it already
// has, cleanup runs immediately.
func (cx *Context) OnRetire(cleanup func()) {
	if cleanup == nil {
		return
	}
	cx.mu.Lock()
	if cx.retired.Load() {
		cx.mu.Unlock()
		cleanup()
		return
	}
	cx.disposers = append(cx.disposers, cleanup)
	cx.mu.Unlock()
}

// Scopes returns the scopes behind the published View. While a refresh is
// running these are still the previous run's.
func (cx *Context) Scopes() []*Scope {
	return append([]*Scope(nil), cx.view.Load().scopes...)
}

// Flag is set once an asynchronous operation finishes.
type Flag struct {
	done chan struct{}
	once sync.Once
}

func newFlag() *Flag {
	return &Flag{done: make(chan struct{})}
}

func (f *Flag) set() {
	f.once.Do(func() { close(f.done) })
}

// IsSet reports whether the operation has finished.
func (f *Flag) IsSet() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Done is closed when the flag is set.
func (f *Flag) Done() <-chan struct{} {
	return f.done
}

// Wait blocks until the flag is set.
func (f *Flag) Wait() {
	<-f.done
}
