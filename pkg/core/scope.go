package core

import (
	"sync"

	"github.com/go-drift/termdrift/pkg/reactive"
	"github.com/go-drift/termdrift/pkg/render"
)

// Wrapper draws a child's View on the child's behalf, for example inside a
// border or at an offset.
type Wrapper func(dc *render.DrawContext, child View)

type scopeEntry struct {
	cx   *Context
	wrap Wrapper
}

// Scope is an ordered list of child Contexts owned by one Context.
type Scope struct {
	mu      sync.Mutex
	entries []scopeEntry
	retired bool
}

// Scope declares a new static scope on cx for the current run.
func (cx *Context) Scope() *Scope {
	s := &Scope{}
	cx.mu.Lock()
	cx.scopes = append(cx.scopes, s)
	cx.mu.Unlock()
	return s
}

// DynScope declares a scope whose contents are produced by drawer. The
// drawer runs once now and again every time one of deps fires; the scope is
// cleared before each run, so the drawer always declares the full list.
func (cx *Context) DynScope(drawer func(s *Scope), deps ...reactive.Dependency) *Scope {
	s := cx.Scope()
	if drawer == nil {
		return s
	}
	drawer(s)
	e := cx.bind(reactive.Async(reactive.NewHook(func() {
		if cx.retired.Load() {
			return
		}
		s.Clear()
		drawer(s)
		notifyChanged(cx)
	})))
	for _, dep := range deps {
		if dep != nil {
			dep.OnUpdate(e)
		}
	}
	return s
}

// Add creates a child Context for component, appends it and schedules its
// first refresh.
func (s *Scope) Add(component Component) *Context {
	return s.AddWrapped(component, nil)
}

// AddWrapped is like Add but draws the child through w.
func (s *Scope) AddWrapped(component Component, w Wrapper) *Context {
	child := NewContext(component)
	s.mu.Lock()
	if s.retired {
		s.mu.Unlock()
		child.Retire()
		return child
	}
	s.entries = append(s.entries, scopeEntry{cx: child, wrap: w})
	s.mu.Unlock()
	child.Refresh()
	return child
}

// Clear retires every child and empties the scope.
func (s *Scope) Clear() {
	s.mu.Lock()
	entries := s.entries
	s.entries = nil
	s.mu.Unlock()
	for _, e := range entries {
		e.cx.Retire()
	}
}

func (s *Scope) retire() {
	s.mu.Lock()
	s.retired = true
	s.mu.Unlock()
	s.Clear()
}

// Children returns the child Contexts in declaration order.
func (s *Scope) Children() []*Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Context, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.cx
	}
	return out
}

// Len returns the number of children.
func (s *Scope) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Scope) snapshot() []scopeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]scopeEntry(nil), s.entries...)
}

// Draw draws every child's published View into dc, through its wrapper if
// it has one.
func (s *Scope) Draw(dc *render.DrawContext) {
	for _, e := range s.snapshot() {
		v := e.cx.View()
		if e.wrap != nil {
			e.wrap(dc, v)
			continue
		}
		dc.Draw(v)
	}
}

// DrawChildren draws the children of every scope that belongs to the
// published View, in declaration order.
func (cx *Context) DrawChildren(dc *render.DrawContext) {
	for _, s := range cx.view.Load().scopes {
		s.Draw(dc)
	}
}
