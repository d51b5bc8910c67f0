package core

import (
	goerrors "errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/go-drift/termdrift/pkg/errors"
)

// On registers fn for events of exactly type E on cx. Handlers are dropped
// when cx refreshes, so register them from the component body.
func On[E any](cx *Context, fn func(E)) {
	if fn == nil {
		return
	}
	key := reflect.TypeFor[E]()
	h := func(v any) {
		if e, ok := v.(E); ok {
			fn(e)
		}
	}
	cx.mu.Lock()
	cx.handlers[key] = append(cx.handlers[key], h)
	cx.mu.Unlock()
}

func (cx *Context) handlersFor(key reflect.Type) []func(any) {
	cx.mu.Lock()
	defer cx.mu.Unlock()
	return append(([]func(any))(nil), cx.handlers[key]...)
}

func (cx *Context) children() []*Context {
	var out []*Context
	for _, s := range cx.view.Load().scopes {
		out = append(out, s.Children()...)
	}
	return out
}

// Emit delivers e synchronously to every handler for type E in the subtree
// rooted at cx: cx's handlers first, in registration order, then each
// child's subtree in declaration order. A panicking handler is reported and
// skipped. Events nobody handles are dropped.
func Emit[E any](cx *Context, e E) {
	key := reflect.TypeFor[E]()
	walk(cx, func(c *Context) {
		for _, h := range c.handlersFor(key) {
			callHandler(c, h, e)
		}
	})
}

func walk(cx *Context, visit func(*Context)) {
	if cx == nil || cx.retired.Load() {
		return
	}
	visit(cx)
	for _, child := range cx.children() {
		walk(child, visit)
	}
}

func callHandler(cx *Context, h func(any), e any) {
	defer errors.Recover(fmt.Sprintf("core.Emit(%T) on %s", e, cx.name))
	h(e)
}

// EmitThreaded runs every handler for type E in the subtree rooted at cx on
// its own goroutine, with no ordering between them. The returned function
// waits for all of them and returns the panics of failed handlers, joined.
func EmitThreaded[E any](cx *Context, e E) func() error {
	key := reflect.TypeFor[E]()
	type target struct {
		cx *Context
		h  func(any)
	}
	var targets []target
	walk(cx, func(c *Context) {
		for _, h := range c.handlersFor(key) {
			targets = append(targets, target{cx: c, h: h})
		}
	})

	var (
		g    errgroup.Group
		mu   sync.Mutex
		errs []error
	)
	for _, t := range targets {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					pe := &errors.PanicError{
						Op:         fmt.Sprintf("core.EmitThreaded(%T) on %s", e, t.cx.name),
						Value:      r,
						StackTrace: errors.CaptureStack(),
						Timestamp:  time.Now(),
					}
					errors.ReportPanic(pe)
					mu.Lock()
					errs = append(errs, pe)
					mu.Unlock()
					err = pe
				}
			}()
			t.h(e)
			return nil
		})
	}
	return func() error {
		_ = g.Wait()
		mu.Lock()
		defer mu.Unlock()
		return goerrors.Join(errs...)
	}
}
