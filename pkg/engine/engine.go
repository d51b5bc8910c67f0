package engine

import (
	"context"
	goerrors "errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/go-drift/termdrift/pkg/core"
	"github.com/go-drift/termdrift/pkg/errors"
	"github.com/go-drift/termdrift/pkg/input"
	"github.com/go-drift/termdrift/pkg/logging"
	"github.com/go-drift/termdrift/pkg/render"
)

// ErrRunning is returned by Run when the engine is already running.
var ErrRunning = goerrors.New("engine already running")

// Terminal is where frames go.
type Terminal interface {
	// Size returns the drawable area in cells.
	Size() (width, height int)
	// Flush presents a complete frame.
	Flush(buf *render.Buffer) error
}

// FrameResult describes one drawn frame.
type FrameResult struct {
	// Number counts frames drawn by the engine, starting at 1.
	Number uint64
	// Took is the time spent drawing and flushing.
	Took time.Duration
	// Errors holds everything reported through pkg/errors since the
	// previous frame, including panics recovered while drawing.
	Errors []error
	// Err is the flush failure, if any. It is always KindIO.
	Err error
}

// Engine draws a component tree to a Terminal.
type Engine struct {
	opts  options
	root  *core.Context
	term  Terminal
	stats *Stats

	frameMu sync.Mutex
	buf     *render.Buffer
	frames  atomic.Uint64
	ticks   atomic.Uint64
	last    atomic.Pointer[string]

	limiter *rate.Limiter
	wake    chan struct{}
	running atomic.Bool

	errs        *collector
	prevHandler errors.ErrorHandler
	prevObs     core.Observer
	closeOnce   sync.Once
}

// New mounts root and prepares it for drawing to term. The engine
// installs itself as the framework error handler and refresh observer
// until Close; the previous ones keep receiving every report.
func New(root core.Component, term Terminal, opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.registry == nil {
		o.registry = prometheus.NewRegistry()
	}

	e := &Engine{
		opts:    o,
		term:    term,
		stats:   NewStats(o.registry),
		buf:     render.NewBuffer(term.Size()),
		limiter: rate.NewLimiter(rate.Limit(o.maxFPS), 1),
		wake:    make(chan struct{}, 1),
		errs:    &collector{},
	}

	e.prevHandler = errors.Handler()
	errors.SetHandler(errors.MultiHandler{e.prevHandler, e.errs})
	e.prevObs = core.SetObserver(observer{e: e})

	e.root = core.NewContext(root)
	e.root.Refresh()
	return e
}

// Root returns the root Context.
func (e *Engine) Root() *core.Context { return e.root }

// Stats returns the engine metrics.
func (e *Engine) Stats() *Stats { return e.stats }

// LastFrame returns the text of the most recent frame.
func (e *Engine) LastFrame() string {
	if s := e.last.Load(); s != nil {
		return *s
	}
	return ""
}

// Frame draws the root's current view and flushes it.
func (e *Engine) Frame() FrameResult {
	e.frameMu.Lock()
	defer e.frameMu.Unlock()

	start := time.Now()
	res := FrameResult{Number: e.frames.Add(1)}

	w, h := e.term.Size()
	if w != e.buf.Width() || h != e.buf.Height() {
		e.buf.Resize(w, h)
	} else {
		e.buf.Clear()
	}
	dc := render.NewDrawContext(w, h)
	e.draw(dc)
	e.buf.Rasterize(dc)

	if err := e.term.Flush(e.buf); err != nil {
		if errors.KindOf(err) != errors.KindIO {
			err = &errors.TermError{Op: "engine.Frame", Kind: errors.KindIO, Err: err, Timestamp: time.Now()}
		}
		logging.Logger().Error("terminal flush failed", "frame", res.Number, "error", err)
		res.Err = err
	}
	text := e.buf.String()
	e.last.Store(&text)

	res.Took = time.Since(start)
	e.stats.frame(res.Took)
	res.Errors = e.errs.drain()
	for _, err := range res.Errors {
		e.stats.error(err)
		if e.opts.onError != nil {
			e.opts.onError(err)
		}
	}
	if len(res.Errors) > 0 {
		logging.Logger().Warn("frame collected errors", "frame", res.Number, "count", len(res.Errors))
	}
	return res
}

func (e *Engine) draw(dc *render.DrawContext) {
	defer errors.Recover("engine.Frame")
	dc.Draw(e.root.View())
}

// RequestFrame asks Run for a frame outside the tick schedule. Requests
// beyond the configured frame rate are dropped; the next tick draws
// anyway.
func (e *Engine) RequestFrame() {
	if !e.running.Load() || !e.limiter.Allow() {
		return
	}
	select {
	case e.wake <- struct{}{}:
	default:
	}
}

// Tick emits the next input.Tick to the tree and draws a frame.
func (e *Engine) Tick(now time.Time) FrameResult {
	core.Emit(e.root, input.Tick{Frame: e.ticks.Add(1) - 1, At: now})
	return e.Frame()
}

// Dispatch delivers a terminal event to the tree. Values that are not
// input events are ignored.
func (e *Engine) Dispatch(ev any) {
	switch ev := ev.(type) {
	case input.Key:
		core.Emit(e.root, ev)
	case input.Mouse:
		core.Emit(e.root, ev)
	case input.Paste:
		core.Emit(e.root, ev)
	case input.Focus:
		core.Emit(e.root, ev)
	case input.Resize:
		logging.Logger().Info("terminal resized", "width", ev.Width, "height", ev.Height)
		core.Emit(e.root, ev)
	case input.Tick:
		core.Emit(e.root, ev)
	default:
		logging.Logger().Debug("ignored event", "type", fmt.Sprintf("%T", ev))
	}
}

func (e *Engine) quits(ev any) bool {
	k, ok := ev.(input.Key)
	if !ok || !e.opts.quitKeys {
		return false
	}
	return k.Is(input.KeyCtrlC) || (k.IsRune('c') && k.Mod&input.ModCtrl != 0)
}

// Run draws a frame every tick interval and dispatches events until ctx
// is done or ctrl+c is pressed, both of which return nil. A failed flush
// ends Run with that error. A closed events channel stops input but not
// drawing.
func (e *Engine) Run(ctx context.Context, events <-chan any) error {
	if !e.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer e.running.Store(false)

	log := logging.Logger()
	w, h := e.term.Size()
	log.Info("engine started", "tick", e.opts.tick, "width", w, "height", h)
	defer log.Info("engine stopped", "frames", e.frames.Load())

	if e.opts.debugAddr != "" {
		srv, err := startDebugServer(e, e.opts.debugAddr)
		if err != nil {
			return err
		}
		defer srv.stop()
	}

	ticker := time.NewTicker(e.opts.tick)
	defer ticker.Stop()

	if res := e.Frame(); res.Err != nil {
		return res.Err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			if e.quits(ev) {
				return nil
			}
			e.Dispatch(ev)
		case now := <-ticker.C:
			if res := e.Tick(now); res.Err != nil {
				return res.Err
			}
		case <-e.wake:
			if res := e.Frame(); res.Err != nil {
				return res.Err
			}
		}
	}
}

// Close retires the tree and restores the previous error handler and
// observer.
func (e *Engine) Close() {
	e.closeOnce.Do(func() {
		e.root.Retire()
		core.SetObserver(e.prevObs)
		errors.SetHandler(e.prevHandler)
	})
}
