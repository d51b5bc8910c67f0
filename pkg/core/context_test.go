package core

import (
	goerrors "errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-drift/termdrift/pkg/errors"
	"github.com/go-drift/termdrift/pkg/reactive"
	"github.com/go-drift/termdrift/pkg/render"
)

func TestContext_PlaceholderBeforePublish(t *testing.T) {
	cx := NewContext(text("hello"))

	if cx.Status() != StatusUninitialized {
		t.Errorf("Status() = %v, want %v", cx.Status(), StatusUninitialized)
	}
	if cx.Published() {
		t.Error("Published() = true before refresh")
	}
	if got := draw(cx.View(), 10, 1); got != "" {
		t.Errorf("placeholder drew %q", got)
	}

	cx.RefreshAtomic().Wait()

	if cx.Status() != StatusReady {
		t.Errorf("Status() = %v, want %v", cx.Status(), StatusReady)
	}
	if got := draw(cx.View(), 10, 1); got != "hello" {
		t.Errorf("View drew %q, want %q", got, "hello")
	}
}

func TestContext_RefreshAtomicFlag(t *testing.T) {
	release := make(chan struct{})
	cx := NewContext(func(cx *Context) View {
		<-release
		return nil
	})

	f := cx.RefreshAtomic()
	if f.IsSet() {
		t.Fatal("flag set before refresh finished")
	}
	close(release)

	select {
	case <-f.Done():
	case <-time.After(time.Second):
		t.Fatal("flag never set")
	}
	if !f.IsSet() {
		t.Error("IsSet() = false after Done")
	}
}

func TestContext_IdentityAndName(t *testing.T) {
	a, b := NewContext(text("a")), NewContext(text("b"))
	if a.ID() == b.ID() {
		t.Error("two contexts share an ID")
	}
	if a.Name() == "" {
		t.Error("Name() is empty")
	}
}

func TestContext_Counter(t *testing.T) {
	var (
		log   []int
		count reactive.State[int]
	)
	logged := make(chan int, 8)
	cx := NewContext(func(cx *Context) View {
		count = UseState(cx, 0)
		UseEffect(cx, func() { logged <- count.GetDL() }, count)
		return func(dc *render.DrawContext) {}
	})
	mount(cx)

	for i := 0; i < 3; i++ {
		_ = count.Update(func(v *int) { *v++ })
		reactive.Settle()
		log = append(log, <-logged)
	}

	want := []int{1, 2, 3}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("log = %v, want %v", log, want)
		}
	}
}

func TestContext_WatchRefreshes(t *testing.T) {
	var runs atomic.Int32
	var count reactive.State[int]
	cx := NewContext(func(cx *Context) View {
		runs.Add(1)
		count = UseState(cx, 0)
		cx.Watch(count)
		n := count.GetDL()
		return func(dc *render.DrawContext) {
			dc.Text(0, 0, string(rune('0'+n)))
		}
	})
	mount(cx)

	_ = count.Set(7)
	reactive.Settle()

	if runs.Load() != 2 {
		t.Errorf("runs = %d, want 2", runs.Load())
	}
	if got := draw(cx.View(), 3, 1); got != "7" {
		t.Errorf("View drew %q, want %q", got, "7")
	}
	// only the current run's watcher is registered
	if count.Dependents() != 1 {
		t.Errorf("Dependents() = %d, want 1", count.Dependents())
	}
}

func TestContext_StateSurvivesRefresh(t *testing.T) {
	var seen []reactive.State[string]
	cx := NewContext(func(cx *Context) View {
		seen = append(seen, UseState(cx, "x"))
		return nil
	})
	mount(cx)
	mount(cx)

	if len(seen) != 2 || !seen[0].Same(seen[1]) {
		t.Error("UseState returned a different cell after refresh")
	}
}

func TestContext_StaleEffectsGoInert(t *testing.T) {
	external := reactive.NewState(0)
	var calls atomic.Int32
	cx := NewContext(func(cx *Context) View {
		UseEffect(cx, func() { calls.Add(1) }, external)
		return nil
	})
	mount(cx)
	mount(cx)

	_ = external.Set(1)
	reactive.Settle()

	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
	if external.Dependents() != 1 {
		t.Errorf("Dependents() = %d, want 1 after pruning", external.Dependents())
	}
}

func TestContext_ErrorViewKeepsPrevious(t *testing.T) {
	prev := errors.Handler()
	var reported atomic.Pointer[errors.RefreshError]
	errors.SetHandler(&recordingHandler{onRefresh: func(e *errors.RefreshError) { reported.Store(e) }})
	defer errors.SetHandler(prev)

	var fail atomic.Bool
	cx := NewContext(func(cx *Context) View {
		if fail.Load() {
			panic("boom")
		}
		return func(dc *render.DrawContext) {
			dc.Text(0, 1, "content")
		}
	})
	mount(cx)

	fail.Store(true)
	mount(cx)

	if cx.Status() != StatusReady {
		t.Errorf("Status() = %v, want %v", cx.Status(), StatusReady)
	}
	got := draw(cx.View(), 30, 2)
	want := "render error: boom\ncontent"
	if got != want {
		t.Errorf("View drew %q, want %q", got, want)
	}
	re := reported.Load()
	if re == nil {
		t.Fatal("refresh error was not reported")
	}
	if re.Recovered != "boom" || re.Context != cx.ID().String() {
		t.Errorf("reported %+v", re)
	}
}

func TestContext_ErrorViewKeepsChildren(t *testing.T) {
	prev := errors.Handler()
	errors.SetHandler(&recordingHandler{})
	defer errors.SetHandler(prev)

	var fail atomic.Bool
	var pongs atomic.Int32
	var partial atomic.Pointer[Context]
	cx := NewContext(func(cx *Context) View {
		On(cx, func(pong) { pongs.Add(1) })
		if fail.Load() {
			partial.Store(cx.Scope().Add(text("partial")))
			panic("boom")
		}
		cx.Scope().Add(func(cx *Context) View {
			return func(dc *render.DrawContext) { dc.Text(0, 1, "child") }
		})
		return cx.DrawChildren
	})
	mount(cx)
	if got := draw(cx.View(), 20, 2); got != "\nchild" {
		t.Fatalf("before failure drew %q", got)
	}

	fail.Store(true)
	mount(cx)

	want := "render error: boom\nchild"
	if got := draw(cx.View(), 20, 2); got != want {
		t.Errorf("after failure drew %q, want %q", got, want)
	}
	if n := len(cx.Scopes()); n != 1 {
		t.Errorf("len(Scopes()) = %d, want 1", n)
	}
	if p := partial.Load(); p == nil || !p.Retired() {
		t.Error("child declared by the failed run was not retired")
	}

	Emit(cx, pong{})
	if n := pongs.Load(); n != 1 {
		t.Errorf("handler ran %d times, want 1", n)
	}

	fail.Store(false)
	mount(cx)
	if got := draw(cx.View(), 20, 2); got != "\nchild" {
		t.Errorf("after recovery drew %q", got)
	}
}

func TestContext_CustomErrorView(t *testing.T) {
	SetErrorViewBuilder(func(err *errors.RefreshError, previous View) View {
		return func(dc *render.DrawContext) { dc.Text(0, 0, "oops") }
	})
	defer SetErrorViewBuilder(nil)

	cx := mount(NewContext(func(cx *Context) View { panic("x") }))

	if got := draw(cx.View(), 10, 1); got != "oops" {
		t.Errorf("View drew %q, want %q", got, "oops")
	}
}

func TestContext_Retire(t *testing.T) {
	var child *Context
	disposed := false
	var handled atomic.Int32
	cx := NewContext(func(cx *Context) View {
		On(cx, func(string) { handled.Add(1) })
		child = cx.Scope().Add(text("child"))
		cx.OnRetire(func() { disposed = true })
		return nil
	})
	mount(cx)

	cx.Retire()

	if cx.Status() != StatusRetired {
		t.Errorf("Status() = %v, want %v", cx.Status(), StatusRetired)
	}
	if !child.Retired() {
		t.Error("child not retired")
	}
	if !disposed {
		t.Error("OnRetire callback did not run")
	}
	Emit(cx, "ignored")
	if handled.Load() != 0 {
		t.Error("retired context handled an event")
	}
	cx.RefreshAtomic().Wait()
	if cx.Status() != StatusRetired {
		t.Error("refresh revived a retired context")
	}

	late := false
	cx.OnRetire(func() { late = true })
	if !late {
		t.Error("OnRetire after retirement did not run immediately")
	}
}

func TestContext_RetireDiscardsInflightRefresh(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	cx := NewContext(func(cx *Context) View {
		close(started)
		<-release
		return func(dc *render.DrawContext) { dc.Text(0, 0, "late") }
	})

	f := cx.RefreshAtomic()
	<-started
	cx.Retire()
	close(release)
	f.Wait()

	if cx.Published() {
		t.Error("stale refresh result was published")
	}
}

func TestContext_ParentRefreshRebuildsChildren(t *testing.T) {
	var children []*Context
	parent := NewContext(func(cx *Context) View {
		children = append(children, cx.Scope().Add(text("c")))
		return nil
	})
	mount(parent)
	mount(parent)

	if len(children) != 2 {
		t.Fatalf("children = %d, want 2", len(children))
	}
	if !children[0].Retired() {
		t.Error("first child survived parent refresh")
	}
	if children[1].Retired() {
		t.Error("new child retired")
	}
}

type fakeObserver struct {
	started, finished, invalidated atomic.Int32
	lastErr                        atomic.Pointer[error]
}

func (o *fakeObserver) RefreshStarted(*Context) { o.started.Add(1) }
func (o *fakeObserver) RefreshFinished(_ *Context, _ time.Duration, err error) {
	o.finished.Add(1)
	if err != nil {
		o.lastErr.Store(&err)
	}
}
func (o *fakeObserver) Invalidated(*Context) { o.invalidated.Add(1) }

func TestContext_Observer(t *testing.T) {
	obs := &fakeObserver{}
	prev := SetObserver(obs)
	defer SetObserver(prev)

	mount(NewContext(text("a")))
	mount(NewContext(func(cx *Context) View { panic("bad") }))

	if obs.started.Load() != 2 || obs.finished.Load() != 2 {
		t.Errorf("started, finished = %d, %d; want 2, 2", obs.started.Load(), obs.finished.Load())
	}
	p := obs.lastErr.Load()
	if p == nil {
		t.Fatal("observer did not see the refresh error")
	}
	var re *errors.RefreshError
	if !goerrors.As(*p, &re) {
		t.Errorf("error %v is not a RefreshError", *p)
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		StatusUninitialized: "uninitialized",
		StatusRefreshing:    "refreshing",
		StatusReady:         "ready",
		StatusRetired:       "retired",
		Status(42):          "unknown",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}

type recordingHandler struct {
	onRefresh func(*errors.RefreshError)
	onPanic   func(*errors.PanicError)
}

func (h *recordingHandler) HandleError(*errors.TermError) {}
func (h *recordingHandler) HandlePanic(p *errors.PanicError) {
	if h.onPanic != nil {
		h.onPanic(p)
	}
}
func (h *recordingHandler) HandleRefreshError(e *errors.RefreshError) {
	if h.onRefresh != nil {
		h.onRefresh(e)
	}
}
