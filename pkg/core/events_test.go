package core

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-drift/termdrift/pkg/reactive"
)

type ping struct{ n int }
type pong struct{}

func recorder(name string, log *[]string, mu *sync.Mutex, children ...Component) Component {
	return func(cx *Context) View {
		On(cx, func(ping) {
			mu.Lock()
			*log = append(*log, name)
			mu.Unlock()
		})
		s := cx.Scope()
		for _, c := range children {
			s.Add(c)
		}
		return nil
	}
}

func TestEmit_DepthFirstPreOrder(t *testing.T) {
	var (
		log []string
		mu  sync.Mutex
	)
	root := NewContext(recorder("A", &log, &mu,
		recorder("B", &log, &mu, recorder("C", &log, &mu)),
		recorder("D", &log, &mu),
	))
	mount(root)

	Emit(root, ping{})

	want := []string{"A", "B", "C", "D"}
	if len(log) != len(want) {
		t.Fatalf("log = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("log = %v, want %v", log, want)
			break
		}
	}
}

func TestEmit_ParentThenChildren(t *testing.T) {
	var (
		log []string
		mu  sync.Mutex
	)
	root := NewContext(recorder("A", &log, &mu,
		recorder("B", &log, &mu),
		recorder("C", &log, &mu),
	))
	mount(root)

	Emit(root, ping{})

	if len(log) != 3 || log[0] != "A" || log[1] != "B" || log[2] != "C" {
		t.Errorf("log = %v, want [A B C]", log)
	}
}

func TestEmit_KindMismatchIgnored(t *testing.T) {
	var got atomic.Int32
	cx := mount(NewContext(func(cx *Context) View {
		On(cx, func(p ping) { got.Add(int32(p.n)) })
		return nil
	}))

	Emit(cx, pong{})
	Emit(cx, 5)
	Emit(cx, ping{n: 2})

	if got.Load() != 2 {
		t.Errorf("got = %d, want 2", got.Load())
	}
}

func TestEmit_HandlerPanicIsolated(t *testing.T) {
	var after atomic.Bool
	cx := mount(NewContext(func(cx *Context) View {
		On(cx, func(ping) { panic("handler") })
		On(cx, func(ping) { after.Store(true) })
		return nil
	}))

	Emit(cx, ping{})

	if !after.Load() {
		t.Error("second handler did not run")
	}
}

func TestEmit_HandlersClearedOnRefresh(t *testing.T) {
	var calls atomic.Int32
	cx := mount(NewContext(func(cx *Context) View {
		On(cx, func(ping) { calls.Add(1) })
		return nil
	}))
	mount(cx)
	mount(cx)

	Emit(cx, ping{})

	if calls.Load() != 1 {
		t.Errorf("calls = %d, want 1", calls.Load())
	}
}

func TestEmitThreaded(t *testing.T) {
	var calls atomic.Int32
	leaf := func(cx *Context) View {
		On(cx, func(p ping) { calls.Add(int32(p.n)) })
		return nil
	}
	root := mount(NewContext(func(cx *Context) View {
		On(cx, func(p ping) { calls.Add(int32(p.n)) })
		cx.Scope().Add(leaf)
		cx.Scope().Add(leaf)
		return nil
	}))

	wait := EmitThreaded(root, ping{n: 1})
	if err := wait(); err != nil {
		t.Fatalf("wait: %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("calls = %d, want 3", calls.Load())
	}
}

func TestEmitThreaded_ReportsPanics(t *testing.T) {
	var ok atomic.Bool
	cx := mount(NewContext(func(cx *Context) View {
		On(cx, func(ping) { panic("threaded") })
		On(cx, func(ping) { ok.Store(true) })
		return nil
	}))

	err := EmitThreaded(cx, ping{})()
	if err == nil {
		t.Fatal("wait returned nil, want handler panic")
	}
	if !ok.Load() {
		t.Error("healthy handler did not run")
	}
}

func TestUseSyncState(t *testing.T) {
	type resized struct{ w int }
	var width reactive.State[int]
	cx := mount(NewContext(func(cx *Context) View {
		width = UseSyncState(cx, 0, func(e resized) int { return e.w })
		return nil
	}))

	Emit(cx, resized{w: 80})

	if width.GetDL() != 80 {
		t.Errorf("width = %d, want 80", width.GetDL())
	}
}

func TestUseSyncEffect(t *testing.T) {
	type changed struct{ v string }
	got := make(chan string, 4)
	var st reactive.State[int]
	mount(NewContext(func(cx *Context) View {
		st = UseState(cx, 0)
		On(cx, func(e changed) { got <- e.v })
		UseSyncEffect(cx, st, func(v int) changed {
			return changed{v: string(rune('a' + v))}
		}, st)
		return nil
	}))

	_ = st.Set(2)
	reactive.Settle()

	select {
	case v := <-got:
		if v != "c" {
			t.Errorf("event = %q, want %q", v, "c")
		}
	default:
		t.Fatal("no event emitted")
	}
}

func TestEmit_DuringRefreshReachesPublishedChildren(t *testing.T) {
	var hits atomic.Int32
	var blocking atomic.Bool
	entered := make(chan struct{})
	gate := make(chan struct{})
	child := func(cx *Context) View {
		On(cx, func(pong) { hits.Add(1) })
		return nil
	}
	cx := mount(NewContext(func(cx *Context) View {
		cx.Scope().Add(child)
		if blocking.Load() {
			close(entered)
			<-gate
		}
		return cx.DrawChildren
	}))

	blocking.Store(true)
	done := cx.RefreshAtomic()
	<-entered
	Emit(cx, pong{})
	if n := hits.Load(); n != 1 {
		t.Errorf("during refresh: handler ran %d times, want 1", n)
	}

	close(gate)
	done.Wait()
	reactive.Settle()
	Emit(cx, pong{})
	if n := hits.Load(); n != 2 {
		t.Errorf("after refresh: handler ran %d times, want 2", n)
	}
}
