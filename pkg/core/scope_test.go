package core

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/go-drift/termdrift/pkg/reactive"
	"github.com/go-drift/termdrift/pkg/render"
)

func TestScope_DrawChildrenInOrder(t *testing.T) {
	line := func(y int, s string) Component {
		return func(cx *Context) View {
			return func(dc *render.DrawContext) { dc.Text(0, y, s) }
		}
	}
	cx := mount(NewContext(func(cx *Context) View {
		s := cx.Scope()
		s.Add(line(0, "first"))
		s.Add(line(1, "second"))
		cx.Scope().Add(line(0, "X"))
		return cx.DrawChildren
	}))

	want := "Xirst\nsecond"
	if got := draw(cx.View(), 10, 2); got != want {
		t.Errorf("drew %q, want %q", got, want)
	}
	if n := len(cx.Scopes()); n != 2 {
		t.Errorf("len(Scopes()) = %d, want 2", n)
	}
}

func TestScope_AddWrapped(t *testing.T) {
	indent := func(dc *render.DrawContext, child View) {
		sub := dc.Sub(dc.Width()-2, dc.Height())
		sub.Draw(child)
		dc.Child(2, 0, sub)
	}
	cx := mount(NewContext(func(cx *Context) View {
		cx.Scope().AddWrapped(text("hi"), indent)
		return cx.DrawChildren
	}))

	if got := draw(cx.View(), 6, 1); got != "  hi" {
		t.Errorf("drew %q, want %q", got, "  hi")
	}
}

func TestScope_ClearRetiresChildren(t *testing.T) {
	s := &Scope{}
	a := s.Add(text("a"))
	b := s.Add(text("b"))
	reactive.Settle()

	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	s.Clear()

	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
	if !a.Retired() || !b.Retired() {
		t.Error("children not retired by Clear")
	}
}

func TestDynScope_FullReplace(t *testing.T) {
	var items reactive.State[[]string]
	var runs atomic.Int32
	var dyn *Scope
	cx := mount(NewContext(func(cx *Context) View {
		items = UseState(cx, []string{"a", "b"})
		dyn = cx.DynScope(func(s *Scope) {
			runs.Add(1)
			for i, it := range items.GetDL() {
				s.Add(func(cx *Context) View {
					return func(dc *render.DrawContext) { dc.Text(0, i, it) }
				})
			}
		}, items)
		return cx.DrawChildren
	}))

	before := dyn.Children()
	if len(before) != 2 {
		t.Fatalf("children = %d, want 2", len(before))
	}

	_ = items.Set([]string{"x", "y", "z"})
	reactive.Settle()

	if runs.Load() != 2 {
		t.Errorf("drawer runs = %d, want 2", runs.Load())
	}
	after := dyn.Children()
	if len(after) != 3 {
		t.Fatalf("children = %d, want 3", len(after))
	}
	for _, c := range before {
		if !c.Retired() {
			t.Error("old child survived dynamic rebuild")
		}
	}
	if got := draw(cx.View(), 3, 3); got != "x\ny\nz" {
		t.Errorf("drew %q, want %q", got, "x\ny\nz")
	}
}

func TestDynScope_StopsAfterRetire(t *testing.T) {
	src := reactive.NewState(0)
	var runs atomic.Int32
	cx := mount(NewContext(func(cx *Context) View {
		cx.DynScope(func(s *Scope) { runs.Add(1) }, src)
		return nil
	}))
	cx.Retire()

	_ = src.Set(1)
	reactive.Settle()

	if runs.Load() != 1 {
		t.Errorf("drawer runs = %d, want 1", runs.Load())
	}
}

func TestRsx(t *testing.T) {
	mounted := make(chan struct{}, 1)
	count := reactive.NewState(1)
	cx := mount(NewContext(func(cx *Context) View {
		m := reactive.UseMountManual()
		UseEffect(cx, func() { mounted <- struct{}{} }, m)
		return Build(cx).
			Static(text("static")).
			Dynamic(func(s *Scope) {
				for i := 0; i < count.GetDL(); i++ {
					s.Add(func(cx *Context) View {
						return func(dc *render.DrawContext) { dc.Text(0, 1+i, fmt.Sprintf("dyn %d", i)) }
					})
				}
			}, count).
			Mount(m).
			View()
	}))

	select {
	case <-mounted:
	default:
		t.Error("mount effect did not run after publish")
	}
	if got := draw(cx.View(), 10, 3); got != "static\ndyn 0" {
		t.Errorf("drew %q", got)
	}

	_ = count.Set(2)
	reactive.Settle()
	if got := draw(cx.View(), 10, 3); got != "static\ndyn 0\ndyn 1" {
		t.Errorf("drew %q after update", got)
	}
}
