package layout

import (
	"github.com/go-drift/termdrift/pkg/core"
	"github.com/go-drift/termdrift/pkg/render"
)

// measured is a child rendered into its own context.
type measured struct {
	dc   *render.DrawContext
	size Size
}

// measure renders every child's published View into a fresh sub-context of
// the given size.
func measure(dc *render.DrawContext, children []*core.Context, w, h int) []measured {
	out := make([]measured, len(children))
	for i, child := range children {
		sub := dc.Sub(w, h)
		sub.Draw(child.View())
		cw, ch := sub.Size()
		out[i] = measured{dc: sub, size: Size{W: cw, H: ch}}
	}
	return out
}

func sizes(ms []measured) []Size {
	out := make([]Size, len(ms))
	for i, m := range ms {
		out[i] = m.size
	}
	return out
}

// inner is the space left inside padding.
func inner(dc *render.DrawContext, pad int) (int, int) {
	return max(dc.Width()-2*pad, 0), max(dc.Height()-2*pad, 0)
}

// empty reports whether a container must draw its zero-size placeholder.
func empty(dc *render.DrawContext, children int) bool {
	if children == 0 || dc.ZeroSized() {
		dc.SetSize(0, 0)
		return true
	}
	return false
}

func collect(cx *core.Context, children []core.Component) *core.Scope {
	s := cx.Scope()
	for _, c := range children {
		if c != nil {
			s.Add(c)
		}
	}
	return s
}

func drawStack(dc *render.DrawContext, axis Axis, opts Options, children []*core.Context) {
	if empty(dc, len(children)) {
		return
	}
	dc.Padding = opts.Padding
	w, h := inner(dc, opts.Padding)
	ms := measure(dc, children, w, h)
	points, total := Stack(axis, opts, sizes(ms))
	for i, m := range ms {
		dc.Child(points[i].X, points[i].Y, m.dc)
	}
	dc.SetSize(total.W, total.H)
}

// Rows stacks children top to bottom.
func Rows(opts Options, children ...core.Component) core.Component {
	return func(cx *core.Context) core.View {
		s := collect(cx, children)
		return func(dc *render.DrawContext) {
			drawStack(dc, AxisVertical, opts, s.Children())
		}
	}
}

// Columns places children left to right.
func Columns(opts Options, children ...core.Component) core.Component {
	return func(cx *core.Context) core.View {
		s := collect(cx, children)
		return func(dc *render.DrawContext) {
			drawStack(dc, AxisHorizontal, opts, s.Children())
		}
	}
}

// Grid fills cols columns row by row.
func Grid(cols int, opts Options, children ...core.Component) core.Component {
	return func(cx *core.Context) core.View {
		s := collect(cx, children)
		return func(dc *render.DrawContext) {
			kids := s.Children()
			if cols <= 0 || empty(dc, len(kids)) {
				dc.SetSize(0, 0)
				return
			}
			dc.Padding = opts.Padding
			w, h := inner(dc, opts.Padding)
			ms := measure(dc, kids, w, h)
			points, total := GridLayout(cols, opts, sizes(ms))
			for i, m := range ms {
				dc.Child(points[i].X, points[i].Y, m.dc)
			}
			dc.SetSize(total.W, total.H)
		}
	}
}
