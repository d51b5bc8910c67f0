package layout

import (
	"github.com/go-drift/termdrift/pkg/core"
	"github.com/go-drift/termdrift/pkg/input"
	"github.com/go-drift/termdrift/pkg/render"
)

// Scroll stacks children vertically inside a viewport the size of the space
// it is given. Up and Down keys move the cursor one line; it never goes
// above the first line or past the last line of content.
func Scroll(opts Options, children ...core.Component) core.Component {
	return func(cx *core.Context) core.View {
		s := collect(cx, children)
		cursor := core.UseState(cx, ScrollState{})
		contentHeight := core.UseRef(cx, 0)

		core.On(cx, func(k input.Key) {
			switch {
			case k.Is(input.KeyUp):
				_ = cursor.Update(func(st *ScrollState) { *st = st.Up() })
			case k.Is(input.KeyDown):
				h := contentHeight.Load()
				_ = cursor.Update(func(st *ScrollState) { *st = st.Down(h) })
			}
		})

		return func(dc *render.DrawContext) {
			kids := s.Children()
			if empty(dc, len(kids)) {
				return
			}
			dc.Padding = opts.Padding
			vw, vh := inner(dc, opts.Padding)
			ms := measure(dc, kids, vw, vh)
			points, total := Stack(AxisVertical, Options{Gap: opts.Gap}, sizes(ms))

			content := dc.Sub(vw, total.H)
			for i, m := range ms {
				content.Child(points[i].X, points[i].Y, m.dc)
			}
			contentHeight.Store(total.H)

			off := cursor.GetDL().Clamp(total.H).Offset
			dc.ScrollY = off
			p := opts.Padding
			dc.ClippedChild(p, p-off, content, render.Area{X: p, Y: p, W: vw, H: vh})
			dc.SetSize(min(total.W, vw)+2*p, min(total.H-off, vh)+2*p)
		}
	}
}
