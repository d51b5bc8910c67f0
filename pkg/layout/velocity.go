package layout

import (
	"github.com/go-drift/termdrift/pkg/core"
	"github.com/go-drift/termdrift/pkg/input"
	"github.com/go-drift/termdrift/pkg/render"
)

// Velocity draws child at an offset that drifts by at most one cell per
// axis on every input.Tick. See StepFor for the step rule. The offset wraps
// around the space the overlay is given.
func Velocity(vx, vy int, child core.Component) core.Component {
	return func(cx *core.Context) core.View {
		s := collect(cx, []core.Component{child})
		pos := core.UseRef(cx, Point{})
		tick := core.UseRef(cx, 0)

		core.On(cx, func(input.Tick) {
			n := (tick.Load() + 1) % TickModulus
			tick.Store(n)
			p := pos.Load()
			p.X += StepFor(n, vx)
			p.Y += StepFor(n, vy)
			pos.Store(p)
		})

		return func(dc *render.DrawContext) {
			kids := s.Children()
			if empty(dc, len(kids)) {
				return
			}
			p := pos.Load()
			x, y := wrap(p.X, dc.Width()), wrap(p.Y, dc.Height())
			ms := measure(dc, kids, dc.Width(), dc.Height())
			dc.Child(x, y, ms[0].dc)
		}
	}
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
