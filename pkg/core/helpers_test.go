package core

import (
	"github.com/go-drift/termdrift/pkg/reactive"
	"github.com/go-drift/termdrift/pkg/render"
)

// draw rasterizes v into a w×h buffer and returns its text.
func draw(v View, w, h int) string {
	dc := render.NewDrawContext(w, h)
	dc.Draw(v)
	buf := render.NewBuffer(w, h)
	buf.Rasterize(dc)
	return buf.String()
}

// mount refreshes cx and waits for it and everything it spawned.
func mount(cx *Context) *Context {
	cx.Refresh()
	reactive.Settle()
	return cx
}

func text(s string) Component {
	return func(cx *Context) View {
		return func(dc *render.DrawContext) {
			dc.Text(0, 0, s)
		}
	}
}
