package layout

import (
	"github.com/go-drift/termdrift/pkg/core"
	"github.com/go-drift/termdrift/pkg/reactive"
	"github.com/go-drift/termdrift/pkg/render"
)

func label(s string) core.Component {
	return func(cx *core.Context) core.View {
		return func(dc *render.DrawContext) {
			dc.Text(0, 0, s)
		}
	}
}

func block(w, h int) core.Component {
	return func(cx *core.Context) core.View {
		return func(dc *render.DrawContext) {
			dc.Fill(render.Area{W: w, H: h}, '#', render.DefaultStyle)
		}
	}
}

func mountRoot(c core.Component) *core.Context {
	cx := core.NewContext(c)
	cx.Refresh()
	reactive.Settle()
	return cx
}

// frame draws cx into a w×h context and returns it with its rasterized text.
func frame(cx *core.Context, w, h int) (*render.DrawContext, string) {
	dc := render.NewDrawContext(w, h)
	dc.Draw(cx.View())
	buf := render.NewBuffer(w, h)
	buf.Rasterize(dc)
	return dc, buf.String()
}
