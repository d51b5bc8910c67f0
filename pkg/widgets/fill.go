package widgets

import (
	"github.com/go-drift/termdrift/pkg/core"
	"github.com/go-drift/termdrift/pkg/render"
)

// Fill paints a rectangle. Zero Width or Height take all available space.
type Fill struct {
	Rune   rune
	Style  render.Style
	Width  int
	Height int
}

// Build returns the fill's View.
func (f Fill) Build(cx *core.Context) core.View {
	return func(dc *render.DrawContext) {
		w, h := f.Width, f.Height
		if w <= 0 {
			w = dc.Width()
		}
		if h <= 0 {
			h = dc.Height()
		}
		w, h = min(w, dc.Width()), min(h, dc.Height())
		r := f.Rune
		if r == 0 {
			r = ' '
		}
		dc.Fill(render.Area{W: w, H: h}, r, f.Style)
	}
}

// Spacer takes up space without drawing.
type Spacer struct {
	Width  int
	Height int
}

// Build returns the spacer's View.
func (s Spacer) Build(cx *core.Context) core.View {
	return func(dc *render.DrawContext) {
		dc.SetSize(min(s.Width, dc.Width()), min(s.Height, dc.Height()))
	}
}
