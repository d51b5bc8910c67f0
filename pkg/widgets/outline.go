package widgets

import (
	"github.com/go-drift/termdrift/pkg/core"
	"github.com/go-drift/termdrift/pkg/render"
)

// Border is the set of runes an outline is drawn with.
type Border struct {
	TopLeft, TopRight, BottomLeft, BottomRight rune
	Horizontal, Vertical                       rune
}

var (
	SquareBorder  = Border{'┌', '┐', '└', '┘', '─', '│'}
	RoundedBorder = Border{'╭', '╮', '╰', '╯', '─', '│'}
)

// DrawOutline draws b around the edge of a. Areas of width or height two
// or less are left untouched.
func DrawOutline(dc *render.DrawContext, a render.Area, b Border, st render.Style) {
	if a.W <= 2 || a.H <= 2 {
		return
	}
	x1, y1 := a.X+a.W-1, a.Y+a.H-1
	dc.Fill(render.Area{X: a.X + 1, Y: a.Y, W: a.W - 2, H: 1}, b.Horizontal, st)
	dc.Fill(render.Area{X: a.X + 1, Y: y1, W: a.W - 2, H: 1}, b.Horizontal, st)
	dc.Fill(render.Area{X: a.X, Y: a.Y + 1, W: 1, H: a.H - 2}, b.Vertical, st)
	dc.Fill(render.Area{X: x1, Y: a.Y + 1, W: 1, H: a.H - 2}, b.Vertical, st)
	dc.Fill(render.Area{X: a.X, Y: a.Y, W: 1, H: 1}, b.TopLeft, st)
	dc.Fill(render.Area{X: x1, Y: a.Y, W: 1, H: 1}, b.TopRight, st)
	dc.Fill(render.Area{X: a.X, Y: y1, W: 1, H: 1}, b.BottomLeft, st)
	dc.Fill(render.Area{X: x1, Y: y1, W: 1, H: 1}, b.BottomRight, st)
}

// Outline draws a square border. With a Child the border hugs the child's
// measured size; without one it fills the available space. Nothing is
// drawn when the box would be two cells or less in either direction.
type Outline struct {
	Style render.Style
	Title string
	Child core.Component
}

// Build returns the outline's View.
func (o Outline) Build(cx *core.Context) core.View {
	return buildOutline(cx, SquareBorder, o.Style, o.Title, o.Child)
}

// RoundedOutline is Outline with rounded corners.
type RoundedOutline struct {
	Style render.Style
	Title string
	Child core.Component
}

// Build returns the outline's View.
func (o RoundedOutline) Build(cx *core.Context) core.View {
	return buildOutline(cx, RoundedBorder, o.Style, o.Title, o.Child)
}

func buildOutline(cx *core.Context, b Border, st render.Style, title string, child core.Component) core.View {
	var kid *core.Context
	if child != nil {
		kid = cx.Scope().Add(child)
	}
	return func(dc *render.DrawContext) {
		if dc.Width() <= 2 || dc.Height() <= 2 {
			return
		}
		w, h := dc.Width(), dc.Height()
		if kid != nil {
			sub := dc.Sub(w-2, h-2)
			sub.Draw(kid.View())
			cw, ch := sub.Size()
			w, h = min(cw+2, w), min(ch+2, h)
			if w <= 2 || h <= 2 {
				return
			}
			dc.ClippedChild(1, 1, sub, render.Area{X: 1, Y: 1, W: w - 2, H: h - 2})
		}
		DrawOutline(dc, render.Area{W: w, H: h}, b, st)
		if title != "" && w > 4 {
			dc.Styled(2, 0, truncate(title, w-4), st)
		}
		dc.SetSize(w, h)
	}
}
