package widgets

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/go-drift/termdrift/pkg/core"
	"github.com/go-drift/termdrift/pkg/render"
)

// Text displays a string with a single style. Newlines start new lines.
//
//   - Wrap=false (default): each line is cut at the available width.
//   - Wrap=true: lines wrap at the available width.
//   - MaxLines limits the number of visible lines (0 = unlimited).
type Text struct {
	Content  string
	Style    render.Style
	MaxLines int
	Wrap     bool
}

// Build returns the text's View.
func (t Text) Build(cx *core.Context) core.View {
	return func(dc *render.DrawContext) {
		drawText(dc, t.Content, t.Style, t.MaxLines, t.Wrap)
	}
}

// Label is Text whose content is computed each time it is drawn.
type Label struct {
	Content func() string
	Style   render.Style
}

// Build returns the label's View.
func (l Label) Build(cx *core.Context) core.View {
	return func(dc *render.DrawContext) {
		if l.Content == nil {
			return
		}
		drawText(dc, l.Content(), l.Style, 0, false)
	}
}

// Span is a run of text with one style.
type Span struct {
	Text  string
	Style render.Style
}

// Styled draws spans one after another on a single line, cutting the last
// visible span at the available width.
type Styled struct {
	Spans []Span
}

// Build returns the line's View.
func (s Styled) Build(cx *core.Context) core.View {
	return func(dc *render.DrawContext) {
		if dc.ZeroSized() {
			return
		}
		x := 0
		for _, span := range s.Spans {
			room := dc.Width() - x
			if room <= 0 {
				return
			}
			text := truncate(span.Text, room)
			dc.Styled(x, 0, text, span.Style)
			x += runewidth.StringWidth(text)
		}
	}
}

// Lines splits s into the lines that fit width. A width of zero or less
// yields nothing.
func Lines(s string, width, maxLines int, wrap bool) []string {
	if width <= 0 || s == "" {
		return nil
	}
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if wrap {
			out = append(out, strings.Split(runewidth.Wrap(line, width), "\n")...)
		} else {
			out = append(out, runewidth.Truncate(line, width, ""))
		}
	}
	if maxLines > 0 && len(out) > maxLines {
		out = out[:maxLines]
	}
	return out
}

func drawText(dc *render.DrawContext, s string, st render.Style, maxLines int, wrap bool) {
	if dc.ZeroSized() {
		return
	}
	for y, line := range Lines(s, dc.Width(), maxLines, wrap) {
		if y >= dc.Height() {
			return
		}
		dc.Styled(0, y, line, st)
	}
}

func truncate(s string, w int) string {
	return runewidth.Truncate(s, w, "")
}
