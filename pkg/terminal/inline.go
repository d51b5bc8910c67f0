package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/termdrift/pkg/render"
)

// Inline prints frames into a writer without taking over the screen.
// Each frame after the first moves the cursor back up over the previous
// one and overwrites it, so the output stays in the scrollback.
type Inline struct {
	mu       sync.Mutex
	w        io.Writer
	renderer *lipgloss.Renderer
	width    int
	height   int
	printed  int
}

// NewInline returns an inline terminal of the given size writing to w.
// Color support is detected from w.
func NewInline(w io.Writer, width, height int) *Inline {
	return &Inline{w: w, renderer: lipgloss.NewRenderer(w), width: width, height: height}
}

// Size returns the configured size.
func (t *Inline) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// SetSize changes the size used for subsequent frames.
func (t *Inline) SetSize(width, height int) {
	t.mu.Lock()
	t.width, t.height = width, height
	t.mu.Unlock()
}

// Flush writes buf, replacing the previously written frame.
func (t *Inline) Flush(buf *render.Buffer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var b strings.Builder
	if t.printed > 0 {
		fmt.Fprintf(&b, "\r\x1b[%dA", t.printed)
	}
	lines := Styled(t.renderer, buf)
	for _, line := range lines {
		b.WriteString("\x1b[2K")
		b.WriteString(line)
		b.WriteString("\n")
	}
	if _, err := io.WriteString(t.w, b.String()); err != nil {
		return ioError("terminal.Inline.Flush", err)
	}
	t.printed = len(lines)
	return nil
}

// Styled renders each row of buf as a string, grouping runs of equally
// styled cells into one lipgloss span. Trailing blank cells are dropped.
func Styled(r *lipgloss.Renderer, buf *render.Buffer) []string {
	lines := make([]string, buf.Height())
	for y := range lines {
		end := buf.Width()
		for end > 0 {
			c := buf.Get(end-1, y)
			if c.Rune != ' ' || c.Style != render.DefaultStyle {
				break
			}
			end--
		}

		var line strings.Builder
		var run strings.Builder
		cur := render.DefaultStyle
		flush := func() {
			if run.Len() == 0 {
				return
			}
			line.WriteString(lipglossStyle(r, cur).Render(run.String()))
			run.Reset()
		}
		for x := 0; x < end; x++ {
			c := buf.Get(x, y)
			if c.Rune == 0 {
				continue
			}
			if c.Style != cur {
				flush()
				cur = c.Style
			}
			run.WriteRune(c.Rune)
		}
		flush()
		lines[y] = line.String()
	}
	return lines
}

func lipglossStyle(r *lipgloss.Renderer, st render.Style) lipgloss.Style {
	out := r.NewStyle()
	if st == render.DefaultStyle {
		return out
	}
	if !st.FG.IsDefault() {
		out = out.Foreground(lipgloss.Color(st.FG.String()))
	}
	if !st.BG.IsDefault() {
		out = out.Background(lipgloss.Color(st.BG.String()))
	}
	return out.
		Bold(st.Has(render.AttrBold)).
		Faint(st.Has(render.AttrDim)).
		Italic(st.Has(render.AttrItalic)).
		Underline(st.Has(render.AttrUnderline)).
		Reverse(st.Has(render.AttrReverse))
}
