package terminal

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/termdrift/pkg/errors"
	"github.com/go-drift/termdrift/pkg/logging"
	"github.com/go-drift/termdrift/pkg/render"
)

// Screen is a full-screen terminal session backed by tcell.
type Screen struct {
	mu     sync.Mutex
	screen tcell.Screen
	front  *render.Buffer
	closed bool
}

// NewScreen opens the controlling terminal in full-screen mode with mouse,
// paste and focus reporting enabled.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, ioError("terminal.NewScreen", err)
	}
	if err := s.Init(); err != nil {
		return nil, ioError("terminal.NewScreen", err)
	}
	s.EnableMouse()
	s.EnablePaste()
	s.EnableFocus()
	s.HideCursor()
	return Wrap(s), nil
}

// NewSimulationScreen returns a Screen over an in-memory tcell screen of
// the given size, and the simulation for injecting events and reading
// cells back.
func NewSimulationScreen(width, height int) (*Screen, tcell.SimulationScreen, error) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		return nil, nil, ioError("terminal.NewSimulationScreen", err)
	}
	sim.SetSize(width, height)
	return Wrap(sim), sim, nil
}

// Wrap adopts an initialized tcell screen.
func Wrap(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

func ioError(op string, err error) *errors.TermError {
	return &errors.TermError{Op: op, Kind: errors.KindIO, Err: err, Timestamp: time.Now()}
}

// Size returns the terminal size in cells.
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// Flush writes the cells of buf that differ from the previous flush and
// shows them. A size change repaints everything.
func (s *Screen) Flush(buf *render.Buffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ioError("terminal.Screen.Flush", errors.ErrClosed)
	}

	full := s.front == nil || s.front.Width() != buf.Width() || s.front.Height() != buf.Height()
	if full {
		s.front = render.NewBuffer(buf.Width(), buf.Height())
		s.screen.Clear()
	}
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			c := buf.Get(x, y)
			if !full && c == s.front.Get(x, y) {
				continue
			}
			s.front.Set(x, y, c)
			if c.Rune == 0 {
				continue
			}
			s.screen.SetContent(x, y, c.Rune, nil, Style(c.Style))
		}
	}
	s.screen.Show()
	return nil
}

// Sync repaints the whole terminal on the next Flush.
func (s *Screen) Sync() {
	s.mu.Lock()
	s.front = nil
	s.mu.Unlock()
	s.screen.Sync()
}

// Events decodes terminal events onto the returned channel until ctx is
// done or the screen is closed.
func (s *Screen) Events(ctx context.Context) <-chan any {
	out := make(chan any, 64)
	go func() {
		defer close(out)
		var d Decoder
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			in, ok := d.Decode(ev)
			if !ok {
				continue
			}
			select {
			case out <- in:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Close restores the terminal.
func (s *Screen) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	s.screen.Fini()
	logging.Logger().Debug("terminal closed")
	return nil
}

// Style converts a render style to tcell.
func Style(st render.Style) tcell.Style {
	out := tcell.StyleDefault
	if !st.FG.IsDefault() {
		r, g, b := st.FG.RGB()
		out = out.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	if !st.BG.IsDefault() {
		r, g, b := st.BG.RGB()
		out = out.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	return out.
		Bold(st.Has(render.AttrBold)).
		Dim(st.Has(render.AttrDim)).
		Italic(st.Has(render.AttrItalic)).
		Underline(st.Has(render.AttrUnderline)).
		Reverse(st.Has(render.AttrReverse))
}
