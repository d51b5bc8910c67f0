package testing

import (
	"testing"

	"github.com/go-drift/termdrift/pkg/core"
	"github.com/go-drift/termdrift/pkg/input"
	"github.com/go-drift/termdrift/pkg/reactive"
	"github.com/go-drift/termdrift/pkg/render"
)

const (
	// DefaultTestWidth is the default width of the test surface in cells.
	DefaultTestWidth = 80
	// DefaultTestHeight is the default height of the test surface in cells.
	DefaultTestHeight = 24
)

// Tester mounts a component tree and draws it into an in-memory buffer.
type Tester struct {
	root   *core.Context
	width  int
	height int
	clock  *FakeClock
	frames uint64
	last   *render.DrawContext
	buf    *render.Buffer
}

// NewTester creates a tester with an 80×24 surface. Call Cleanup when done,
// or use NewTesterWithT instead.
func NewTester() *Tester {
	return &Tester{
		width:  DefaultTestWidth,
		height: DefaultTestHeight,
		clock:  NewFakeClock(),
	}
}

// NewTesterWithT creates a tester that cleans up via t.Cleanup.
func NewTesterWithT(t testing.TB) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup retires the mounted tree and waits for it to go quiet.
func (t *Tester) Cleanup() {
	if t.root != nil {
		t.root.Retire()
		t.root = nil
	}
	reactive.Settle()
}

// SetSize sets the surface size in cells.
func (t *Tester) SetSize(width, height int) {
	t.width, t.height = width, height
}

// Size returns the surface size in cells.
func (t *Tester) Size() (width, height int) {
	return t.width, t.height
}

// Clock returns the clock used to stamp ticks.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Root returns the mounted root Context, or nil.
func (t *Tester) Root() *core.Context {
	return t.root
}

// Mount replaces the tree with a new root for component and waits for it
// and its descendants to publish.
func (t *Tester) Mount(component core.Component) *core.Context {
	if t.root != nil {
		t.root.Retire()
	}
	t.root = core.NewContext(component)
	t.root.Refresh()
	t.Settle()
	return t.root
}

// Settle waits until no refresh or effect is in flight.
func (t *Tester) Settle() {
	reactive.Settle()
}

// Frame draws the root's published View and returns the resulting buffer.
func (t *Tester) Frame() *render.Buffer {
	t.frames++
	dc := render.NewDrawContext(t.width, t.height)
	if t.root != nil {
		dc.Draw(t.root.View())
	}
	buf := render.NewBuffer(t.width, t.height)
	buf.Rasterize(dc)
	t.last, t.buf = dc, buf
	return buf
}

// DrawContext returns the context of the most recent Frame.
func (t *Tester) DrawContext() *render.DrawContext {
	return t.last
}

// Frames returns how many frames have been drawn.
func (t *Tester) Frames() uint64 {
	return t.frames
}

// Text draws a frame and returns it as text, see render.Buffer.String.
func (t *Tester) Text() string {
	return t.Frame().String()
}

// Line draws a frame and returns row y.
func (t *Tester) Line(y int) string {
	return t.Frame().Line(y)
}

// Emit delivers e to the tree synchronously and settles.
func Emit[E any](t *Tester, e E) {
	if t.root == nil {
		return
	}
	core.Emit(t.root, e)
	t.Settle()
}

// Press emits a key press for each code in order.
func (t *Tester) Press(codes ...input.KeyCode) {
	for _, c := range codes {
		Emit(t, input.Press(c))
	}
}

// Type emits one key press per rune of s.
func (t *Tester) Type(s string) {
	for _, r := range s {
		Emit(t, input.Char(r))
	}
}

// Tick emits n ticks, advancing the clock one interval per tick.
func (t *Tester) Tick(n int) {
	for i := 0; i < n; i++ {
		t.frames++
		Emit(t, input.Tick{Frame: t.frames, At: t.clock.tick()})
	}
}

// Resize changes the surface size and emits the matching event.
func (t *Tester) Resize(width, height int) {
	t.SetSize(width, height)
	Emit(t, input.Resize{Width: width, Height: height})
}
