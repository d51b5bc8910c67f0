package render

import "github.com/mattn/go-runewidth"

// View draws a component's output into a DrawContext. A nil View draws
// nothing.
type View func(dc *DrawContext)

// Area is a rectangle in cell coordinates.
type Area struct {
	X, Y, W, H int
}

// Empty reports whether a has no cells.
func (a Area) Empty() bool {
	return a.W <= 0 || a.H <= 0
}

// Contains reports whether the cell (x, y) lies inside a.
func (a Area) Contains(x, y int) bool {
	return x >= a.X && y >= a.Y && x < a.X+a.W && y < a.Y+a.H
}

// Intersect returns the overlap of a and b.
func (a Area) Intersect(b Area) Area {
	x0, y0 := max(a.X, b.X), max(a.Y, b.Y)
	x1, y1 := min(a.X+a.W, b.X+b.W), min(a.Y+a.H, b.Y+b.H)
	if x1 <= x0 || y1 <= y0 {
		return Area{X: x0, Y: y0}
	}
	return Area{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Translate returns a shifted by (dx, dy).
func (a Area) Translate(dx, dy int) Area {
	a.X += dx
	a.Y += dy
	return a
}

// Instruction is one recorded drawing operation. The concrete types are
// TextOp, FillOp, ChildOp and SubViewOp.
type Instruction interface {
	isInstruction()
}

// TextOp draws a single-line run of text starting at (X, Y).
type TextOp struct {
	X, Y  int
	Text  string
	Style Style
}

// FillOp fills Area with Rune.
type FillOp struct {
	Area  Area
	Rune  rune
	Style Style
}

// ChildOp places a nested context with its origin at (X, Y). When Clip is
// non-empty the child is clipped to it, in the parent's coordinates.
type ChildOp struct {
	X, Y    int
	Context *DrawContext
	Clip    Area
}

// SubViewOp draws View into a fresh context sized to Area.
type SubViewOp struct {
	Area Area
	View View
}

func (TextOp) isInstruction()    {}
func (FillOp) isInstruction()    {}
func (ChildOp) isInstruction()   {}
func (SubViewOp) isInstruction() {}

// DrawContext accumulates the instructions of one draw pass for one view.
// Width and Height are the space the parent offers; the measured size is
// the extent of what was recorded unless overridden with SetSize.
type DrawContext struct {
	width, height int

	// Padding is the inner padding applied by the owning container.
	Padding int
	// ScrollY is the vertical scroll offset applied by the owning container.
	ScrollY int

	ops []Instruction

	measuredW, measuredH int
	sized                bool
}

// NewDrawContext creates a context with the given available space.
// Negative sizes are treated as zero.
func NewDrawContext(width, height int) *DrawContext {
	return &DrawContext{width: max(width, 0), height: max(height, 0)}
}

// Width is the available width.
func (dc *DrawContext) Width() int { return dc.width }

// Height is the available height.
func (dc *DrawContext) Height() int { return dc.height }

// Bounds is the available area at the local origin.
func (dc *DrawContext) Bounds() Area {
	return Area{W: dc.width, H: dc.height}
}

// ZeroSized reports whether nothing can be drawn into dc.
func (dc *DrawContext) ZeroSized() bool {
	return dc.width == 0 || dc.height == 0
}

// Sub creates an empty context for measuring a child.
func (dc *DrawContext) Sub(width, height int) *DrawContext {
	return NewDrawContext(width, height)
}

// Draw runs v against dc. A nil view is a no-op.
func (dc *DrawContext) Draw(v View) {
	if v != nil {
		v(dc)
	}
}

func (dc *DrawContext) extend(x1, y1 int) {
	dc.measuredW = max(dc.measuredW, x1)
	dc.measuredH = max(dc.measuredH, y1)
}

// Text records a text run at (x, y). Newlines are not interpreted.
func (dc *DrawContext) Text(x, y int, s string) {
	dc.Styled(x, y, s, DefaultStyle)
}

// Styled records a text run with a style.
func (dc *DrawContext) Styled(x, y int, s string, st Style) {
	if s == "" {
		return
	}
	dc.ops = append(dc.ops, TextOp{X: x, Y: y, Text: s, Style: st})
	dc.extend(x+runewidth.StringWidth(s), y+1)
}

// Fill records a filled rectangle.
func (dc *DrawContext) Fill(a Area, r rune, st Style) {
	if a.Empty() {
		return
	}
	dc.ops = append(dc.ops, FillOp{Area: a, Rune: r, Style: st})
	dc.extend(a.X+a.W, a.Y+a.H)
}

// Child places child with its origin at (x, y). The child's measured size
// extends dc's.
func (dc *DrawContext) Child(x, y int, child *DrawContext) {
	if child == nil {
		return
	}
	dc.ops = append(dc.ops, ChildOp{X: x, Y: y, Context: child})
	w, h := child.Size()
	if w > 0 && h > 0 {
		dc.extend(x+w, y+h)
	}
}

// ClippedChild places child at (x, y) and clips it to clip. Only the clip
// area contributes to dc's measured size.
func (dc *DrawContext) ClippedChild(x, y int, child *DrawContext, clip Area) {
	if child == nil || clip.Empty() {
		return
	}
	dc.ops = append(dc.ops, ChildOp{X: x, Y: y, Context: child, Clip: clip})
	dc.extend(clip.X+clip.W, clip.Y+clip.H)
}

// SubView records v to be drawn into a fresh context covering a.
func (dc *DrawContext) SubView(a Area, v View) {
	if v == nil || a.Empty() {
		return
	}
	dc.ops = append(dc.ops, SubViewOp{Area: a, View: v})
	dc.extend(a.X+a.W, a.Y+a.H)
}

// SetSize overrides the measured size.
func (dc *DrawContext) SetSize(w, h int) {
	dc.measuredW, dc.measuredH = max(w, 0), max(h, 0)
	dc.sized = true
}

// Size is the measured size: the value from SetSize if called, otherwise
// the extent of recorded instructions.
func (dc *DrawContext) Size() (w, h int) {
	return dc.measuredW, dc.measuredH
}

// Sized reports whether SetSize was called.
func (dc *DrawContext) Sized() bool {
	return dc.sized
}

// Ops returns the recorded instructions in order.
func (dc *DrawContext) Ops() []Instruction {
	return dc.ops
}

// Reset drops every instruction and the measured size.
func (dc *DrawContext) Reset() {
	dc.ops = dc.ops[:0]
	dc.measuredW, dc.measuredH = 0, 0
	dc.sized = false
}
