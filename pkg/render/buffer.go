package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one terminal cell. Rune 0 marks the trailing half of a
// double-width rune.
type Cell struct {
	Rune  rune
	Style Style
}

var blank = Cell{Rune: ' '}

// Buffer is a grid of cells.
type Buffer struct {
	width, height int
	cells         []Cell
}

// NewBuffer creates a blank buffer.
func NewBuffer(width, height int) *Buffer {
	width, height = max(width, 0), max(height, 0)
	b := &Buffer{width: width, height: height, cells: make([]Cell, width*height)}
	b.Clear()
	return b
}

// Width of the buffer in cells.
func (b *Buffer) Width() int { return b.width }

// Height of the buffer in cells.
func (b *Buffer) Height() int { return b.height }

// Clear resets every cell to a blank.
func (b *Buffer) Clear() {
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// Resize changes the dimensions and clears the buffer.
func (b *Buffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	b.width, b.height = width, height
	if cap(b.cells) >= width*height {
		b.cells = b.cells[:width*height]
	} else {
		b.cells = make([]Cell, width*height)
	}
	b.Clear()
}

// Get returns the cell at (x, y), or a blank outside the buffer.
func (b *Buffer) Get(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return blank
	}
	return b.cells[y*b.width+x]
}

// Set writes a cell. Writes outside the buffer are dropped.
func (b *Buffer) Set(x, y int, c Cell) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[y*b.width+x] = c
}

// Rasterize draws dc into the buffer at the origin.
func (b *Buffer) Rasterize(dc *DrawContext) {
	if dc == nil {
		return
	}
	b.rasterize(dc, 0, 0, Area{W: b.width, H: b.height})
}

func (b *Buffer) rasterize(dc *DrawContext, ox, oy int, clip Area) {
	if clip.Empty() {
		return
	}
	for _, op := range dc.ops {
		switch op := op.(type) {
		case TextOp:
			b.text(ox+op.X, oy+op.Y, op.Text, op.Style, clip)
		case FillOp:
			a := op.Area.Translate(ox, oy).Intersect(clip)
			for y := a.Y; y < a.Y+a.H; y++ {
				for x := a.X; x < a.X+a.W; x++ {
					b.Set(x, y, Cell{Rune: op.Rune, Style: op.Style})
				}
			}
		case ChildOp:
			childClip := clip
			if !op.Clip.Empty() {
				childClip = op.Clip.Translate(ox, oy).Intersect(clip)
			}
			b.rasterize(op.Context, ox+op.X, oy+op.Y, childClip)
		case SubViewOp:
			a := op.Area.Translate(ox, oy)
			sub := NewDrawContext(a.W, a.H)
			op.View(sub)
			b.rasterize(sub, a.X, a.Y, a.Intersect(clip))
		}
	}
}

func (b *Buffer) text(x, y int, s string, st Style, clip Area) {
	if y < clip.Y || y >= clip.Y+clip.H {
		return
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x >= clip.X && x+w <= clip.X+clip.W {
			b.Set(x, y, Cell{Rune: r, Style: st})
			if w == 2 {
				b.Set(x+1, y, Cell{Rune: 0, Style: st})
			}
		}
		x += w
		if x >= clip.X+clip.W {
			return
		}
	}
}

// Line returns row y as a string with trailing blanks removed.
func (b *Buffer) Line(y int) string {
	if y < 0 || y >= b.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.cells[y*b.width+x]
		if c.Rune == 0 {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return strings.TrimRight(sb.String(), " ")
}

// Lines returns every row, see Line.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.height)
	for y := range lines {
		lines[y] = b.Line(y)
	}
	return lines
}

// String joins Lines with newlines and drops trailing empty rows.
func (b *Buffer) String() string {
	lines := b.Lines()
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Equal reports whether b and other have the same size and cells.
func (b *Buffer) Equal(other *Buffer) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
