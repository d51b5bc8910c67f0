package layout

import "fmt"

// Axis is a layout direction.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// String returns a human-readable representation of the axis.
func (a Axis) String() string {
	switch a {
	case AxisVertical:
		return "vertical"
	case AxisHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Size is a width and height in cells.
type Size struct {
	W, H int
}

// Point is an offset in cells.
type Point struct {
	X, Y int
}

// Options configures the spacing of a container.
type Options struct {
	// Gap is inserted between neighbouring children, never after the last.
	Gap int
	// Padding surrounds the children on every side.
	Padding int
}

// Stack places children of the given sizes one after another along axis.
// It returns the origin of each child and the container's total size.
func Stack(axis Axis, opts Options, sizes []Size) ([]Point, Size) {
	if len(sizes) == 0 {
		return nil, Size{}
	}
	gap, pad := max(opts.Gap, 0), max(opts.Padding, 0)
	points := make([]Point, len(sizes))
	main, cross := 0, 0
	for i, s := range sizes {
		if i > 0 {
			main += gap
		}
		if axis == AxisVertical {
			points[i] = Point{X: pad, Y: pad + main}
			main += s.H
			cross = max(cross, s.W)
		} else {
			points[i] = Point{X: pad + main, Y: pad}
			main += s.W
			cross = max(cross, s.H)
		}
	}
	if axis == AxisVertical {
		return points, Size{W: cross + 2*pad, H: main + 2*pad}
	}
	return points, Size{W: main + 2*pad, H: cross + 2*pad}
}

// GridLayout places children row by row into cols columns. Each column is
// as wide as its widest cell and each row as tall as its tallest.
func GridLayout(cols int, opts Options, sizes []Size) ([]Point, Size) {
	if len(sizes) == 0 || cols <= 0 {
		return nil, Size{}
	}
	gap, pad := max(opts.Gap, 0), max(opts.Padding, 0)
	cols = min(cols, len(sizes))
	rows := (len(sizes) + cols - 1) / cols

	widths := make([]int, cols)
	heights := make([]int, rows)
	for i, s := range sizes {
		c, r := i%cols, i/cols
		widths[c] = max(widths[c], s.W)
		heights[r] = max(heights[r], s.H)
	}

	xs := make([]int, cols)
	x := pad
	for c, w := range widths {
		xs[c] = x
		x += w + gap
	}
	ys := make([]int, rows)
	y := pad
	for r, h := range heights {
		ys[r] = y
		y += h + gap
	}

	points := make([]Point, len(sizes))
	for i := range sizes {
		points[i] = Point{X: xs[i%cols], Y: ys[i/cols]}
	}
	total := Size{
		W: x - gap + pad,
		H: y - gap + pad,
	}
	return points, total
}
