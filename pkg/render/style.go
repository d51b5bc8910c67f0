package render

import "fmt"

// Color is a 24-bit terminal color. The zero Color means "terminal default".
type Color uint32

const colorSet = 1 << 24

// ColorDefault leaves the terminal's own color in place.
const ColorDefault Color = 0

// RGB constructs a truecolor value.
func RGB(r, g, b uint8) Color {
	return Color(colorSet | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Hex parses "#rrggbb" or "rrggbb". It returns ColorDefault for anything else.
func Hex(s string) Color {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var r, g, b uint8
	if len(s) != 6 {
		return ColorDefault
	}
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return ColorDefault
	}
	return RGB(r, g, b)
}

// IsDefault reports whether c is the terminal default.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// RGB returns the color components. Default colors report zeros.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// String formats c as "#rrggbb" or "default".
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Common colors.
var (
	ColorBlack  = RGB(0, 0, 0)
	ColorWhite  = RGB(0xff, 0xff, 0xff)
	ColorRed    = RGB(0xcc, 0x33, 0x33)
	ColorGreen  = RGB(0x33, 0xcc, 0x66)
	ColorBlue   = RGB(0x33, 0x66, 0xcc)
	ColorYellow = RGB(0xee, 0xcc, 0x33)
	ColorGray   = RGB(0x80, 0x80, 0x80)
)

// Attr is a bit set of text attributes.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrReverse
)

// Style is the foreground, background and attributes of a cell.
type Style struct {
	FG    Color
	BG    Color
	Attrs Attr
}

// DefaultStyle is the terminal's unstyled look.
var DefaultStyle = Style{}

// Foreground returns a copy of s with the given foreground.
func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

// Background returns a copy of s with the given background.
func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

// Bold returns a copy of s with bold set.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Reverse returns a copy of s with reverse video set.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Has reports whether every attribute in a is set.
func (s Style) Has(a Attr) bool {
	return s.Attrs&a == a
}
