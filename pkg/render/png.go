package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Cell dimensions of the PNG rasterizer, from basicfont.Face7x13.
const (
	CellWidth  = 7
	CellHeight = 13
)

var (
	defaultFG = color.RGBA{0xdd, 0xdd, 0xdd, 0xff}
	defaultBG = color.RGBA{0x1e, 0x1e, 0x1e, 0xff}
)

func toRGBA(c Color, fallback color.RGBA) color.RGBA {
	if c.IsDefault() {
		return fallback
	}
	r, g, b := c.RGB()
	return color.RGBA{r, g, b, 0xff}
}

// Image draws the buffer as a bitmap with one 7×13 glyph per cell.
// Runes missing from the font are drawn as the font's replacement glyph.
func (b *Buffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, b.width*CellWidth, b.height*CellHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(defaultBG), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	d := &font.Drawer{Dst: img, Face: face}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := b.cells[y*b.width+x]
			if c.Rune == 0 {
				continue
			}
			fg, bg := toRGBA(c.Style.FG, defaultFG), toRGBA(c.Style.BG, defaultBG)
			if c.Style.Has(AttrReverse) {
				fg, bg = bg, fg
			}
			cell := image.Rect(x*CellWidth, y*CellHeight, (x+1)*CellWidth, (y+1)*CellHeight)
			if !c.Style.BG.IsDefault() || c.Style.Has(AttrReverse) {
				draw.Draw(img, cell, image.NewUniform(bg), image.Point{}, draw.Src)
			}
			if c.Rune == ' ' {
				continue
			}
			d.Src = image.NewUniform(fg)
			d.Dot = fixed.P(x*CellWidth, y*CellHeight+face.Ascent)
			d.DrawString(string(c.Rune))
			if c.Style.Has(AttrBold) {
				d.Dot = fixed.P(x*CellWidth+1, y*CellHeight+face.Ascent)
				d.DrawString(string(c.Rune))
			}
		}
	}
	return img
}

// WritePNG encodes Image as PNG.
func (b *Buffer) WritePNG(w io.Writer) error {
	return png.Encode(w, b.Image())
}
