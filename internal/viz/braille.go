package viz

import (
	"strings"

	"github.com/san-kum/algoart/internal/canvas"
	"github.com/san-kum/algoart/internal/palette"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Dots is a grid of braille cells, each holding 2x4 sub-pixels.
type Dots struct {
	Width, Height int
	Grid          [][]rune
}

func NewDots(w, h int) *Dots {
	d := &Dots{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range d.Grid {
		d.Grid[i] = make([]rune, w)
		for j := range d.Grid[i] {
			d.Grid[i][j] = brailleBlank
		}
	}
	return d
}

// Set raises the sub-pixel at (x, y). The grid spans (Width*2) x (Height*4)
// sub-pixels; anything outside is ignored.
func (d *Dots) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= d.Width || row >= d.Height {
		return
	}

	d.Grid[row][col] |= pixelMap[y%4][x%2]
}

func (d *Dots) String() string {
	var b strings.Builder
	for _, row := range d.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Braille renders the canvas cols cells wide, raising a dot for every pixel
// whose Lab lightness is at least threshold (0..1).
func Braille(c *canvas.Canvas, cols int, threshold float64) string {
	img := Downscale(c, cols*2)
	b := img.Bounds()

	d := NewDots((b.Dx()+1)/2, (b.Dy()+3)/4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := img.RGBAAt(x, y)
			if palette.Lightness(canvas.Color{R: p.R, G: p.G, B: p.B}) >= threshold {
				d.Set(x, y)
			}
		}
	}
	return d.String()
}
