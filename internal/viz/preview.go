package viz

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"

	"github.com/san-kum/algoart/internal/canvas"
)

// upperHalf draws the top pixel as foreground and the bottom one as
// background, so each cell shows two square-ish pixels.
const upperHalf = "▀"

// Downscale resizes the canvas to cols pixels wide, keeping the aspect ratio.
// cols outside 1..width keeps the canvas width.
func Downscale(c *canvas.Canvas, cols int) *image.RGBA {
	if cols <= 0 || cols > c.Columns() {
		cols = c.Columns()
	}
	rows := max(c.Rows()*cols/c.Columns(), 1)

	dst := image.NewRGBA(image.Rect(0, 0, cols, rows))
	if cols == c.Columns() && rows == c.Rows() {
		xdraw.Draw(dst, dst.Bounds(), c, image.Point{}, xdraw.Src)
		return dst
	}
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), c, c.Bounds(), xdraw.Src, nil)
	return dst
}

// Preview renders the canvas cols cells wide using truecolor half blocks.
// Each line of output covers two pixel rows.
func Preview(c *canvas.Canvas, cols int) string {
	img := Downscale(c, cols)
	b := img.Bounds()

	var out strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hex(img.RGBAAt(x, y)))
			if y+1 < b.Max.Y {
				style = style.Background(hex(img.RGBAAt(x, y+1)))
			}
			out.WriteString(style.Render(upperHalf))
		}
		out.WriteByte('\n')
	}
	return out.String()
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(canvas.Color{R: c.R, G: c.G, B: c.B}.String())
}
