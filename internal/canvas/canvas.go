package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

const (
	DefaultHeight = 768
	DefaultWidth  = 1024
)

var (
	// ErrInvalidDimensions indicates a canvas with a non-positive height or width.
	ErrInvalidDimensions = errors.New("canvas: invalid dimensions")

	// ErrOutOfBounds indicates a pixel access outside the canvas extent.
	ErrOutOfBounds = errors.New("canvas: pixel out of bounds")
)

// Color is an 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

// Gray returns a color with v replicated across all three channels.
func Gray(v uint8) Color {
	return Color{R: v, G: v, B: v}
}

// RGBA implements color.Color. Canvas pixels are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Canvas is a bounds-checked, row-major buffer of RGB pixels.
// Coordinates are (row, col) with the origin at the top-left corner.
type Canvas struct {
	height int
	width  int
	pix    []Color
}

// New returns a black canvas of the given size.
func New(height, width int) (*Canvas, error) {
	if height <= 0 || width <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, height, width)
	}
	return &Canvas{
		height: height,
		width:  width,
		pix:    make([]Color, height*width),
	}, nil
}

func (c *Canvas) Rows() int    { return c.height }
func (c *Canvas) Columns() int { return c.width }

// Contains reports whether (row, col) lies inside the canvas.
func (c *Canvas) Contains(row, col int) bool {
	return row >= 0 && row < c.height && col >= 0 && col < c.width
}

func (c *Canvas) offset(row, col int) (int, error) {
	if !c.Contains(row, col) {
		return 0, fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrOutOfBounds, row, col, c.height, c.width)
	}
	return row*c.width + col, nil
}

// SetPixel writes clr at (row, col) and returns the color written.
// It never clamps: callers with computed coordinates clamp first.
func (c *Canvas) SetPixel(row, col int, clr Color) (Color, error) {
	i, err := c.offset(row, col)
	if err != nil {
		return Color{}, err
	}
	c.pix[i] = clr
	return clr, nil
}

// Pixel returns the color stored at (row, col).
func (c *Canvas) Pixel(row, col int) (Color, error) {
	i, err := c.offset(row, col)
	if err != nil {
		return Color{}, err
	}
	return c.pix[i], nil
}

// Fill sets every pixel to clr.
func (c *Canvas) Fill(clr Color) {
	for i := range c.pix {
		c.pix[i] = clr
	}
}

// Pixels returns a copy of the buffer in row-major order.
func (c *Canvas) Pixels() []Color {
	out := make([]Color, len(c.pix))
	copy(out, c.pix)
	return out
}

// Equal reports whether both canvases have the same size and pixels.
func (c *Canvas) Equal(other *Canvas) bool {
	if c.height != other.height || c.width != other.width {
		return false
	}
	for i := range c.pix {
		if c.pix[i] != other.pix[i] {
			return false
		}
	}
	return true
}

// ToImage converts the canvas to an image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for i, p := range c.pix {
		j := i * 4
		img.Pix[j+0] = p.R
		img.Pix[j+1] = p.G
		img.Pix[j+2] = p.B
		img.Pix[j+3] = 0xff
	}
	return img
}

// At implements the image.Image interface. x is the column, y the row.
func (c *Canvas) At(x, y int) color.Color {
	if !c.Contains(y, x) {
		return color.RGBA{}
	}
	return c.pix[y*c.width+x]
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return color.RGBAModel
}
