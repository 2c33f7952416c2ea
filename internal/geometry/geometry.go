// Package geometry holds stateless drawing helpers shared by the algorithms.
// Helpers that need randomness take the caller's *rand.Rand explicitly.
package geometry

import (
	"math/rand"

	"github.com/san-kum/algoart/internal/canvas"
)

// ClampRow returns row limited to [0, rows-1].
func ClampRow(row int, c *canvas.Canvas) int {
	return clamp(row, 0, c.Rows()-1)
}

// ClampColumn returns col limited to [0, columns-1].
func ClampColumn(col int, c *canvas.Canvas) int {
	return clamp(col, 0, c.Columns()-1)
}

// RandomColor draws each channel uniformly from [0, 255].
func RandomColor(rng *rand.Rand) canvas.Color {
	return canvas.Color{
		R: uint8(rng.Intn(256)),
		G: uint8(rng.Intn(256)),
		B: uint8(rng.Intn(256)),
	}
}

// RandomGrayscale draws one value from [0, 255] for all three channels.
func RandomGrayscale(rng *rand.Rand) canvas.Color {
	return canvas.Gray(uint8(rng.Intn(256)))
}

// JitterColor nudges every channel of base by a uniform delta in
// [-maxDelta, maxDelta], clamped to [0, 255].
func JitterColor(rng *rand.Rand, base canvas.Color, maxDelta int) canvas.Color {
	return canvas.Color{
		R: jitter(rng, base.R, maxDelta),
		G: jitter(rng, base.G, maxDelta),
		B: jitter(rng, base.B, maxDelta),
	}
}

func jitter(rng *rand.Rand, v uint8, maxDelta int) uint8 {
	delta := RandInt(rng, -maxDelta, maxDelta)
	return uint8(clamp(int(v)+delta, 0, 255))
}

// FillRectangle paints the rows [top, top+height) and columns
// [left, left+width) after clamping each bound into the canvas. Shapes
// that leave the frame are cropped and negative extents draw nothing.
func FillRectangle(c *canvas.Canvas, top, left, height, width int, clr canvas.Color) error {
	rowStart, rowEnd := ClampRow(top, c), ClampRow(top+height, c)
	colStart, colEnd := ClampColumn(left, c), ClampColumn(left+width, c)

	for row := rowStart; row < rowEnd; row++ {
		for col := colStart; col < colEnd; col++ {
			if _, err := c.SetPixel(row, col, clr); err != nil {
				return err
			}
		}
	}
	return nil
}

// RandInt returns a uniform integer in the closed range [lo, hi].
// It returns lo when the range is empty.
func RandInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
