package algorithm

import (
	"math/rand"

	"github.com/san-kum/algoart/internal/canvas"
	"github.com/san-kum/algoart/internal/geometry"
	"github.com/san-kum/algoart/internal/palette"
)

// RandomNearPixels walks each row left to right, jittering the previous
// pixel's color. Each row starts from the leftmost pixel of the row above.
type RandomNearPixels struct {
	Distance int
}

func NewRandomNearPixels() *RandomNearPixels {
	return &RandomNearPixels{Distance: 15}
}

func (a *RandomNearPixels) Name() string { return NameRandomNearPixels }

func (a *RandomNearPixels) Run(c *canvas.Canvas, rng *rand.Rand) error {
	seed := geometry.RandomColor(rng)

	for row := 0; row < c.Rows(); row++ {
		prev := seed
		for col := 0; col < c.Columns(); col++ {
			var err error
			prev, err = c.SetPixel(row, col, geometry.JitterColor(rng, prev, a.Distance))
			if err != nil {
				return err
			}
		}

		var err error
		if seed, err = c.Pixel(row, 0); err != nil {
			return err
		}
	}
	return nil
}

// RandomPixels colors every pixel independently.
type RandomPixels struct{}

func NewRandomPixels() *RandomPixels { return &RandomPixels{} }

func (a *RandomPixels) Name() string { return NameRandomPixels }

func (a *RandomPixels) Run(c *canvas.Canvas, rng *rand.Rand) error {
	for row := 0; row < c.Rows(); row++ {
		for col := 0; col < c.Columns(); col++ {
			if _, err := c.SetPixel(row, col, geometry.RandomColor(rng)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Quadrant splits the canvas into four solid quadrants.
type Quadrant struct {
	Colors [4]canvas.Color
}

func NewQuadrant() *Quadrant {
	return &Quadrant{Colors: [4]canvas.Color{palette.Red, palette.Green, palette.Blue, palette.White}}
}

func (a *Quadrant) Name() string { return NameQuadrant }

func (a *Quadrant) Run(c *canvas.Canvas, _ *rand.Rand) error {
	for row := 0; row < c.Rows(); row++ {
		for col := 0; col < c.Columns(); col++ {
			i := 0
			if 2*row >= c.Rows() {
				i += 2
			}
			if 2*col >= c.Columns() {
				i++
			}
			if _, err := c.SetPixel(row, col, a.Colors[i]); err != nil {
				return err
			}
		}
	}
	return nil
}
