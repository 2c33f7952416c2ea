package algorithm

import (
	"math/rand"

	"github.com/san-kum/algoart/internal/canvas"
	"github.com/san-kum/algoart/internal/geometry"
	"github.com/san-kum/algoart/internal/palette"
)

// GrayscaleRectangles scatters grayscale bars over a random background.
// Bars may start up to a quarter of the canvas above or left of the frame.
type GrayscaleRectangles struct {
	Count           int
	MinWidth        int
	MaxWidth        int
	MaxLength       int
	PercentVertical float64
}

func NewGrayscaleRectangles() *GrayscaleRectangles {
	return &GrayscaleRectangles{
		Count:           30,
		MinWidth:        5,
		MaxWidth:        15,
		MaxLength:       500,
		PercentVertical: 0.4,
	}
}

func (a *GrayscaleRectangles) Name() string { return NameGrayscaleRectangles }

func (a *GrayscaleRectangles) Run(c *canvas.Canvas, rng *rand.Rand) error {
	c.Fill(geometry.RandomColor(rng))

	for i := 0; i < a.Count; i++ {
		width := geometry.RandInt(rng, a.MinWidth, a.MaxWidth)
		height := geometry.RandInt(rng, a.MaxLength/2, a.MaxLength)
		// bars stay vertical with probability 1 - PercentVertical
		if rng.Float64() < a.PercentVertical {
			width, height = height, width
		}

		top := geometry.RandInt(rng, -c.Rows()/4, c.Rows())
		left := geometry.RandInt(rng, -c.Columns()/4, c.Columns())

		if err := geometry.FillRectangle(c, top, left, height, width, geometry.RandomGrayscale(rng)); err != nil {
			return err
		}
	}
	return nil
}

// SlicedCurves draws stepped bands across the full width. Each segment picks
// a color and a steepness, then repeats a run of that length one band up or
// down a few times.
type SlicedCurves struct {
	Colors        palette.Palette
	Curves        int
	Thickness     int
	MaxSteepness  int
	SteepnessStep int
	MaxRepeats    int
}

func NewSlicedCurves() *SlicedCurves {
	return &SlicedCurves{
		Colors:        palette.Palette{palette.Red, palette.Blue, palette.Yellow},
		Curves:        20,
		Thickness:     5,
		MaxSteepness:  20,
		SteepnessStep: 5,
		MaxRepeats:    5,
	}
}

func (a *SlicedCurves) Name() string { return NameSlicedCurves }

func (a *SlicedCurves) Run(c *canvas.Canvas, rng *rand.Rand) error {
	colors := a.Colors
	if len(colors) == 0 {
		colors = NewSlicedCurves().Colors
	}
	for i := 0; i < a.Curves; i++ {
		if err := a.drawCurve(c, rng, colors); err != nil {
			return err
		}
	}
	return nil
}

func (a *SlicedCurves) drawCurve(c *canvas.Canvas, rng *rand.Rand, colors palette.Palette) error {
	step := max(a.SteepnessStep, 1)
	steps := max(a.MaxSteepness/step, 1)
	width := c.Columns()

	row := geometry.RandInt(rng, 0, c.Rows()-a.Thickness-1)
	col := 0

	for col < width-1 {
		clr := colors[rng.Intn(len(colors))]
		steepness := geometry.RandInt(rng, -steps, steps) * step
		repeats := geometry.RandInt(rng, 1, a.MaxRepeats)

		for j := 0; j < repeats && col < width; j++ {
			length := abs(steepness)
			if col+length >= width {
				length = width - col
			}

			if err := geometry.FillRectangle(c, row, col, a.Thickness, length, clr); err != nil {
				return err
			}

			col += length
			row += sign(steepness) * a.Thickness
		}
	}
	return nil
}
