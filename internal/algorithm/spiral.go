package algorithm

import (
	"math/rand"

	"github.com/san-kum/algoart/internal/canvas"
	"github.com/san-kum/algoart/internal/geometry"
)

// RandomSpiral walks the edges of a shrinking ring, drawing a band of
// Thickness pixels inward from every jittered edge pixel.
type RandomSpiral struct {
	Distance  int
	Thickness int
}

func NewRandomSpiral() *RandomSpiral {
	return &RandomSpiral{Distance: 25, Thickness: 15}
}

func (a *RandomSpiral) Name() string { return NameRandomSpiral }

func (a *RandomSpiral) Run(c *canvas.Canvas, rng *rand.Rand) error {
	thickness := max(a.Thickness, 1)
	top, bottom := 0, c.Rows()
	left, right := 0, c.Columns()
	prev := geometry.RandomColor(rng)

	// stroke sets (row, col) and copies the color along (dr, dc) until the
	// band is full or it leaves the active ring.
	stroke := func(row, col, dr, dc int) error {
		clr, err := c.SetPixel(row, col, geometry.JitterColor(rng, prev, a.Distance))
		if err != nil {
			return err
		}
		prev = clr
		for t := 1; t < thickness; t++ {
			r, k := row+dr*t, col+dc*t
			if r < top || r >= bottom || k < left || k >= right {
				break
			}
			if _, err := c.SetPixel(r, k, clr); err != nil {
				return err
			}
		}
		return nil
	}

	for left < right && top < bottom {
		for col := left; col < right; col++ {
			if err := stroke(top, col, 1, 0); err != nil {
				return err
			}
		}
		top += thickness
		if top >= bottom {
			break
		}

		for row := top; row < bottom; row++ {
			if err := stroke(row, right-1, 0, -1); err != nil {
				return err
			}
		}
		right -= thickness
		if left >= right {
			break
		}

		for col := right - 1; col >= left; col-- {
			if err := stroke(bottom-1, col, -1, 0); err != nil {
				return err
			}
		}
		bottom -= thickness
		if top >= bottom {
			break
		}

		for row := bottom - 1; row >= top; row-- {
			if err := stroke(row, left, 0, 1); err != nil {
				return err
			}
		}
		left += thickness
	}
	return nil
}
