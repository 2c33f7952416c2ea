package algorithm

import (
	"fmt"
	"math/rand"

	"github.com/san-kum/algoart/internal/canvas"
	"github.com/san-kum/algoart/internal/geometry"
	"github.com/san-kum/algoart/internal/palette"
)

// DefaultMaxAttempts bounds the candidates sampled for a single square.
const DefaultMaxAttempts = 100000

// Square is an accepted placement. Its bounding box spans
// [Top, Top+Side] x [Left, Left+Side].
type Square struct {
	Top, Left, Side int
	Tier            int
}

// near reports whether (row, col) lies within margin of the square's box.
func (s Square) near(row, col, margin int) bool {
	return row >= s.Top-margin && row <= s.Top+s.Side+margin &&
		col >= s.Left-margin && col <= s.Left+s.Side+margin
}

// RecursiveSquares packs non-overlapping squares in tiers whose side halves
// each time. Placement is rejection sampling on a per-tier grid: a candidate
// is rejected if any of its corners lands within Margin of an accepted square.
type RecursiveSquares struct {
	Palette     palette.Palette
	Counts      []int
	SideDivisor int
	Margin      int
	MaxAttempts int
}

func NewRecursiveSquares() *RecursiveSquares {
	return &RecursiveSquares{
		Palette:     palette.Default(),
		Counts:      []int{4, 14, 50, 50, 100},
		SideDivisor: 7,
		Margin:      3,
		MaxAttempts: DefaultMaxAttempts,
	}
}

func (a *RecursiveSquares) Name() string { return NameRecursiveSquares }

func (a *RecursiveSquares) Run(c *canvas.Canvas, rng *rand.Rand) error {
	_, err := a.Place(c, rng)
	return err
}

// Place paints the squares and returns them in placement order.
func (a *RecursiveSquares) Place(c *canvas.Canvas, rng *rand.Rand) ([]Square, error) {
	colors := a.Palette
	if len(colors) == 0 {
		colors = palette.Default()
	}
	attempts := a.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	height, width := c.Rows(), c.Columns()
	largest := min(height, width) / max(a.SideDivisor, 1)

	c.Fill(colors[0])

	rowOffset := gridOffset(height, largest)
	colOffset := gridOffset(width, largest)

	covered := make([]Square, 0)
	for tier, count := range a.Counts {
		side := largest >> tier
		if side < 1 {
			return covered, fmt.Errorf("%w: tier %d has no room on a %dx%d canvas", ErrPlacementExhausted, tier, height, width)
		}

		rows := gridSteps(rowOffset, height-rowOffset-side, side)
		cols := gridSteps(colOffset, width-colOffset-side, side)
		if rows <= 0 || cols <= 0 {
			return covered, fmt.Errorf("%w: tier %d grid is empty on a %dx%d canvas", ErrPlacementExhausted, tier, height, width)
		}

		for drawn := 0; drawn < count; drawn++ {
			sq, ok := a.sample(covered, attempts, func() Square {
				return Square{
					Top:  rowOffset + side*rng.Intn(rows),
					Left: colOffset + side*rng.Intn(cols),
					Side: side,
					Tier: tier,
				}
			})
			if !ok {
				return covered, fmt.Errorf("%w: tier %d placed %d of %d squares in %d attempts",
					ErrPlacementExhausted, tier, drawn, count, attempts)
			}

			if err := geometry.FillRectangle(c, sq.Top, sq.Left, side, side, cycle(colors, drawn)); err != nil {
				return covered, err
			}
			covered = append(covered, sq)
		}
	}
	return covered, nil
}

func (a *RecursiveSquares) sample(covered []Square, attempts int, candidate func() Square) (Square, bool) {
	for i := 0; i < attempts; i++ {
		sq := candidate()
		if a.fits(covered, sq) {
			return sq, true
		}
	}
	return Square{}, false
}

func (a *RecursiveSquares) fits(covered []Square, sq Square) bool {
	corners := [4][2]int{
		{sq.Top, sq.Left},
		{sq.Top + sq.Side, sq.Left},
		{sq.Top, sq.Left + sq.Side},
		{sq.Top + sq.Side, sq.Left + sq.Side},
	}
	for _, p := range corners {
		for _, other := range covered {
			if other.near(p[0], p[1], a.Margin) {
				return false
			}
		}
	}
	return true
}

// cycle skips the background color at index 0.
func cycle(p palette.Palette, n int) canvas.Color {
	if len(p) == 1 {
		return p[0]
	}
	return p[n%(len(p)-1)+1]
}

// gridOffset centers a grid of largest-sized cells, pushing it in by half a
// cell when the leftover margin is too thin.
func gridOffset(extent, largest int) int {
	if largest <= 0 {
		return 0
	}
	off := (extent - extent/largest*largest) / 2
	if 2*off < largest {
		off += largest / 2
	}
	return off
}

// gridSteps counts start, start+step, ... strictly below stop.
func gridSteps(start, stop, step int) int {
	if stop <= start {
		return 0
	}
	return (stop - start + step - 1) / step
}
