package algorithm_test

import (
	"fmt"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoart/internal/algorithm"
	"github.com/san-kum/algoart/internal/canvas"
	"github.com/san-kum/algoart/internal/palette"
)

func paint(a algorithm.Algorithm, height, width int, seed int64) (*canvas.Canvas, error) {
	c, err := canvas.New(height, width)
	Expect(err).NotTo(HaveOccurred())
	return c, a.Run(c, rand.New(rand.NewSource(seed)))
}

var _ = Describe("Registry", func() {
	var registry *algorithm.Registry

	BeforeEach(func() {
		registry = algorithm.NewRegistry()
	})

	It("lists the five current variants in order", func() {
		Expect(registry.Names()).To(Equal([]string{
			"random_near_pixels",
			"random_spiral",
			"grayscale_rectangles",
			"sliced_curves",
			"recursive_squares",
		}))
	})

	It("keeps the legacy variants available", func() {
		Expect(registry.Has("random_pixels")).To(BeTrue())
		Expect(registry.Has("quadrant")).To(BeTrue())
		Expect(registry.List()).To(HaveLen(7))
	})

	It("builds variants whose name matches the lookup key", func() {
		for _, info := range registry.List() {
			a, err := registry.Get(info.Name, algorithm.Params{})
			Expect(err).NotTo(HaveOccurred())
			Expect(a.Name()).To(Equal(info.Name))
		}
	})

	It("rejects unknown names", func() {
		a, err := registry.Get("mandelbrot", algorithm.Params{})
		Expect(err).To(MatchError(algorithm.ErrUnknownAlgorithm))
		Expect(a).To(BeNil())
	})

	It("passes palette and attempt limits to recursive squares", func() {
		p, _ := palette.Get("palette_2")
		a, err := registry.Get("recursive_squares", algorithm.Params{Palette: p, MaxAttempts: 12})
		Expect(err).NotTo(HaveOccurred())

		sq := a.(*algorithm.RecursiveSquares)
		Expect(sq.Palette).To(Equal(p))
		Expect(sq.MaxAttempts).To(Equal(12))
	})
})

var _ = Describe("Every variant", func() {
	registry := algorithm.NewRegistry()

	DescribeTable("is deterministic for a fixed seed",
		func(name string, height, width int) {
			a1, _ := registry.Get(name, algorithm.Params{})
			a2, _ := registry.Get(name, algorithm.Params{})

			first, err := paint(a1, height, width, 42)
			Expect(err).NotTo(HaveOccurred())
			second, err := paint(a2, height, width, 42)
			Expect(err).NotTo(HaveOccurred())

			Expect(first.Equal(second)).To(BeTrue())
		},
		Entry("random_near_pixels", "random_near_pixels", 40, 60),
		Entry("random_spiral", "random_spiral", 64, 64),
		Entry("grayscale_rectangles", "grayscale_rectangles", 120, 160),
		Entry("sliced_curves", "sliced_curves", 120, 160),
		Entry("recursive_squares", "recursive_squares", canvas.DefaultHeight, canvas.DefaultWidth),
		Entry("random_pixels", "random_pixels", 20, 30),
		Entry("quadrant", "quadrant", 20, 30),
	)

	DescribeTable("stays inside tiny and lopsided canvases",
		func(name string) {
			sizes := [][2]int{{1, 1}, {1, 50}, {50, 1}, {3, 7}, {16, 16}, {31, 47}}
			for _, size := range sizes {
				a, _ := registry.Get(name, algorithm.Params{})
				_, err := paint(a, size[0], size[1], 7)
				Expect(err).NotTo(HaveOccurred(), "size %dx%d", size[0], size[1])
			}
		},
		Entry("random_near_pixels", "random_near_pixels"),
		Entry("random_spiral", "random_spiral"),
		Entry("grayscale_rectangles", "grayscale_rectangles"),
		Entry("sliced_curves", "sliced_curves"),
		Entry("random_pixels", "random_pixels"),
		Entry("quadrant", "quadrant"),
	)
})

var _ = Describe("RandomNearPixels", func() {
	It("keeps neighbouring pixels within the jitter distance", func() {
		a := algorithm.NewRandomNearPixels()
		c, err := paint(a, 30, 40, 3)
		Expect(err).NotTo(HaveOccurred())

		for row := 0; row < c.Rows(); row++ {
			for col := 1; col < c.Columns(); col++ {
				prev, _ := c.Pixel(row, col-1)
				cur, _ := c.Pixel(row, col)
				Expect(channelDistance(prev, cur)).To(BeNumerically("<=", a.Distance))
			}
		}
	})

	It("seeds each row from the leftmost pixel of the row above", func() {
		a := algorithm.NewRandomNearPixels()
		c, err := paint(a, 30, 40, 11)
		Expect(err).NotTo(HaveOccurred())

		for row := 1; row < c.Rows(); row++ {
			above, _ := c.Pixel(row-1, 0)
			first, _ := c.Pixel(row, 0)
			Expect(channelDistance(above, first)).To(BeNumerically("<=", a.Distance))
		}
	})
})

var _ = Describe("RandomSpiral", func() {
	It("terminates and paints the outer band first", func() {
		a := algorithm.NewRandomSpiral()
		c, err := paint(a, 64, 64, 42)
		Expect(err).NotTo(HaveOccurred())

		// the first top band is one color per column, copied down the band
		for col := 0; col < c.Columns(); col++ {
			head, _ := c.Pixel(0, col)
			for t := 1; t < a.Thickness; t++ {
				got, _ := c.Pixel(t, col)
				Expect(got).To(Equal(head))
			}
		}
	})

	It("handles a thickness larger than the canvas", func() {
		a := &algorithm.RandomSpiral{Distance: 25, Thickness: 100}
		_, err := paint(a, 10, 10, 1)
		Expect(err).NotTo(HaveOccurred())
	})

	It("changes output when the seed changes", func() {
		first, _ := paint(algorithm.NewRandomSpiral(), 64, 64, 1)
		second, _ := paint(algorithm.NewRandomSpiral(), 64, 64, 2)
		Expect(first.Equal(second)).To(BeFalse())
	})
})

var _ = Describe("GrayscaleRectangles", func() {
	It("draws only grayscale pixels over a single background", func() {
		c, err := paint(algorithm.NewGrayscaleRectangles(), 200, 300, 5)
		Expect(err).NotTo(HaveOccurred())

		// the background is the only color allowed to be non-gray
		bg, _ := c.Pixel(c.Rows()-1, c.Columns()-1)
		for _, p := range c.Pixels() {
			if p.R != p.G || p.G != p.B {
				Expect(p).To(Equal(bg))
			}
		}
	})
})

var _ = Describe("SlicedCurves", func() {
	It("uses only the background and its three colors", func() {
		a := algorithm.NewSlicedCurves()
		c, err := paint(a, 120, 200, 9)
		Expect(err).NotTo(HaveOccurred())

		allowed := map[canvas.Color]bool{{}: true}
		for _, clr := range a.Colors {
			allowed[clr] = true
		}
		drawn := 0
		for _, p := range c.Pixels() {
			Expect(allowed).To(HaveKey(p))
			if p != (canvas.Color{}) {
				drawn++
			}
		}
		Expect(drawn).To(BeNumerically(">", 0))
	})
})

var _ = Describe("RecursiveSquares", func() {
	var a *algorithm.RecursiveSquares

	BeforeEach(func() {
		a = algorithm.NewRecursiveSquares()
	})

	for _, seed := range []int64{1, 42, 2047} {
		It(fmt.Sprintf("places every tier without overlap (seed %d)", seed), func() {
			c, _ := canvas.New(canvas.DefaultHeight, canvas.DefaultWidth)
			squares, err := a.Place(c, rand.New(rand.NewSource(seed)))
			Expect(err).NotTo(HaveOccurred())

			perTier := map[int]int{}
			for _, sq := range squares {
				perTier[sq.Tier]++
				Expect(sq.Top).To(BeNumerically(">=", 0))
				Expect(sq.Left).To(BeNumerically(">=", 0))
				Expect(sq.Top + sq.Side).To(BeNumerically("<", c.Rows()))
				Expect(sq.Left + sq.Side).To(BeNumerically("<", c.Columns()))
			}
			for tier, count := range a.Counts {
				Expect(perTier[tier]).To(Equal(count), "tier %d", tier)
			}

			for i := range squares {
				for j := i + 1; j < len(squares); j++ {
					Expect(separated(squares[i], squares[j], a.Margin)).To(BeTrue(),
						"squares %v and %v overlap", squares[i], squares[j])
				}
			}
		})
	}

	It("halves the side length each tier", func() {
		c, _ := canvas.New(canvas.DefaultHeight, canvas.DefaultWidth)
		squares, err := a.Place(c, rand.New(rand.NewSource(3)))
		Expect(err).NotTo(HaveOccurred())

		largest := canvas.DefaultHeight / a.SideDivisor
		for _, sq := range squares {
			Expect(sq.Side).To(Equal(largest >> sq.Tier))
		}
	})

	It("paints the background with the first palette color", func() {
		c, err := paint(a, canvas.DefaultHeight, canvas.DefaultWidth, 8)
		Expect(err).NotTo(HaveOccurred())

		corner, _ := c.Pixel(0, 0)
		Expect(corner).To(Equal(a.Palette[0]))
	})

	It("fails with ErrPlacementExhausted when a tier cannot fit", func() {
		a.Counts = []int{1000}
		a.MaxAttempts = 50
		_, err := paint(a, 112, 112, 1)
		Expect(err).To(MatchError(algorithm.ErrPlacementExhausted))
	})

	It("fails with ErrPlacementExhausted on a canvas too small for the last tier", func() {
		_, err := paint(a, 10, 10, 1)
		Expect(err).To(MatchError(algorithm.ErrPlacementExhausted))
	})

	It("fills a small grid when the count is reachable", func() {
		a.Counts = []int{4}
		c, _ := canvas.New(112, 112)
		squares, err := a.Place(c, rand.New(rand.NewSource(99)))
		Expect(err).NotTo(HaveOccurred())
		Expect(squares).To(HaveLen(4))
	})
})

var _ = Describe("Quadrant", func() {
	It("splits the canvas at the midpoints", func() {
		c, err := paint(algorithm.NewQuadrant(), 4, 6, 0)
		Expect(err).NotTo(HaveOccurred())

		at := func(row, col int) canvas.Color {
			p, _ := c.Pixel(row, col)
			return p
		}
		Expect(at(0, 0)).To(Equal(palette.Red))
		Expect(at(1, 2)).To(Equal(palette.Red))
		Expect(at(0, 3)).To(Equal(palette.Green))
		Expect(at(2, 0)).To(Equal(palette.Blue))
		Expect(at(3, 5)).To(Equal(palette.White))
	})
})

func channelDistance(a, b canvas.Color) int {
	d := 0
	for _, pair := range [][2]uint8{{a.R, b.R}, {a.G, b.G}, {a.B, b.B}} {
		diff := int(pair[0]) - int(pair[1])
		if diff < 0 {
			diff = -diff
		}
		d = max(d, diff)
	}
	return d
}

// separated reports whether the boxes are more than margin apart on some axis.
func separated(a, b algorithm.Square, margin int) bool {
	rowGap := a.Top > b.Top+b.Side+margin || b.Top > a.Top+a.Side+margin
	colGap := a.Left > b.Left+b.Side+margin || b.Left > a.Left+a.Side+margin
	return rowGap || colGap
}
