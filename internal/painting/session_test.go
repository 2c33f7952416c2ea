package painting_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/algoart/internal/algorithm"
	"github.com/san-kum/algoart/internal/canvas"
	"github.com/san-kum/algoart/internal/painting"
)

func spiralConfig(seed int64) painting.Config {
	return painting.Config{
		Algorithm: "random_spiral",
		Seed:      painting.Seed(seed),
		Height:    64,
		Width:     64,
	}
}

var _ = Describe("Session", func() {
	ctx := context.Background()

	It("reproduces the same canvas for the same seed", func() {
		first, err := painting.Paint(ctx, spiralConfig(42))
		Expect(err).NotTo(HaveOccurred())
		second, err := painting.Paint(ctx, spiralConfig(42))
		Expect(err).NotTo(HaveOccurred())

		Expect(first.Canvas.Equal(second.Canvas)).To(BeTrue())
		Expect(first.Name).To(Equal("random_spiral_42"))
	})

	It("changes the canvas when only the seed changes", func() {
		first, err := painting.Paint(ctx, spiralConfig(42))
		Expect(err).NotTo(HaveOccurred())
		second, err := painting.Paint(ctx, spiralConfig(43))
		Expect(err).NotTo(HaveOccurred())

		Expect(first.Canvas.Equal(second.Canvas)).To(BeFalse())
	})

	It("paints at the requested size", func() {
		res, err := painting.Paint(ctx, spiralConfig(1))
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Canvas.Rows()).To(Equal(64))
		Expect(res.Canvas.Columns()).To(Equal(64))
		Expect(res.Canvas.Pixels()).To(HaveLen(64 * 64))
	})

	It("generates and records a seed when none is given", func() {
		cfg := painting.DefaultConfig("quadrant")
		s, err := painting.New(cfg)
		Expect(err).NotTo(HaveOccurred())

		Expect(s.Seed()).To(BeNumerically(">=", 0))
		Expect(s.Seed()).To(BeNumerically("<", painting.MaxGeneratedSeed))

		res, err := s.Paint(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Seed).To(Equal(s.Seed()))
		Expect(res.Name).To(Equal(painting.ArtifactName("quadrant", s.Seed())))
		Expect(res.Canvas.Rows()).To(Equal(canvas.DefaultHeight))
		Expect(res.Canvas.Columns()).To(Equal(canvas.DefaultWidth))
	})

	It("fails with ErrUnknownAlgorithm before drawing", func() {
		s, err := painting.New(painting.Config{Algorithm: "nope", Height: 10, Width: 10})
		Expect(err).To(MatchError(algorithm.ErrUnknownAlgorithm))
		Expect(s).To(BeNil())
	})

	It("fails with ErrInvalidDimensions for a degenerate canvas", func() {
		cfg := spiralConfig(1)
		cfg.Height = 0
		_, err := painting.Paint(ctx, cfg)
		Expect(err).To(MatchError(canvas.ErrInvalidDimensions))
	})

	It("surfaces ErrPlacementExhausted from the algorithm", func() {
		cfg := painting.Config{Algorithm: "recursive_squares", Seed: painting.Seed(1), Height: 20, Width: 20}
		_, err := painting.Paint(ctx, cfg)
		Expect(err).To(MatchError(algorithm.ErrPlacementExhausted))

		var perr *painting.Error
		Expect(errors.As(err, &perr)).To(BeTrue())
		Expect(perr.Seed).To(Equal(int64(1)))
		Expect(perr.Error()).To(ContainSubstring("recursive_squares_1 at 20x20"))
	})

	It("paints only once", func() {
		s, err := painting.New(spiralConfig(5))
		Expect(err).NotTo(HaveOccurred())
		_, err = s.Paint(ctx)
		Expect(err).NotTo(HaveOccurred())
		_, err = s.Paint(ctx)
		Expect(err).To(HaveOccurred())
	})

	It("honours a cancelled context", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := painting.Paint(cancelled, spiralConfig(5))
		Expect(err).To(MatchError(context.Canceled))
	})

	It("logs through the configured logger", func() {
		var buf bytes.Buffer
		painting.SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
		DeferCleanup(func() { painting.SetLogger(nil) })

		_, err := painting.Paint(ctx, spiralConfig(7))
		Expect(err).NotTo(HaveOccurred())
		Expect(buf.String()).To(ContainSubstring("algorithm=random_spiral"))
		Expect(buf.String()).To(ContainSubstring("seed=7"))
	})
})

var _ = Describe("Batch", func() {
	It("matches sequential sessions regardless of scheduling", func() {
		cfg := spiralConfig(0)
		results, err := painting.NewBatch(cfg, 6, 100).WithWorkers(3).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(6))

		for i, res := range results {
			Expect(res.Seed).To(Equal(int64(100 + i)))

			single, err := painting.Paint(context.Background(), spiralConfig(100+int64(i)))
			Expect(err).NotTo(HaveOccurred())
			Expect(res.Canvas.Equal(single.Canvas)).To(BeTrue())
		}
	})

	It("reports the first failure", func() {
		cfg := spiralConfig(0)
		cfg.Width = -1
		_, err := painting.NewBatch(cfg, 3, 0).Run(context.Background())
		Expect(err).To(MatchError(canvas.ErrInvalidDimensions))
	})

	It("rejects a negative count without painting", func() {
		cfg := painting.Config{Algorithm: "quadrant", Height: 4, Width: 4}
		results, err := painting.NewBatch(cfg, -1, 0).Run(context.Background())
		Expect(err).To(MatchError(painting.ErrInvalidCount))
		Expect(results).To(BeNil())
	})

	It("returns no results for a zero count", func() {
		cfg := painting.Config{Algorithm: "quadrant", Height: 4, Width: 4}
		results, err := painting.NewBatch(cfg, 0, 0).Run(context.Background())
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(BeEmpty())
	})
})
