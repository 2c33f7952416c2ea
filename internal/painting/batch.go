package painting

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrInvalidCount indicates a batch asked for a negative number of paintings.
var ErrInvalidCount = errors.New("painting: invalid batch count")

// Batch paints the same configuration over consecutive seeds.
type Batch struct {
	cfg       Config
	count     int
	seedStart int64
	workers   int
}

func NewBatch(cfg Config, count int, seedStart int64) *Batch {
	return &Batch{cfg: cfg, count: count, seedStart: seedStart, workers: 4}
}

// WithWorkers sets how many sessions run at once.
func (b *Batch) WithWorkers(n int) *Batch {
	if n > 0 {
		b.workers = n
	}
	return b
}

// Run paints every seed and returns results in seed order. Each session owns
// its random source, so the output does not depend on scheduling. The first
// error in seed order is returned alongside the partial results.
func (b *Batch) Run(ctx context.Context) ([]*Result, error) {
	if b.count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, b.count)
	}

	results := make([]*Result, b.count)
	errs := make([]error, b.count)

	sem := make(chan struct{}, b.workers)
	var wg sync.WaitGroup
	for i := 0; i < b.count; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			cfg := b.cfg
			cfg.Seed = Seed(b.seedStart + int64(idx))

			results[idx], errs[idx] = Paint(ctx, cfg)
			if errs[idx] != nil {
				Logger().Warn("batch session failed", "seed", *cfg.Seed, "err", errs[idx])
			}
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
