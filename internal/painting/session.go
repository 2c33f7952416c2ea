// Package painting runs one generation end to end: it resolves an algorithm,
// seeds a private random source, paints a fresh canvas and names the result.
package painting

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/algoart/internal/algorithm"
	"github.com/san-kum/algoart/internal/canvas"
)

// MaxGeneratedSeed bounds seeds chosen when the caller supplies none.
const MaxGeneratedSeed = 2048

type Config struct {
	Algorithm string
	// Seed is generated when nil.
	Seed   *int64
	Height int
	Width  int
	Params algorithm.Params
}

func DefaultConfig(name string) Config {
	return Config{
		Algorithm: name,
		Height:    canvas.DefaultHeight,
		Width:     canvas.DefaultWidth,
	}
}

// Seed is a convenience for filling Config.Seed.
func Seed(v int64) *int64 {
	return &v
}

// Session is a single painting run. It owns its random source, so sessions
// may run concurrently without affecting each other's output.
type Session struct {
	cfg        Config
	algo       algorithm.Algorithm
	seed       int64
	randSource *rand.Rand
	done       bool
}

// Result is the finished canvas plus the identifier used to name the artifact.
type Result struct {
	Canvas    *canvas.Canvas
	Name      string
	Algorithm string
	Seed      int64
	Elapsed   time.Duration
}

// New resolves the algorithm against the default registry and seeds the
// session's random source.
func New(cfg Config) (*Session, error) {
	return NewWithRegistry(algorithm.NewRegistry(), cfg)
}

func NewWithRegistry(r *algorithm.Registry, cfg Config) (*Session, error) {
	algo, err := r.Get(cfg.Algorithm, cfg.Params)
	if err != nil {
		return nil, err
	}

	seed := int64(rand.Intn(MaxGeneratedSeed))
	if cfg.Seed != nil {
		seed = *cfg.Seed
	}

	return &Session{
		cfg:        cfg,
		algo:       algo,
		seed:       seed,
		randSource: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *Session) Seed() int64 { return s.seed }

// Name returns "{algorithm}_{seed}".
func (s *Session) Name() string {
	return ArtifactName(s.algo.Name(), s.seed)
}

func ArtifactName(algo string, seed int64) string {
	return fmt.Sprintf("%s_%d", algo, seed)
}

// Paint creates the canvas and runs the algorithm on it. A session paints
// exactly once.
func (s *Session) Paint(ctx context.Context) (*Result, error) {
	if s.done {
		return nil, fmt.Errorf("painting: session %s already painted", s.Name())
	}
	s.done = true

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c, err := canvas.New(s.cfg.Height, s.cfg.Width)
	if err != nil {
		return nil, err
	}

	log := Logger().With("algorithm", s.algo.Name(), "seed", s.seed)
	log.Debug("painting", "height", c.Rows(), "width", c.Columns())

	start := time.Now()
	if err := s.algo.Run(c, s.randSource); err != nil {
		return nil, &Error{
			Algorithm: s.algo.Name(),
			Seed:      s.seed,
			Height:    c.Rows(),
			Width:     c.Columns(),
			Wrapped:   err,
		}
	}
	elapsed := time.Since(start)

	log.Debug("painted", "elapsed", elapsed)

	return &Result{
		Canvas:    c,
		Name:      s.Name(),
		Algorithm: s.algo.Name(),
		Seed:      s.seed,
		Elapsed:   elapsed,
	}, nil
}

// Paint is shorthand for New followed by Session.Paint.
func Paint(ctx context.Context, cfg Config) (*Result, error) {
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return s.Paint(ctx)
}
