// Package algorithm implements the procedural generators that paint a canvas.
//
// Every algorithm draws only through the canvas and geometry packages and
// consumes randomness from the *rand.Rand it is handed, so a run is fully
// determined by the generator's state at entry.
package algorithm

import (
	"errors"
	"math/rand"

	"github.com/san-kum/algoart/internal/canvas"
)

var (
	// ErrUnknownAlgorithm indicates a name that is not in the registry.
	ErrUnknownAlgorithm = errors.New("algorithm: unknown algorithm")

	// ErrPlacementExhausted indicates a rejection sampler gave up before
	// placing every requested shape.
	ErrPlacementExhausted = errors.New("algorithm: placement attempts exhausted")
)

// Algorithm paints a full pattern onto a canvas in place.
type Algorithm interface {
	Name() string
	Run(c *canvas.Canvas, rng *rand.Rand) error
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
