package algorithm

import (
	"fmt"

	"github.com/san-kum/algoart/internal/palette"
)

const (
	NameRandomNearPixels    = "random_near_pixels"
	NameRandomSpiral        = "random_spiral"
	NameGrayscaleRectangles = "grayscale_rectangles"
	NameSlicedCurves        = "sliced_curves"
	NameRecursiveSquares    = "recursive_squares"

	NameRandomPixels = "random_pixels"
	NameQuadrant     = "quadrant"
)

// Params carries the per-run knobs that some variants accept.
type Params struct {
	Palette     palette.Palette
	MaxAttempts int
}

// Info describes a registered variant.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Legacy      bool   `json:"legacy"`
}

type variant struct {
	info  Info
	build func(Params) Algorithm
}

// Registry maps symbolic names to variant constructors.
type Registry struct {
	variants map[string]variant
	order    []string
}

func NewRegistry() *Registry {
	r := &Registry{variants: make(map[string]variant)}

	r.register(Info{Name: NameRandomNearPixels, Description: "row-wise random walk through color space"},
		func(Params) Algorithm { return NewRandomNearPixels() })
	r.register(Info{Name: NameRandomSpiral, Description: "banded color walk spiraling inward"},
		func(Params) Algorithm { return NewRandomSpiral() })
	r.register(Info{Name: NameGrayscaleRectangles, Description: "grayscale bars over a random background"},
		func(Params) Algorithm { return NewGrayscaleRectangles() })
	r.register(Info{Name: NameSlicedCurves, Description: "stepped red, blue and yellow bands"},
		func(Params) Algorithm { return NewSlicedCurves() })
	r.register(Info{Name: NameRecursiveSquares, Description: "non-overlapping squares in halving size tiers"},
		func(p Params) Algorithm {
			a := NewRecursiveSquares()
			if len(p.Palette) > 0 {
				a.Palette = p.Palette
			}
			if p.MaxAttempts > 0 {
				a.MaxAttempts = p.MaxAttempts
			}
			return a
		})

	r.register(Info{Name: NameRandomPixels, Description: "independent random color per pixel", Legacy: true},
		func(Params) Algorithm { return NewRandomPixels() })
	r.register(Info{Name: NameQuadrant, Description: "four solid quadrants", Legacy: true},
		func(Params) Algorithm { return NewQuadrant() })

	return r
}

func (r *Registry) register(info Info, build func(Params) Algorithm) {
	r.variants[info.Name] = variant{info: info, build: build}
	r.order = append(r.order, info.Name)
}

// Get builds a fresh instance of the named variant.
func (r *Registry) Get(name string, p Params) (Algorithm, error) {
	v, ok := r.variants[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, name)
	}
	return v.build(p), nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.variants[name]
	return ok
}

// List returns every variant in registration order.
func (r *Registry) List() []Info {
	out := make([]Info, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.variants[name].info)
	}
	return out
}

// Names returns the current, non-legacy variant names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.order))
	for _, name := range r.order {
		if !r.variants[name].info.Legacy {
			names = append(names, name)
		}
	}
	return names
}
