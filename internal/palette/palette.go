// Package palette provides the static named colors and palettes used by the
// algorithms. Palettes come from coolors.co and are kept as hex strings.
package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/san-kum/algoart/internal/canvas"
)

// ErrUnknownPalette is returned for a palette name that is not registered.
var ErrUnknownPalette = errors.New("palette: unknown palette")

// Palette is an ordered list of colors. Index 0 is the background color for
// algorithms that need one.
type Palette []canvas.Color

var (
	Black  = mustHex("#000000")
	White  = mustHex("#ffffff")
	Red    = mustHex("#ff0000")
	Green  = mustHex("#00ff00")
	Blue   = mustHex("#0000ff")
	Yellow = mustHex("#ffff00")

	Manatee           = mustHex("#8e9aaf")
	LanguidLavender   = mustHex("#cbc0d3")
	PalePink          = mustHex("#efd3d7")
	PalePurplePantone = mustHex("#feeafa")
	LavenderWeb       = mustHex("#dee2ff")

	Charcoal     = mustHex("#233d4d")
	Pumpkin      = mustHex("#fe7f2d")
	Sunglow      = mustHex("#fcca46")
	Olivine      = mustHex("#a1c181")
	PolishedPine = mustHex("#619b8a")

	LightYellow    = mustHex("#f8ffe5")
	CaribbeanGreen = mustHex("#06d6a0")
	BlueMunsell    = mustHex("#1b9aaa")
	ParadisePink   = mustHex("#ef476f")
	OrangeYellow   = mustHex("#ffc43d")

	Eggshell      = mustHex("#f4f1de")
	TerraCotta    = mustHex("#e07a5f")
	Independence  = mustHex("#3d405b")
	GreenSheen    = mustHex("#81b29a")
	DeepChampagne = mustHex("#f2cc8f")
)

// DefaultName is the palette used when none is configured.
const DefaultName = "palette_4"

var palettes = map[string]Palette{
	// https://coolors.co/8e9aaf-cbc0d3-efd3d7-feeafa-dee2ff
	"palette_1": {Manatee, LanguidLavender, PalePink, PalePurplePantone, LavenderWeb},
	// https://coolors.co/233d4d-fe7f2d-fcca46-a1c181-619b8a
	"palette_2": {Charcoal, Pumpkin, Sunglow, Olivine, PolishedPine},
	// https://coolors.co/f8ffe5-06d6a0-1b9aaa-ef476f-ffc43d
	"palette_3": {LightYellow, CaribbeanGreen, BlueMunsell, ParadisePink, OrangeYellow},
	"palette_4": {Eggshell, TerraCotta, Independence, GreenSheen, DeepChampagne},
	"primary":   {White, Red, Blue, Yellow, Black},
}

// Get returns a copy of the named palette.
func Get(name string) (Palette, error) {
	p, ok := palettes[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPalette, name)
	}
	out := make(Palette, len(p))
	copy(out, p)
	return out, nil
}

// Default returns the default palette.
func Default() Palette {
	p, _ := Get(DefaultName)
	return p
}

// Names lists the registered palettes in sorted order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for name := range palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parse builds a palette from hex strings such as "#3d405b".
func Parse(hexes []string) (Palette, error) {
	p := make(Palette, 0, len(hexes))
	for _, h := range hexes {
		c, err := ParseHex(h)
		if err != nil {
			return nil, err
		}
		p = append(p, c)
	}
	return p, nil
}

// ParseHex converts "#rrggbb" or "#rgb" into a canvas color.
func ParseHex(s string) (canvas.Color, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return canvas.Color{}, fmt.Errorf("palette: parse %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return canvas.Color{R: r, G: g, B: b}, nil
}

// Lightness returns the CIE L* of c scaled to [0, 1].
func Lightness(c canvas.Color) float64 {
	l, _, _ := toColorful(c).Lab()
	return l
}

// Hexes renders the palette as hex strings.
func (p Palette) Hexes() []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = toColorful(c).Hex()
	}
	return out
}

func toColorful(c canvas.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func mustHex(s string) canvas.Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
