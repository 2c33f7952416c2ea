package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/algoart/internal/canvas"
	"github.com/san-kum/algoart/internal/palette"
)

// LightnessBins counts pixels by Lab lightness and returns the percentage of
// the canvas that falls in each of bins equal-width buckets over [0, 1].
func LightnessBins(c *canvas.Canvas, bins int) []float64 {
	if bins < 1 {
		bins = 1
	}
	out := make([]float64, bins)
	pixels := c.Pixels()
	for _, p := range pixels {
		out[bucket(palette.Lightness(p), bins)]++
	}
	return percent(out, len(pixels))
}

// ChannelBins does the same per RGB channel.
func ChannelBins(c *canvas.Canvas, bins int) [3][]float64 {
	if bins < 1 {
		bins = 1
	}
	var out [3][]float64
	for i := range out {
		out[i] = make([]float64, bins)
	}
	pixels := c.Pixels()
	for _, p := range pixels {
		out[0][bucket(float64(p.R)/255, bins)]++
		out[1][bucket(float64(p.G)/255, bins)]++
		out[2][bucket(float64(p.B)/255, bins)]++
	}
	for i := range out {
		out[i] = percent(out[i], len(pixels))
	}
	return out
}

// Histogram plots the lightness distribution.
func Histogram(c *canvas.Canvas, bins, height int, caption string) string {
	data := LightnessBins(c, bins)
	return asciigraph.Plot(data,
		asciigraph.Height(height),
		asciigraph.Width(bins),
		asciigraph.Precision(1),
		asciigraph.Caption(caption),
	)
}

// ChannelHistogram plots the red, green and blue distributions together.
func ChannelHistogram(c *canvas.Canvas, bins, height int, caption string) string {
	ch := ChannelBins(c, bins)
	return asciigraph.PlotMany([][]float64{ch[0], ch[1], ch[2]},
		asciigraph.Height(height),
		asciigraph.Width(bins),
		asciigraph.Precision(1),
		asciigraph.SeriesColors(asciigraph.Red, asciigraph.Green, asciigraph.Blue),
		asciigraph.Caption(caption),
	)
}

// Summary describes the canvas in one line: size, distinct colors and mean
// lightness.
func Summary(c *canvas.Canvas) string {
	seen := make(map[canvas.Color]struct{})
	var sum float64
	pixels := c.Pixels()
	for _, p := range pixels {
		seen[p] = struct{}{}
		sum += palette.Lightness(p)
	}
	return fmt.Sprintf("%dx%d, %d colors, mean lightness %.3f",
		c.Rows(), c.Columns(), len(seen), sum/float64(len(pixels)))
}

func bucket(v float64, bins int) int {
	i := int(v * float64(bins))
	if i >= bins {
		i = bins - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func percent(counts []float64, total int) []float64 {
	if total == 0 {
		return counts
	}
	for i := range counts {
		counts[i] = 100 * counts[i] / float64(total)
	}
	return counts
}
