package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/san-kum/algoart/internal/canvas"
)

// EncodeSVG writes the canvas as an SVG document. Each horizontal run of
// identical pixels becomes one rect, so flat areas stay small.
func EncodeSVG(w io.Writer, c *canvas.Canvas) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" shape-rendering="crispEdges">
`, c.Columns(), c.Rows(), c.Columns(), c.Rows())

	for row := 0; row < c.Rows(); row++ {
		start := 0
		current, _ := c.Pixel(row, 0)
		for col := 1; col <= c.Columns(); col++ {
			if col < c.Columns() {
				next, _ := c.Pixel(row, col)
				if next == current {
					continue
				}
				writeRun(bw, row, start, col-start, current)
				start, current = col, next
				continue
			}
			writeRun(bw, row, start, col-start, current)
		}
	}

	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func writeRun(w *bufio.Writer, row, col, length int, clr canvas.Color) {
	fmt.Fprintf(w, `<rect x="%d" y="%d" width="%d" height="1" fill="%s"/>
`, col, row, length, clr)
}
