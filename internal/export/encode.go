package export

import (
	"bufio"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/san-kum/algoart/internal/canvas"
)

// JPEGQuality is used for every JPEG encode.
const JPEGQuality = 95

// Encode writes the canvas to w in the given format.
func Encode(w io.Writer, c *canvas.Canvas, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, c)
	case JPEG:
		return jpeg.Encode(w, c, &jpeg.Options{Quality: JPEGQuality})
	case BMP:
		return bmp.Encode(w, c.ToImage())
	case TIFF:
		return tiff.Encode(w, c.ToImage(), &tiff.Options{Compression: tiff.Deflate})
	case SVG:
		return EncodeSVG(w, c)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// SaveFile encodes the canvas into path, creating parent directories.
func SaveFile(path string, c *canvas.Canvas, f Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(file)
	if err := Encode(bw, c, f); err != nil {
		file.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
