// Package export encodes a painted canvas into an image file.
package export

import (
	"errors"
	"fmt"
	"strings"
)

type Format string

const (
	PNG  Format = "png"
	JPEG Format = "jpeg"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
	SVG  Format = "svg"
)

var ErrUnknownFormat = errors.New("export: unknown format")

var formats = []Format{PNG, JPEG, BMP, TIFF, SVG}

var aliases = map[string]Format{
	"jpg": JPEG,
	"tif": TIFF,
}

// ParseFormat accepts a format name or a file extension, case-insensitively,
// with or without the leading dot.
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(strings.TrimPrefix(s, "."))
	for _, f := range formats {
		if string(f) == name {
			return f, nil
		}
	}
	if f, ok := aliases[name]; ok {
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// Extension is the file extension without the dot.
func (f Format) Extension() string {
	if f == JPEG {
		return "jpg"
	}
	return string(f)
}

// ContentType is the MIME type served for the format.
func (f Format) ContentType() string {
	switch f {
	case PNG:
		return "image/png"
	case JPEG:
		return "image/jpeg"
	case BMP:
		return "image/bmp"
	case TIFF:
		return "image/tiff"
	case SVG:
		return "image/svg+xml"
	}
	return "application/octet-stream"
}
