package canvas

import (
	"errors"
	"image/color"
	"testing"
)

func TestNewCanvas(t *testing.T) {
	c, err := New(3, 5)
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	if c.Rows() != 3 || c.Columns() != 5 {
		t.Errorf("expected 3x5, got %dx%d", c.Rows(), c.Columns())
	}

	pix := c.Pixels()
	if len(pix) != 15 {
		t.Errorf("expected 15 pixels, got %d", len(pix))
	}
	for i, p := range pix {
		if p != (Color{}) {
			t.Errorf("pixel %d: expected black, got %v", i, p)
		}
	}
}

func TestNewCanvas_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
	}{
		{"zero height", 0, 10},
		{"zero width", 10, 0},
		{"negative height", -1, 10},
		{"negative width", 10, -5},
		{"both zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.height, tt.width)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("expected ErrInvalidDimensions, got %v", err)
			}
			if c != nil {
				t.Error("expected nil canvas")
			}
		})
	}
}

func TestSetPixelRoundTrip(t *testing.T) {
	c, _ := New(4, 6)
	want := Color{R: 10, G: 200, B: 255}

	for row := 0; row < c.Rows(); row++ {
		for col := 0; col < c.Columns(); col++ {
			written, err := c.SetPixel(row, col, want)
			if err != nil {
				t.Fatalf("set (%d, %d) failed: %v", row, col, err)
			}
			if written != want {
				t.Errorf("expected written color %v, got %v", want, written)
			}
			got, err := c.Pixel(row, col)
			if err != nil {
				t.Fatalf("get (%d, %d) failed: %v", row, col, err)
			}
			if got != want {
				t.Errorf("(%d, %d): expected %v, got %v", row, col, want, got)
			}
		}
	}
}

func TestPixel_OutOfBounds(t *testing.T) {
	c, _ := New(4, 6)

	tests := []struct {
		name     string
		row, col int
	}{
		{"row -1", -1, 0},
		{"row = height", 4, 0},
		{"col -1", 0, -1},
		{"col = width", 0, 6},
		{"far corner", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.SetPixel(tt.row, tt.col, Color{R: 1}); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("set: expected ErrOutOfBounds, got %v", err)
			}
			if _, err := c.Pixel(tt.row, tt.col); !errors.Is(err, ErrOutOfBounds) {
				t.Errorf("get: expected ErrOutOfBounds, got %v", err)
			}
		})
	}

	for _, p := range c.Pixels() {
		if p != (Color{}) {
			t.Fatal("out of bounds write modified the buffer")
		}
	}
}

func TestFill(t *testing.T) {
	c, _ := New(2, 3)
	bg := Color{R: 244, G: 241, B: 222}
	c.Fill(bg)

	for i, p := range c.Pixels() {
		if p != bg {
			t.Errorf("pixel %d: expected %v, got %v", i, bg, p)
		}
	}
}

func TestPixelsIsCopy(t *testing.T) {
	c, _ := New(1, 1)
	pix := c.Pixels()
	pix[0] = Color{R: 9}

	got, _ := c.Pixel(0, 0)
	if got != (Color{}) {
		t.Error("Pixels did not return an independent copy")
	}
}

func TestEqual(t *testing.T) {
	a, _ := New(2, 2)
	b, _ := New(2, 2)
	if !a.Equal(b) {
		t.Error("expected fresh canvases to be equal")
	}

	b.SetPixel(1, 1, Color{G: 1})
	if a.Equal(b) {
		t.Error("expected canvases to differ")
	}

	c, _ := New(2, 3)
	if a.Equal(c) {
		t.Error("expected different sizes to differ")
	}
}

func TestToImage(t *testing.T) {
	c, _ := New(2, 3)
	c.SetPixel(1, 2, Color{R: 1, G: 2, B: 3})

	img := c.ToImage()
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("expected 3x2 image, got %v", img.Bounds())
	}

	got := img.RGBAAt(2, 1)
	want := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
	if img.RGBAAt(0, 0).A != 255 {
		t.Error("expected opaque pixels")
	}
}

func TestImageInterface(t *testing.T) {
	c, _ := New(2, 3)
	c.SetPixel(1, 0, Color{R: 255})

	r, g, b, a := c.At(0, 1).RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("unexpected At(0, 1): %d %d %d %d", r, g, b, a)
	}
	if c.Bounds().Dx() != 3 || c.Bounds().Dy() != 2 {
		t.Errorf("unexpected bounds %v", c.Bounds())
	}
}

func TestColorString(t *testing.T) {
	if s := (Color{R: 0x3d, G: 0x40, B: 0x5b}).String(); s != "#3d405b" {
		t.Errorf("expected #3d405b, got %s", s)
	}
	if g := Gray(7); g != (Color{7, 7, 7}) {
		t.Errorf("expected gray 7, got %v", g)
	}
}
