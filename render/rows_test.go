// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

package render

import (
	"testing"

	"github.com/go-slate/slate"
	"github.com/go-slate/slate/scene"
)

// stripeFace is a fixed 4x6 cell face whose glyphs alternate set and clear
// columns (1010 within the cell); the space glyph is fully clear.
type stripeFace struct{}

func (stripeFace) CellWidth() int  { return 4 }
func (stripeFace) CellHeight() int { return 6 }
func (stripeFace) Scanline(c byte, row int) uint8 {
	if c == ' ' || row < 0 || row >= 6 {
		return 0
	}
	return 0xA0
}

// solidFace is an 8-wide face whose glyphs are fully set.
type solidFace struct{}

func (solidFace) CellWidth() int  { return 8 }
func (solidFace) CellHeight() int { return 6 }
func (solidFace) Scanline(c byte, row int) uint8 {
	if row < 0 || row >= 6 {
		return 0
	}
	return 0xFF
}

var (
	red   = slate.RGB(0xFF, 0, 0)
	green = slate.RGB(0, 0xFF, 0)
	blue  = slate.RGB(0, 0, 0xFF)
)

func newTestCompositor(t *testing.T, width, height int) (*Compositor, *Framebuffer) {
	t.Helper()
	fb, err := NewFramebuffer(width, height, RGBA8888{})
	if err != nil {
		t.Fatal(err)
	}
	return NewCompositor(fb, stripeFace{}), fb
}

// opaqueImage builds a w by h image where every pixel is opaque and its red
// component encodes the source x coordinate.
func opaqueImage(w, h int) *scene.ImageData {
	pix := make([]byte, w*h*4)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			pix[i] = byte(x)
			pix[i+3] = 0xFF
		}
	}
	return &scene.ImageData{Width: w, Height: h, Pix: pix}
}

func pixel(fb *Framebuffer, x, y int) uint32 {
	return fb.Pixels()[y*fb.Stride()+x]
}

func mapColor(fb *Framebuffer, c slate.Color) uint32 {
	return fb.PixelFormat().Map(c.R(), c.G(), c.B())
}

func TestDrawRectRun(t *testing.T) {
	c, fb := newTestCompositor(t, 16, 4)
	prim := scene.NewRect(2, 0, 5, 2, red)

	if got := c.drawRectRun(3, 0, 16, &prim); got != 4 {
		t.Fatalf("drawRectRun = %d, want 4", got)
	}
	for x := 3; x < 7; x++ {
		if pixel(fb, x, 0) != mapColor(fb, red) {
			t.Errorf("pixel (%d, 0) not filled", x)
		}
	}
	if pixel(fb, 2, 0) != 0 || pixel(fb, 7, 0) != 0 {
		t.Error("fill leaked outside the run")
	}

	// maxLen cuts the run short of the rectangle's own width.
	if got := c.drawRectRun(2, 1, 3, &prim); got != 3 {
		t.Errorf("clamped drawRectRun = %d, want 3", got)
	}
}

func TestDrawImageRun(t *testing.T) {
	// red, transparent, blue, transparent
	img := &scene.ImageData{Width: 4, Height: 1, Pix: []byte{
		0xFF, 0, 0, 0xFF,
		0, 0, 0, 0,
		0, 0, 0xFF, 0xFF,
		0, 0, 0, 0,
	}}

	t.Run("no background stops at transparency", func(t *testing.T) {
		c, fb := newTestCompositor(t, 8, 1)
		prim := scene.NewImage(0, 0, slate.Transparent, img)

		if got := c.drawImageRun(0, 0, 8, &prim); got != 1 {
			t.Fatalf("drawImageRun = %d, want 1", got)
		}
		if pixel(fb, 0, 0) != mapColor(fb, red) {
			t.Error("opaque source pixel not copied")
		}

		// Starting on the transparent pixel declines outright.
		if got := c.drawImageRun(1, 0, 7, &prim); got != 0 {
			t.Errorf("drawImageRun on transparent start = %d, want 0", got)
		}
	})

	t.Run("background fills transparency", func(t *testing.T) {
		c, fb := newTestCompositor(t, 8, 1)
		prim := scene.NewImage(0, 0, green, img)

		if got := c.drawImageRun(0, 0, 8, &prim); got != 4 {
			t.Fatalf("drawImageRun = %d, want 4", got)
		}
		want := []uint32{mapColor(fb, red), mapColor(fb, green), mapColor(fb, blue), mapColor(fb, green)}
		for x, w := range want {
			if pixel(fb, x, 0) != w {
				t.Errorf("pixel (%d, 0) = %#x, want %#x", x, pixel(fb, x, 0), w)
			}
		}
	})
}

func TestDrawScaledImageRun(t *testing.T) {
	c, fb := newTestCompositor(t, 16, 2)
	img := opaqueImage(10, 1)

	// Crop origin 8 of a 10-wide image at 2x: only 4 output columns have
	// source pixels even though the primitive claims 10.
	prim := scene.NewScaledImage(0, 0, 10, 2, slate.Transparent, img, 8, 0, 2, 2)

	if got := c.drawScaledImageRun(0, 0, 16, &prim); got != 4 {
		t.Fatalf("drawScaledImageRun = %d, want 4", got)
	}

	wantSrcX := []int{8, 8, 9, 9}
	for x, sx := range wantSrcX {
		r, _, _ := fb.RGBAt(x, 0)
		if int(r) != sx {
			t.Errorf("pixel (%d, 0) sampled source x %d, want %d", x, r, sx)
		}
	}
	if pixel(fb, 4, 0) != 0 {
		t.Error("run overran the backing image's right edge")
	}
}

func TestDrawScaledImageRunOddWidth(t *testing.T) {
	c, fb := newTestCompositor(t, 16, 1)
	img := opaqueImage(10, 1)

	// Width 5 at 2x covers ceil(5/2) = 3 source columns from origin 8, one
	// more than the image has; the drawable width clips to 4, never 5.
	prim := scene.NewScaledImage(0, 0, 5, 1, slate.Transparent, img, 8, 0, 2, 1)

	if got := c.drawScaledImageRun(0, 0, 16, &prim); got != 4 {
		t.Fatalf("drawScaledImageRun = %d, want 4", got)
	}
	if r, _, _ := fb.RGBAt(3, 0); r != 9 {
		t.Errorf("last pixel sampled source x %d, want 9", r)
	}
	if pixel(fb, 4, 0) != 0 {
		t.Error("run overran the backing image's right edge")
	}
}

func TestDrawScaledImageRunBeyondBottom(t *testing.T) {
	c, fb := newTestCompositor(t, 8, 4)
	img := opaqueImage(2, 1)

	// The primitive claims more rows than the crop has source for; rows
	// past the bottom edge decline instead of sampling out of range.
	prim := scene.NewScaledImage(0, 0, 2, 4, slate.Transparent, img, 0, 0, 1, 1)

	if got := c.drawScaledImageRun(0, 0, 8, &prim); got != 2 {
		t.Fatalf("row 0: drawScaledImageRun = %d, want 2", got)
	}
	if got := c.drawScaledImageRun(0, 2, 8, &prim); got != 0 {
		t.Errorf("row 2: drawScaledImageRun = %d, want 0", got)
	}
	if pixel(fb, 0, 2) != 0 {
		t.Error("declined row wrote pixels")
	}
}

func TestDrawScaledImageRunYScale(t *testing.T) {
	c, fb := newTestCompositor(t, 8, 4)
	img := &scene.ImageData{Width: 2, Height: 2, Pix: []byte{
		0xFF, 0, 0, 0xFF, 0xFF, 0, 0, 0xFF, // row 0: red red
		0, 0, 0xFF, 0xFF, 0, 0, 0xFF, 0xFF, // row 1: blue blue
	}}
	prim := scene.NewScaledImage(0, 0, 4, 4, slate.Transparent, img, 0, 0, 2, 2)

	for y := 0; y < 4; y++ {
		if got := c.drawScaledImageRun(0, y, 8, &prim); got != 4 {
			t.Fatalf("row %d: drawScaledImageRun = %d, want 4", y, got)
		}
	}
	for y := 0; y < 4; y++ {
		want := red
		if y >= 2 {
			want = blue
		}
		if pixel(fb, 0, y) != mapColor(fb, want) {
			t.Errorf("row %d sampled wrong source row", y)
		}
	}
}

func TestDrawTextRun(t *testing.T) {
	t.Run("background filled", func(t *testing.T) {
		c, fb := newTestCompositor(t, 16, 6)
		prim := scene.NewText(0, 0, "XY", stripeFace{}, red, green)

		if got := c.drawTextRun(0, 0, 16, &prim); got != 8 {
			t.Fatalf("drawTextRun = %d, want 8", got)
		}
		for x := 0; x < 8; x++ {
			want := green
			if x%2 == 0 {
				want = red
			}
			if pixel(fb, x, 0) != mapColor(fb, want) {
				t.Errorf("pixel (%d, 0) wrong for stripe pattern", x)
			}
		}
	})

	t.Run("no background stops at clear bit", func(t *testing.T) {
		c, _ := newTestCompositor(t, 16, 6)
		prim := scene.NewText(0, 0, "XY", stripeFace{}, red, slate.Transparent)

		if got := c.drawTextRun(0, 0, 16, &prim); got != 1 {
			t.Errorf("drawTextRun = %d, want 1", got)
		}
		// A space glyph declines its very first pixel.
		sp := scene.NewText(0, 0, " ", stripeFace{}, red, slate.Transparent)
		if got := c.drawTextRun(0, 0, 4, &sp); got != 0 {
			t.Errorf("drawTextRun on space = %d, want 0", got)
		}
	})

	t.Run("primitive face wins over the compositor's", func(t *testing.T) {
		// The primitive was measured with an 8-wide face; the compositor
		// holds a 4-wide one. Glyph sampling must follow the face the
		// geometry came from, or the string index would run past the end.
		c, fb := newTestCompositor(t, 16, 6)
		prim := scene.NewText(0, 0, "A", solidFace{}, red, green)

		if got := c.drawTextRun(0, 0, 16, &prim); got != 8 {
			t.Fatalf("drawTextRun = %d, want 8", got)
		}
		for x := 0; x < 8; x++ {
			if pixel(fb, x, 0) != mapColor(fb, red) {
				t.Errorf("pixel (%d, 0) not foreground", x)
			}
		}
	})

	t.Run("mid-glyph start", func(t *testing.T) {
		c, fb := newTestCompositor(t, 16, 6)
		prim := scene.NewText(0, 0, "XY", stripeFace{}, red, green)

		// Column 1 is a clear bit of the first glyph.
		if got := c.drawTextRun(1, 0, 16, &prim); got != 7 {
			t.Fatalf("drawTextRun from column 1 = %d, want 7", got)
		}
		if pixel(fb, 1, 0) != mapColor(fb, green) {
			t.Error("clear bit must render background")
		}
		if pixel(fb, 2, 0) != mapColor(fb, red) {
			t.Error("set bit must render foreground")
		}
	})
}
