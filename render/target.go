// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"

	"github.com/go-slate/slate"
)

// Target is a destination the compositor can paint into.
//
// Pixels returns the flat native-format pixel array, row-major with Stride
// pixels per row. The only implementation in this package is Framebuffer;
// the interface exists so presenters and tests can accept either.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel-format metadata of the target.
	Format() gputypes.TextureFormat

	// Pixels returns direct access to the native pixel data.
	Pixels() []uint32

	// Stride returns the number of pixels per row.
	Stride() int
}

// Framebuffer is the fixed-size pixel memory the compositor mutates. It
// persists across frames; only pixels inside a frame's damaged rectangle
// are rewritten, everything else keeps whatever was painted before.
type Framebuffer struct {
	width  int
	height int
	format PixelFormat
	pix    []uint32
}

// NewFramebuffer allocates a framebuffer of the given size. The format
// decides the native pixel layout of every write.
func NewFramebuffer(width, height int, format PixelFormat) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid framebuffer size %dx%d", width, height)
	}
	return &Framebuffer{
		width:  width,
		height: height,
		format: format,
		pix:    make([]uint32, width*height),
	}, nil
}

// Width returns the framebuffer width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the framebuffer height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Stride returns the number of pixels per row.
func (f *Framebuffer) Stride() int { return f.width }

// Format returns the pixel-format metadata.
func (f *Framebuffer) Format() gputypes.TextureFormat { return f.format.Texture() }

// Pixels returns the native pixel data, row-major.
func (f *Framebuffer) Pixels() []uint32 { return f.pix }

// PixelFormat returns the format used for every write.
func (f *Framebuffer) PixelFormat() PixelFormat { return f.format }

// Bounds returns the framebuffer rectangle at the origin.
func (f *Framebuffer) Bounds() slate.Rect {
	return slate.MakeRect(0, 0, f.width, f.height)
}

// Fill paints the whole framebuffer with one color.
func (f *Framebuffer) Fill(c slate.Color) {
	p := f.format.Map(c.R(), c.G(), c.B())
	for i := range f.pix {
		f.pix[i] = p
	}
}

// RGBAt returns the color components of the pixel at (x, y).
func (f *Framebuffer) RGBAt(x, y int) (r, g, b uint8) {
	return f.format.Split(f.pix[y*f.width+x])
}

// Snapshot copies the given region into a new image.RGBA positioned at the
// region's offset. An invalid region snapshots the whole framebuffer.
func (f *Framebuffer) Snapshot(region slate.Rect) *image.RGBA {
	region = region.Clip(f.Bounds())
	if !region.Valid {
		region = f.Bounds()
	}
	img := image.NewRGBA(image.Rect(region.X, region.Y, region.X+region.Width, region.Y+region.Height))
	for y := region.Y; y < region.Y+region.Height; y++ {
		for x := region.X; x < region.X+region.Width; x++ {
			r, g, b := f.format.Split(f.pix[y*f.width+x])
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 0xFF})
		}
	}
	return img
}

// Ensure Framebuffer implements Target.
var _ Target = (*Framebuffer)(nil)
