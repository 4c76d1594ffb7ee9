// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

// Package scene holds the drawable primitives and the per-frame list the
// compositor consumes.
//
// A List is immutable once built and replaced wholesale on every frame;
// its order encodes paint priority, index 0 topmost. Primitives carry
// either borrowed pixel buffers (images, owned by the decoder's image
// cache) or owned text payloads (released exactly once when the list is
// superseded).
package scene

import (
	"github.com/go-slate/slate"
	"github.com/go-slate/slate/font"
)

// Kind discriminates the primitive variants.
type Kind uint8

const (
	// KindInvalid is the zero Kind; the compositor skips it.
	KindInvalid Kind = iota

	// KindImage is an unscaled RGBA image.
	KindImage

	// KindScaledImage is a cropped sub-rectangle of a larger image,
	// magnified by integer factors with nearest-neighbor sampling.
	KindScaledImage

	// KindRect is a solid rectangle.
	KindRect

	// KindText is a run of fixed-cell bitmap glyphs.
	KindText
)

// ImageData is a packed 32-bit-per-pixel RGBA buffer. The buffer is owned
// by whoever decoded it (typically an image cache); primitives borrow it
// and the compositor never mutates or releases it.
type ImageData struct {
	Width  int
	Height int
	Pix    []byte // RGBA order, 4 bytes per pixel, Width*Height pixels
}

// Primitive is one drawable shape. The geometry fields are non-negative;
// validating that is the decoder's job, the compositor trusts them.
type Primitive struct {
	Kind   Kind
	X      int
	Y      int
	Width  int
	Height int

	// Background is the fill behind transparent payload pixels. For
	// KindRect it is the fill itself and must be opaque; for the other
	// kinds slate.Transparent means "fall through to the primitive below".
	Background slate.Color

	// Image backs KindImage and KindScaledImage.
	Image *ImageData

	// Crop origin and integer magnification, KindScaledImage only.
	SourceX int
	SourceY int
	XScale  int
	YScale  int

	// Text payload, its color and the face it was measured with,
	// KindText only. The face renders the text too: geometry and glyph
	// sampling must agree or the renderer would index past the string.
	Text       string
	Foreground slate.Color
	Face       font.Face
}

// NewImage builds an image primitive at (x, y) sized to the image itself.
func NewImage(x, y int, bg slate.Color, img *ImageData) Primitive {
	return Primitive{
		Kind:       KindImage,
		X:          x,
		Y:          y,
		Width:      img.Width,
		Height:     img.Height,
		Background: bg,
		Image:      img,
	}
}

// NewScaledImage builds a scaled-crop primitive. The source rectangle
// starts at (sourceX, sourceY) inside img; each source pixel covers an
// xScale by yScale block of output pixels.
func NewScaledImage(x, y, width, height int, bg slate.Color, img *ImageData, sourceX, sourceY, xScale, yScale int) Primitive {
	return Primitive{
		Kind:       KindScaledImage,
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Background: bg,
		Image:      img,
		SourceX:    sourceX,
		SourceY:    sourceY,
		XScale:     xScale,
		YScale:     yScale,
	}
}

// NewRect builds a solid rectangle. fill is its color, never Transparent.
func NewRect(x, y, width, height int, fill slate.Color) Primitive {
	return Primitive{
		Kind:       KindRect,
		X:          x,
		Y:          y,
		Width:      width,
		Height:     height,
		Background: fill,
	}
}

// NewText builds a text primitive. Its geometry is fixed by the face:
// height is the glyph cell height, width is cell width times byte length.
func NewText(x, y int, text string, face font.Face, fg, bg slate.Color) Primitive {
	return Primitive{
		Kind:       KindText,
		X:          x,
		Y:          y,
		Width:      face.CellWidth() * len(text),
		Height:     face.CellHeight(),
		Background: bg,
		Text:       text,
		Foreground: fg,
		Face:       face,
	}
}

// Bounds returns the primitive's bounding box as a valid rectangle.
func (p *Primitive) Bounds() slate.Rect {
	return slate.MakeRect(p.X, p.Y, p.Width, p.Height)
}

// Contains reports whether the point (x, y) lies inside the bounding box.
func (p *Primitive) Contains(x, y int) bool {
	return x >= p.X && x < p.X+p.Width && y >= p.Y && y < p.Y+p.Height
}

// Equal reports diff equivalence: same kind, geometry and background, plus
// kind-specific payload equality. Image payloads compare by backing-buffer
// identity, not content; text compares by content and foreground color.
func (p *Primitive) Equal(q *Primitive) bool {
	if p.Kind != q.Kind || p.X != q.X || p.Y != q.Y ||
		p.Width != q.Width || p.Height != q.Height || p.Background != q.Background {
		return false
	}

	switch p.Kind {
	case KindImage:
		return sameBuffer(p.Image, q.Image)

	case KindScaledImage:
		return sameBuffer(p.Image, q.Image) &&
			p.XScale == q.XScale && p.YScale == q.YScale &&
			p.SourceX == q.SourceX && p.SourceY == q.SourceY

	case KindRect:
		return true

	case KindText:
		return p.Foreground == q.Foreground && p.Text == q.Text && p.Face == q.Face

	default:
		return true
	}
}

// sameBuffer reports whether two image payloads share the same backing
// pixel buffer. Distinct buffers with identical content are not equal;
// diffing must stay O(1) per primitive.
func sameBuffer(a, b *ImageData) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a == b {
		return true
	}
	if len(a.Pix) == 0 || len(b.Pix) == 0 {
		return len(a.Pix) == len(b.Pix)
	}
	return &a.Pix[0] == &b.Pix[0]
}
