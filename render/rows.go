// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/go-slate/slate/scene"
)

// Row renderers share one contract: draw up to maxLen pixels of prim's
// row y into the framebuffer, starting at column x, and return how many
// were written. A return of 0 means the very first pixel was transparent
// with no background fill and the caller should fall through to the next
// primitive in paint order. x and y are inside prim's bounding box and
// maxLen is at least 1; the compositor guarantees both.

// drawRectRun fills with the rectangle's color. Rectangles are fully
// opaque, so the run never stops short of min(width remaining, maxLen).
func (c *Compositor) drawRectRun(x, y, maxLen int, prim *scene.Primitive) int {
	fill := c.format.Map(prim.Background.R(), prim.Background.G(), prim.Background.B())

	width := prim.Width
	if width > x-prim.X+maxLen {
		width = x - prim.X + maxLen
	}

	row := c.fb.pix[y*c.fb.width:]
	drawn := 0
	for j := x - prim.X; j < width; j++ {
		row[x+drawn] = fill
		drawn++
	}
	return drawn
}

// drawImageRun copies source pixels, treating any non-zero alpha as fully
// opaque. Transparent source pixels take the background fill when one is
// set, otherwise the run ends so a lower primitive can show through.
func (c *Compositor) drawImageRun(x, y, maxLen int, prim *scene.Primitive) int {
	bg, visibleBg := c.mapBackground(prim)

	img := prim.Image
	width := prim.Width
	if width > x-prim.X+maxLen {
		width = x - prim.X + maxLen
	}

	row := c.fb.pix[y*c.fb.width:]
	src := img.Pix[((y-prim.Y)*img.Width+(x-prim.X))*4:]

	drawn := 0
	for j := x - prim.X; j < width; j++ {
		r, g, b, a := src[0], src[1], src[2], src[3]
		switch {
		case a != 0:
			row[x+drawn] = c.format.Map(r, g, b)
		case visibleBg:
			row[x+drawn] = bg
		default:
			return drawn
		}
		drawn++
		src = src[4:]
	}
	return drawn
}

// drawScaledImageRun is drawImageRun with nearest-neighbor magnification:
// the output offset divided by the scale factors, plus the crop origin,
// selects the source pixel. The drawable width is clipped first so
// sampling can never pass the backing image's right edge, even when the
// primitive's own geometry claims more; the last partially-covered source
// column counts as used, hence the rounded-up division. Rows past the
// bottom edge decline outright.
func (c *Compositor) drawScaledImageRun(x, y, maxLen int, prim *scene.Primitive) int {
	bg, visibleBg := c.mapBackground(prim)

	img := prim.Image
	sy := prim.SourceY + (y-prim.Y)/prim.YScale
	if sy >= img.Height {
		return 0
	}

	width := prim.Width
	if prim.SourceX+(width+prim.XScale-1)/prim.XScale > img.Width {
		width = (img.Width - prim.SourceX) * prim.XScale
	}
	if width > x-prim.X+maxLen {
		width = x - prim.X + maxLen
	}

	row := c.fb.pix[y*c.fb.width:]
	srcRow := sy * img.Width

	drawn := 0
	for j := x - prim.X; j < width; j++ {
		si := (srcRow + prim.SourceX + j/prim.XScale) * 4
		r, g, b, a := img.Pix[si], img.Pix[si+1], img.Pix[si+2], img.Pix[si+3]
		switch {
		case a != 0:
			row[x+drawn] = c.format.Map(r, g, b)
		case visibleBg:
			row[x+drawn] = bg
		default:
			return drawn
		}
		drawn++
	}
	return drawn
}

// drawTextRun renders glyph cells bit by bit: each output column selects a
// character cell and one bit of that character's scanline for row y, MSB
// leftmost. Set bits are foreground; clear bits are background fill or,
// with no background, end the run for fall-through.
//
// Glyphs come from the face the primitive was measured with, so a scene
// may mix faces of different cell sizes; the compositor's own face only
// backs primitives built without one.
func (c *Compositor) drawTextRun(x, y, maxLen int, prim *scene.Primitive) int {
	fg := c.format.Map(prim.Foreground.R(), prim.Foreground.G(), prim.Foreground.B())
	bg, visibleBg := c.mapBackground(prim)

	face := prim.Face
	if face == nil {
		face = c.face
	}
	cellWidth := face.CellWidth()
	width := prim.Width
	if width > x-prim.X+maxLen {
		width = x - prim.X + maxLen
	}

	row := c.fb.pix[y*c.fb.width:]

	drawn := 0
	for j := x - prim.X; j < width; j++ {
		bits := face.Scanline(prim.Text[j/cellWidth], y-prim.Y)
		switch {
		case bits&(1<<(7-j%cellWidth)) != 0:
			row[x+drawn] = fg
		case visibleBg:
			row[x+drawn] = bg
		default:
			return drawn
		}
		drawn++
	}
	return drawn
}

// mapBackground maps a primitive's background fill, reporting whether one
// is set at all.
func (c *Compositor) mapBackground(prim *scene.Primitive) (uint32, bool) {
	if !prim.Background.Opaque() {
		return 0, false
	}
	return c.format.Map(prim.Background.R(), prim.Background.G(), prim.Background.B()), true
}
