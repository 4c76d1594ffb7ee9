// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/go-slate/slate"
	"github.com/go-slate/slate/font"
	"github.com/go-slate/slate/scene"
)

// Compositor repaints damaged framebuffer regions from a scene list.
//
// There is no depth buffer and no offscreen accumulation: list order is
// the depth order. For every damaged pixel the compositor finds the
// topmost primitive covering it, asks that primitive's row renderer for as
// long a contiguous run as occlusion allows, and advances by however many
// pixels were actually drawn. A renderer that stops on a transparent pixel
// triggers fall-through: the next covering primitive in list order is
// tried with a forced one-pixel span, since its own run boundaries are not
// aligned with the one that failed.
type Compositor struct {
	fb     *Framebuffer
	format PixelFormat
	face   font.Face
}

// NewCompositor builds a compositor painting into fb. face backs text
// primitives that do not carry their own.
func NewCompositor(fb *Framebuffer, face font.Face) *Compositor {
	return &Compositor{
		fb:     fb,
		format: fb.format,
		face:   face,
	}
}

// Repaint redraws every pixel of region from the scene list. Pixels
// covered by no primitive, or only by primitives that decline them, are
// left exactly as the previous frame painted them.
func (c *Compositor) Repaint(region slate.Rect, list *scene.List) {
	region = region.Clip(c.fb.Bounds())
	if region.Empty() {
		return
	}

	prims := list.Primitives()
	for y := region.Y; y < region.Y+region.Height; y++ {
		for x := region.X; x < region.X+region.Width; {
			x += c.drawRun(x, y, prims)
		}
	}
}

// drawRun paints the longest possible run starting at (x, y) and returns
// its length, always at least 1 so the caller makes progress.
func (c *Compositor) drawRun(x, y int, prims []scene.Primitive) int {
	below := false

	for i := range prims {
		prim := &prims[i]
		if !prim.Contains(x, y) {
			continue
		}

		maxLen := 1
		if !below {
			maxLen = c.maxRunLength(prims[:i], x, y)
		}

		var drawn int
		switch prim.Kind {
		case scene.KindImage:
			drawn = c.drawImageRun(x, y, maxLen, prim)
		case scene.KindScaledImage:
			drawn = c.drawScaledImageRun(x, y, maxLen, prim)
		case scene.KindRect:
			drawn = c.drawRectRun(x, y, maxLen, prim)
		case scene.KindText:
			drawn = c.drawTextRun(x, y, maxLen, prim)
		default:
			slate.Logger().Warn("skipping unknown primitive kind", "kind", prim.Kind)
		}

		if drawn != 0 {
			return drawn
		}

		// Transparent with no background: whatever is below shows
		// through, one pixel at a time.
		below = true
	}

	return 1
}

// maxRunLength bounds a run starting at (x, y) so it cannot overrun into
// pixels that a higher-priority primitive further right on the same row
// would claim. Only primitives that outrank the candidate (earlier in the
// list) are considered; the run is also capped at the framebuffer's right
// edge.
func (c *Compositor) maxRunLength(above []scene.Primitive, x, y int) int {
	maxLen := c.fb.width - x

	for i := range above {
		prim := &above[i]
		if x < prim.X && y >= prim.Y && y < prim.Y+prim.Height {
			if d := prim.X - x; d < maxLen {
				maxLen = d
			}
		}
	}
	return maxLen
}
