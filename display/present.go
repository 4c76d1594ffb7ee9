// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

package display

import (
	"fmt"
	"image"
	"os"
	"strconv"

	xdraw "golang.org/x/image/draw"

	"github.com/go-slate/slate"
	"github.com/go-slate/slate/render"
)

// Presenter copies a repainted framebuffer region onward to a physical
// surface. Present is called from the session worker after every repaint,
// with the damaged rectangle so implementations can move only what
// changed.
type Presenter interface {
	Present(fb *render.Framebuffer, damaged slate.Rect) error
}

// ScaleEnv is the environment variable overriding the presentation scale
// factor.
const ScaleEnv = "SLATE_DISPLAY_SCALE"

// ScaleFromEnv returns the scale factor from the environment, or 1 when
// unset or malformed.
func ScaleFromEnv() int {
	s := os.Getenv(ScaleEnv)
	if s == "" {
		return 1
	}
	scale, err := strconv.Atoi(s)
	if err != nil || scale < 1 {
		return 1
	}
	return scale
}

// ImagePresenter maintains an RGBA image of the framebuffer magnified by
// an integer factor, the shape a window surface wants. Only the damaged
// region is converted and scaled per frame, with nearest-neighbor
// sampling so pixels stay crisp blocks.
type ImagePresenter struct {
	scale int
	img   *image.RGBA
}

// NewImagePresenter creates a presenter for a width by height framebuffer
// shown at the given magnification.
func NewImagePresenter(width, height, scale int) (*ImagePresenter, error) {
	if scale < 1 {
		return nil, fmt.Errorf("display: invalid scale %d", scale)
	}
	return &ImagePresenter{
		scale: scale,
		img:   image.NewRGBA(image.Rect(0, 0, width*scale, height*scale)),
	}, nil
}

// Present converts the damaged region and scales it into the surface.
func (p *ImagePresenter) Present(fb *render.Framebuffer, damaged slate.Rect) error {
	damaged = damaged.Clip(fb.Bounds())
	if damaged.Empty() {
		return nil
	}

	src := fb.Snapshot(damaged)
	dst := image.Rect(
		damaged.X*p.scale,
		damaged.Y*p.scale,
		(damaged.X+damaged.Width)*p.scale,
		(damaged.Y+damaged.Height)*p.scale,
	)
	xdraw.NearestNeighbor.Scale(p.img, dst, src, src.Bounds(), xdraw.Src, nil)
	return nil
}

// Image returns the scaled surface. It is owned by the presenter and
// rewritten on every Present; callers on other goroutines must copy it.
func (p *ImagePresenter) Image() *image.RGBA {
	return p.img
}

var _ Presenter = (*ImagePresenter)(nil)
