// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

package server

import (
	"errors"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/go-slate/slate"
	"github.com/go-slate/slate/font"
	"github.com/go-slate/slate/imageio"
	"github.com/go-slate/slate/scene"
)

// transparentColor is the wire spelling of the "no fill" sentinel.
const transparentColor = "transparent"

// wirePrimitive is one display-list entry as it appears on the wire.
// Which fields apply depends on Type; the decoder rejects entries whose
// applicable fields are missing or out of range, so the compositor never
// sees a malformed primitive.
type wirePrimitive struct {
	Type string `json:"type"`

	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// Background is a "#RRGGBB" color or "transparent". For rects it is
	// the fill and must not be transparent.
	Background string `json:"background,omitempty"`

	// Image names an entry in the image cache ("image" and
	// "scaled_cropped_image").
	Image   string `json:"image,omitempty"`
	SourceX int    `json:"source_x,omitempty"`
	SourceY int    `json:"source_y,omitempty"`
	XScale  int    `json:"x_scale,omitempty"`
	YScale  int    `json:"y_scale,omitempty"`

	// Text fields.
	Font       string `json:"font,omitempty"`
	Foreground string `json:"foreground,omitempty"`
	Text       string `json:"text,omitempty"`
}

// decodeList turns a wire display list into a scene list, resolving image
// and font references. Any invalid entry fails the whole list; partial
// frames are never composed.
func decodeList(wire []wirePrimitive, images *imageio.Cache, fonts *font.Registry) (*scene.List, error) {
	prims := make([]scene.Primitive, 0, len(wire))
	for i, w := range wire {
		p, err := decodePrimitive(&w, images, fonts)
		if err != nil {
			return nil, fmt.Errorf("primitive %d: %w", i, err)
		}
		prims = append(prims, p)
	}
	return scene.NewList(prims...), nil
}

func decodePrimitive(w *wirePrimitive, images *imageio.Cache, fonts *font.Registry) (scene.Primitive, error) {
	var zero scene.Primitive

	if w.X < 0 || w.Y < 0 {
		return zero, fmt.Errorf("negative position (%d, %d)", w.X, w.Y)
	}

	switch w.Type {
	case "image":
		img, err := images.Lookup(w.Image)
		if err != nil {
			return zero, err
		}
		bg, err := decodeColor(w.Background, true)
		if err != nil {
			return zero, fmt.Errorf("background: %w", err)
		}
		return scene.NewImage(w.X, w.Y, bg, img), nil

	case "scaled_cropped_image":
		img, err := images.Lookup(w.Image)
		if err != nil {
			return zero, err
		}
		bg, err := decodeColor(w.Background, true)
		if err != nil {
			return zero, fmt.Errorf("background: %w", err)
		}
		if w.Width < 0 || w.Height < 0 {
			return zero, fmt.Errorf("negative size %dx%d", w.Width, w.Height)
		}
		if w.XScale < 1 || w.YScale < 1 {
			return zero, fmt.Errorf("scale factors must be positive, got %dx%d", w.XScale, w.YScale)
		}
		if w.SourceX < 0 || w.SourceY < 0 || w.SourceX >= img.Width || w.SourceY >= img.Height {
			return zero, fmt.Errorf("source origin (%d, %d) outside %dx%d image",
				w.SourceX, w.SourceY, img.Width, img.Height)
		}
		// The crop must stay inside the backing image: a run of Width output
		// pixels samples ceil(Width/XScale) source columns, and likewise for
		// rows.
		if w.SourceX+(w.Width+w.XScale-1)/w.XScale > img.Width ||
			w.SourceY+(w.Height+w.YScale-1)/w.YScale > img.Height {
			return zero, fmt.Errorf("crop %dx%d at (%d, %d) scaled by %dx%d exceeds %dx%d image",
				w.Width, w.Height, w.SourceX, w.SourceY, w.XScale, w.YScale, img.Width, img.Height)
		}
		return scene.NewScaledImage(w.X, w.Y, w.Width, w.Height, bg, img,
			w.SourceX, w.SourceY, w.XScale, w.YScale), nil

	case "rect":
		if w.Width < 0 || w.Height < 0 {
			return zero, fmt.Errorf("negative size %dx%d", w.Width, w.Height)
		}
		fill, err := decodeColor(w.Background, false)
		if err != nil {
			return zero, fmt.Errorf("fill: %w", err)
		}
		return scene.NewRect(w.X, w.Y, w.Width, w.Height, fill), nil

	case "text":
		name := w.Font
		if name == "" {
			name = font.DefaultName
		}
		face, err := fonts.Lookup(name)
		if err != nil {
			return zero, err
		}
		fg, err := decodeColor(w.Foreground, false)
		if err != nil {
			return zero, fmt.Errorf("foreground: %w", err)
		}
		bg, err := decodeColor(w.Background, true)
		if err != nil {
			return zero, fmt.Errorf("background: %w", err)
		}
		// Fixed-cell glyphs cannot render combining sequences; fold the
		// text to its composed form so e.g. "e"+U+0301 becomes one cell.
		text := norm.NFC.String(w.Text)
		return scene.NewText(w.X, w.Y, text, face, fg, bg), nil

	default:
		return zero, fmt.Errorf("unknown primitive type %q", w.Type)
	}
}

// decodeColor parses a wire color. allowTransparent permits the
// "transparent" sentinel (and treats an empty string the same way);
// otherwise a concrete color is required.
func decodeColor(s string, allowTransparent bool) (slate.Color, error) {
	if s == "" || s == transparentColor {
		if !allowTransparent {
			return slate.Transparent, errors.New("color required")
		}
		return slate.Transparent, nil
	}
	c, ok := slate.Hex(s)
	if !ok {
		return slate.Transparent, fmt.Errorf("malformed color %q", s)
	}
	return c, nil
}
