// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

package display

import (
	"github.com/go-slate/slate/font"
	"github.com/go-slate/slate/render"
)

// Option configures a Session during creation.
type Option func(*options)

type options struct {
	format      render.PixelFormat
	face        font.Face
	presenter   Presenter
	releaser    func(text string)
	fullRepaint bool
}

func defaultOptions() options {
	return options{
		format: render.RGBA8888{},
		face:   font.Default(),
	}
}

// WithPixelFormat sets the native pixel layout of the framebuffer.
// The default is RGBA8888.
func WithPixelFormat(f render.PixelFormat) Option {
	return func(o *options) { o.format = f }
}

// WithFont sets the fallback face for text primitives that do not carry
// one of their own. The default is the built-in face.
func WithFont(f font.Face) Option {
	return func(o *options) { o.face = f }
}

// WithPresenter sets the presenter invoked with the damaged rectangle
// after every repaint. Without one, frames stay in the framebuffer and
// can be read with Snapshot.
func WithPresenter(p Presenter) Option {
	return func(o *options) { o.presenter = p }
}

// WithTextReleaser sets the hook invoked once per text primitive when its
// list is superseded. External resource managers use it to reclaim text
// payloads they handed to the decoder.
func WithTextReleaser(free func(text string)) Option {
	return func(o *options) { o.releaser = free }
}

// WithFullRepaint widens every damaged rectangle to the whole framebuffer,
// trading repaint cost for immunity to diff imprecision. Off by default.
func WithFullRepaint(enabled bool) Option {
	return func(o *options) { o.fullRepaint = enabled }
}
