// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

// Package render implements the damage-tracked, occlusion-ordered
// compositor core: the list diff that bounds what changed between frames,
// the per-kind row renderers, and the span-batched compositor that walks
// the scene list front to back without a depth buffer.
package render

import "github.com/gogpu/gputypes"

// PixelFormat maps 8-bit RGB components to the framebuffer's native 32-bit
// pixel value and back. It is supplied by the presentation layer so the
// compositor writes pixels the display surface can consume directly.
type PixelFormat interface {
	// Map packs RGB components into a native pixel.
	Map(r, g, b uint8) uint32

	// Split unpacks a native pixel back into RGB components. Presenters
	// use it when converting to a different wire format.
	Split(p uint32) (r, g, b uint8)

	// Texture returns the matching texture-format metadata.
	Texture() gputypes.TextureFormat
}

// RGBA8888 stores pixels as 0xRRGGBBAA with full alpha.
type RGBA8888 struct{}

// Map packs RGB components into a native pixel.
func (RGBA8888) Map(r, g, b uint8) uint32 {
	return uint32(r)<<24 | uint32(g)<<16 | uint32(b)<<8 | 0xFF
}

// Split unpacks a native pixel back into RGB components.
func (RGBA8888) Split(p uint32) (r, g, b uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8)
}

// Texture returns the matching texture-format metadata.
func (RGBA8888) Texture() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// BGRA8888 stores pixels as 0xBBGGRRAA with full alpha, the native order
// of most window surfaces.
type BGRA8888 struct{}

// Map packs RGB components into a native pixel.
func (BGRA8888) Map(r, g, b uint8) uint32 {
	return uint32(b)<<24 | uint32(g)<<16 | uint32(r)<<8 | 0xFF
}

// Split unpacks a native pixel back into RGB components.
func (BGRA8888) Split(p uint32) (r, g, b uint8) {
	return uint8(p >> 8), uint8(p >> 16), uint8(p >> 24)
}

// Texture returns the matching texture-format metadata.
func (BGRA8888) Texture() gputypes.TextureFormat {
	return gputypes.TextureFormatBGRA8Unorm
}

var (
	_ PixelFormat = RGBA8888{}
	_ PixelFormat = BGRA8888{}
)
