// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

// Package font provides the fixed-cell bitmap font faces used by text
// primitives.
//
// A Face is a monospaced grid of glyph cells, at most 8 pixels wide. Each
// glyph row is one byte of coverage bits, most significant bit leftmost, so
// the row renderer can test a single bit per output pixel. Faces are built
// from any golang.org/x/image/font.Face (opentype or basicfont) by drawing
// every ASCII glyph into its cell once, up front.
package font

// Face is a fixed-cell bitmap font.
//
// Implementations must be safe for concurrent readers: the compositor reads
// scanlines from the repaint goroutine while the registry may be consulted
// elsewhere.
type Face interface {
	// CellWidth returns the glyph cell width in pixels, between 1 and 8.
	CellWidth() int

	// CellHeight returns the glyph cell height in pixels.
	CellHeight() int

	// Scanline returns the coverage bits of one glyph row, MSB leftmost.
	// row must be in [0, CellHeight). Characters without a glyph return 0
	// (a blank cell).
	Scanline(c byte, row int) uint8
}
