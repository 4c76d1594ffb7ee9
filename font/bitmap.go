// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

package font

import (
	"errors"
	"fmt"
	"image"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// coverageThreshold is the minimum glyph alpha for a pixel to count as set.
// Antialiased edges below it render as background.
const coverageThreshold = 0x80

// BitmapFace is a Face backed by a pre-rasterized scanline table.
type BitmapFace struct {
	cellWidth  int
	cellHeight int
	// scanlines holds cellHeight bytes per character code, 256 characters.
	scanlines []uint8
}

// NewBitmapFace builds a fixed-cell bitmap face by rasterizing every ASCII
// glyph of src into its cell. The cell width is the advance of src (which
// must be monospaced and at most 8 pixels wide); the cell height covers
// ascent plus descent.
func NewBitmapFace(src xfont.Face) (*BitmapFace, error) {
	m := src.Metrics()
	ascent := m.Ascent.Ceil()
	cellHeight := ascent + m.Descent.Ceil()
	advance, ok := src.GlyphAdvance('M')
	if !ok {
		return nil, errors.New("font: source face has no 'M' glyph")
	}
	cellWidth := advance.Ceil()
	if cellWidth < 1 || cellWidth > 8 {
		return nil, fmt.Errorf("font: cell width %d out of range [1, 8]", cellWidth)
	}
	if cellHeight < 1 {
		return nil, fmt.Errorf("font: cell height %d out of range", cellHeight)
	}

	f := &BitmapFace{
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		scanlines:  make([]uint8, 256*cellHeight),
	}

	cell := image.NewAlpha(image.Rect(0, 0, cellWidth, cellHeight))
	d := xfont.Drawer{
		Dst:  cell,
		Src:  image.White,
		Face: src,
	}
	for c := 0x20; c < 0x7F; c++ {
		clear(cell.Pix)
		d.Dot = fixed.P(0, ascent)
		d.DrawString(string(rune(c)))

		for row := 0; row < cellHeight; row++ {
			var bits uint8
			for col := 0; col < cellWidth; col++ {
				if cell.AlphaAt(col, row).A >= coverageThreshold {
					bits |= 1 << (7 - col)
				}
			}
			f.scanlines[c*cellHeight+row] = bits
		}
	}

	return f, nil
}

// CellWidth returns the glyph cell width in pixels.
func (f *BitmapFace) CellWidth() int { return f.cellWidth }

// CellHeight returns the glyph cell height in pixels.
func (f *BitmapFace) CellHeight() int { return f.cellHeight }

// Scanline returns the coverage bits of one glyph row, MSB leftmost.
func (f *BitmapFace) Scanline(c byte, row int) uint8 {
	if row < 0 || row >= f.cellHeight {
		return 0
	}
	return f.scanlines[int(c)*f.cellHeight+row]
}

var _ Face = (*BitmapFace)(nil)

var (
	defaultOnce sync.Once
	defaultFace *BitmapFace
)

// Default returns the built-in face, a 7x13 cell grid rasterized from
// basicfont.Face7x13. It is built once on first use.
func Default() Face {
	defaultOnce.Do(func() {
		f, err := NewBitmapFace(basicfont.Face7x13)
		if err != nil {
			// Face7x13 is a compile-time constant face; this cannot fail.
			panic(err)
		}
		defaultFace = f
	})
	return defaultFace
}
