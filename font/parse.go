// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

package font

import (
	"fmt"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// Parse builds a bitmap face from TTF or OTF font data at the given pixel
// size. The font must be monospaced with an advance of at most 8 pixels at
// that size.
//
// Note: TTC collections are not supported by golang.org/x/image.
func Parse(data []byte, size float64) (*BitmapFace, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: parse: %w", err)
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font: face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	return NewBitmapFace(face)
}
