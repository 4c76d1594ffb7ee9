// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

// Package imageio decodes images into the packed RGBA buffers primitives
// borrow, and caches them by name so scene decoders can reference an
// image loaded once.
package imageio

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"sync"

	// Register the decodable formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"github.com/go-slate/slate/scene"
)

// Decode reads one image in any registered format and converts it to the
// packed non-premultiplied RGBA layout image primitives expect.
func Decode(r io.Reader) (*scene.ImageData, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}

	bounds := img.Bounds()
	rgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(rgba, rgba.Bounds(), img, bounds.Min, xdraw.Src)

	return &scene.ImageData{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pix:    rgba.Pix,
	}, nil
}

// DecodeBytes is Decode over an in-memory encoding.
func DecodeBytes(data []byte) (*scene.ImageData, error) {
	return Decode(bytes.NewReader(data))
}

// Cache is a named image store. It owns the decoded pixel buffers;
// primitives referencing them only borrow, so replacing or dropping an
// entry must not happen while a scene list still uses it.
//
// Cache is safe for concurrent use.
type Cache struct {
	mu     sync.RWMutex
	images map[string]*scene.ImageData
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{images: make(map[string]*scene.ImageData)}
}

// Register decodes data and stores it under name, replacing any previous
// entry.
func (c *Cache) Register(name string, data []byte) (*scene.ImageData, error) {
	img, err := DecodeBytes(data)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.images[name] = img
	return img, nil
}

// Lookup returns the image registered under name.
func (c *Cache) Lookup(name string) (*scene.ImageData, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	img, ok := c.images[name]
	if !ok {
		return nil, fmt.Errorf("imageio: unknown image %q", name)
	}
	return img, nil
}
