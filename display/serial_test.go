// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

package display

import (
	"bytes"
	"errors"
	"testing"

	"github.com/go-slate/slate"
	"github.com/go-slate/slate/render"
)

func TestRGB565(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0, 0, 0, 0x0000},
		{0xFF, 0xFF, 0xFF, 0xFFFF},
		{0xFF, 0, 0, 0xF800},
		{0, 0xFF, 0, 0x07E0},
		{0, 0, 0xFF, 0x001F},
		{0x08, 0x04, 0x08, 0x0821}, // lowest surviving bit of each channel
	}
	for _, tt := range tests {
		if got := rgb565(tt.r, tt.g, tt.b); got != tt.want {
			t.Errorf("rgb565(%#x, %#x, %#x) = %#04x, want %#04x", tt.r, tt.g, tt.b, got, tt.want)
		}
	}
}

func TestSerialPresenterFrame(t *testing.T) {
	fb, err := render.NewFramebuffer(4, 3, render.RGBA8888{})
	if err != nil {
		t.Fatal(err)
	}
	fb.Fill(slate.RGB(0xFF, 0, 0))

	var buf bytes.Buffer
	p := NewSerialPresenter(&buf)
	if err := p.Present(fb, slate.MakeRect(1, 0, 2, 2)); err != nil {
		t.Fatal(err)
	}

	want := []byte{
		cmdColumnSet, 0x00, 0x01, 0x00, 0x02,
		cmdPageSet, 0x00, 0x00, 0x00, 0x01,
		cmdMemoryWrite,
		0xF8, 0x00, 0xF8, 0x00,
		0xF8, 0x00, 0xF8, 0x00,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("frame = % x\nwant    % x", buf.Bytes(), want)
	}
}

func TestSerialPresenterSkipsEmptyDamage(t *testing.T) {
	fb, err := render.NewFramebuffer(4, 3, render.RGBA8888{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	p := NewSerialPresenter(&buf)
	if err := p.Present(fb, slate.Rect{}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("empty damage wrote %d bytes", buf.Len())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errWriteFailed
}

var errWriteFailed = errors.New("write failed")

func TestSerialPresenterWriteError(t *testing.T) {
	fb, err := render.NewFramebuffer(2, 2, render.RGBA8888{})
	if err != nil {
		t.Fatal(err)
	}
	p := NewSerialPresenter(failingWriter{})
	if err := p.Present(fb, fb.Bounds()); err == nil {
		t.Error("write failure must surface as an error")
	}
}
