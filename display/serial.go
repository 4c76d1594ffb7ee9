// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

package display

import (
	"encoding/binary"
	"fmt"
	"io"

	"go.bug.st/serial"

	"github.com/go-slate/slate"
	"github.com/go-slate/slate/render"
)

// ili934x-style window commands, as understood by serial LCD bridges.
const (
	cmdColumnSet   = 0x2A
	cmdPageSet     = 0x2B
	cmdMemoryWrite = 0x2C
)

// SerialPresenter streams damaged framebuffer regions to an LCD over a
// serial port. Each frame sets the write window to the damaged rectangle
// and pushes its pixels as big-endian RGB565, so an unchanged frame costs
// nothing and a small change costs little.
type SerialPresenter struct {
	w io.Writer
}

// OpenSerialPresenter opens the serial device at the given baud rate.
// Close the returned presenter to release the port.
func OpenSerialPresenter(device string, baud int) (*SerialPresenter, io.Closer, error) {
	mode := &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}
	port, err := serial.Open(device, mode)
	if err != nil {
		return nil, nil, fmt.Errorf("display: open serial port %s: %w", device, err)
	}
	return NewSerialPresenter(port), port, nil
}

// NewSerialPresenter wraps an already-open stream. Useful for tests and
// for transports other than a local serial port.
func NewSerialPresenter(w io.Writer) *SerialPresenter {
	return &SerialPresenter{w: w}
}

// Present sends the damaged window and its RGB565 pixels.
func (p *SerialPresenter) Present(fb *render.Framebuffer, damaged slate.Rect) error {
	damaged = damaged.Clip(fb.Bounds())
	if damaged.Empty() {
		return nil
	}

	// Window header: column range, page range, then the pixel stream.
	buf := make([]byte, 0, 10+damaged.Width*damaged.Height*2+1)
	buf = append(buf, cmdColumnSet)
	buf = binary.BigEndian.AppendUint16(buf, uint16(damaged.X))
	buf = binary.BigEndian.AppendUint16(buf, uint16(damaged.X+damaged.Width-1))
	buf = append(buf, cmdPageSet)
	buf = binary.BigEndian.AppendUint16(buf, uint16(damaged.Y))
	buf = binary.BigEndian.AppendUint16(buf, uint16(damaged.Y+damaged.Height-1))
	buf = append(buf, cmdMemoryWrite)

	for y := damaged.Y; y < damaged.Y+damaged.Height; y++ {
		for x := damaged.X; x < damaged.X+damaged.Width; x++ {
			r, g, b := fb.RGBAt(x, y)
			buf = binary.BigEndian.AppendUint16(buf, rgb565(r, g, b))
		}
	}

	if _, err := p.w.Write(buf); err != nil {
		return fmt.Errorf("display: serial write: %w", err)
	}
	return nil
}

// rgb565 packs components into the 5-6-5 wire format.
func rgb565(r, g, b uint8) uint16 {
	return uint16(r>>3)<<11 | uint16(g>>2)<<5 | uint16(b>>3)
}

var _ Presenter = (*SerialPresenter)(nil)
