// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

// Package display runs the serialized repaint session: one goroutine owns
// the framebuffer, the retained previous scene list and the compositor,
// and applies frame updates strictly in FIFO order. Presenters copy the
// damaged region onward to a physical surface after each repaint.
package display

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/go-slate/slate"
	"github.com/go-slate/slate/render"
	"github.com/go-slate/slate/scene"
)

// ErrClosed is returned by Update and Snapshot after Close.
var ErrClosed = errors.New("display: session closed")

// Session owns a framebuffer and repaints it from incoming scene lists.
// All state is confined to a single worker goroutine; requests queue
// behind an in-flight repaint and are never reordered or coalesced.
type Session struct {
	opts options

	fb   *render.Framebuffer
	comp *render.Compositor
	prev *scene.List

	tasks     chan func()
	closed    chan struct{}
	closeOnce sync.Once

	input inputHub
}

// New creates a session with a width by height framebuffer and starts its
// repaint worker.
func New(width, height int, opts ...Option) (*Session, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fb, err := render.NewFramebuffer(width, height, o.format)
	if err != nil {
		return nil, err
	}

	s := &Session{
		opts:   o,
		fb:     fb,
		comp:   render.NewCompositor(fb, o.face),
		tasks:  make(chan func()),
		closed: make(chan struct{}),
	}
	s.input.init()

	go s.run()
	slate.Logger().Info("display session started", "width", width, "height", height)
	return s, nil
}

func (s *Session) run() {
	for {
		select {
		case task := <-s.tasks:
			task()
		case <-s.closed:
			return
		}
	}
}

// do runs task on the worker goroutine, waiting for it to complete.
func (s *Session) do(ctx context.Context, task func()) error {
	select {
	case <-s.closed:
		return ErrClosed
	default:
	}

	done := make(chan struct{})
	wrapped := func() {
		task()
		close(done)
	}

	select {
	case s.tasks <- wrapped:
	case <-s.closed:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	// The task is queued and will run; once dispatched a repaint is never
	// cancelled, so wait for it even if the caller's context expires, and
	// report the expiry afterwards.
	<-done
	if err := ctx.Err(); err != nil {
		return err
	}
	return nil
}

// Update replaces the current frame with list and repaints what changed.
// It blocks until the repaint and presentation are complete — the return
// is the frame acknowledgement — and returns the damaged rectangle, which
// is invalid when the frame was identical and nothing was repainted.
//
// The list is adopted as the retained previous frame; the superseded one
// is released exactly once, after the diff. The caller must not reuse or
// mutate list afterwards.
func (s *Session) Update(ctx context.Context, list *scene.List) (slate.Rect, error) {
	var (
		damaged slate.Rect
		err     error
	)
	doErr := s.do(ctx, func() {
		damaged, err = s.apply(list)
	})
	if doErr != nil {
		return slate.Rect{}, doErr
	}
	return damaged, err
}

// apply runs on the worker goroutine.
func (s *Session) apply(list *scene.List) (slate.Rect, error) {
	damaged := render.ComputeDamage(s.prev, list, s.fb.Bounds())

	s.prev.Release(s.opts.releaser)
	s.prev = list

	if !damaged.Valid {
		slate.Logger().Debug("frame unchanged, skipping repaint")
		return damaged, nil
	}

	if s.opts.fullRepaint {
		damaged = s.fb.Bounds()
	}
	slate.Logger().Debug("repainting", "region", damaged)
	s.comp.Repaint(damaged, list)

	if s.opts.presenter != nil {
		if err := s.opts.presenter.Present(s.fb, damaged); err != nil {
			return damaged, fmt.Errorf("display: present: %w", err)
		}
	}
	return damaged, nil
}

// Snapshot copies the current framebuffer contents into a new image,
// serialized behind any queued updates.
func (s *Session) Snapshot(ctx context.Context) (*image.RGBA, error) {
	var img *image.RGBA
	if err := s.do(ctx, func() {
		img = s.fb.Snapshot(slate.Rect{})
	}); err != nil {
		return nil, err
	}
	return img, nil
}

// Size returns the framebuffer dimensions.
func (s *Session) Size() (width, height int) {
	return s.fb.Width(), s.fb.Height()
}

// Close stops the repaint worker. Pending and future Update calls return
// ErrClosed. Close is idempotent.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		close(s.closed)
	})
}
