// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

package display

import (
	"sync"
	"time"

	"github.com/go-slate/slate"
)

// EventKind discriminates input events.
type EventKind uint8

const (
	// KeyDown and KeyUp are keyboard transitions; Rune carries the
	// character when one applies, Key the raw code otherwise.
	KeyDown EventKind = iota + 1
	KeyUp

	// MouseMove, MousePress and MouseRelease are pointer events with
	// framebuffer coordinates.
	MouseMove
	MousePress
	MouseRelease
)

// MouseButtons is a bitmask of pressed buttons.
type MouseButtons uint8

const (
	ButtonLeft MouseButtons = 1 << iota
	ButtonMiddle
	ButtonRight
)

// InputEvent is one discrete input notification. Events flow outward from
// the platform layer to the subscriber; they never touch repaint state, so
// no synchronization with the session worker is involved.
type InputEvent struct {
	Kind    EventKind
	Key     int
	Rune    rune
	X       int
	Y       int
	Buttons MouseButtons

	// Elapsed is the time since the session started.
	Elapsed time.Duration
}

// inputHub fans input events out to the single subscriber.
type inputHub struct {
	mu    sync.Mutex
	sub   chan<- InputEvent
	start time.Time
}

func (h *inputHub) init() {
	h.start = time.Now()
}

// SubscribeInput registers ch to receive input events. Only one subscriber
// is supported; subscribing again replaces the previous channel, which is
// closed so its consumer knows to stop.
func (s *Session) SubscribeInput(ch chan<- InputEvent) {
	s.input.mu.Lock()
	defer s.input.mu.Unlock()
	if s.input.sub != nil {
		slate.Logger().Warn("input subscriber replaced")
		close(s.input.sub)
	}
	s.input.sub = ch
}

// PublishInput stamps the event and delivers it to the subscriber, if any.
// Delivery never blocks: an event that cannot be queued is dropped, since
// input must not stall behind a slow consumer. The send happens under the
// hub lock so a concurrent re-subscribe cannot close the channel mid-send.
func (s *Session) PublishInput(ev InputEvent) {
	s.input.mu.Lock()
	defer s.input.mu.Unlock()

	if s.input.sub == nil {
		return
	}
	ev.Elapsed = time.Since(s.input.start)
	select {
	case s.input.sub <- ev:
	default:
		slate.Logger().Warn("input event dropped", "kind", ev.Kind)
	}
}
