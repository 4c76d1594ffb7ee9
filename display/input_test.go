// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

package display

import "testing"

func TestPublishInput(t *testing.T) {
	s := newTestSession(t)

	ch := make(chan InputEvent, 4)
	s.SubscribeInput(ch)

	s.PublishInput(InputEvent{Kind: KeyDown, Rune: 'q'})
	s.PublishInput(InputEvent{Kind: MouseMove, X: 3, Y: 7})

	ev := <-ch
	if ev.Kind != KeyDown || ev.Rune != 'q' {
		t.Errorf("first event = %+v", ev)
	}
	if ev.Elapsed < 0 {
		t.Errorf("Elapsed = %v, want non-negative", ev.Elapsed)
	}
	ev = <-ch
	if ev.Kind != MouseMove || ev.X != 3 || ev.Y != 7 {
		t.Errorf("second event = %+v", ev)
	}
}

func TestPublishInputNeverBlocks(t *testing.T) {
	s := newTestSession(t)

	// No subscriber at all.
	s.PublishInput(InputEvent{Kind: KeyDown})

	// Full subscriber channel: the extra event is dropped, not queued.
	ch := make(chan InputEvent, 1)
	s.SubscribeInput(ch)
	s.PublishInput(InputEvent{Kind: KeyDown, Key: 1})
	s.PublishInput(InputEvent{Kind: KeyDown, Key: 2})

	ev := <-ch
	if ev.Key != 1 {
		t.Errorf("delivered event key = %d, want 1", ev.Key)
	}
	select {
	case ev := <-ch:
		t.Errorf("dropped event was delivered: %+v", ev)
	default:
	}
}

func TestSubscribeInputClosesReplaced(t *testing.T) {
	s := newTestSession(t)

	old := make(chan InputEvent, 1)
	s.SubscribeInput(old)

	next := make(chan InputEvent, 1)
	s.SubscribeInput(next)

	// The replaced channel is closed so its consumer's receive loop ends
	// instead of blocking forever.
	select {
	case _, ok := <-old:
		if ok {
			t.Fatal("replaced channel delivered an event instead of closing")
		}
	default:
		t.Fatal("replaced channel was not closed")
	}

	// Events keep flowing to the new subscriber.
	s.PublishInput(InputEvent{Kind: KeyDown, Key: 9})
	if ev := <-next; ev.Key != 9 {
		t.Errorf("new subscriber got %+v", ev)
	}
}
