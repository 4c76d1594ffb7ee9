// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

package scene

import (
	"github.com/go-slate/slate"
)

// List is one frame's ordered primitive sequence, front to back: the
// primitive at index 0 is topmost and occludes everything after it at
// overlapping pixels. A List is immutable once constructed.
type List struct {
	prims    []Primitive
	released bool
}

// NewList builds a list from primitives in paint-priority order. The slice
// is taken over by the list and must not be mutated afterwards.
func NewList(prims ...Primitive) *List {
	return &List{prims: prims}
}

// Len returns the number of primitives. A nil list is empty.
func (l *List) Len() int {
	if l == nil {
		return 0
	}
	return len(l.prims)
}

// Primitives returns the underlying slice in paint-priority order.
// Callers must treat it as read-only.
func (l *List) Primitives() []Primitive {
	if l == nil {
		return nil
	}
	return l.prims
}

// Bounds returns the union of all primitive bounding boxes, invalid for an
// empty list.
func (l *List) Bounds() slate.Rect {
	var r slate.Rect
	if l == nil {
		return r
	}
	for i := range l.prims {
		r = r.Union(l.prims[i].Bounds())
	}
	return r
}

// Release frees the owned payloads of a superseded list: free is invoked
// once per text primitive with its string. Image pixel buffers are
// borrowed and deliberately left untouched.
//
// Release is called by the session exactly once, after the new frame has
// been diffed against this list; a second call is a guarded no-op so a
// double release can never reach the hook.
func (l *List) Release(free func(text string)) {
	if l == nil || l.released {
		return
	}
	l.released = true
	if free == nil {
		return
	}
	for i := range l.prims {
		if l.prims[i].Kind == KindText {
			free(l.prims[i].Text)
		}
	}
}

// Released reports whether Release has run.
func (l *List) Released() bool {
	return l != nil && l.released
}
