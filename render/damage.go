// Copyright 2026 The slate Authors
// SPDX-License-Identifier: MIT

package render

import (
	"github.com/go-slate/slate"
	"github.com/go-slate/slate/scene"
)

// ComputeDamage diffs the previous frame's list against the current one
// and returns a single conservative bounding rectangle of the screen area
// that must be repainted, clipped to bounds. An invalid result means the
// frame is unchanged and repainting can be skipped entirely.
//
// The diff is a forward walk over both lists, not an exact region diff:
// equivalent primitives at the front of both lists contribute nothing; a
// mismatch scans ahead in the previous list for a reappearance, damaging
// everything skipped over (content that vanished or moved); a primitive
// with no match anywhere ahead damages its own bounding box (new or
// changed content). Previous primitives left unmatched after the walk
// disappeared with nothing replacing them, so their boxes are damaged too.
func ComputeDamage(prev, cur *scene.List, bounds slate.Rect) slate.Rect {
	var damaged slate.Rect

	old := prev.Primitives()
	next := cur.Primitives()

	if len(old) == 0 {
		for i := range next {
			damaged = damaged.Union(next[i].Bounds())
		}
		return damaged.Clip(bounds)
	}

	j := 0
	for i := range next {
		if j < len(old) && next[i].Equal(&old[j]) {
			j++
			continue
		}

		found := false
		for k := j + 1; k < len(old); k++ {
			if next[i].Equal(&old[k]) {
				for l := j; l < k; l++ {
					damaged = damaged.Union(old[l].Bounds())
				}
				j = k + 1
				found = true
				break
			}
		}
		if !found {
			damaged = damaged.Union(next[i].Bounds())
		}
	}

	// Whatever remains of the previous list was not matched by anything
	// in the current one: it disappeared and must be repainted over.
	for ; j < len(old); j++ {
		damaged = damaged.Union(old[j].Bounds())
	}

	return damaged.Clip(bounds)
}
