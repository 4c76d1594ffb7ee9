// Package slate implements a retained-mode display-list compositor for
// fixed-size pixel framebuffers.
//
// A frame is described by an ordered list of drawable primitives (images,
// scaled image crops, solid rectangles, bitmap text); the list is replaced
// wholesale on every update. The compositor diffs the new list against the
// retained previous one, computes a damaged rectangle, and repaints only
// that region, resolving overlaps by list order instead of a depth buffer:
// index 0 is topmost, and a transparent pixel with no background fill falls
// through to the primitive below.
//
// The root package holds the shared data model (Color, Rect) and logging
// configuration. Sub-packages:
//
//   - scene: primitives and the immutable per-frame list
//   - render: damage tracking, row renderers, compositor, framebuffer
//   - font: fixed-cell bitmap font faces and the font registry
//   - display: the serialized repaint session, presenters, input events
//   - imageio: image decoding into primitive pixel buffers
//   - server: the JSON-RPC display server
package slate
