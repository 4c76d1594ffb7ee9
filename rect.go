package slate

import "fmt"

// Rect is an integer rectangle with a validity flag. The zero value is
// invalid, which for damage tracking means "nothing to repaint".
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
	Valid  bool
}

// MakeRect returns a valid rectangle with the given geometry.
func MakeRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height, Valid: true}
}

// Empty reports whether the rectangle covers no pixels.
func (r Rect) Empty() bool {
	return !r.Valid || r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return r.Valid && x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Union grows the rectangle to the smallest one covering both r and o.
// An invalid accumulator adopts the other rectangle unchanged.
func (r Rect) Union(o Rect) Rect {
	if !o.Valid {
		return r
	}
	if !r.Valid {
		return o
	}
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(r.X+r.Width, o.X+o.Width) - x,
		Height: max(r.Y+r.Height, o.Y+o.Height) - y,
		Valid:  true,
	}
}

// Clip intersects the rectangle with bounds. The result is invalid if the
// two do not overlap.
func (r Rect) Clip(bounds Rect) Rect {
	if !r.Valid || !bounds.Valid {
		return Rect{}
	}
	x := max(r.X, bounds.X)
	y := max(r.Y, bounds.Y)
	w := min(r.X+r.Width, bounds.X+bounds.Width) - x
	h := min(r.Y+r.Height, bounds.Y+bounds.Height) - y
	if w <= 0 || h <= 0 {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: w, Height: h, Valid: true}
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	if !r.Valid {
		return "Rect(invalid)"
	}
	return fmt.Sprintf("Rect(%d,%d %dx%d)", r.X, r.Y, r.Width, r.Height)
}
