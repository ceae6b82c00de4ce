package pdfdoc

import "math"

// Rect is an axis-aligned rectangle in page units. The origin is the
// top-left corner of the page and Y grows downward, so Y0 is the top
// edge and Y1 the bottom edge. This matches how the context heuristics
// reason about text sitting "above" an image.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// NewRect builds a normalized Rect from two corner coordinates.
func NewRect(x0, y0, x1, y1 float64) Rect {
	return Rect{
		X0: math.Min(x0, x1),
		Y0: math.Min(y0, y1),
		X1: math.Max(x0, x1),
		Y1: math.Max(y0, y1),
	}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.X1 <= r.X0 || r.Y1 <= r.Y0
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return !(r.X1 < other.X0 ||
		r.X0 > other.X1 ||
		r.Y1 < other.Y0 ||
		r.Y0 > other.Y1)
}

// Intersect clamps r to the area shared with bounds. When the two do not
// overlap the zero Rect is returned.
func (r Rect) Intersect(bounds Rect) Rect {
	if !r.Intersects(bounds) {
		return Rect{}
	}
	return Rect{
		X0: math.Max(r.X0, bounds.X0),
		Y0: math.Max(r.Y0, bounds.Y0),
		X1: math.Min(r.X1, bounds.X1),
		Y1: math.Min(r.Y1, bounds.Y1),
	}
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}
