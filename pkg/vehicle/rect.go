package vehicle

// Rect is an axis-aligned box, X/Y being the top-left corner.
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the centre point of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Overlaps reports whether the projections on both axes intersect.
// Boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.Right() &&
		o.X < r.Right() &&
		r.Y < o.Bottom() &&
		o.Y < r.Bottom()
}

// Offset returns the box moved by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}
