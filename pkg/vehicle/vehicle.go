package vehicle

// Vehicle is anything occupying a car box on the road.
type Vehicle interface {
	Bounds() Rect
}

// Collides reports whether two vehicles' boxes overlap.
func Collides(a, b Vehicle) bool {
	return a.Bounds().Overlaps(b.Bounds())
}
