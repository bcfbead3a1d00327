package models

// DecorationKind selects how a decoration is drawn.
type DecorationKind int

const (
	LaneDash DecorationKind = iota
	Banner
)

// Decoration is a purely visual road marking that scrolls with the traffic.
type Decoration struct {
	Kind DecorationKind
	Y    float64

	WrapMargin    float64 // how far past the bottom edge before recycling
	RecyclePeriod float64 // distance moved back up when recycled
}

// Scroll moves the decoration down by dy and wraps it above the screen once it
// is more than WrapMargin below height.
func (d *Decoration) Scroll(dy, height float64) {
	d.Y += dy
	if d.Y > height+d.WrapMargin {
		d.Y -= d.RecyclePeriod
	}
}
