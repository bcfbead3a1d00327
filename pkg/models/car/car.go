package car

import "image/color"

// Color tags a car's paint.
type Color int

const (
	Indigo Color = iota // the player
	Red
	Green
	Yellow
	Cyan
)

var paints = map[Color]color.RGBA{
	Indigo: {0x4f, 0x46, 0xe5, 0xff},
	Red:    {0xef, 0x44, 0x44, 0xff},
	Green:  {0x22, 0xc5, 0x5e, 0xff},
	Yellow: {0xea, 0xb3, 0x08, 0xff},
	Cyan:   {0x06, 0xb6, 0xd4, 0xff},
}

var names = map[Color]string{
	Indigo: "indigo",
	Red:    "red",
	Green:  "green",
	Yellow: "yellow",
	Cyan:   "cyan",
}

// RGBA returns the paint colour.
func (c Color) RGBA() color.RGBA {
	if p, ok := paints[c]; ok {
		return p
	}
	return paints[Indigo]
}

func (c Color) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return "unknown"
}

// Size is the box every car on the road occupies.
type Size struct {
	W, H float64
}
