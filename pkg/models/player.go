package models

import (
	"math"

	"github.com/golangdaddy/trafficdodge/pkg/models/car"
	"github.com/golangdaddy/trafficdodge/pkg/vehicle"
)

// Player is the car the user drives.
type Player struct {
	X, Y   float64 // top-left of the box
	VX, VY float64
	W, H   float64
	Speed  float64
	Paint  car.Color

	// JumpT is the time spent airborne; 0 means grounded.
	JumpT        float64
	JumpDuration float64
	JumpPeak     float64
	CanJump      bool
}

// Bounds is the logical box used for collision; it ignores the jump lift.
func (p *Player) Bounds() vehicle.Rect {
	return vehicle.Rect{X: p.X, Y: p.Y, W: p.W, H: p.H}
}

func (p *Player) Airborne() bool { return p.JumpT > 0 }
func (p *Player) Grounded() bool { return p.JumpT == 0 }

// Progress is the normalised jump progress in [0,1].
func (p *Player) Progress() float64 {
	if p.JumpT <= 0 || p.JumpDuration <= 0 {
		return 0
	}
	return math.Min(1, p.JumpT/p.JumpDuration)
}

// Lift is the visual height above the road.
func (p *Player) Lift() float64 {
	if !p.Airborne() {
		return 0
	}
	return p.JumpPeak * JumpEase(p.Progress())
}

// JumpEase is a smooth 0->1->0 curve over t in [0,1] with its apex at 0.5.
func JumpEase(t float64) float64 {
	if t <= 0 || t >= 1 {
		return 0
	}
	return math.Sin(math.Pi * t)
}
