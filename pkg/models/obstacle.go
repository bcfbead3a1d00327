package models

import (
	"github.com/golangdaddy/trafficdodge/pkg/models/car"
	"github.com/golangdaddy/trafficdodge/pkg/vehicle"
)

// Obstacle is a traffic car scrolling down the road.
type Obstacle struct {
	ID    int64
	X, Y  float64
	W, H  float64
	Paint car.Color

	// Passed is set once the car's top edge is below the player's bottom edge.
	Passed bool
	// Cleared is set once the player overlapped the car while airborne; it
	// never collides after that.
	Cleared bool
}

func (o *Obstacle) Bounds() vehicle.Rect {
	return vehicle.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}
