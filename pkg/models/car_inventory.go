package models

import (
	"github.com/golangdaddy/trafficdodge/pkg/models/car"
)

// TrafficPaints lists the colours traffic cars are painted with.
var TrafficPaints = []car.Color{car.Red, car.Green, car.Yellow, car.Cyan}

// PickPaint maps r in [0,1) onto TrafficPaints.
func PickPaint(r float64) car.Color {
	i := int(r * float64(len(TrafficPaints)))
	if i < 0 {
		i = 0
	}
	if i >= len(TrafficPaints) {
		i = len(TrafficPaints) - 1
	}
	return TrafficPaints[i]
}
