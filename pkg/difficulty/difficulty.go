package difficulty

import (
	"math"

	"github.com/golangdaddy/trafficdodge/pkg/config"
)

// Model maps the current score onto the scroll speed and spawn interval.
type Model interface {
	ScrollSpeed(score int) float64
	SpawnInterval(score int) float64
}

// Curve is the closed-form difficulty model taken from the tuning document.
type Curve struct {
	scroll  config.Scroll
	spawn   config.Spawn
	gap     config.Gap
	playerW float64
}

// NewCurve creates a new Curve.
func NewCurve(t config.Tuning) *Curve {
	return &Curve{
		scroll:  t.Scroll,
		spawn:   t.Spawn,
		gap:     t.Gap,
		playerW: t.Player.Width,
	}
}

// ScrollSpeed is min(Max, Base + score*PerPoint).
func (c *Curve) ScrollSpeed(score int) float64 {
	return math.Min(c.scroll.Max, c.scroll.Base+float64(score)*c.scroll.PerPoint)
}

// SpawnInterval shrinks with score down to IntervalFloor.
func (c *Curve) SpawnInterval(score int) float64 {
	drop := math.Min(c.spawn.IntervalDropMax, float64(score)/c.spawn.IntervalScoreDivisor)
	return math.Max(c.spawn.IntervalFloor, c.spawn.IntervalBase-drop)
}

// Gap is the width left free in a gapped pair. It never drops below the
// player's width plus the clearance.
func (c *Curve) Gap(score int) float64 {
	shrink := math.Min(c.gap.ShrinkMax, float64(score)/c.gap.ScoreDivisor)
	return math.Max(c.playerW+c.gap.Clearance, c.gap.Base-shrink)
}

// MinGap is the narrowest gap Gap can return.
func (c *Curve) MinGap() float64 {
	return c.playerW + c.gap.Clearance
}

// Bounds of the scroll speed and spawn interval curves.
func (c *Curve) ScrollRange() (lo, hi float64)   { return c.scroll.Base, c.scroll.Max }
func (c *Curve) IntervalRange() (lo, hi float64) { return c.spawn.IntervalFloor, c.spawn.IntervalBase }

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
