package player

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/golangdaddy/trafficdodge/pkg/config"
	"github.com/golangdaddy/trafficdodge/pkg/input"
	"github.com/golangdaddy/trafficdodge/pkg/models"
	"github.com/golangdaddy/trafficdodge/pkg/models/car"
)

// Controller owns the player car and moves it from input.
type Controller struct {
	p *models.Player

	field        config.Field
	minYFraction float64
	startOffsetY float64
	deadzone     float64
	epsilon      float64
}

// NewController creates a new Controller with the player in its start position.
func NewController(t config.Tuning) *Controller {
	c := &Controller{
		p: &models.Player{
			W:            t.Player.Width,
			H:            t.Player.Height,
			Speed:        t.Player.Speed,
			Paint:        car.Indigo,
			JumpDuration: t.Jump.Duration,
			JumpPeak:     t.Jump.Peak,
		},
		field:        t.Field,
		minYFraction: t.Player.MinYFraction,
		startOffsetY: t.Player.StartOffsetY,
		deadzone:     t.Player.SteerDeadzone,
		epsilon:      t.Jump.Epsilon,
	}
	c.Reset()
	return c
}

func (c *Controller) Player() *models.Player {
	return c.p
}

// Reset centres the player near the bottom, stopped and grounded.
func (c *Controller) Reset() {
	c.p.X = c.field.Width/2 - c.p.W/2
	c.p.Y = c.field.Height - c.startOffsetY
	c.p.VX, c.p.VY = 0, 0
	c.p.JumpT = 0
	c.p.CanJump = true
}

// Limits returns the rectangle the player's top-left corner is kept in.
func (c *Controller) Limits() (minX, maxX, minY, maxY float64) {
	minX = c.field.Inset
	maxX = c.field.Width - c.field.Inset - c.p.W
	minY = c.field.Height * c.minYFraction
	maxY = c.field.Height - c.field.Inset - c.p.H
	return
}

// TriggerJump takes off if the player is grounded and allowed to jump.
// It reports whether a jump started.
func (c *Controller) TriggerJump() bool {
	if !c.p.CanJump || c.p.JumpT != 0 {
		return false
	}
	c.p.CanJump = false
	c.p.JumpT = c.epsilon
	return true
}

// Advance applies one frame of input and moves the player by dt seconds.
func (c *Controller) Advance(dt float64, in input.State) {
	if in.Jump {
		c.TriggerJump()
	}

	if in.Target != nil {
		c.steer(*in.Target)
	} else {
		ax, ay := in.Axis()
		c.p.VX = float64(ax) * c.p.Speed
		c.p.VY = float64(ay) * c.p.Speed
	}

	c.p.X += c.p.VX * dt
	c.p.Y += c.p.VY * dt
	c.clamp()

	if c.p.JumpT > 0 {
		c.p.JumpT += dt
		if c.p.JumpT >= c.p.JumpDuration {
			c.p.JumpT = 0
			c.p.CanJump = true
		}
	}
}

// steer points the velocity at target from the car's centre.
func (c *Controller) steer(target input.Point) {
	cx, cy := c.p.Bounds().Center()
	d := cp.Vector{X: target.X, Y: target.Y}.Sub(cp.Vector{X: cx, Y: cy})
	if d.Length() <= c.deadzone {
		c.p.VX, c.p.VY = 0, 0
		return
	}
	v := d.Normalize().Mult(c.p.Speed)
	c.p.VX, c.p.VY = v.X, v.Y
}

func (c *Controller) clamp() {
	minX, maxX, minY, maxY := c.Limits()
	c.p.X = math.Max(minX, math.Min(maxX, c.p.X))
	c.p.Y = math.Max(minY, math.Min(maxY, c.p.Y))
}
