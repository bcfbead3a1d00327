package player

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golangdaddy/trafficdodge/pkg/config"
	"github.com/golangdaddy/trafficdodge/pkg/input"
)

func TestResetPosition(t *testing.T) {
	c := NewController(config.Default())
	p := c.Player()
	if p.X != 218 || p.Y != 680 {
		t.Fatalf("start: got (%v,%v) want (218,680)", p.X, p.Y)
	}
	if !p.Grounded() || !p.CanJump {
		t.Fatalf("player should start grounded and able to jump")
	}
}

func TestDiscreteInput(t *testing.T) {
	cases := []struct {
		name   string
		in     input.State
		vx, vy float64
	}{
		{"idle", input.State{}, 0, 0},
		{"left", input.State{Left: true}, -220, 0},
		{"right_up", input.State{Right: true, Up: true}, 220, -220},
		{"left_and_right_cancel", input.State{Left: true, Right: true}, 0, 0},
		{"up_and_down_cancel", input.State{Up: true, Down: true}, 0, 0},
	}
	for _, cs := range cases {
		t.Run(cs.name, func(t *testing.T) {
			c := NewController(config.Default())
			c.Advance(0.01, cs.in)
			p := c.Player()
			if p.VX != cs.vx || p.VY != cs.vy {
				t.Fatalf("velocity: got (%v,%v) want (%v,%v)", p.VX, p.VY, cs.vx, cs.vy)
			}
			if math.Abs(p.X-(218+cs.vx*0.01)) > 1e-9 || math.Abs(p.Y-(680+cs.vy*0.01)) > 1e-9 {
				t.Fatalf("position: got (%v,%v)", p.X, p.Y)
			}
		})
	}
}

func TestSteering(t *testing.T) {
	c := NewController(config.Default())
	p := c.Player()
	cx, cy := p.Bounds().Center()

	c.Advance(0, input.State{Target: &input.Point{X: cx + 30, Y: cy + 40}, Left: true})
	if math.Abs(p.VX-220*0.6) > 1e-9 || math.Abs(p.VY-220*0.8) > 1e-9 {
		t.Fatalf("steer velocity: got (%v,%v)", p.VX, p.VY)
	}

	c.Advance(0, input.State{Target: &input.Point{X: cx + 1, Y: cy + 1}})
	if p.VX != 0 || p.VY != 0 {
		t.Fatalf("inside the deadzone the car should stop, got (%v,%v)", p.VX, p.VY)
	}

	c.Advance(0, input.State{Target: &input.Point{X: cx - 100, Y: cy}})
	c.Advance(0, input.State{})
	if p.VX != 0 || p.VY != 0 {
		t.Fatalf("releasing the pointer should drop residual velocity, got (%v,%v)", p.VX, p.VY)
	}
}

func TestClampProperty(t *testing.T) {
	tu := config.Default()
	rng := rand.New(rand.NewSource(1))
	c := NewController(tu)
	minX, maxX, minY, maxY := c.Limits()

	for i := 0; i < 5000; i++ {
		in := input.State{
			Left:  rng.Intn(2) == 0,
			Right: rng.Intn(3) == 0,
			Up:    rng.Intn(2) == 0,
			Down:  rng.Intn(3) == 0,
		}
		if rng.Intn(4) == 0 {
			in.Target = &input.Point{X: rng.Float64()*2000 - 1000, Y: rng.Float64()*2000 - 1000}
		}
		c.Advance(rng.Float64()*5, in)

		p := c.Player()
		if p.X < minX || p.X > maxX || p.Y < minY || p.Y > maxY {
			t.Fatalf("step %d: player escaped to (%v,%v)", i, p.X, p.Y)
		}
	}

	if minY != tu.Field.Height*0.35 || maxY != tu.Field.Height-10-72 || minX != 10 || maxX != 480-10-44 {
		t.Fatalf("unexpected limits %v %v %v %v", minX, maxX, minY, maxY)
	}
}

func TestJumpLatch(t *testing.T) {
	c := NewController(config.Default())
	p := c.Player()

	if !c.TriggerJump() {
		t.Fatalf("grounded jump refused")
	}
	if p.CanJump || p.JumpT != 1e-4 {
		t.Fatalf("after take-off: canJump=%v jumpT=%v", p.CanJump, p.JumpT)
	}

	before := *p
	if c.TriggerJump() {
		t.Fatalf("jump accepted while airborne")
	}
	if *p != before {
		t.Fatalf("refused jump changed state")
	}

	for i := 0; i < 1000 && p.Airborne(); i++ {
		c.Advance(0.016, input.State{Jump: true})
		if p.JumpT > p.JumpDuration {
			t.Fatalf("jumpT %v past duration", p.JumpT)
		}
		if p.Airborne() == p.CanJump {
			t.Fatalf("canJump=%v while jumpT=%v", p.CanJump, p.JumpT)
		}
	}
	if p.JumpT != 0 || !p.CanJump {
		t.Fatalf("did not land: jumpT=%v canJump=%v", p.JumpT, p.CanJump)
	}
}

func TestJumpFromInputCountsThisFrame(t *testing.T) {
	c := NewController(config.Default())
	c.Advance(0.016, input.State{Jump: true})
	if got := c.Player().JumpT; math.Abs(got-(1e-4+0.016)) > 1e-12 {
		t.Fatalf("jumpT: got %v", got)
	}
}

func TestJumpDuration(t *testing.T) {
	c := NewController(config.Default())
	c.TriggerJump()
	frames := 0
	for c.Player().Airborne() {
		c.Advance(0.05, input.State{})
		frames++
	}
	// 0.7s at 0.05s per frame lands on the 14th frame
	if frames != 14 {
		t.Fatalf("landed after %d frames want 14", frames)
	}
}

func TestLift(t *testing.T) {
	c := NewController(config.Default())
	p := c.Player()
	if p.Lift() != 0 {
		t.Fatalf("grounded lift %v", p.Lift())
	}
	c.TriggerJump()
	p.JumpT = 0.35
	if math.Abs(p.Lift()-90) > 1e-9 {
		t.Fatalf("apex lift: got %v want 90", p.Lift())
	}
	p.JumpT = 0.175
	if math.Abs(p.Lift()-90*math.Sin(math.Pi/4)) > 1e-9 {
		t.Fatalf("quarter lift: got %v", p.Lift())
	}
	if p.Bounds().Y != p.Y {
		t.Fatalf("lift must not move the collision box")
	}
}
