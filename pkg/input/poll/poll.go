// Package poll reads Ebitengine keyboard, mouse and touch state into
// input.State snapshots.
package poll

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/trafficdodge/pkg/input"
)

// Bindings maps held keys to directions. Arrows and WASD both steer.
var Bindings = map[ebiten.Key]input.Direction{
	ebiten.KeyArrowLeft:  input.Left,
	ebiten.KeyA:          input.Left,
	ebiten.KeyArrowRight: input.Right,
	ebiten.KeyD:          input.Right,
	ebiten.KeyArrowUp:    input.Up,
	ebiten.KeyW:          input.Up,
	ebiten.KeyArrowDown:  input.Down,
	ebiten.KeyS:          input.Down,
}

// Poller collects the input for the gameplay screen. Call Update once per
// tick before the frame that reads Snapshot.
type Poller struct {
	// Blocked reports screen points owned by the HUD; pointers pressed there
	// never steer.
	Blocked func(pt image.Point) bool

	pads input.State
	jump input.Latch

	touchID  ebiten.TouchID
	touching bool
	mouse    bool
	target   *input.Point

	touchBuf []ebiten.TouchID
}

// New creates a new Poller.
func New() *Poller {
	return &Poller{}
}

// SetPad holds or releases an on-screen direction pad.
func (p *Poller) SetPad(d input.Direction, held bool) {
	p.pads.Set(d, held)
}

// PressJump queues a jump for the next snapshot.
func (p *Poller) PressJump() {
	p.jump.Trigger()
}

// Clear drops every held pad, pending jump and steering pointer.
func (p *Poller) Clear() {
	p.pads = input.State{}
	p.jump.Take()
	p.touching = false
	p.mouse = false
	p.target = nil
}

// Update tracks the steering pointer. The first touch that lands outside the
// HUD steers until it lifts; without touches a held left mouse button does.
func (p *Poller) Update() {
	p.touchBuf = inpututil.AppendJustPressedTouchIDs(p.touchBuf[:0])
	if !p.touching {
		for _, id := range p.touchBuf {
			x, y := ebiten.TouchPosition(id)
			if p.blocked(x, y) {
				continue
			}
			p.touching = true
			p.touchID = id
			break
		}
	}

	switch {
	case p.touching:
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touching = false
			p.target = nil
			break
		}
		x, y := ebiten.TouchPosition(p.touchID)
		p.target = &input.Point{X: float64(x), Y: float64(y)}

	default:
		x, y := ebiten.CursorPosition()
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !p.blocked(x, y) {
			p.mouse = true
		}
		if p.mouse && !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			p.mouse = false
		}
		if p.mouse {
			p.target = &input.Point{X: float64(x), Y: float64(y)}
		} else {
			p.target = nil
		}
	}

	// a pad whose release landed outside the button must not stick
	if !p.anyPointerDown() {
		p.pads = input.State{}
	}
}

func (p *Poller) anyPointerDown() bool {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return true
	}
	p.touchBuf = ebiten.AppendTouchIDs(p.touchBuf[:0])
	return len(p.touchBuf) > 0
}

func (p *Poller) blocked(x, y int) bool {
	return p.Blocked != nil && p.Blocked(image.Pt(x, y))
}

// Snapshot merges keys, pads, the pending jump and the steering target.
func (p *Poller) Snapshot() input.State {
	var keys input.State
	for k, d := range Bindings {
		if ebiten.IsKeyPressed(k) {
			keys.Set(d, true)
		}
	}

	s := input.Merge(keys, p.pads)
	s.Jump = p.jump.Take()
	if p.target != nil {
		t := *p.target
		s.Target = &t
	}
	return s
}
