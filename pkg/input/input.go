// Package input describes what the player is asking for on a given frame,
// independent of the device it came from.
package input

import "time"

// Point is a position on the play-field.
type Point struct {
	X, Y float64
}

// Direction is one of the four held directions.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

var directionNames = [...]string{"left", "right", "up", "down"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// State is the input snapshot for one frame.
type State struct {
	Left, Right, Up, Down bool

	// Jump fires once per press.
	Jump bool

	// Target is the steering point while a pointer is down, nil otherwise.
	Target *Point
}

// Held reports whether direction d is held.
func (s State) Held(d Direction) bool {
	switch d {
	case Left:
		return s.Left
	case Right:
		return s.Right
	case Up:
		return s.Up
	case Down:
		return s.Down
	}
	return false
}

// Set marks direction d as held or released.
func (s *State) Set(d Direction, on bool) {
	switch d {
	case Left:
		s.Left = on
	case Right:
		s.Right = on
	case Up:
		s.Up = on
	case Down:
		s.Down = on
	}
}

// Axis returns -1, 0 or 1 per axis. Opposite directions cancel.
func (s State) Axis() (x, y int) {
	if s.Left {
		x--
	}
	if s.Right {
		x++
	}
	if s.Up {
		y--
	}
	if s.Down {
		y++
	}
	return x, y
}

// Merge ORs the held directions and jump of every state and keeps the first
// steering target.
func Merge(states ...State) State {
	var out State
	for _, s := range states {
		out.Left = out.Left || s.Left
		out.Right = out.Right || s.Right
		out.Up = out.Up || s.Up
		out.Down = out.Down || s.Down
		out.Jump = out.Jump || s.Jump
		if out.Target == nil && s.Target != nil {
			t := *s.Target
			out.Target = &t
		}
	}
	return out
}

// Latch turns presses into a single edge that is consumed once.
type Latch struct {
	pending bool
}

func (l *Latch) Trigger() { l.pending = true }

// Take returns whether a press is pending and clears it.
func (l *Latch) Take() bool {
	p := l.pending
	l.pending = false
	return p
}

// Decay keeps a direction held for a while after each press. Terminals only
// report key presses and repeats, never releases.
type Decay struct {
	TTL  time.Duration
	last [4]time.Time
}

// NewDecay creates a new Decay.
func NewDecay(ttl time.Duration) *Decay {
	return &Decay{TTL: ttl}
}

func (d *Decay) Press(dir Direction, now time.Time) {
	if dir < Left || dir > Down {
		return
	}
	d.last[dir] = now
}

// Clear releases every direction.
func (d *Decay) Clear() {
	d.last = [4]time.Time{}
}

// State returns the directions pressed within TTL of now.
func (d *Decay) State(now time.Time) State {
	var s State
	for dir := Left; dir <= Down; dir++ {
		t := d.last[dir]
		if !t.IsZero() && now.Sub(t) <= d.TTL {
			s.Set(dir, true)
		}
	}
	return s
}
