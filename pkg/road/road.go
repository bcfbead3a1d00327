package road

import (
	"github.com/golangdaddy/trafficdodge/pkg/config"
	"github.com/golangdaddy/trafficdodge/pkg/models"
)

// World owns the traffic and the scrolling road markings.
type World struct {
	field         config.Field
	layout        Layout
	removalMargin float64

	obstacles   []*models.Obstacle
	decorations []*models.Decoration
	nextID      int64
}

// NewWorld creates a new World seeded with its decorations.
func NewWorld(t config.Tuning) *World {
	w := &World{
		field:         t.Field,
		layout:        NewLayout(t),
		removalMargin: t.Spawn.RemovalMargin,
		obstacles:     make([]*models.Obstacle, 0, 32),
	}
	w.Reset()
	return w
}

// Reset drops all traffic and re-seeds the decorations.
func (w *World) Reset() {
	w.obstacles = w.obstacles[:0]
	w.decorations = w.layout.Seed()
	w.nextID = 0
}

// Add puts newly spawned obstacles on the road.
func (w *World) Add(obs ...*models.Obstacle) {
	for _, o := range obs {
		w.nextID++
		o.ID = w.nextID
		w.obstacles = append(w.obstacles, o)
	}
}

func (w *World) Obstacles() []*models.Obstacle {
	return w.obstacles
}

func (w *World) Decorations() []*models.Decoration {
	return w.decorations
}

func (w *World) Layout() Layout {
	return w.layout
}

// Advance scrolls everything down by speed*dt. It returns how many obstacles
// moved below playerBottom for the first time, and removes obstacles that left
// the field.
func (w *World) Advance(dt, speed, playerBottom float64) int {
	dy := speed * dt

	for _, d := range w.decorations {
		d.Scroll(dy, w.field.Height)
	}

	passed := 0
	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		o.Y += dy
		if !o.Passed && o.Y > playerBottom {
			o.Passed = true
			passed++
		}
		if o.Y > w.field.Height+w.removalMargin {
			continue
		}
		kept = append(kept, o)
	}
	for i := len(kept); i < len(w.obstacles); i++ {
		w.obstacles[i] = nil
	}
	w.obstacles = kept

	return passed
}
