package collision

import (
	"github.com/golangdaddy/trafficdodge/pkg/models"
	"github.com/golangdaddy/trafficdodge/pkg/vehicle"
)

// Resolver decides whether the player has crashed this frame.
type Resolver struct {
	// Cleared counts obstacles marked cleared by the last Resolve call.
	Cleared int
}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Resolve tests the player's unlifted box against every obstacle. Obstacles
// overlapped while airborne are marked cleared and never collide again. The
// first grounded overlap with an uncleared obstacle is returned; nil means
// the player survived the frame.
func (r *Resolver) Resolve(p *models.Player, obstacles []*models.Obstacle) *models.Obstacle {
	r.Cleared = 0
	airborne := p.Airborne()

	for _, o := range obstacles {
		if !vehicle.Collides(p, o) {
			continue
		}
		if airborne {
			if !o.Cleared {
				o.Cleared = true
				r.Cleared++
			}
			continue
		}
		if o.Cleared {
			continue
		}
		return o
	}
	return nil
}
