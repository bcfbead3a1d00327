package road

import (
	"github.com/golangdaddy/trafficdodge/pkg/config"
	"github.com/golangdaddy/trafficdodge/pkg/difficulty"
	"github.com/golangdaddy/trafficdodge/pkg/models"
)

// Rand is the random source the spawner draws from. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Spawner produces rows of traffic above the visible field.
type Spawner struct {
	rng   Rand
	curve *difficulty.Curve

	width, inset float64
	carW, carH   float64
	margin       float64
	singleChance float64
	gap          config.Gap
}

// NewSpawner creates a new Spawner.
func NewSpawner(t config.Tuning, curve *difficulty.Curve, rng Rand) *Spawner {
	w, h := t.CarSize()
	return &Spawner{
		rng:          rng,
		curve:        curve,
		width:        t.Field.Width,
		inset:        t.Field.Inset,
		carW:         w,
		carH:         h,
		margin:       t.Spawn.SpawnMargin,
		singleChance: t.Spawn.SingleChance,
		gap:          t.Gap,
	}
}

// Row is the y every spawned car starts at.
func (s *Spawner) Row() float64 {
	return -s.carH - s.margin
}

// Spawn emits either a single car or a gapped pair for the given score.
func (s *Spawner) Spawn(score int) []*models.Obstacle {
	if s.rng.Float64() < s.singleChance {
		x := s.inset + s.rng.Float64()*(s.width-2*s.inset-s.carW)
		return []*models.Obstacle{s.car(x)}
	}
	return s.pair(score)
}

func (s *Spawner) pair(score int) []*models.Obstacle {
	gap := s.curve.Gap(score)
	total := s.width - 2*s.inset
	leftW := (total - gap) * (s.gap.SplitMin + s.rng.Float64()*s.gap.SplitRange)
	rightW := total - gap - leftW

	leftX := s.inset
	rightX := s.inset + leftW + gap

	out := s.tile(nil, leftX, leftW)
	return s.tile(out, rightX, rightW)
}

// tile fills [x, x+width] left to right with whole car boxes.
func (s *Spawner) tile(out []*models.Obstacle, x, width float64) []*models.Obstacle {
	end := x + width
	for x0 := x; x0+s.carW <= end; x0 += s.carW + s.gap.Spacing {
		out = append(out, s.car(x0))
	}
	return out
}

func (s *Spawner) car(x float64) *models.Obstacle {
	return &models.Obstacle{
		X:     x,
		Y:     s.Row(),
		W:     s.carW,
		H:     s.carH,
		Paint: models.PickPaint(s.rng.Float64()),
	}
}
