package road

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/golangdaddy/trafficdodge/pkg/config"
	"github.com/golangdaddy/trafficdodge/pkg/difficulty"
	"github.com/golangdaddy/trafficdodge/pkg/models"
)

type seqRand struct {
	vals []float64
	i    int
}

func (r *seqRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

func newSpawner(t config.Tuning, rng Rand) *Spawner {
	return NewSpawner(t, difficulty.NewCurve(t), rng)
}

func TestSpawnSingle(t *testing.T) {
	tu := config.Default()
	s := newSpawner(tu, &seqRand{vals: []float64{0.1, 0.5, 0.0}})

	obs := s.Spawn(0)
	if len(obs) != 1 {
		t.Fatalf("got %d cars want 1", len(obs))
	}
	o := obs[0]
	if wantX := 10 + 0.5*(480-20-44); math.Abs(o.X-wantX) > 1e-9 {
		t.Fatalf("x: got %v want %v", o.X, wantX)
	}
	if o.Y != -72-20 {
		t.Fatalf("y: got %v want -92", o.Y)
	}
	if o.W != 44 || o.H != 72 {
		t.Fatalf("size: got %vx%v", o.W, o.H)
	}
	if o.Paint != models.TrafficPaints[0] {
		t.Fatalf("paint: got %v", o.Paint)
	}
}

func TestSpawnSingleStaysInField(t *testing.T) {
	tu := config.Default()
	for _, r := range []float64{0, 0.999999} {
		s := newSpawner(tu, &seqRand{vals: []float64{0.2, r, 0.5}})
		o := s.Spawn(0)[0]
		if o.X < tu.Field.Inset || o.X+o.W > tu.Field.Width-tu.Field.Inset {
			t.Fatalf("r=%v: car at x=%v leaves the field", r, o.X)
		}
	}
}

func TestSpawnGappedPairLeavesGap(t *testing.T) {
	tu := config.Default()
	minGap := tu.Player.Width + tu.Gap.Clearance
	rng := rand.New(rand.NewSource(7))

	for _, score := range []int{0, 100, 600, 2400, 100000} {
		for i := 0; i < 200; i++ {
			s := newSpawner(tu, &seqRand{vals: []float64{0.9, rng.Float64(), rng.Float64()}})
			row := s.Spawn(score)
			if len(row) < 2 {
				t.Fatalf("score %d: pair produced %d cars", score, len(row))
			}
			if free := widestFree(row, tu.Field.Inset, tu.Field.Width-tu.Field.Inset); free < minGap {
				t.Fatalf("score %d: widest free interval %v < %v", score, free, minGap)
			}
			for _, o := range row {
				if o.Y != row[0].Y {
					t.Fatalf("score %d: cars not on the same row", score)
				}
				if o.X < tu.Field.Inset || o.X+o.W > tu.Field.Width-tu.Field.Inset {
					t.Fatalf("score %d: car at x=%v leaves the field", score, o.X)
				}
			}
		}
	}
}

func widestFree(row []*models.Obstacle, lo, hi float64) float64 {
	sorted := append([]*models.Obstacle(nil), row...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

	widest := 0.0
	cursor := lo
	for _, o := range sorted {
		widest = math.Max(widest, o.X-cursor)
		cursor = math.Max(cursor, o.X+o.W)
	}
	return math.Max(widest, hi-cursor)
}

func TestWorldAdvance(t *testing.T) {
	tu := config.Default()
	w := NewWorld(tu)
	w.Add(
		&models.Obstacle{X: 10, Y: 700, W: 44, H: 72},
		&models.Obstacle{X: 100, Y: 100, W: 44, H: 72},
		&models.Obstacle{X: 200, Y: 895, W: 44, H: 72, Passed: true},
	)
	if w.Obstacles()[2].ID != 3 {
		t.Fatalf("ids not assigned in order")
	}

	playerBottom := 752.0
	// 200 px/s for 0.5s moves everything 100 px
	passed := w.Advance(0.5, 200, playerBottom)
	if passed != 1 {
		t.Fatalf("first advance: passed %d want 1", passed)
	}
	if n := len(w.Obstacles()); n != 2 {
		t.Fatalf("first advance: %d obstacles left want 2", n)
	}
	if !w.Obstacles()[0].Passed || w.Obstacles()[1].Passed {
		t.Fatalf("passed flags wrong")
	}

	if passed := w.Advance(0.05, 200, playerBottom); passed != 0 {
		t.Fatalf("an obstacle was counted twice")
	}
}

func TestWorldAdvanceZeroDelta(t *testing.T) {
	w := NewWorld(config.Default())
	w.Add(&models.Obstacle{Y: 10, W: 44, H: 72})
	before := w.Decorations()[3].Y
	w.Advance(0, 300, 752)
	if w.Obstacles()[0].Y != 10 || w.Decorations()[3].Y != before {
		t.Fatalf("zero dt moved the world")
	}
}

func TestDecorationsWrap(t *testing.T) {
	tu := config.Default()
	w := NewWorld(tu)

	for i := 0; i < 2000; i++ {
		w.Advance(0.05, 300, 752)
		for _, d := range w.Decorations() {
			limit := tu.Field.Height + d.WrapMargin
			if d.Y > limit {
				t.Fatalf("frame %d: decoration at %v past %v", i, d.Y, limit)
			}
		}
	}
}

func TestWorldReset(t *testing.T) {
	tu := config.Default()
	w := NewWorld(tu)
	w.Add(&models.Obstacle{Y: 10, W: 44, H: 72})
	w.Advance(0.3, 250, 752)

	w.Reset()
	if len(w.Obstacles()) != 0 {
		t.Fatalf("obstacles survived reset")
	}

	var dashes, banners int
	for i, d := range w.Decorations() {
		switch d.Kind {
		case models.LaneDash:
			if d.Y != float64(dashes)*48 {
				t.Fatalf("dash %d at %v", i, d.Y)
			}
			dashes++
		case models.Banner:
			if d.Y != float64(banners)*220+80 {
				t.Fatalf("banner %d at %v", i, d.Y)
			}
			banners++
		}
	}
	if dashes != 16 || banners != 4 {
		t.Fatalf("got %d dashes and %d banners", dashes, banners)
	}

	w.Add(&models.Obstacle{})
	if w.Obstacles()[0].ID != 1 {
		t.Fatalf("ids should restart after reset")
	}
}

func TestLayout(t *testing.T) {
	l := NewLayout(config.Default())
	if got := l.Separators(); len(got) != 2 || got[0] != 160 || got[1] != 320 {
		t.Fatalf("separators: got %v", got)
	}
	if got := l.LaneCenters(); len(got) != 3 || got[1] != 240 {
		t.Fatalf("lane centres: got %v", got)
	}
}
