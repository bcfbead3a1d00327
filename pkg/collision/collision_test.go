package collision

import (
	"testing"

	"github.com/golangdaddy/trafficdodge/pkg/models"
)

func grounded() *models.Player {
	return &models.Player{X: 218, Y: 680, W: 44, H: 72, CanJump: true, JumpDuration: 0.7, JumpPeak: 90}
}

func airborne() *models.Player {
	p := grounded()
	p.JumpT = 0.2
	p.CanJump = false
	return p
}

func car(x, y float64) *models.Obstacle {
	return &models.Obstacle{X: x, Y: y, W: 44, H: 72}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name      string
		player    *models.Player
		obstacles []*models.Obstacle
		fatal     int // index of the expected fatal obstacle, -1 for none
		cleared   []bool
	}{
		{"empty_road", grounded(), nil, -1, nil},
		{"disjoint", grounded(), []*models.Obstacle{car(10, 680), car(218, 100)}, -1, []bool{false, false}},
		{"touching_side", grounded(), []*models.Obstacle{car(262, 680)}, -1, []bool{false}},
		{"touching_top", grounded(), []*models.Obstacle{car(218, 608)}, -1, []bool{false}},
		{"full_overlap_grounded", grounded(), []*models.Obstacle{car(218, 680)}, 0, []bool{false}},
		{"full_overlap_airborne", airborne(), []*models.Obstacle{car(218, 680)}, -1, []bool{true}},
		{"first_fatal_wins", grounded(), []*models.Obstacle{car(10, 10), car(200, 700), car(230, 690)}, 1, []bool{false, false, false}},
		{"airborne_clears_all", airborne(), []*models.Obstacle{car(200, 700), car(230, 690), car(10, 10)}, -1, []bool{true, true, false}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := NewResolver().Resolve(c.player, c.obstacles)
			switch {
			case c.fatal < 0 && got != nil:
				t.Fatalf("unexpected fatal collision with %+v", got)
			case c.fatal >= 0 && got != c.obstacles[c.fatal]:
				t.Fatalf("fatal: got %+v want obstacle %d", got, c.fatal)
			}
			for i, want := range c.cleared {
				if c.obstacles[i].Cleared != want {
					t.Fatalf("obstacle %d cleared=%v want %v", i, c.obstacles[i].Cleared, want)
				}
			}
		})
	}
}

func TestClearedSurvivesLanding(t *testing.T) {
	r := NewResolver()
	p := airborne()
	o := car(218, 680)
	obstacles := []*models.Obstacle{o}

	if r.Resolve(p, obstacles) != nil {
		t.Fatalf("airborne overlap was fatal")
	}
	if r.Cleared != 1 {
		t.Fatalf("cleared count: got %d want 1", r.Cleared)
	}

	p.JumpT = 0
	p.CanJump = true
	if r.Resolve(p, obstacles) != nil {
		t.Fatalf("cleared obstacle collided after landing")
	}
	if r.Cleared != 0 {
		t.Fatalf("nothing new should be cleared, got %d", r.Cleared)
	}
}
