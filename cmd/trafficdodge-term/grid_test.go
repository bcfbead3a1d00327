package main

import (
	"testing"

	"github.com/golangdaddy/trafficdodge/pkg/vehicle"
)

func TestGridMapping(t *testing.T) {
	g := Grid{Cols: 40, Rows: 41, FieldW: 400, FieldH: 800}

	if got := g.Col(0); got != 0 {
		t.Fatalf("col(0): got %d", got)
	}
	if got := g.Col(399); got != 39 {
		t.Fatalf("col(399): got %d want 39", got)
	}
	if got := g.Row(0); got != hudRows {
		t.Fatalf("row(0): got %d want %d", got, hudRows)
	}
	if got := g.Row(790); got != hudRows+39 {
		t.Fatalf("row(790): got %d want %d", got, hudRows+39)
	}
}

func TestGridCells(t *testing.T) {
	g := Grid{Cols: 40, Rows: 41, FieldW: 400, FieldH: 800}

	cases := []struct {
		name           string
		rect           vehicle.Rect
		x0, y0, x1, y1 int
		ok             bool
	}{
		{"car", vehicle.Rect{X: 100, Y: 200, W: 44, H: 72}, 10, 11, 13, 13, true},
		{"above_screen", vehicle.Rect{X: 100, Y: -200, W: 44, H: 72}, 0, 0, 0, 0, false},
		{"partly_above", vehicle.Rect{X: 100, Y: -40, W: 44, H: 72}, 10, 1, 13, 1, true},
		{"below_screen", vehicle.Rect{X: 100, Y: 900, W: 44, H: 72}, 0, 0, 0, 0, false},
		{"tiny", vehicle.Rect{X: 5, Y: 5, W: 1, H: 1}, 0, 1, 0, 1, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x0, y0, x1, y1, ok := g.Cells(c.rect)
			if ok != c.ok {
				t.Fatalf("ok: got %v want %v", ok, c.ok)
			}
			if !ok {
				return
			}
			if x0 != c.x0 || y0 != c.y0 || x1 != c.x1 || y1 != c.y1 {
				t.Fatalf("cells: got (%d,%d)-(%d,%d) want (%d,%d)-(%d,%d)",
					x0, y0, x1, y1, c.x0, c.y0, c.x1, c.y1)
			}
		})
	}
}

func TestGridDegenerate(t *testing.T) {
	g := Grid{Cols: 0, Rows: 0, FieldW: 400, FieldH: 800}
	if _, _, _, _, ok := g.Cells(vehicle.Rect{X: 0, Y: 0, W: 44, H: 72}); ok {
		t.Fatalf("empty grid should show nothing")
	}
}
