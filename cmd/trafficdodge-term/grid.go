package main

import (
	"math"

	"github.com/golangdaddy/trafficdodge/pkg/vehicle"
)

// Grid maps field coordinates onto terminal cells. One row of the HUD is
// reserved at the top.
type Grid struct {
	Cols, Rows     int
	FieldW, FieldH float64
}

const hudRows = 1

func (g Grid) playRows() int {
	if r := g.Rows - hudRows; r > 0 {
		return r
	}
	return 0
}

// Col returns the column holding field x.
func (g Grid) Col(x float64) int {
	if g.Cols <= 0 || g.FieldW <= 0 {
		return 0
	}
	return int(math.Floor(x / g.FieldW * float64(g.Cols)))
}

// Row returns the screen row holding field y, HUD offset included.
func (g Grid) Row(y float64) int {
	rows := g.playRows()
	if rows == 0 || g.FieldH <= 0 {
		return hudRows
	}
	return hudRows + int(math.Floor(y/g.FieldH*float64(rows)))
}

// Cells returns the inclusive cell span covered by r, clipped to the play
// area. ok is false when nothing of r is visible.
func (g Grid) Cells(r vehicle.Rect) (x0, y0, x1, y1 int, ok bool) {
	x0, y0 = g.Col(r.X), g.Row(r.Y)
	x1, y1 = g.Col(r.X+r.W)-1, g.Row(r.Y+r.H)-1
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}

	x0, x1 = max(x0, 0), min(x1, g.Cols-1)
	y0, y1 = max(y0, hudRows), min(y1, hudRows+g.playRows()-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}
