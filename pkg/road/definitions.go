package road

import (
	"github.com/golangdaddy/trafficdodge/pkg/config"
	"github.com/golangdaddy/trafficdodge/pkg/models"
)

// Layout describes the static road markings: lane geometry plus where the
// dashes and banners start and how they recycle.
type Layout struct {
	Width, Height float64
	Lanes         int
	Decorations   config.Decorations
}

// NewLayout creates a new Layout from the tuning.
func NewLayout(t config.Tuning) Layout {
	return Layout{
		Width:       t.Field.Width,
		Height:      t.Field.Height,
		Lanes:       t.Decorations.Lanes,
		Decorations: t.Decorations,
	}
}

// LaneWidth is the width of one visual lane.
func (l Layout) LaneWidth() float64 {
	if l.Lanes <= 0 {
		return l.Width
	}
	return l.Width / float64(l.Lanes)
}

// Separators returns the x of each line between two lanes.
func (l Layout) Separators() []float64 {
	lw := l.LaneWidth()
	xs := make([]float64, 0, l.Lanes)
	for i := 1; i < l.Lanes; i++ {
		xs = append(xs, float64(i)*lw)
	}
	return xs
}

// LaneCenters returns the x of the middle of each lane.
func (l Layout) LaneCenters() []float64 {
	lw := l.LaneWidth()
	xs := make([]float64, 0, l.Lanes)
	for i := 0; i < l.Lanes; i++ {
		xs = append(xs, float64(i)*lw+lw/2)
	}
	return xs
}

// Seed returns the decorations in their starting positions.
func (l Layout) Seed() []*models.Decoration {
	d := l.Decorations
	out := make([]*models.Decoration, 0, d.DashCount+d.BannerCount)
	for i := 0; i < d.DashCount; i++ {
		out = append(out, &models.Decoration{
			Kind:          models.LaneDash,
			Y:             float64(i) * d.DashSpacing,
			WrapMargin:    d.DashWrapMargin,
			RecyclePeriod: l.Height + d.DashRecycleExtra,
		})
	}
	for i := 0; i < d.BannerCount; i++ {
		out = append(out, &models.Decoration{
			Kind:          models.Banner,
			Y:             float64(i)*d.BannerSpacing + d.BannerOffset,
			WrapMargin:    d.BannerWrapMargin,
			RecyclePeriod: l.Height + d.BannerRecycleExtra,
		})
	}
	return out
}
