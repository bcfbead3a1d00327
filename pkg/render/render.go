package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/golangdaddy/trafficdodge/pkg/background"
	"github.com/golangdaddy/trafficdodge/pkg/models"
	"github.com/golangdaddy/trafficdodge/pkg/road"
	"github.com/golangdaddy/trafficdodge/pkg/session"
)

var (
	separatorColor = color.NRGBA{255, 255, 255, 15}
	dashColor      = color.NRGBA{255, 255, 255, 31}
	bannerColor    = color.NRGBA{255, 255, 255, 15}
	flagColor      = color.NRGBA{255, 255, 255, 31}
	bannerText     = color.RGBA{0xe8, 0xea, 0xed, 0xff}
	flashColor     = color.NRGBA{255, 255, 255, 51}
	overlayColor   = color.NRGBA{0, 0, 0, 153}
)

const (
	dashW, dashH = 10.0, 28.0
	bannerInset  = 24.0
	bannerH      = 22.0
)

// Renderer draws a session onto the screen.
type Renderer struct {
	road       *ebiten.Image
	bannerText string
}

// NewRenderer creates a new Renderer drawing over the given road texture. A
// nil texture is painted from seed at the field size.
func NewRenderer(road *ebiten.Image, width, height int, seed int64, bannerText string) *Renderer {
	if road == nil {
		road = background.NewGenerator(width, height).GenerateAsphalt(seed)
	}
	return &Renderer{
		road:       road,
		bannerText: bannerText,
	}
}

// Draw renders the road, traffic, the player and, after a crash, the overlay.
func (r *Renderer) Draw(screen *ebiten.Image, s *session.Session) {
	screen.DrawImage(r.road, nil)
	r.drawMarkings(screen, s.Layout(), s.Decorations())

	for _, o := range s.Obstacles() {
		DrawCar(screen, o.X, o.Y, o.W, o.H, o.Paint.RGBA())
	}

	p := s.Player()
	if p.Airborne() {
		// shadow stays on the road while the car is lifted
		FillRoundRect(screen, p.X+4, p.Y+6, p.W-8, p.H-8, 10, color.NRGBA{0, 0, 0, 90})
	}
	DrawCar(screen, p.X, p.Y-p.Lift(), p.W, p.H, p.Paint.RGBA())

	if s.State() == session.GameOver {
		r.drawCrash(screen, s.Score())
	}
}

func (r *Renderer) drawMarkings(screen *ebiten.Image, l road.Layout, decorations []*models.Decoration) {
	for _, x := range l.Separators() {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(l.Height), 2, separatorColor, false)
	}

	centres := l.LaneCenters()
	for _, d := range decorations {
		switch d.Kind {
		case models.LaneDash:
			for _, cx := range centres {
				FillRoundRect(screen, cx-dashW/2, d.Y, dashW, dashH, 4, dashColor)
			}
		case models.Banner:
			r.drawBanner(screen, l.Width, float64(int(d.Y)))
		}
	}
}

func (r *Renderer) drawBanner(screen *ebiten.Image, width, y float64) {
	bx, bw := bannerInset, width-2*bannerInset
	FillRoundRect(screen, bx, y, bw, bannerH, 8, bannerColor)
	FillTriangle(screen, bx-8, y+2, bx, y+2, bx, y+bannerH-2, flagColor)
	FillTriangle(screen, bx+bw+8, y+2, bx+bw, y+2, bx+bw, y+bannerH-2, flagColor)
	if r.bannerText != "" {
		DrawCenteredText(screen, r.bannerText, width/2, y+bannerH/2, 16, bannerText)
	}
}

func (r *Renderer) drawCrash(screen *ebiten.Image, score int) {
	b := screen.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), flashColor, false)
	FillRoundRect(screen, 40, h/2-70, w-80, 140, 12, overlayColor)
	DrawCenteredText(screen, fmt.Sprintf("Crash! Score: %d", score), w/2, h/2-16, 20, colornames.White)
	DrawCenteredText(screen, "Press Restart or Space", w/2, h/2+20, 20, colornames.Lightgray)
}
