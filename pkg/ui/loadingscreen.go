package ui

import (
	"image"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/golangdaddy/trafficdodge/pkg/background"
	"github.com/golangdaddy/trafficdodge/pkg/render"
)

// minLoading keeps the screen up long enough to read.
const minLoading = 400 * time.Millisecond

// LoadingScreen paints the road texture off the game loop and hands it over
// once it is ready.
type LoadingScreen struct {
	startTime time.Time
	pixels    chan *image.RGBA
	ready     *image.RGBA
	onLoaded  func(*ebiten.Image) // Callback with the finished texture
}

// NewLoadingScreen starts generating a width x height asphalt texture from
// seed.
func NewLoadingScreen(width, height int, seed int64, onLoaded func(*ebiten.Image)) *LoadingScreen {
	ls := &LoadingScreen{
		startTime: time.Now(),
		pixels:    make(chan *image.RGBA, 1),
		onLoaded:  onLoaded,
	}
	go func() {
		ls.pixels <- background.NewGenerator(width, height).AsphaltPixels(seed)
	}()
	return ls
}

// Update hands the texture over once it is generated.
func (ls *LoadingScreen) Update() error {
	if ls.ready == nil {
		select {
		case img := <-ls.pixels:
			ls.ready = img
		default:
			return nil
		}
	}
	if time.Since(ls.startTime) < minLoading {
		return nil
	}
	if ls.onLoaded != nil {
		ls.onLoaded(ebiten.NewImageFromImage(ls.ready))
		ls.onLoaded = nil
	}
	return nil
}

// Draw renders the loading screen
func (ls *LoadingScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	screen.Fill(background.Asphalt)

	elapsed := time.Since(ls.startTime).Seconds()
	dots := strings.Repeat(".", int(elapsed*3)%4)
	render.DrawCenteredText(screen, "Paving the road"+dots, float64(width)/2, float64(height)/2-30, 20, colornames.Lightsteelblue)

	// a lane dash sweeping across a track
	trackW, trackH := float32(width)*0.6, float32(8)
	trackX, trackY := (float32(width)-trackW)/2, float32(height)/2+10
	vector.DrawFilledRect(screen, trackX, trackY, trackW, trackH, color.RGBA{40, 44, 56, 255}, false)

	dashW := trackW / 5
	t := float32(elapsed*0.8) - float32(int(elapsed*0.8))
	if ls.ready != nil {
		vector.DrawFilledRect(screen, trackX, trackY, trackW, trackH, colornames.Goldenrod, false)
		return
	}
	vector.DrawFilledRect(screen, trackX+t*(trackW-dashW), trackY, dashW, trackH, colornames.Goldenrod, false)
}
