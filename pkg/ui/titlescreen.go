package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/golangdaddy/trafficdodge/pkg/render"
)

// TitleScreen is the welcome screen shown before the first run.
type TitleScreen struct {
	startTime      time.Time
	title          string
	plays          int
	onStartPressed func() // Callback when user presses to start
}

// NewTitleScreen creates a new title screen. plays is the visit count
// including this launch.
func NewTitleScreen(title string, plays int, onStartPressed func()) *TitleScreen {
	return &TitleScreen{
		startTime:      time.Now(),
		title:          title,
		plays:          plays,
		onStartPressed: onStartPressed,
	}
}

// Update handles input for the title screen
func (ts *TitleScreen) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		if ts.onStartPressed != nil {
			ts.onStartPressed()
		}
	}
	return nil
}

// Draw renders the title screen
func (ts *TitleScreen) Draw(screen *ebiten.Image) {
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	centerX := float64(width) / 2
	centerY := float64(height) / 3

	screen.Fill(color.RGBA{15, 20, 35, 255})
	elapsed := time.Since(ts.startTime).Seconds()

	// pulsing title, 1.0 to 1.1
	pulse := 1.0 + 0.1*math.Sin(elapsed*2.0)
	brightness := math.Min(1.0, 1.0+0.2*math.Sin(elapsed*1.5))
	titleColor := color.RGBA{
		uint8(255 * brightness),
		uint8(200 * brightness),
		uint8(50 * brightness),
		255,
	}
	render.DrawCenteredText(screen, ts.title, centerX, centerY, 40*pulse, titleColor)

	render.DrawCenteredText(screen, "Dodge the traffic. Jump over it.", centerX, centerY+70, 18, colornames.Lightsteelblue)
	render.DrawCenteredText(screen, visitLine(ts.plays), centerX, centerY+110, 18, colornames.Silver)

	lines := []string{
		"Arrows / WASD  steer",
		"Space          jump",
		"P / Esc        pause",
		"R              restart",
		"Drag to steer on touch",
	}
	for i, l := range lines {
		render.DrawCenteredText(screen, l, centerX, centerY+170+float64(i)*26, 16, colornames.Gray)
	}

	if int(elapsed*2)%2 == 0 {
		render.DrawCenteredText(screen, "Press SPACE or tap to start", centerX, float64(height)-100, 22, color.RGBA{150, 200, 255, 255})
	}

	drawDecorativeElements(screen, width, height)
}

func visitLine(plays int) string {
	if plays <= 1 {
		return "Welcome! First time here."
	}
	return fmt.Sprintf("Welcome back! Visit #%d", plays)
}

// drawDecorativeElements draws the two rules framing the title
func drawDecorativeElements(screen *ebiten.Image, width, height int) {
	lineColor := color.RGBA{50, 60, 80, 100}
	for _, y := range []float32{float32(height) / 6, float32(height) * 5 / 6} {
		vector.StrokeLine(screen, 0, y, float32(width), y, 2, lineColor, false)
	}
}
