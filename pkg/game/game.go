package game

import (
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/trafficdodge/pkg/config"
	"github.com/golangdaddy/trafficdodge/pkg/ui"
)

// Options configures a Game.
type Options struct {
	Tuning     config.Tuning
	TuningPath string
	Seed       int64
	Plays      int

	// DifficultyScript overrides the script named by tuning files on reload.
	DifficultyScript string

	// Reloads delivers paths of changed tuning files; nil disables hot reload.
	Reloads <-chan string
}

// Game implements the ebiten.Game interface and manages the overall game state
type Game struct {
	opts          Options
	width, height int
	currentScreen Screen
	road          *ebiten.Image
}

// Screen represents a UI screen interface
type Screen interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// NewGame creates a new game instance. It paints the road on the loading
// screen, then waits on the welcome screen.
func NewGame(opts Options) *Game {
	g := &Game{
		opts:   opts,
		width:  int(opts.Tuning.Field.Width),
		height: int(opts.Tuning.Field.Height),
	}

	g.currentScreen = ui.NewLoadingScreen(g.width, g.height, opts.Seed, func(road *ebiten.Image) {
		g.road = road
		g.currentScreen = ui.NewTitleScreen(opts.Tuning.Decorations.BannerText, opts.Plays, func() {
			g.startGameplay()
		})
	})

	return g
}

// Update handles game logic updates
func (g *Game) Update() error {
	if g.currentScreen != nil {
		return g.currentScreen.Update()
	}
	return nil
}

// Draw renders the current screen
func (g *Game) Draw(screen *ebiten.Image) {
	if g.currentScreen != nil {
		g.currentScreen.Draw(screen)
	}
}

// Layout returns the play-field size; Ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

// startGameplay transitions to the actual gameplay
func (g *Game) startGameplay() {
	rng := rand.New(rand.NewSource(g.opts.Seed))
	gs := NewGameplayScreen(g.opts.Tuning, rng, g.road, g.opts.Seed)
	gs.reloads = g.opts.Reloads
	gs.tuningPath = g.opts.TuningPath
	gs.scriptPath = g.opts.DifficultyScript
	gs.Start()
	log.Printf("gameplay started, seed %d", g.opts.Seed)
	g.currentScreen = gs
}
