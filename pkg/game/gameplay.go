package game

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/golangdaddy/trafficdodge/pkg/clock"
	"github.com/golangdaddy/trafficdodge/pkg/config"
	"github.com/golangdaddy/trafficdodge/pkg/input"
	"github.com/golangdaddy/trafficdodge/pkg/input/poll"
	"github.com/golangdaddy/trafficdodge/pkg/render"
	"github.com/golangdaddy/trafficdodge/pkg/road"
	"github.com/golangdaddy/trafficdodge/pkg/session"
	"github.com/golangdaddy/trafficdodge/pkg/ui"
)

// GameplayScreen represents the main driving gameplay
type GameplayScreen struct {
	session  *session.Session
	sched    *clock.FrameScheduler
	poller   *poll.Poller
	hud      *ui.HUD
	renderer *render.Renderer

	startTime  time.Time
	tuningPath string
	scriptPath string
	reloads    <-chan string
}

// NewGameplayScreen creates a new gameplay screen over the prepared road
// texture.
func NewGameplayScreen(t config.Tuning, rng road.Rand, roadTex *ebiten.Image, seed int64) *GameplayScreen {
	gs := &GameplayScreen{
		sched:     &clock.FrameScheduler{},
		poller:    poll.New(),
		startTime: time.Now(),
	}

	gs.hud = ui.NewHUD(ui.HUDActions{
		OnButton: func() { gs.session.TogglePause() },
		OnPad:    func(d input.Direction, held bool) { gs.poller.SetPad(d, held) },
		OnJump:   func() { gs.poller.PressJump() },
	})
	gs.poller.Blocked = gs.hud.Contains

	gs.session = session.New(t, rng,
		session.WithHUD(gs.hud),
		session.WithInput(gs.poller),
		session.WithScheduler(gs.sched),
	)
	gs.renderer = render.NewRenderer(roadTex, int(t.Field.Width), int(t.Field.Height), seed, t.Decorations.BannerText)

	return gs
}

// Start begins the first run.
func (gs *GameplayScreen) Start() {
	gs.session.Start()
}

// Update handles gameplay logic
func (gs *GameplayScreen) Update() error {
	gs.checkReload()

	gs.hud.Update()
	gs.poller.Update()

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		gs.session.Primary()
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		gs.session.TogglePause()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		gs.session.Restart()
	}

	if gs.session.State() != session.Running {
		gs.poller.Clear()
	}

	gs.sched.Dispatch(time.Since(gs.startTime))
	return nil
}

// checkReload swaps in a changed tuning file. It applies on the next restart.
func (gs *GameplayScreen) checkReload() {
	if gs.reloads == nil {
		return
	}
	select {
	case path := <-gs.reloads:
		t, err := config.Load(gs.tuningPath)
		if err != nil {
			log.Printf("tuning reload from %s failed: %v", path, err)
			return
		}
		if gs.scriptPath != "" {
			t.DifficultyScript = gs.scriptPath
		}
		gs.session.SetTuning(t)
		log.Printf("tuning reloaded from %s, applies on restart", path)
	default:
	}
}

// Draw renders the gameplay screen
func (gs *GameplayScreen) Draw(screen *ebiten.Image) {
	gs.renderer.Draw(screen, gs.session)
	gs.hud.Draw(screen)
}
