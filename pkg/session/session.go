package session

import (
	"log"
	"math"
	"strconv"
	"time"

	"github.com/golangdaddy/trafficdodge/pkg/clock"
	"github.com/golangdaddy/trafficdodge/pkg/collision"
	"github.com/golangdaddy/trafficdodge/pkg/config"
	"github.com/golangdaddy/trafficdodge/pkg/difficulty"
	"github.com/golangdaddy/trafficdodge/pkg/models"
	"github.com/golangdaddy/trafficdodge/pkg/player"
	"github.com/golangdaddy/trafficdodge/pkg/road"
)

// Option configures a Session.
type Option func(*Session)

// WithHUD sets the HUD notified of score and button changes.
func WithHUD(h HUD) Option {
	return func(s *Session) { s.hud = h }
}

// WithInput sets where per-frame input is read from.
func WithInput(in InputSource) Option {
	return func(s *Session) { s.input = in }
}

// WithScheduler replaces the built-in frame scheduler.
func WithScheduler(sched Scheduler) Option {
	return func(s *Session) { s.sched = sched }
}

// WithModel fixes the difficulty model instead of deriving it from the tuning.
func WithModel(m difficulty.Model) Option {
	return func(s *Session) { s.fixedModel = m }
}

// Session is one player's game: the world, the player, the score and the
// loop state. Every method must be called from the loop goroutine.
type Session struct {
	tuning  config.Tuning
	pending *config.Tuning
	rng     road.Rand

	hud        HUD
	input      InputSource
	sched      Scheduler
	fixedModel difficulty.Model

	clock    *clock.FrameClock
	world    *road.World
	spawner  *road.Spawner
	player   *player.Controller
	resolver *collision.Resolver
	curve    *difficulty.Curve
	model    difficulty.Model

	state         State
	score         int
	spawnAcc      float64
	scrollSpeed   float64
	spawnInterval float64
	jumpRequest   bool
	jumpActive    bool
	crash         *models.Obstacle
	jumped        int
	frames        int
	runs          int
}

// New creates a new Session in the Idle state.
func New(t config.Tuning, rng road.Rand, opts ...Option) *Session {
	s := &Session{
		tuning: t,
		rng:    rng,
		hud:    nopHUD{},
		input:  nopInput{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.sched == nil {
		s.sched = &clock.FrameScheduler{}
	}
	s.build()
	return s
}

// build wires the components from the current tuning.
func (s *Session) build() {
	t := s.tuning
	s.clock = clock.NewFrameClock(t.Clock.MaxDelta)
	s.curve = difficulty.NewCurve(t)
	s.model = s.fixedModel
	if s.model == nil {
		s.model = difficulty.Select(t.DifficultyScript, s.curve)
	}
	s.world = road.NewWorld(t)
	s.spawner = road.NewSpawner(t, s.curve, s.rng)
	s.player = player.NewController(t)
	s.resolver = collision.NewResolver()
	s.scrollSpeed = s.model.ScrollSpeed(0)
	s.spawnInterval = s.model.SpawnInterval(0)
}

// SetTuning queues a new tuning. It takes effect on the next reset so a run
// never changes rules halfway.
func (s *Session) SetTuning(t config.Tuning) {
	s.pending = &t
}

// Start begins a run from Idle or after a crash.
func (s *Session) Start() {
	switch s.state {
	case Idle, GameOver:
		s.Reset()
	}
}

// Restart throws away the current run and starts a new one.
func (s *Session) Restart() {
	log.Printf("session: restart from %s at score %d", s.state, s.score)
	s.Reset()
}

// TogglePause pauses a running game and resumes a paused one. After a crash
// it restarts, matching what the HUD button reads.
func (s *Session) TogglePause() {
	switch s.state {
	case Running:
		s.state = Paused
		s.sched.Cancel()
		s.hud.SetButtonLabel(LabelResume)
		log.Printf("session: paused at score %d", s.score)
	case Paused:
		s.state = Running
		s.clock.Reset()
		s.hud.SetButtonLabel(LabelPause)
		s.sched.RequestFrame(s.Frame)
		log.Printf("session: resumed")
	case GameOver:
		s.Restart()
	}
}

// Primary is the main action key: restart after a crash, resume when paused,
// jump while running and start from idle.
func (s *Session) Primary() {
	switch s.state {
	case GameOver:
		s.Restart()
	case Paused:
		s.TogglePause()
	case Running:
		s.jumpRequest = true
	case Idle:
		s.Start()
	}
}

// Jump asks for a jump on the next frame.
func (s *Session) Jump() {
	if s.state == Running {
		s.jumpRequest = true
	}
}

// Reset returns the session to the start of a fresh run and schedules the
// first frame.
func (s *Session) Reset() {
	if s.pending != nil {
		s.tuning = *s.pending
		s.pending = nil
		s.build()
		log.Printf("session: applied new tuning")
	}

	s.world.Reset()
	s.player.Reset()
	s.clock.Reset()
	s.score = 0
	s.spawnAcc = 0
	s.scrollSpeed = s.model.ScrollSpeed(0)
	s.spawnInterval = s.model.SpawnInterval(0)
	s.jumpRequest = false
	s.jumpActive = false
	s.crash = nil
	s.jumped = 0
	s.frames = 0
	s.runs++
	s.state = Running

	s.hud.SetScore("0")
	s.hud.SetButtonLabel(LabelPause)
	s.hud.SetJumpActive(false)
	s.sched.RequestFrame(s.Frame)
}

// Frame advances the game by one display refresh at timestamp ts.
func (s *Session) Frame(ts time.Duration) {
	if s.state != Running {
		return
	}
	s.frames++

	dt := s.clock.Tick(ts)
	in := s.input.Snapshot()
	if s.jumpRequest {
		in.Jump = true
		s.jumpRequest = false
	}

	s.spawnAcc += dt
	if s.spawnAcc > s.spawnInterval {
		s.spawnAcc = 0
		s.world.Add(s.spawner.Spawn(s.score)...)
	}

	p := s.player.Player()
	if passed := s.world.Advance(dt, s.scrollSpeed, p.Bounds().Bottom()); passed > 0 {
		s.score += passed
		s.hud.SetScore(strconv.Itoa(s.score))
	}

	s.player.Advance(dt, in)
	s.setJumpActive(p.Airborne())
	s.updateDifficulty()

	o := s.resolver.Resolve(p, s.world.Obstacles())
	s.jumped += s.resolver.Cleared
	if o != nil {
		s.gameOver(o)
		return
	}
	s.sched.RequestFrame(s.Frame)
}

// updateDifficulty moves the scroll speed and spawn interval along the model
// without ever making the run easier.
func (s *Session) updateDifficulty() {
	s.scrollSpeed = math.Max(s.scrollSpeed, s.model.ScrollSpeed(s.score))
	s.spawnInterval = math.Min(s.spawnInterval, s.model.SpawnInterval(s.score))
}

func (s *Session) setJumpActive(active bool) {
	if active == s.jumpActive {
		return
	}
	s.jumpActive = active
	s.hud.SetJumpActive(active)
}

func (s *Session) gameOver(o *models.Obstacle) {
	s.state = GameOver
	s.crash = o
	s.sched.Cancel()
	s.setJumpActive(false)
	s.hud.SetButtonLabel(LabelRestart)
	log.Printf("session: crashed into car %d after %d frames, score %d, jumped %d", o.ID, s.frames, s.score, s.jumped)
}

func (s *Session) State() State                      { return s.state }
func (s *Session) Score() int                        { return s.score }
func (s *Session) Player() *models.Player            { return s.player.Player() }
func (s *Session) Obstacles() []*models.Obstacle     { return s.world.Obstacles() }
func (s *Session) Decorations() []*models.Decoration { return s.world.Decorations() }
func (s *Session) World() *road.World                { return s.world }
func (s *Session) Layout() road.Layout               { return s.world.Layout() }
func (s *Session) Tuning() config.Tuning             { return s.tuning }
func (s *Session) ScrollSpeed() float64              { return s.scrollSpeed }
func (s *Session) SpawnInterval() float64            { return s.spawnInterval }
func (s *Session) JumpActive() bool                  { return s.jumpActive }
func (s *Session) Frames() int                       { return s.frames }
func (s *Session) Runs() int                         { return s.runs }

// Jumped counts the cars cleared mid-air this run.
func (s *Session) Jumped() int { return s.jumped }

// Crash is the obstacle that ended the run, nil unless the game is over.
func (s *Session) Crash() *models.Obstacle { return s.crash }

// Snapshot is a copy of the parts of the session that define its state.
type Snapshot struct {
	State       State
	Score       int
	SpawnAcc    float64
	ScrollSpeed float64
	Player      models.Player
	Obstacles   []models.Obstacle
	Decorations []models.Decoration
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:       s.state,
		Score:       s.score,
		SpawnAcc:    s.spawnAcc,
		ScrollSpeed: s.scrollSpeed,
		Player:      *s.player.Player(),
	}
	for _, o := range s.world.Obstacles() {
		snap.Obstacles = append(snap.Obstacles, *o)
	}
	for _, d := range s.world.Decorations() {
		snap.Decorations = append(snap.Decorations, *d)
	}
	return snap
}
