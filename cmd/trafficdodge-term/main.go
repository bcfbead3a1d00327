// Command trafficdodge-term plays the game in a terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/golangdaddy/trafficdodge/pkg/clock"
	"github.com/golangdaddy/trafficdodge/pkg/config"
	"github.com/golangdaddy/trafficdodge/pkg/input"
	"github.com/golangdaddy/trafficdodge/pkg/models"
	"github.com/golangdaddy/trafficdodge/pkg/models/car"
	"github.com/golangdaddy/trafficdodge/pkg/session"
	"github.com/golangdaddy/trafficdodge/pkg/vehicle"
)

// Terminals never report key releases, so a direction stays held for a
// little longer than the keyboard repeat delay.
const holdTTL = 180 * time.Millisecond

const bannerH = 22.0

var (
	roadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorDimGray)
	hudStyle    = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	jumpStyle   = hudStyle.Foreground(tcell.ColorYellow).Bold(true)
	bannerStyle = tcell.StyleDefault.Background(tcell.ColorDarkSlateGray).Foreground(tcell.ColorWhite)
	crashStyle  = tcell.StyleDefault.Background(tcell.ColorMaroon).Foreground(tcell.ColorWhite).Bold(true)
	shadowStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorGray)
)

// termHUD keeps the latest HUD values for the status line.
type termHUD struct {
	score string
	label session.ButtonLabel
	jump  bool
}

func (h *termHUD) SetScore(score string)                { h.score = score }
func (h *termHUD) SetButtonLabel(l session.ButtonLabel) { h.label = l }
func (h *termHUD) SetJumpActive(active bool)            { h.jump = active }

type decayInput struct {
	decay *input.Decay
}

func (d decayInput) Snapshot() input.State {
	return d.decay.State(time.Now())
}

type Terminal struct {
	screen  tcell.Screen
	session *session.Session
	sched   *clock.FrameScheduler
	hud     *termHUD
	keys    *input.Decay
	start   time.Time
	banner  string
}

func NewTerminal(t config.Tuning, seed int64) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal: init screen: %w", err)
	}
	screen.SetStyle(roadStyle)
	screen.HideCursor()

	term := &Terminal{
		screen: screen,
		sched:  &clock.FrameScheduler{},
		hud:    &termHUD{score: "0"},
		keys:   input.NewDecay(holdTTL),
		start:  time.Now(),
		banner: t.Decorations.BannerText,
	}
	term.session = session.New(t, rand.New(rand.NewSource(seed)),
		session.WithHUD(term.hud),
		session.WithInput(decayInput{term.keys}),
		session.WithScheduler(term.sched),
	)
	return term, nil
}

// handleKey returns false when the player quits.
func (term *Terminal) handleKey(ev *tcell.EventKey) bool {
	now := time.Now()
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		term.keys.Press(input.Left, now)
	case tcell.KeyRight:
		term.keys.Press(input.Right, now)
	case tcell.KeyUp:
		term.keys.Press(input.Up, now)
	case tcell.KeyDown:
		term.keys.Press(input.Down, now)
	case tcell.KeyEnter:
		term.session.Primary()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return false
		case ' ':
			term.session.Primary()
		case 'p', 'P':
			term.session.TogglePause()
		case 'r', 'R':
			term.session.Restart()
		case 'a', 'A':
			term.keys.Press(input.Left, now)
		case 'd', 'D':
			term.keys.Press(input.Right, now)
		case 'w', 'W':
			term.keys.Press(input.Up, now)
		case 's', 'S':
			term.keys.Press(input.Down, now)
		}
	}
	return true
}

func (term *Terminal) run() {
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- term.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !term.handleKey(ev) {
					return
				}
			case *tcell.EventResize:
				term.screen.Sync()
			}

		case <-ticker.C:
			if term.session.State() != session.Running {
				term.keys.Clear()
			}
			term.sched.Dispatch(time.Since(term.start))
			term.draw()
		}
	}
}

func (term *Terminal) draw() {
	s := term.session
	l := s.Layout()
	cols, rows := term.screen.Size()
	g := Grid{Cols: cols, Rows: rows, FieldW: l.Width, FieldH: l.Height}

	term.screen.Clear()

	for _, x := range l.Separators() {
		c := g.Col(x)
		for y := hudRows; y < rows; y++ {
			term.screen.SetContent(c, y, '│', nil, roadStyle)
		}
	}
	for _, d := range s.Decorations() {
		switch d.Kind {
		case models.LaneDash:
			row := g.Row(d.Y)
			if row < hudRows || row >= rows {
				continue
			}
			for _, cx := range l.LaneCenters() {
				term.screen.SetContent(g.Col(cx), row, '╎', nil, roadStyle)
			}
		case models.Banner:
			term.drawBanner(g, d.Y)
		}
	}

	for _, o := range s.Obstacles() {
		style := carStyle(o.Paint)
		if o.Cleared {
			style = style.Dim(true)
		}
		term.fill(g, o.Bounds(), '█', style)
	}

	p := s.Player()
	if p.Airborne() {
		term.fill(g, p.Bounds(), '░', shadowStyle)
		term.fill(g, p.Bounds().Offset(0, -p.Lift()), '▓', carStyle(p.Paint).Bold(true))
	} else {
		term.fill(g, p.Bounds(), '█', carStyle(p.Paint))
	}

	term.drawHUD(cols)
	if s.State() == session.GameOver {
		msg := fmt.Sprintf(" Crash! Score: %d ", s.Score())
		term.text((cols-len(msg))/2, rows/2, msg, crashStyle)
		hint := " Press R or Space "
		term.text((cols-len(hint))/2, rows/2+1, hint, crashStyle)
	}

	term.screen.Show()
}

func (term *Terminal) drawHUD(cols int) {
	for x := 0; x < cols; x++ {
		term.screen.SetContent(x, 0, ' ', nil, hudStyle)
	}
	term.text(1, 0, "Score: "+term.hud.score, hudStyle)
	if term.hud.jump {
		term.text(cols/2-2, 0, "JUMP", jumpStyle)
	}
	var label string
	if term.session.State() == session.Idle {
		label = "[Space] Start"
	} else {
		label = fmt.Sprintf("[P] %s", term.hud.label)
	}
	term.text(cols-len(label)-1, 0, label, hudStyle)
}

func (term *Terminal) drawBanner(g Grid, y float64) {
	r := vehicle.Rect{X: 24, Y: y, W: g.FieldW - 48, H: bannerH}
	x0, y0, x1, _, ok := g.Cells(r)
	if !ok {
		return
	}
	for x := x0; x <= x1; x++ {
		term.screen.SetContent(x, y0, ' ', nil, bannerStyle)
	}
	text := []rune(term.banner)
	if w := x1 - x0 + 1; len(text) > w {
		text = text[:w]
	}
	term.text(x0+(x1-x0+1-len(text))/2, y0, string(text), bannerStyle)
}

func (term *Terminal) fill(g Grid, r vehicle.Rect, ch rune, style tcell.Style) {
	x0, y0, x1, y1, ok := g.Cells(r)
	if !ok {
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			term.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (term *Terminal) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		term.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func carStyle(c car.Color) tcell.Style {
	rgba := c.RGBA()
	return tcell.StyleDefault.Background(tcell.ColorBlack).
		Foreground(tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B)))
}

// openLog picks where log output goes while the screen is drawn. Without a
// path it is discarded so nothing is printed over the game.
func openLog(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("terminal: open log: %w", err)
	}
	return f, f.Close, nil
}

func main() {
	tuningPath := flag.String("tuning", "", "YAML file overriding the built-in tuning")
	seed := flag.Int64("seed", 0, "spawner seed, 0 picks one from the clock")
	script := flag.String("difficulty-script", "", "tengo script overriding the difficulty curve")
	logPath := flag.String("log", "", "write log output to this file")
	flag.Parse()

	out, closeLog, err := openLog(*logPath)
	if err != nil {
		log.Fatal(err)
	}
	defer closeLog()
	log.SetOutput(out)

	tuning, err := config.Load(*tuningPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v; using built-in tuning\n", err)
	}
	if *script != "" {
		tuning.DifficultyScript = *script
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	term, err := NewTerminal(tuning, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer term.screen.Fini()

	term.run()
}
