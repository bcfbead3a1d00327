package session

import (
	"github.com/golangdaddy/trafficdodge/pkg/clock"
	"github.com/golangdaddy/trafficdodge/pkg/input"
)

// State is the game loop state.
type State int

const (
	Idle State = iota
	Running
	Paused
	GameOver
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// ButtonLabel is what the HUD's main button should read.
type ButtonLabel int

const (
	LabelPause ButtonLabel = iota
	LabelResume
	LabelRestart
)

func (l ButtonLabel) String() string {
	switch l {
	case LabelPause:
		return "Pause"
	case LabelResume:
		return "Resume"
	case LabelRestart:
		return "Restart"
	}
	return ""
}

// HUD receives score and button updates.
type HUD interface {
	SetScore(score string)
	SetButtonLabel(label ButtonLabel)
	SetJumpActive(active bool)
}

// InputSource is read once per frame.
type InputSource interface {
	Snapshot() input.State
}

// Scheduler holds the next frame request.
type Scheduler interface {
	RequestFrame(fn clock.FrameFunc)
	Cancel()
}

type nopHUD struct{}

func (nopHUD) SetScore(string)             {}
func (nopHUD) SetButtonLabel(ButtonLabel) {}
func (nopHUD) SetJumpActive(bool)          {}

type nopInput struct{}

func (nopInput) Snapshot() input.State { return input.State{} }
