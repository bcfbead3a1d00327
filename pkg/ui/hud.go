package ui

import (
	"image"
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/golangdaddy/trafficdodge/pkg/input"
	"github.com/golangdaddy/trafficdodge/pkg/render"
	"github.com/golangdaddy/trafficdodge/pkg/session"
)

var (
	hudTextColor  = color.NRGBA{0xe8, 0xea, 0xed, 0xff}
	jumpIdleColor = color.NRGBA{0xe8, 0xea, 0xed, 0x50}
	jumpLitColor  = color.NRGBA{0xfa, 0xcc, 0x15, 0xff}
	barColor      = color.NRGBA{0x00, 0x00, 0x00, 0x80}
	buttonColor   = color.NRGBA{0x4f, 0x46, 0xe5, 0xff}
	buttonDown    = color.NRGBA{0x37, 0x30, 0xa3, 0xff}
	padColor      = color.NRGBA{0xff, 0xff, 0xff, 0x20}
	padDownColor  = color.NRGBA{0xff, 0xff, 0xff, 0x50}
)

// HUDActions are the callbacks fired by the HUD's controls.
type HUDActions struct {
	OnButton func()
	OnPad    func(d input.Direction, held bool)
	OnJump   func()
}

// HUD is the in-game overlay: score, the Pause/Resume/Restart button, the
// jump indicator and the touch pads.
type HUD struct {
	ui *ebitenui.UI

	score  *widget.Text
	jump   *widget.Text
	button *widget.Button

	topBar *widget.Container
	padBar *widget.Container
}

// NewHUD creates a new HUD wired to actions.
func NewHUD(actions HUDActions) *HUD {
	var face text.Face = render.Face
	h := &HUD{}

	h.score = widget.NewText(
		widget.TextOpts.Text("Score: 0", &face, hudTextColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	h.jump = widget.NewText(
		widget.TextOpts.Text("JUMP", &face, jumpIdleColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)

	btnImg := &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(buttonColor),
		Hover:   imageui.NewNineSliceColor(buttonColor),
		Pressed: imageui.NewNineSliceColor(buttonDown),
	}
	h.button = widget.NewButton(
		widget.ButtonOpts.Image(btnImg),
		widget.ButtonOpts.Text(session.LabelPause.String(), &face, &widget.ButtonTextColor{Idle: hudTextColor}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(96, 32)),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if actions.OnButton != nil {
				actions.OnButton()
			}
		}),
	)

	h.topBar = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(barColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(24),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 6, Bottom: 6, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionStart,
		})),
	)
	h.topBar.AddChild(h.score)
	h.topBar.AddChild(h.jump)
	h.topBar.AddChild(h.button)

	h.padBar = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Bottom: 8}),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionEnd,
		})),
	)
	pads := []struct {
		label string
		dir   input.Direction
	}{
		{"<", input.Left},
		{"^", input.Up},
		{"v", input.Down},
		{">", input.Right},
	}
	for _, p := range pads {
		h.padBar.AddChild(newPad(p.label, &face, p.dir, actions.OnPad))
	}
	h.padBar.AddChild(newJumpPad(&face, actions.OnJump))

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(h.topBar)
	root.AddChild(h.padBar)
	h.ui = &ebitenui.UI{Container: root}

	return h
}

func padImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(padColor),
		Hover:   imageui.NewNineSliceColor(padColor),
		Pressed: imageui.NewNineSliceColor(padDownColor),
	}
}

// newPad is a hold button: pressed holds the direction, released lets go.
func newPad(label string, face *text.Face, d input.Direction, onPad func(input.Direction, bool)) *widget.Button {
	hold := func(held bool) {
		if onPad != nil {
			onPad(d, held)
		}
	}
	return widget.NewButton(
		widget.ButtonOpts.Image(padImage()),
		widget.ButtonOpts.Text(label, face, &widget.ButtonTextColor{Idle: hudTextColor}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(64, 56)),
		widget.ButtonOpts.PressedHandler(func(args *widget.ButtonPressedEventArgs) { hold(true) }),
		widget.ButtonOpts.ReleasedHandler(func(args *widget.ButtonReleasedEventArgs) { hold(false) }),
	)
}

func newJumpPad(face *text.Face, onJump func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(padImage()),
		widget.ButtonOpts.Text("JUMP", face, &widget.ButtonTextColor{Idle: hudTextColor}),
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(96, 56)),
		widget.ButtonOpts.PressedHandler(func(args *widget.ButtonPressedEventArgs) {
			if onJump != nil {
				onJump()
			}
		}),
	)
}

// SetScore implements session.HUD.
func (h *HUD) SetScore(score string) {
	h.score.Label = "Score: " + score
}

// SetButtonLabel implements session.HUD.
func (h *HUD) SetButtonLabel(label session.ButtonLabel) {
	if t := h.button.Text(); t != nil {
		t.Label = label.String()
	}
}

// SetJumpActive implements session.HUD.
func (h *HUD) SetJumpActive(active bool) {
	h.jump.SetColor(jumpColor(active))
}

func jumpColor(active bool) color.Color {
	if active {
		return jumpLitColor
	}
	return jumpIdleColor
}

// Contains reports whether pt lies on a HUD control.
func (h *HUD) Contains(pt image.Point) bool {
	return pt.In(h.topBar.GetWidget().Rect) || pt.In(h.padBar.GetWidget().Rect)
}

func (h *HUD) Update() {
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
