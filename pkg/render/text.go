package render

import (
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Face is the bitmap font every screen draws with.
var Face = text.NewGoXFace(bitmapfont.Face)

// DrawText draws s with its top-left corner at x, y. The bitmap font is
// scaled so a line is roughly size pixels tall.
func DrawText(screen *ebiten.Image, s string, x, y, size float64, clr color.Color) {
	scale := size / 16
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, Face, op)
}

// DrawCenteredText draws s centred on cx, cy.
func DrawCenteredText(screen *ebiten.Image, s string, cx, cy, size float64, clr color.Color) {
	w := TextWidth(s, size)
	DrawText(screen, s, cx-w/2, cy-size/2, size, clr)
}

// TextWidth is the drawn width of s at the given size.
func TextWidth(s string, size float64) float64 {
	return text.Advance(s, Face) * size / 16
}
