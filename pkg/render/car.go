package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	wheelColor      = color.RGBA{0x1b, 0x1f, 0x2a, 0xff}
	windowColor     = color.NRGBA{180, 200, 255, 38}
	windshieldColor = color.NRGBA{150, 200, 255, 90}
	tailLightColor  = color.RGBA{255, 60, 60, 255}
)

// DrawCar renders a top-down car filling the box x, y, w, h with the bonnet
// facing up.
func DrawCar(screen *ebiten.Image, x, y, w, h float64, paint color.Color) {
	// body
	FillRoundRect(screen, x, y, w, h, 10, paint)

	// wheels
	FillRoundRect(screen, x+6, y+10, 6, 16, 3, wheelColor)
	FillRoundRect(screen, x+w-12, y+10, 6, 16, 3, wheelColor)
	FillRoundRect(screen, x+6, y+h-26, 6, 16, 3, wheelColor)
	FillRoundRect(screen, x+w-12, y+h-26, 6, 16, 3, wheelColor)

	// windshield, then the cabin glass
	FillRoundRect(screen, x+w*0.2, y+h*0.12, w*0.6, h*0.1, 3, windshieldColor)
	FillRoundRect(screen, x+8, y+28, w-16, h-56, 6, windowColor)

	FillRoundRect(screen, x+8, y+h-4, 6, 3, 1, tailLightColor)
	FillRoundRect(screen, x+w-14, y+h-4, 6, 3, 1, tailLightColor)
}
