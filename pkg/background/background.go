package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
)

// Asphalt is the base road colour.
var Asphalt = color.RGBA{0x11, 0x13, 0x18, 0xff}

// Generator creates road textures
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new background generator
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// GenerateAsphalt creates the road texture as an Ebiten image.
func (g *Generator) GenerateAsphalt(seed int64) *ebiten.Image {
	return ebiten.NewImageFromImage(g.AsphaltPixels(seed))
}

// AsphaltPixels paints a dark asphalt surface with grit, cracks and a few
// oil stains. The same seed always yields the same pixels.
func (g *Generator) AsphaltPixels(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetRGBA(x, y, Asphalt)
		}
	}

	// grit
	for i := 0; i < g.Width*g.Height/12; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		shade := uint8(22 + rng.Intn(18))
		img.SetRGBA(x, y, color.RGBA{shade, shade, shade + 4, 255})
	}

	for i := 0; i < 6; i++ {
		g.drawStain(img, rng.Intn(g.Width), rng.Intn(g.Height), rng)
	}
	for i := 0; i < 10; i++ {
		g.drawCrack(img, rng.Intn(g.Width), rng.Intn(g.Height), rng)
	}

	return img
}

// drawCrack walks a thin dark line in a mostly vertical direction
func (g *Generator) drawCrack(img *image.RGBA, x, y int, rng *rand.Rand) {
	c := color.RGBA{8, 9, 12, 255}
	angle := math.Pi/2 + (rng.Float64()-0.5)*0.8
	length := 20 + rng.Intn(60)

	fx, fy := float64(x), float64(y)
	for i := 0; i < length; i++ {
		px, py := int(fx), int(fy)
		if px >= 0 && px < g.Width && py >= 0 && py < g.Height {
			img.SetRGBA(px, py, c)
		}
		angle += (rng.Float64() - 0.5) * 0.5
		fx += math.Cos(angle)
		fy += math.Sin(angle)
	}
}

// drawStain draws a round darker patch
func (g *Generator) drawStain(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 6 + rng.Intn(14)
	c := color.RGBA{
		uint8(10 + rng.Intn(6)),
		uint8(11 + rng.Intn(6)),
		uint8(16 + rng.Intn(8)),
		255,
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				px, py := x+dx, y+dy
				if px >= 0 && px < g.Width && py >= 0 && py < g.Height {
					img.SetRGBA(px, py, c)
				}
			}
		}
	}
}
