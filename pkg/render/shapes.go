package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// FillRoundRect fills a rectangle with corners of radius r. The radius is
// capped to half the shorter side.
func FillRoundRect(dst *ebiten.Image, x, y, w, h, r float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r = math.Min(r, math.Min(w/2, h/2))
	if r <= 0 {
		vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), clr, false)
		return
	}

	var path vector.Path
	path.MoveTo(float32(x+r), float32(y))
	path.ArcTo(float32(x+w), float32(y), float32(x+w), float32(y+h), float32(r))
	path.ArcTo(float32(x+w), float32(y+h), float32(x), float32(y+h), float32(r))
	path.ArcTo(float32(x), float32(y+h), float32(x), float32(y), float32(r))
	path.ArcTo(float32(x), float32(y), float32(x+w), float32(y), float32(r))
	path.Close()
	fillPath(dst, &path, clr)
}

// FillTriangle fills the triangle a, b, c.
func FillTriangle(dst *ebiten.Image, ax, ay, bx, by, cx, cy float64, clr color.Color) {
	var path vector.Path
	path.MoveTo(float32(ax), float32(ay))
	path.LineTo(float32(bx), float32(by))
	path.LineTo(float32(cx), float32(cy))
	path.Close()
	fillPath(dst, &path, clr)
}

func fillPath(dst *ebiten.Image, path *vector.Path, clr color.Color) {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(c.R) / 0xff
		vs[i].ColorG = float32(c.G) / 0xff
		vs[i].ColorB = float32(c.B) / 0xff
		vs[i].ColorA = float32(c.A) / 0xff
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}
