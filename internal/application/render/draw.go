package render

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	whitePixel     *ebiten.Image
	whitePixelOnce sync.Once
)

// pixel returns a shared 1x1 white image, created on first use.
func pixel() *ebiten.Image {
	whitePixelOnce.Do(func() {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	})
	return whitePixel
}

// Rect returns a DrawFunc filling the rectangle (x, y, w, h) with c.
func Rect(x, y, w, h float64, c color.Color) DrawFunc {
	return func(dst *ebiten.Image, geo ebiten.GeoM) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w, h)
		op.GeoM.Translate(x, y)
		op.GeoM.Concat(geo)
		op.ColorScale.ScaleWithColor(c)
		dst.DrawImage(pixel(), op)
	}
}

// Image returns a DrawFunc drawing img with its top-left corner at (x, y).
func Image(img *ebiten.Image, x, y float64) DrawFunc {
	return func(dst *ebiten.Image, geo ebiten.GeoM) {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, y)
		op.GeoM.Concat(geo)
		dst.DrawImage(img, op)
	}
}

// Text returns a DrawFunc printing msg with the debug font. Only the
// position is transformed; the glyphs are not scaled or rotated.
func Text(msg string, x, y float64) DrawFunc {
	return func(dst *ebiten.Image, geo ebiten.GeoM) {
		sx, sy := geo.Apply(x, y)
		ebitenutil.DebugPrintAt(dst, msg, int(sx), int(sy))
	}
}
