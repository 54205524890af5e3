// Package colors holds the normalized color type used for the loop's
// background and the small named palette games pick defaults from.
package colors

import (
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/colornames"
)

// RGBA is a color with components in [0, 1]. Not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Palette entries that are not part of the CSS names.
var (
	LavenderBlue = FromBytes(204, 204, 255)
	Black        = FromBytes(0, 0, 0)
	White        = FromBytes(255, 255, 255)
	Transparent  = FromBytes(0, 0, 0, 0)
)

var extra = map[string]RGBA{
	"lavenderblue": LavenderBlue,
}

// FromBytes builds a color from 0-255 channels. Alpha defaults to 255 when
// omitted; values past the fourth are ignored.
func FromBytes(r, g, b uint8, a ...uint8) RGBA {
	alpha := uint8(255)
	if len(a) > 0 {
		alpha = a[0]
	}
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(alpha) / 255,
	}
}

// FromColor converts any color.Color. The input is un-premultiplied.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return FromBytes(n.R, n.G, n.B, n.A)
}

// Named looks up a color by name, case-insensitively. CSS names come from
// golang.org/x/image/colornames.
func Named(name string) (RGBA, bool) {
	key := strings.ToLower(strings.ReplaceAll(name, " ", ""))
	if c, ok := extra[key]; ok {
		return c, true
	}
	if c, ok := colornames.Map[key]; ok {
		return FromColor(c), true
	}
	return RGBA{}, false
}

// Bytes converts back to 0-255 channels, rounding to the nearest integer so
// FromBytes(...).Bytes() is lossless.
func (c RGBA) Bytes() color.NRGBA {
	return color.NRGBA{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: toByte(c.A),
	}
}

// RGBA implements color.Color.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.Bytes().RGBA()
}

func toByte(v float64) uint8 {
	v = math.Round(clamp01(v) * 255)
	return uint8(v)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
