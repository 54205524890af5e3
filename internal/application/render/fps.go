package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSOverlay reports the frame rate in the corner of the usable area.
type FPSOverlay struct {
	// Rate returns the value to display. Defaults to ebiten.ActualFPS.
	Rate func() float64
}

// NewFPSOverlay creates an overlay reading ebiten's measured FPS and TPS.
func NewFPSOverlay() *FPSOverlay {
	return &FPSOverlay{Rate: ebiten.ActualFPS}
}

// Label formats the current reading.
func (o *FPSOverlay) Label() string {
	rate := 0.0
	if o.Rate != nil {
		rate = o.Rate()
	}
	return fmt.Sprintf("FPS: %.1f", rate)
}

// Queue adds the overlay to b in the text group. Call it after the camera
// transform has been popped so the overlay stays fixed on screen.
func (o *FPSOverlay) Queue(b *Batch) {
	label := o.Label()
	b.Add(GroupText, func(dst *ebiten.Image, _ ebiten.GeoM) {
		r := dst.Bounds()
		ebitenutil.DebugPrintAt(dst, label, r.Min.X, r.Min.Y)
	})
}
