package replay

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Version is written into every recording.
const Version = "2.0"

// Frame records device state for a single tick
type Frame struct {
	F  int                  `json:"f"`            // Tick number
	K  []ebiten.Key         `json:"k,omitempty"`  // Held keys
	JK []ebiten.Key         `json:"jk,omitempty"` // Keys that went down this tick
	MX int                  `json:"mx"`           // Cursor X
	MY int                  `json:"my"`           // Cursor Y
	MB []ebiten.MouseButton `json:"mb,omitempty"` // Held mouse buttons
	WX float64              `json:"wx,omitempty"` // Wheel X
	WY float64              `json:"wy,omitempty"` // Wheel Y
}

// Data contains everything needed to replay a session
type Data struct {
	Version   string  `json:"version"`
	TPS       int     `json:"tps"`
	Virtual   [2]int  `json:"virtual"`
	StartTime string  `json:"startTime"`
	Frames    []Frame `json:"frames"`
}

func (f Frame) pressed(b ebiten.MouseButton) bool {
	return slices.Contains(f.MB, b)
}

// Idle creates a recording of frames with no input and a fixed cursor.
func Idle(frames, mouseX, mouseY int) Data {
	data := Data{
		Version:   Version,
		TPS:       60,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]Frame, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = Frame{
			F:  i,
			MX: mouseX,
			MY: mouseY,
		}
	}

	return data
}
