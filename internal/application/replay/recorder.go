package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/framekit/internal/application/input"
)

// ErrEmpty is returned when saving a recording with no frames.
var ErrEmpty = errors.New("replay: no frames to save")

// Recorder captures every observed tick. It is an input.Observer.
type Recorder struct {
	data      Data
	recording bool
	keys      []ebiten.Key
}

// NewRecorder creates a recorder for a loop ticking tps times a second at
// the given virtual resolution.
func NewRecorder(tps, virtualW, virtualH int) *Recorder {
	return &Recorder{
		data: Data{
			Version:   Version,
			TPS:       tps,
			Virtual:   [2]int{virtualW, virtualH},
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]Frame, 0, 3600), // Pre-allocate for ~1 minute at 60 TPS
		},
		recording: true,
	}
}

// Observe records the current tick.
func (r *Recorder) Observe(src input.Source) {
	if !r.recording {
		return
	}

	f := Frame{F: len(r.data.Frames)}
	r.keys = src.AppendPressedKeys(r.keys[:0])
	if len(r.keys) > 0 {
		f.K = append([]ebiten.Key(nil), r.keys...)
	}
	r.keys = src.AppendJustPressedKeys(r.keys[:0])
	if len(r.keys) > 0 {
		f.JK = append([]ebiten.Key(nil), r.keys...)
	}
	f.MX, f.MY = src.CursorPosition()
	f.WX, f.WY = src.Wheel()
	for b := ebiten.MouseButton(0); b <= ebiten.MouseButtonMax; b++ {
		if src.IsMouseButtonPressed(b) {
			f.MB = append(f.MB, b)
		}
	}

	r.data.Frames = append(r.data.Frames, f)
}

// Data returns the recording so far.
func (r *Recorder) Data() Data {
	return r.data
}

// Save writes the recording as indented JSON.
func (r *Recorder) Save(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// SaveFile writes the recording to filename.
func (r *Recorder) SaveFile(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := r.Save(file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
