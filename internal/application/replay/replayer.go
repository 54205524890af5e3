package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Replayer plays a recording back as an input.Source. Call Next once per
// tick before the source is observed.
type Replayer struct {
	data  Data
	frame int
	cur   Frame
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data Data) *Replayer {
	return &Replayer{data: data}
}

// Load decodes a recording.
func Load(r io.Reader) (*Data, error) {
	var data Data
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// LoadFile loads a recording from a file
func LoadFile(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Load(file)
}

// Next moves to the following frame. It returns false once the recording is
// exhausted, after which the source reports no input.
func (r *Replayer) Next() bool {
	if r.frame >= len(r.data.Frames) {
		r.cur = Frame{}
		return false
	}
	r.cur = r.data.Frames[r.frame]
	r.frame++
	return true
}

func (r *Replayer) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, r.cur.K...)
}

func (r *Replayer) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, r.cur.JK...)
}

func (r *Replayer) CursorPosition() (int, int) {
	return r.cur.MX, r.cur.MY
}

func (r *Replayer) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return r.cur.pressed(b)
}

func (r *Replayer) Wheel() (float64, float64) {
	return r.cur.WX, r.cur.WY
}

// CurrentFrame returns the number of frames consumed
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// TPS returns the tick rate the recording was made at
func (r *Replayer) TPS() int {
	return r.data.TPS
}

// Done reports whether every frame has been played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.cur = Frame{}
}
