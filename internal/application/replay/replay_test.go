package replay

import (
	"bytes"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/framekit/internal/application/input"
)

var (
	_ input.Source   = (*Replayer)(nil)
	_ input.Observer = (*Recorder)(nil)
)

type scripted struct {
	keys    []ebiten.Key
	just    []ebiten.Key
	x, y    int
	buttons []ebiten.MouseButton
	wy      float64
}

func (s scripted) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, s.keys...)
}

func (s scripted) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, s.just...)
}

func (s scripted) CursorPosition() (int, int) { return s.x, s.y }

func (s scripted) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	for _, p := range s.buttons {
		if p == b {
			return true
		}
	}
	return false
}

func (s scripted) Wheel() (float64, float64) { return 0, s.wy }

func TestRecorder_CapturesFrames(t *testing.T) {
	rec := NewRecorder(60, 800, 600)

	rec.Observe(scripted{keys: []ebiten.Key{ebiten.KeyA}, just: []ebiten.Key{ebiten.KeyA}, x: 100, y: 100})
	rec.Observe(scripted{x: 110, y: 95, buttons: []ebiten.MouseButton{ebiten.MouseButtonRight}, wy: 1})

	data := rec.Data()
	require.Len(t, data.Frames, 2)
	assert.Equal(t, [2]int{800, 600}, data.Virtual)
	assert.Equal(t, 0, data.Frames[0].F)
	assert.Equal(t, []ebiten.Key{ebiten.KeyA}, data.Frames[0].K)
	assert.Nil(t, data.Frames[1].K)
	assert.Equal(t, []ebiten.MouseButton{ebiten.MouseButtonRight}, data.Frames[1].MB)
	assert.Equal(t, 1.0, data.Frames[1].WY)
}

func TestRecorder_StopIgnoresFurtherTicks(t *testing.T) {
	rec := NewRecorder(60, 800, 600)
	rec.Observe(scripted{})
	rec.Stop()
	rec.Observe(scripted{})

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 1, rec.FrameCount())
}

func TestRecorder_SaveEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := NewRecorder(60, 1, 1).Save(&buf)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestRecordAndReplay_DrivesObserversIdentically(t *testing.T) {
	ticks := []scripted{
		{keys: []ebiten.Key{ebiten.KeySpace}, just: []ebiten.Key{ebiten.KeySpace}, x: 5, y: 6},
		{keys: []ebiten.Key{ebiten.KeySpace}, x: 7, y: 8, buttons: []ebiten.MouseButton{ebiten.MouseButtonLeft}},
		{x: 9, y: 10},
	}

	rec := NewRecorder(60, 320, 240)
	live := input.NewKeyboard()
	var liveReleased []bool
	for _, tick := range ticks {
		rec.Observe(tick)
		live.Observe(tick)
		liveReleased = append(liveReleased, live.JustReleased(ebiten.KeySpace))
	}

	var buf bytes.Buffer
	require.NoError(t, rec.Save(&buf))
	data, err := Load(&buf)
	require.NoError(t, err)

	rp := NewReplayer(*data)
	kb := input.NewKeyboard()
	mouse := input.NewMouse()
	var released []bool
	for i := range ticks {
		require.True(t, rp.Next(), "frame %d", i)
		kb.Observe(rp)
		mouse.Observe(rp)
		released = append(released, kb.JustReleased(ebiten.KeySpace))

		if i == 0 {
			assert.True(t, kb.JustPressed(ebiten.KeySpace))
		}
		if i == 1 {
			assert.True(t, mouse.JustPressed(ebiten.MouseButtonLeft))
		}
		assert.Equal(t, ticks[i].x, mouse.X)
	}

	assert.Equal(t, liveReleased, released)
	assert.False(t, rp.Next())
	assert.True(t, rp.Done())
	assert.Equal(t, 60, rp.TPS())
}

func TestReplayer_ExhaustedReportsNoInput(t *testing.T) {
	rp := NewReplayer(Data{Frames: []Frame{{F: 0, K: []ebiten.Key{ebiten.KeyW}, MX: 3}}})

	require.True(t, rp.Next())
	assert.Equal(t, []ebiten.Key{ebiten.KeyW}, rp.AppendPressedKeys(nil))

	require.False(t, rp.Next())
	assert.Empty(t, rp.AppendPressedKeys(nil))
	x, _ := rp.CursorPosition()
	assert.Zero(t, x)
}

func TestReplayer_Reset(t *testing.T) {
	rp := NewReplayer(Idle(3, 100, 100))

	for rp.Next() {
	}
	assert.Equal(t, 3, rp.CurrentFrame())

	rp.Reset()
	assert.Equal(t, 0, rp.CurrentFrame())
	assert.Equal(t, 3, rp.TotalFrames())
	require.True(t, rp.Next())
	x, y := rp.CursorPosition()
	assert.Equal(t, 100, x)
	assert.Equal(t, 100, y)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := Load(bytes.NewBufferString("{"))
	assert.Error(t, err)
}
