package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/younwookim/framekit/internal/application/viewport"
)

type fakeSource struct {
	keys    []ebiten.Key
	just    []ebiten.Key
	x, y    int
	buttons map[ebiten.MouseButton]bool
	wx, wy  float64
}

func (f *fakeSource) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, f.keys...)
}

func (f *fakeSource) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return append(keys, f.just...)
}

func (f *fakeSource) CursorPosition() (int, int) { return f.x, f.y }

func (f *fakeSource) IsMouseButtonPressed(b ebiten.MouseButton) bool { return f.buttons[b] }

func (f *fakeSource) Wheel() (float64, float64) { return f.wx, f.wy }

func TestKeyboard_PressHoldRelease(t *testing.T) {
	kb := NewKeyboard()

	kb.Observe(&fakeSource{keys: []ebiten.Key{ebiten.KeySpace}, just: []ebiten.Key{ebiten.KeySpace}})
	assert.True(t, kb.IsDown(ebiten.KeySpace))
	assert.True(t, kb.JustPressed(ebiten.KeySpace))
	assert.False(t, kb.JustReleased(ebiten.KeySpace))

	kb.Observe(&fakeSource{keys: []ebiten.Key{ebiten.KeySpace}})
	assert.True(t, kb.IsDown(ebiten.KeySpace))
	assert.False(t, kb.JustPressed(ebiten.KeySpace))

	kb.Observe(&fakeSource{})
	assert.False(t, kb.IsDown(ebiten.KeySpace))
	assert.True(t, kb.JustReleased(ebiten.KeySpace))

	kb.Observe(&fakeSource{})
	assert.False(t, kb.JustReleased(ebiten.KeySpace))
}

func TestKeyboard_DownIsSorted(t *testing.T) {
	kb := NewKeyboard()
	kb.Observe(&fakeSource{keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyA, ebiten.KeyD}})

	assert.Equal(t, []ebiten.Key{ebiten.KeyA, ebiten.KeyD, ebiten.KeyW}, kb.Down())
}

func TestMouse_ButtonsAndWheel(t *testing.T) {
	m := NewMouse()

	m.Observe(&fakeSource{x: 10, y: 20, wy: -1, buttons: map[ebiten.MouseButton]bool{ebiten.MouseButtonLeft: true}})
	assert.Equal(t, 10, m.X)
	assert.Equal(t, 20, m.Y)
	assert.Equal(t, -1.0, m.WheelY)
	assert.True(t, m.IsDown(ebiten.MouseButtonLeft))
	assert.True(t, m.JustPressed(ebiten.MouseButtonLeft))

	m.Observe(&fakeSource{})
	assert.False(t, m.IsDown(ebiten.MouseButtonLeft))
	assert.True(t, m.JustReleased(ebiten.MouseButtonLeft))
	assert.Zero(t, m.WheelY)

	assert.False(t, m.IsDown(ebiten.MouseButton(-1)))
	assert.False(t, m.JustPressed(ebiten.MouseButton(99)))
}

func TestMouse_Virtual(t *testing.T) {
	m := NewMouse()
	m.Observe(&fakeSource{x: 800, y: 450})

	assert.Equal(t, 800.0, m.Virtual().X, "no viewport yet, physical passthrough")

	m.SetViewport(viewport.Compute(viewport.Size{W: 1600, H: 900}, viewport.Size{W: 800, H: 600}))
	v := m.Virtual()
	assert.InDelta(t, 400, v.X, 1e-9)
	assert.InDelta(t, 300, v.Y, 1e-9)
}

func TestObserverFunc(t *testing.T) {
	var got Source
	src := &fakeSource{}
	ObserverFunc(func(s Source) { got = s }).Observe(src)
	assert.Same(t, src, got)
}
