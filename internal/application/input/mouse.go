package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/framekit/internal/application/viewport"
	"github.com/younwookim/framekit/internal/domain/geom"
)

const buttonCount = int(ebiten.MouseButtonMax) + 1

// Mouse tracks the cursor, buttons and wheel.
type Mouse struct {
	// X, Y is the cursor position in physical window pixels.
	X, Y int
	// WheelX, WheelY is the scroll offset of this tick.
	WheelX, WheelY float64

	down [buttonCount]bool
	prev [buttonCount]bool
	view viewport.State
}

// NewMouse creates a mouse at the origin with nothing held.
func NewMouse() *Mouse {
	return &Mouse{}
}

// Observe records the state for a new tick.
func (m *Mouse) Observe(src Source) {
	m.X, m.Y = src.CursorPosition()
	m.WheelX, m.WheelY = src.Wheel()
	m.prev = m.down
	for i := range m.down {
		m.down[i] = src.IsMouseButtonPressed(ebiten.MouseButton(i))
	}
}

// SetViewport updates the mapping used by Virtual. The loop calls this on
// every resize.
func (m *Mouse) SetViewport(s viewport.State) {
	m.view = s
}

// Virtual returns the cursor in virtual coordinates. Positions on the
// letterbox bars fall outside the virtual rectangle.
func (m *Mouse) Virtual() geom.Vec2 {
	if m.view.Virtual.W <= 0 || m.view.Virtual.H <= 0 {
		return geom.V2(float64(m.X), float64(m.Y))
	}
	return m.view.ToVirtual(m.X, m.Y)
}

// IsDown reports whether b is held this tick.
func (m *Mouse) IsDown(b ebiten.MouseButton) bool {
	if !valid(b) {
		return false
	}
	return m.down[b]
}

// JustPressed reports whether b went down this tick.
func (m *Mouse) JustPressed(b ebiten.MouseButton) bool {
	if !valid(b) {
		return false
	}
	return m.down[b] && !m.prev[b]
}

// JustReleased reports whether b came up this tick.
func (m *Mouse) JustReleased(b ebiten.MouseButton) bool {
	if !valid(b) {
		return false
	}
	return !m.down[b] && m.prev[b]
}

func valid(b ebiten.MouseButton) bool {
	return b >= 0 && int(b) < buttonCount
}
