// Package input keeps per-tick keyboard and mouse state.
//
// Observers are passive: the host polls a Source once per tick and hands it
// to every attached Observer before the loop updates. Scenes then query the
// observers instead of ebiten directly, which lets a replay stand in for the
// live devices.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Source is a snapshot of the input devices for one tick.
type Source interface {
	AppendPressedKeys(keys []ebiten.Key) []ebiten.Key
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	CursorPosition() (x, y int)
	IsMouseButtonPressed(b ebiten.MouseButton) bool
	Wheel() (xoff, yoff float64)
}

// Observer receives the source once per tick.
type Observer interface {
	Observe(src Source)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(src Source)

func (f ObserverFunc) Observe(src Source) { f(src) }

// Live reads ebiten's device state. Only valid on the game goroutine.
type Live struct{}

func (Live) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendPressedKeys(keys)
}

func (Live) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (Live) CursorPosition() (int, int) {
	return ebiten.CursorPosition()
}

func (Live) IsMouseButtonPressed(b ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(b)
}

func (Live) Wheel() (float64, float64) {
	return ebiten.Wheel()
}
