package input

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// Keyboard tracks which keys are held, and which changed this tick.
type Keyboard struct {
	down    map[ebiten.Key]bool
	prev    map[ebiten.Key]bool
	pressed map[ebiten.Key]bool
	buf     []ebiten.Key
}

// NewKeyboard creates a keyboard with nothing held.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		down:    make(map[ebiten.Key]bool),
		prev:    make(map[ebiten.Key]bool),
		pressed: make(map[ebiten.Key]bool),
	}
}

// Observe records the state for a new tick.
func (k *Keyboard) Observe(src Source) {
	k.prev, k.down = k.down, k.prev
	clear(k.down)
	clear(k.pressed)

	k.buf = src.AppendPressedKeys(k.buf[:0])
	for _, key := range k.buf {
		k.down[key] = true
	}
	k.buf = src.AppendJustPressedKeys(k.buf[:0])
	for _, key := range k.buf {
		k.pressed[key] = true
	}
}

// IsDown reports whether key is held this tick.
func (k *Keyboard) IsDown(key ebiten.Key) bool {
	return k.down[key]
}

// JustPressed reports whether key went down this tick.
func (k *Keyboard) JustPressed(key ebiten.Key) bool {
	return k.pressed[key]
}

// JustReleased reports whether key was held last tick and is up now.
func (k *Keyboard) JustReleased(key ebiten.Key) bool {
	return k.prev[key] && !k.down[key]
}

// Down returns the held keys in ascending order.
func (k *Keyboard) Down() []ebiten.Key {
	keys := make([]ebiten.Key, 0, len(k.down))
	for key := range k.down {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
