// Package camera provides the view transform applied around each frame's
// draw calls.
package camera

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/framekit/internal/domain/geom"
)

// Transformer is the transform stack the camera pushes onto.
type Transformer interface {
	PushTransform()
	MultTransform(m ebiten.GeoM)
	PopTransform()
}

// tween animates one scalar camera property.
type tween struct {
	t   *gween.Tween
	set func(v float64)
}

// Camera is a 2D view with position, zoom and rotation.
type Camera struct {
	// Position is the world point shown at the anchor passed to Reset.
	Position geom.Vec2
	// Zoom is the scale factor (1 = none, >1 zooms in).
	Zoom float64
	// Rotation is in radians, clockwise.
	Rotation float64

	stack Transformer
	open  int

	tweens map[string]*tween

	follow     func() geom.Vec2
	followLerp float64
}

// New creates a camera looking at center with no zoom or rotation, which
// makes its transform the identity when anchored at the same center.
func New(stack Transformer, center geom.Vec2) *Camera {
	return &Camera{
		Position: center,
		Zoom:     1,
		stack:    stack,
		tweens:   make(map[string]*tween),
	}
}

// Transform returns the view matrix anchored at center:
// Translate(center) * Scale(zoom) * Rotate(-rotation) * Translate(-position).
func (c *Camera) Transform(center geom.Vec2) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-c.Position.X, -c.Position.Y)
	g.Rotate(-c.Rotation)
	g.Scale(c.Zoom, c.Zoom)
	g.Translate(center.X, center.Y)
	return g
}

// Reset saves the current transform and applies the camera's view anchored
// at center. Every Reset must be paired with one Apply.
func (c *Camera) Reset(center geom.Vec2) {
	c.stack.PushTransform()
	c.stack.MultTransform(c.Transform(center))
	c.open++
}

// Apply restores the transform saved by the matching Reset. It does nothing
// when no Reset is outstanding.
func (c *Camera) Apply(center geom.Vec2) {
	if c.open == 0 {
		return
	}
	c.open--
	c.stack.PopTransform()
}

// Open returns the number of Reset calls not yet matched by Apply.
func (c *Camera) Open() int {
	return c.open
}

// WorldToScreen maps a world point through the view anchored at center.
func (c *Camera) WorldToScreen(center, p geom.Vec2) geom.Vec2 {
	g := c.Transform(center)
	x, y := g.Apply(p.X, p.Y)
	return geom.V2(x, y)
}

// ScreenToWorld is the inverse of WorldToScreen. A zero zoom maps every
// point to the camera position.
func (c *Camera) ScreenToWorld(center, p geom.Vec2) geom.Vec2 {
	g := c.Transform(center)
	if !g.IsInvertible() {
		return c.Position
	}
	g.Invert()
	x, y := g.Apply(p.X, p.Y)
	return geom.V2(x, y)
}

// MoveTo animates the position to target over duration seconds.
func (c *Camera) MoveTo(target geom.Vec2, duration float32, fn ease.TweenFunc) {
	c.animate("x", c.Position.X, target.X, duration, fn, func(v float64) { c.Position.X = v })
	c.animate("y", c.Position.Y, target.Y, duration, fn, func(v float64) { c.Position.Y = v })
}

// ZoomTo animates the zoom factor.
func (c *Camera) ZoomTo(zoom float64, duration float32, fn ease.TweenFunc) {
	c.animate("zoom", c.Zoom, zoom, duration, fn, func(v float64) { c.Zoom = v })
}

// RotateTo animates the rotation, in radians.
func (c *Camera) RotateTo(rotation float64, duration float32, fn ease.TweenFunc) {
	c.animate("rotation", c.Rotation, rotation, duration, fn, func(v float64) { c.Rotation = v })
}

// Follow makes the camera track target each update. A lerp of 1 snaps;
// smaller values trail behind. A nil target stops following.
func (c *Camera) Follow(target func() geom.Vec2, lerp float64) {
	c.follow = target
	c.followLerp = lerp
}

// Animating reports whether any tween is still running.
func (c *Camera) Animating() bool {
	return len(c.tweens) > 0
}

// Stop cancels all running tweens, leaving the camera where it is.
func (c *Camera) Stop() {
	clear(c.tweens)
}

// Update advances follow and tween state by dt seconds.
func (c *Camera) Update(dt float64) {
	if c.follow != nil {
		target := c.follow()
		c.Position = c.Position.Add(target.Sub(c.Position).Scale(c.followLerp))
	}

	for key, tw := range c.tweens {
		v, done := tw.t.Update(float32(dt))
		tw.set(float64(v))
		if done {
			delete(c.tweens, key)
		}
	}
}

func (c *Camera) animate(key string, from, to float64, duration float32, fn ease.TweenFunc, set func(float64)) {
	if fn == nil {
		fn = ease.Linear
	}
	if duration <= 0 {
		set(to)
		delete(c.tweens, key)
		return
	}
	c.tweens[key] = &tween{
		t:   gween.New(float32(from), float32(to), duration, fn),
		set: set,
	}
}
