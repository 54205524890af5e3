// Package viewport maps a fixed virtual resolution onto a resizable window.
//
// The usable area is the largest rectangle with the virtual aspect ratio that
// fits inside the physical window, centered with letterbox (or pillarbox)
// bars on the remaining sides.
package viewport

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/younwookim/framekit/internal/domain/geom"
)

// Projection constants. EyeDistanceDivisor places the eye so that, with a
// 60 degree vertical field of view, one virtual unit on the z=0 plane covers
// roughly one pixel of the usable area.
const (
	FieldOfView        = 60.0
	NearPlane          = 0.1
	FarPlane           = 3000.0
	EyeDistanceDivisor = 1.1566
)

// ErrInvalidResolution is returned for non-positive virtual dimensions.
var ErrInvalidResolution = errors.New("viewport: invalid resolution")

// Directives is the part of the rendering host the manager drives.
type Directives interface {
	SetViewport(r image.Rectangle)
	SetProjection(p Projection)
}

// Size is a width/height pair in pixels
type Size struct {
	W, H int
}

// State is the letterbox layout derived on every resize.
type State struct {
	Physical Size
	Virtual  Size
	Usable   Size
	Offset   image.Point
}

// Rect returns the usable rectangle in physical coordinates.
func (s State) Rect() image.Rectangle {
	return image.Rect(s.Offset.X, s.Offset.Y, s.Offset.X+s.Usable.W, s.Offset.Y+s.Usable.H)
}

// Scale returns the physical pixels per virtual unit on each axis.
func (s State) Scale() (sx, sy float64) {
	return float64(s.Usable.W) / float64(s.Virtual.W), float64(s.Usable.H) / float64(s.Virtual.H)
}

// ToVirtual maps a physical point into virtual coordinates. Points in the
// bars map outside [0, virtual) and are not clamped.
func (s State) ToVirtual(px, py int) geom.Vec2 {
	sx, sy := s.Scale()
	return geom.Vec2{
		X: float64(px-s.Offset.X) / sx,
		Y: float64(py-s.Offset.Y) / sy,
	}
}

// Projection is the perspective/look-at pair issued to the host after each
// resize.
type Projection struct {
	FovY   float64
	Aspect float64
	Near   float64
	Far    float64
	Eye    geom.Vec3
	Center geom.Vec3
	Up     geom.Vec3

	Perspective mgl32.Mat4
	View        mgl32.Mat4
	Viewport    image.Rectangle
}

// Project maps a virtual-space point to window coordinates inside the
// viewport rectangle. The y axis of the result grows upward, as in GL.
func (p Projection) Project(v geom.Vec3) geom.Vec3 {
	r := p.Viewport
	win := mgl32.Project(v.Mgl(), p.View, p.Perspective, r.Min.X, r.Min.Y, r.Dx(), r.Dy())
	return geom.FromMgl(win)
}

// Manager owns the virtual resolution and the last computed State.
type Manager struct {
	virtual Size
	state   State
}

// NewManager creates a Manager for the given virtual resolution.
func NewManager(virtualW, virtualH int) (*Manager, error) {
	m := &Manager{}
	if err := m.Configure(virtualW, virtualH); err != nil {
		return nil, err
	}
	return m, nil
}

// Configure fixes the virtual resolution. The state is reset to a window the
// size of the virtual resolution until the next OnResize.
func (m *Manager) Configure(virtualW, virtualH int) error {
	if virtualW <= 0 || virtualH <= 0 {
		return fmt.Errorf("%w: virtual %dx%d", ErrInvalidResolution, virtualW, virtualH)
	}
	m.virtual = Size{virtualW, virtualH}
	m.state = Compute(m.virtual, m.virtual)
	return nil
}

// Virtual returns the configured virtual resolution.
func (m *Manager) Virtual() Size {
	return m.virtual
}

// State returns the layout computed by the last resize.
func (m *Manager) State() State {
	return m.state
}

// Projection builds the projection for the current state.
func (m *Manager) Projection() Projection {
	return NewProjection(m.state)
}

// OnResize recomputes the layout for a new physical size and issues the
// viewport and projection directives. Non-positive dimensions are clamped
// to 1. d may be nil when no host is attached.
func (m *Manager) OnResize(physicalW, physicalH int, d Directives) State {
	m.state = Compute(Size{physicalW, physicalH}, m.virtual)
	if d != nil {
		d.SetViewport(m.state.Rect())
		d.SetProjection(NewProjection(m.state))
	}
	return m.state
}

// Compute derives the letterbox layout. Integer division of the remaining
// space biases odd remainders by one pixel toward the origin.
func Compute(physical, virtual Size) State {
	pw, ph := max(physical.W, 1), max(physical.H, 1)
	vw, vh := max(virtual.W, 1), max(virtual.H, 1)

	aspect := float64(vw) / float64(vh)
	uw := int(math.Min(float64(pw), float64(ph)*aspect))
	uh := int(math.Min(float64(ph), float64(pw)/aspect))
	uw, uh = max(uw, 1), max(uh, 1)

	return State{
		Physical: Size{pw, ph},
		Virtual:  Size{vw, vh},
		Usable:   Size{uw, uh},
		Offset:   image.Pt((pw-uw)/2, (ph-uh)/2),
	}
}

// NewProjection builds the look-at projection centered on the virtual
// resolution's midpoint.
func NewProjection(s State) Projection {
	vw, vh := float64(s.Virtual.W), float64(s.Virtual.H)
	aspect := float64(s.Usable.W) / float64(s.Usable.H)

	p := Projection{
		FovY:     FieldOfView,
		Aspect:   aspect,
		Near:     NearPlane,
		Far:      FarPlane,
		Eye:      geom.V3(vw/2, vh/2, vh/EyeDistanceDivisor),
		Center:   geom.V3(vw/2, vh/2, 0),
		Up:       geom.V3(0, 1, 0),
		Viewport: s.Rect(),
	}
	p.Perspective = mgl32.Perspective(mgl32.DegToRad(FieldOfView), float32(aspect), NearPlane, FarPlane)
	p.View = mgl32.LookAtV(p.Eye.Mgl(), p.Center.Mgl(), p.Up.Mgl())
	return p
}
