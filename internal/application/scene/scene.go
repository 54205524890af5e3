// Package scene defines the Scene capability and the stack the game loop
// keeps them in.
//
// A stack holds at most one main scene, always at index 0, plus any number
// of popup scenes drawn over it in insertion order.
package scene

import (
	"github.com/younwookim/framekit/internal/application/camera"
	"github.com/younwookim/framekit/internal/application/clock"
	"github.com/younwookim/framekit/internal/application/input"
	"github.com/younwookim/framekit/internal/application/render"
	"github.com/younwookim/framekit/internal/application/viewport"
)

// Owner is the game loop as seen from a scene.
type Owner interface {
	AddScene(s Scene) error
	RemoveScene(s Scene) error

	Schedule(cb *clock.Callback, args clock.Args)
	ScheduleInterval(cb *clock.Callback, interval float64, args clock.Args) error
	Unschedule(cb *clock.Callback)
	PauseScheduler()
	ResumeScheduler() error

	Camera() *camera.Camera
	Keyboard() *input.Keyboard
	Mouse() *input.Mouse
	Virtual() viewport.Size
}

// Scene is one unit of game content.
type Scene interface {
	// LoadContent runs once, synchronously, when the scene is added. An
	// error aborts the insertion.
	LoadContent() error

	// Update advances the scene by dt seconds. Called once per frame while
	// the scene is in the stack.
	Update(dt float64)

	// Draw queues the scene's draw calls. Called once per frame, after
	// every Update of that frame.
	Draw(b *render.Batch)

	// Popup reports whether the scene stacks over the main scene instead
	// of replacing it. Read once, on insertion.
	Popup() bool

	// Owner returns the loop the scene was added to, or nil.
	Owner() Owner

	// SetOwner is called by the stack on insertion.
	SetOwner(o Owner)
}

// Exiter is implemented by scenes that want to know when they leave the
// stack, either removed explicitly or replaced as the main scene.
type Exiter interface {
	OnExit()
}

// Base provides the bookkeeping and no-op hooks. Embed it and override what
// the scene needs.
type Base struct {
	popup bool
	owner Owner
}

// NewBase returns a Base for a main scene (popup false) or a popup.
func NewBase(popup bool) Base {
	return Base{popup: popup}
}

func (b *Base) Popup() bool        { return b.popup }
func (b *Base) Owner() Owner       { return b.owner }
func (b *Base) SetOwner(o Owner)   { b.owner = o }
func (b *Base) LoadContent() error { return nil }
func (b *Base) Update(float64)     {}
func (b *Base) Draw(*render.Batch) {}
