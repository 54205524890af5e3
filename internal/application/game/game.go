// Package game provides the game loop that composes the viewport, camera,
// scene stack and scheduler, and drives them from host notifications.
package game

import (
	"fmt"
	"os"

	"github.com/younwookim/framekit/internal/application/camera"
	"github.com/younwookim/framekit/internal/application/clock"
	"github.com/younwookim/framekit/internal/application/input"
	"github.com/younwookim/framekit/internal/application/render"
	"github.com/younwookim/framekit/internal/application/resource"
	"github.com/younwookim/framekit/internal/application/scene"
	"github.com/younwookim/framekit/internal/application/scheduler"
	"github.com/younwookim/framekit/internal/application/state"
	"github.com/younwookim/framekit/internal/application/viewport"
	"github.com/younwookim/framekit/internal/domain/colors"
	"github.com/younwookim/framekit/internal/domain/geom"
)

// Loop owns one viewport, camera, scene stack and scheduler.
type Loop struct {
	host  Host
	hooks Hooks
	cfg   Config
	phase state.Phase

	background colors.RGBA
	view       *viewport.Manager
	camera     *camera.Camera
	batch      *render.Batch
	stack      *scene.Stack
	clock      *clock.Clock
	sched      *scheduler.Scheduler
	resources  *resource.Index
	keyboard   *input.Keyboard
	mouse      *input.Mouse
	fps        *render.FPSOverlay
	frame      *clock.Callback
}

var _ scene.Owner = (*Loop)(nil)

// New builds the loop and runs the application's Initialize and LoadContent
// hooks. On success the loop is Running and accepts frames.
func New(host Host, cfg Config, hooks Hooks) (*Loop, error) {
	if host == nil {
		panic("game: nil host")
	}
	if hooks == nil {
		hooks = NopHooks{}
	}

	l := &Loop{
		host:       host,
		hooks:      hooks,
		cfg:        cfg,
		phase:      state.PhaseConstructing,
		background: cfg.Background,
		batch:      render.NewBatch(),
		clock:      clock.New(),
		keyboard:   input.NewKeyboard(),
		mouse:      input.NewMouse(),
		fps:        render.NewFPSOverlay(),
	}
	l.sched = scheduler.New(l.clock)
	l.stack = scene.NewStack(l)

	fsys := cfg.Resources
	if fsys == nil {
		fsys = os.DirFS(".")
	}
	idx, err := resource.NewIndex(fsys, append([]string{"."}, cfg.ResourcePaths...)...)
	if err != nil {
		return nil, fmt.Errorf("resource paths: %w", err)
	}
	l.resources = idx

	l.view, err = viewport.NewManager(cfg.VirtualWidth, cfg.VirtualHeight)
	if err != nil {
		return nil, fmt.Errorf("configure viewport: %w", err)
	}
	l.camera = camera.New(l.batch, l.Center())

	// Registered on the clock directly so PauseScheduler never stops the
	// frame itself.
	l.frame = clock.NewCallback("loop.frame", l.update)
	l.clock.Schedule(l.frame, clock.Args{})

	l.advance(state.PhaseInitializing)
	l.OnResize(host.Size())
	host.Attach(l.keyboard)
	host.Attach(l.mouse)

	if err := hooks.Initialize(l); err != nil {
		return nil, fmt.Errorf("initialize: %w", err)
	}

	l.advance(state.PhaseLoading)
	if err := l.resources.Reindex(); err != nil {
		return nil, fmt.Errorf("reindex resources: %w", err)
	}
	if err := hooks.LoadContent(l); err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}

	l.advance(state.PhaseRunning)
	return l, nil
}

func (l *Loop) advance(next state.Phase) {
	p, err := l.phase.Advance(next)
	if err != nil {
		panic(err)
	}
	l.phase = p
}

// OnUpdate is the host's tick notification.
func (l *Loop) OnUpdate(dt float64) {
	if !l.phase.AcceptsFrames() {
		return
	}
	l.clock.Tick(dt)
}

func (l *Loop) update(dt float64, _ clock.Args) {
	l.stack.UpdateAll(dt)
	l.hooks.Update(dt)
	l.camera.Update(dt)
}

// OnDraw is the host's draw request. If a draw panics, whatever was queued
// for the frame is dropped so the next frame starts from an empty batch.
func (l *Loop) OnDraw() {
	if !l.phase.AcceptsFrames() {
		return
	}
	presented := false
	defer func() {
		if !presented {
			l.batch.Discard()
		}
	}()

	if l.cfg.AutoClear {
		l.host.Clear(l.background)
	}
	l.draw()
	if l.cfg.ShowFPS {
		l.fps.Queue(l.batch)
	}
	l.host.Present(l.batch)
	presented = true
}

// draw brackets the hook and scene draws with the camera transform. Apply
// runs even if a draw panics.
func (l *Loop) draw() {
	center := l.Center()
	l.camera.Reset(center)
	defer l.camera.Apply(center)

	l.hooks.Draw(l.batch)
	l.stack.DrawAll(l.batch)
}

// OnResize is the host's resize notification. It re-issues the viewport and
// projection directives.
func (l *Loop) OnResize(w, h int) {
	if l.phase == state.PhaseClosed {
		return
	}
	st := l.view.OnResize(w, h, l.host)
	l.mouse.SetViewport(st)
}

// Close stops the loop. Later notifications are ignored.
func (l *Loop) Close() {
	if l.phase != state.PhaseClosed {
		l.advance(state.PhaseClosed)
	}
}

// AddScene loads s and inserts it into the stack.
func (l *Loop) AddScene(s scene.Scene) error {
	return l.stack.Add(s)
}

// RemoveScene removes s. Removing a scene that is not present returns
// scene.ErrNotFound.
func (l *Loop) RemoveScene(s scene.Scene) error {
	return l.stack.Remove(s)
}

// MainScene returns the current main scene, or nil.
func (l *Loop) MainScene() scene.Scene {
	return l.stack.Main()
}

// Scenes returns the stack in update order.
func (l *Loop) Scenes() []scene.Scene {
	return l.stack.Scenes()
}

// Schedule registers cb to run every frame with args.
func (l *Loop) Schedule(cb *clock.Callback, args clock.Args) {
	l.sched.Schedule(cb, args)
}

// ScheduleInterval registers cb to run every interval seconds.
func (l *Loop) ScheduleInterval(cb *clock.Callback, interval float64, args clock.Args) error {
	return l.sched.ScheduleInterval(cb, interval, args)
}

// Unschedule removes every registration of cb.
func (l *Loop) Unschedule(cb *clock.Callback) {
	l.sched.Unschedule(cb)
}

// PauseScheduler detaches every scheduled callback from the clock. Scenes
// keep updating.
func (l *Loop) PauseScheduler() {
	l.sched.Pause()
}

// ResumeScheduler reattaches the callbacks detached by PauseScheduler.
func (l *Loop) ResumeScheduler() error {
	return l.sched.Resume()
}

// Scheduler exposes the registries for inspection.
func (l *Loop) Scheduler() *scheduler.Scheduler {
	return l.sched
}

// Clock is the live timing mechanism, including the loop's own frame
// callback.
func (l *Loop) Clock() *clock.Clock {
	return l.clock
}

// Background returns the clear color.
func (l *Loop) Background() colors.RGBA {
	return l.background
}

// SetBackground sets the clear color used from the next draw.
func (l *Loop) SetBackground(c colors.RGBA) {
	l.background = c
}

// Camera returns the loop's camera.
func (l *Loop) Camera() *camera.Camera {
	return l.camera
}

// Viewport returns the letterbox state of the last resize.
func (l *Loop) Viewport() viewport.State {
	return l.view.State()
}

// Virtual returns the virtual resolution.
func (l *Loop) Virtual() viewport.Size {
	return l.view.Virtual()
}

// Size returns the physical window size of the last resize.
func (l *Loop) Size() (int, int) {
	p := l.view.State().Physical
	return p.W, p.H
}

// Center is the midpoint of the virtual resolution, the point the camera is
// anchored on.
func (l *Loop) Center() geom.Vec2 {
	v := l.view.Virtual()
	return geom.V2(float64(v.W)/2, float64(v.H)/2)
}

// Keyboard returns the keyboard state observed from the host.
func (l *Loop) Keyboard() *input.Keyboard {
	return l.keyboard
}

// Mouse returns the mouse state observed from the host.
func (l *Loop) Mouse() *input.Mouse {
	return l.mouse
}

// Resources returns the resource index built from the search paths.
func (l *Loop) Resources() *resource.Index {
	return l.resources
}

// Batch is the render batch the loop owns. Transform directives go here.
func (l *Loop) Batch() *render.Batch {
	return l.batch
}

// Phase returns the current lifecycle phase.
func (l *Loop) Phase() state.Phase {
	return l.phase
}

// Config returns the construction config.
func (l *Loop) Config() Config {
	return l.cfg
}

// SetShowFPS toggles the FPS overlay.
func (l *Loop) SetShowFPS(on bool) {
	l.cfg.ShowFPS = on
}
