// Package host runs a game.Loop inside an ebiten window.
package host

import (
	"errors"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/framekit/internal/application/game"
	"github.com/younwookim/framekit/internal/application/input"
	"github.com/younwookim/framekit/internal/application/render"
	"github.com/younwookim/framekit/internal/application/state"
	"github.com/younwookim/framekit/internal/application/viewport"
	"github.com/younwookim/framekit/internal/domain/colors"
)

// ErrNotBound is returned by Run when no loop has been bound.
var ErrNotBound = errors.New("host: no loop bound")

// Source is an input source that advances once per tick. Next returns false
// when the source is exhausted.
type Source interface {
	input.Source
	Next() bool
}

// Options configure the window.
type Options struct {
	Title      string
	Width      int
	Height     int
	Resizable  bool
	Fullscreen bool
	TPS        int
	Debug      bool

	// Replay, when set, replaces the live devices until it runs out.
	Replay Source
}

// Window implements ebiten.Game and game.Host.
type Window struct {
	opts      Options
	loop      *game.Loop
	screen    *ebiten.Image
	w, h      int
	view      image.Rectangle
	base      ebiten.GeoM
	observers []input.Observer
	replay    Source
}

var (
	_ ebiten.Game = (*Window)(nil)
	_ game.Host   = (*Window)(nil)
)

// NewWindow creates a window. Nothing is shown until Run.
func NewWindow(opts Options) *Window {
	if opts.TPS <= 0 {
		opts.TPS = ebiten.DefaultTPS
	}
	return &Window{
		opts:   opts,
		w:      max(opts.Width, 1),
		h:      max(opts.Height, 1),
		replay: opts.Replay,
	}
}

// Bind connects the loop that receives this window's notifications.
func (w *Window) Bind(l *game.Loop) {
	w.loop = l
}

// Run opens the window and blocks until the loop closes or the window is
// closed by the user.
func (w *Window) Run() error {
	if w.loop == nil {
		return ErrNotBound
	}

	ebiten.SetWindowTitle(w.opts.Title)
	ebiten.SetWindowSize(w.opts.Width, w.opts.Height)
	if w.opts.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetFullscreen(w.opts.Fullscreen)
	ebiten.SetTPS(w.opts.TPS)
	// The loop decides when to clear.
	ebiten.SetScreenClearedEveryFrame(false)

	err := ebiten.RunGame(w)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// Update implements ebiten.Game.
func (w *Window) Update() error {
	if w.loop == nil {
		return nil
	}
	if w.loop.Phase() == state.PhaseClosed {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	src := w.source()
	for _, o := range w.observers {
		o.Observe(src)
	}
	w.loop.OnUpdate(1 / float64(w.opts.TPS))
	return nil
}

func (w *Window) source() input.Source {
	if w.replay == nil {
		return input.Live{}
	}
	if w.replay.Next() {
		return w.replay
	}
	log.Printf("Replay finished, switching to live input")
	w.replay = nil
	return input.Live{}
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.loop == nil {
		return
	}
	w.screen = screen
	defer func() { w.screen = nil }()
	w.loop.OnDraw()
}

// Layout implements ebiten.Game. The screen always matches the window, so
// letterboxing is done by the loop rather than by ebiten.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	outsideWidth, outsideHeight = max(outsideWidth, 1), max(outsideHeight, 1)
	if outsideWidth != w.w || outsideHeight != w.h {
		w.w, w.h = outsideWidth, outsideHeight
		if w.opts.Debug {
			log.Printf("Resize: %dx%d", w.w, w.h)
		}
		if w.loop != nil {
			w.loop.OnResize(w.w, w.h)
		}
	}
	return w.w, w.h
}

// Size implements game.Host.
func (w *Window) Size() (int, int) {
	return w.w, w.h
}

// Clear implements game.Host.
func (w *Window) Clear(c colors.RGBA) {
	if w.screen != nil {
		w.screen.Fill(c.Bytes())
	}
}

// SetViewport implements game.Host.
func (w *Window) SetViewport(r image.Rectangle) {
	w.view = r
}

// SetProjection implements game.Host. ebiten draws in 2D, so the projection
// is reduced to the affine map it induces on the view plane: virtual units
// scaled into the viewport rectangle.
func (w *Window) SetProjection(p viewport.Projection) {
	w.base = planeTransform(p)
	if w.opts.Debug {
		log.Printf("Projection: fov=%.0f aspect=%.3f eye=(%.1f, %.1f, %.1f) viewport=%v",
			p.FovY, p.Aspect, p.Eye.X, p.Eye.Y, p.Eye.Z, p.Viewport)
	}
}

func planeTransform(p viewport.Projection) ebiten.GeoM {
	var g ebiten.GeoM
	vw, vh := 2*p.Center.X, 2*p.Center.Y
	if vw <= 0 || vh <= 0 {
		return g
	}
	r := p.Viewport
	g.Scale(float64(r.Dx())/vw, float64(r.Dy())/vh)
	g.Translate(float64(r.Min.X), float64(r.Min.Y))
	return g
}

// Present implements game.Host. The batch is flushed into the viewport
// rectangle, so nothing spills onto the bars.
func (w *Window) Present(b *render.Batch) {
	if w.screen == nil || w.view.Empty() {
		b.Discard()
		return
	}
	dst := w.screen.SubImage(w.view).(*ebiten.Image)
	b.Flush(dst, w.base)
}

// Attach implements game.Host.
func (w *Window) Attach(o input.Observer) {
	w.observers = append(w.observers, o)
}
