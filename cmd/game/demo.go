package main

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
	"github.com/younwookim/framekit/internal/application/clock"
	"github.com/younwookim/framekit/internal/application/game"
	"github.com/younwookim/framekit/internal/application/render"
	"github.com/younwookim/framekit/internal/application/scene"
	"github.com/younwookim/framekit/internal/domain/colors"
	"github.com/younwookim/framekit/internal/domain/geom"
)

// Colors for rendering
var (
	colorTile    = colors.FromBytes(180, 180, 230)
	colorTileAlt = colors.FromBytes(160, 160, 215)
	colorPlayer  = colors.FromBytes(100, 200, 100)
	colorBlink   = colors.FromBytes(255, 215, 0)
	colorShade   = colors.FromBytes(0, 0, 0, 140)
)

const (
	tileSize    = 32
	playerSize  = 12
	playerSpeed = 120.0
	zoomStep    = 0.1
	rotateStep  = math.Pi / 12
)

// demo is the application's hook set: a blinking marker on an interval
// timer and a single field scene.
type demo struct {
	game.NopHooks
	loop  *game.Loop
	blink *clock.Callback
	lit   bool
}

func (d *demo) Initialize(l *game.Loop) error {
	d.loop = l
	d.blink = clock.NewCallback("blink", func(float64, clock.Args) { d.lit = !d.lit })
	return l.ScheduleInterval(d.blink, 0.5, clock.Args{})
}

func (d *demo) LoadContent(l *game.Loop) error {
	log.Printf("Indexed %d resources", l.Resources().Len())
	return l.AddScene(newField())
}

func (d *demo) Update(float64) {
	if d.loop.Keyboard().JustPressed(ebiten.KeyF3) {
		d.loop.SetShowFPS(!d.loop.Config().ShowFPS)
	}
}

func (d *demo) Draw(b *render.Batch) {
	if d.lit {
		b.Add(render.GroupFringe, render.Rect(4, 4, 8, 8, colorBlink))
	}
}

// field is the main scene: a tiled floor and a player square the camera
// follows. P or Escape opens the pause popup.
type field struct {
	scene.Base
	player geom.Vec2
	pulse  float64
	ticker *clock.Callback
	paused *pause
}

func newField() *field {
	return &field{Base: scene.NewBase(false)}
}

func (f *field) LoadContent() error {
	o := f.Owner()
	v := o.Virtual()
	f.player = geom.V2(float64(v.W)/2, float64(v.H)/2)
	f.ticker = clock.NewCallback("field.pulse", func(dt float64, _ clock.Args) { f.pulse += dt })
	o.Schedule(f.ticker, clock.Args{})
	o.Camera().Follow(func() geom.Vec2 { return f.player }, 0.1)
	return nil
}

func (f *field) OnExit() {
	f.Owner().Unschedule(f.ticker)
	f.Owner().Camera().Follow(nil, 0)
}

func (f *field) Update(dt float64) {
	if f.paused != nil {
		return
	}
	o := f.Owner()
	kb, mouse, cam := o.Keyboard(), o.Mouse(), o.Camera()

	if kb.JustPressed(ebiten.KeyP) || kb.JustPressed(ebiten.KeyEscape) {
		p := newPause(func() { f.paused = nil })
		if err := o.AddScene(p); err != nil {
			log.Printf("Failed to open pause: %v", err)
			return
		}
		f.paused = p
		return
	}

	var dir geom.Vec2
	if kb.IsDown(ebiten.KeyA) {
		dir.X--
	}
	if kb.IsDown(ebiten.KeyD) {
		dir.X++
	}
	if kb.IsDown(ebiten.KeyW) {
		dir.Y--
	}
	if kb.IsDown(ebiten.KeyS) {
		dir.Y++
	}
	if !dir.IsZero() {
		f.player = f.player.Add(dir.Normalize().Scale(playerSpeed * dt))
	}

	if mouse.WheelY != 0 {
		zoom := math.Max(0.25, math.Min(4, cam.Zoom*(1+zoomStep*mouse.WheelY)))
		cam.ZoomTo(zoom, 0.15, ease.OutQuad)
	}
	if kb.JustPressed(ebiten.KeyQ) {
		cam.RotateTo(cam.Rotation-rotateStep, 0.2, ease.InOutQuad)
	}
	if kb.JustPressed(ebiten.KeyE) {
		cam.RotateTo(cam.Rotation+rotateStep, 0.2, ease.InOutQuad)
	}
	if mouse.JustPressed(ebiten.MouseButtonLeft) {
		v := o.Virtual()
		center := geom.V2(float64(v.W)/2, float64(v.H)/2)
		f.player = cam.ScreenToWorld(center, mouse.Virtual())
	}
}

func (f *field) Draw(b *render.Batch) {
	v := f.Owner().Virtual()
	for y := 0; y < v.H; y += tileSize {
		for x := 0; x < v.W; x += tileSize {
			c := colorTile
			if (x/tileSize+y/tileSize)%2 == 1 {
				c = colorTileAlt
			}
			b.Add(render.GroupBase, render.Rect(float64(x), float64(y), tileSize, tileSize, c))
		}
	}

	size := playerSize + 2*math.Sin(f.pulse*2*math.Pi)
	b.Add(render.GroupObject, render.Rect(f.player.X-size/2, f.player.Y-size/2, size, size, colorPlayer))
}

// pause is a popup that suspends every scheduled callback while open.
type pause struct {
	scene.Base
	onClose func()
}

func newPause(onClose func()) *pause {
	return &pause{Base: scene.NewBase(true), onClose: onClose}
}

func (p *pause) LoadContent() error {
	p.Owner().PauseScheduler()
	return nil
}

func (p *pause) Update(float64) {
	kb := p.Owner().Keyboard()
	if kb.JustPressed(ebiten.KeyP) || kb.JustPressed(ebiten.KeyEscape) {
		if err := p.Owner().RemoveScene(p); err != nil {
			log.Printf("Failed to close pause: %v", err)
		}
	}
}

func (p *pause) Draw(b *render.Batch) {
	v := p.Owner().Virtual()
	// Undo the camera so the shade covers the whole view.
	b.PushTransform()
	b.MultTransform(inverse(b.Transform()))
	b.Add(render.GroupText, render.Rect(0, 0, float64(v.W), float64(v.H), colorShade))
	b.Add(render.GroupText, render.Text("PAUSED  (P to resume)", float64(v.W)/2-60, float64(v.H)/2))
	b.PopTransform()
}

func (p *pause) OnExit() {
	if err := p.Owner().ResumeScheduler(); err != nil {
		log.Printf("Failed to resume scheduler: %v", err)
	}
	if p.onClose != nil {
		p.onClose()
	}
}

func inverse(g ebiten.GeoM) ebiten.GeoM {
	if g.IsInvertible() {
		g.Invert()
	}
	return g
}
