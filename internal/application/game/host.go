package game

import (
	"image"
	"io/fs"

	"github.com/younwookim/framekit/internal/application/input"
	"github.com/younwookim/framekit/internal/application/render"
	"github.com/younwookim/framekit/internal/application/viewport"
	"github.com/younwookim/framekit/internal/domain/colors"
)

// Host is the windowing and rendering side the loop drives. The host calls
// back into the loop through OnUpdate, OnDraw and OnResize, all on one
// goroutine.
type Host interface {
	// Size returns the current physical window size in pixels.
	Size() (w, h int)
	// Clear fills the whole frame buffer, letterbox bars included.
	Clear(c colors.RGBA)
	SetViewport(r image.Rectangle)
	SetProjection(p viewport.Projection)
	// Present flushes the batch into the viewport and empties it.
	Present(b *render.Batch)
	// Attach registers an observer polled once per tick, before OnUpdate.
	Attach(o input.Observer)
}

// Config is the construction-time surface of the loop.
type Config struct {
	Caption       string
	VirtualWidth  int
	VirtualHeight int
	Background    colors.RGBA
	AutoClear     bool
	ShowFPS       bool

	// Resources is searched for resource files; nil means the working
	// directory. "." is always the first search path.
	Resources     fs.FS
	ResourcePaths []string
}

// DefaultConfig returns an 800x600 loop with a LavenderBlue background that
// clears every frame.
func DefaultConfig() Config {
	return Config{
		Caption:       "framekit",
		VirtualWidth:  800,
		VirtualHeight: 600,
		Background:    colors.LavenderBlue,
		AutoClear:     true,
	}
}
