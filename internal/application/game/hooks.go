package game

import "github.com/younwookim/framekit/internal/application/render"

// Hooks are the application's customization points. Initialize and
// LoadContent run once each, in that order, before the first frame.
type Hooks interface {
	Initialize(l *Loop) error
	LoadContent(l *Loop) error
	Update(dt float64)
	Draw(b *render.Batch)
}

// NopHooks implements every hook as a no-op. Embed it to override a subset.
type NopHooks struct{}

func (NopHooks) Initialize(*Loop) error  { return nil }
func (NopHooks) LoadContent(*Loop) error { return nil }
func (NopHooks) Update(float64)          {}
func (NopHooks) Draw(*render.Batch)      {}
