package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/younwookim/framekit/internal/application/game"
	"github.com/younwookim/framekit/internal/domain/colors"
)

// ErrInvalidConfig is returned when a config file decodes but describes an
// unusable setup.
var ErrInvalidConfig = errors.New("invalid config")

// Defaults applied by LoadGame.
const (
	DefaultTPS    = 60
	DefaultTitle  = "framekit"
	DefaultWidth  = 800
	DefaultHeight = 600
)

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.json
func (l *Loader) LoadGame() (*GameFile, error) {
	return l.Load("game.json")
}

// Load reads, defaults and validates a game config file
func (l *Loader) Load(name string) (*GameFile, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return cfg, nil
}

// Parse decodes a game config, fills defaults and validates it.
func Parse(data []byte) (*GameFile, error) {
	var cfg GameFile
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills every field left out of the file.
func (c *GameFile) ApplyDefaults() {
	if c.Virtual.Width == 0 && c.Virtual.Height == 0 {
		c.Virtual = SizeConfig{Width: DefaultWidth, Height: DefaultHeight}
	}
	if !c.Background.Set {
		c.Background = ColorSpec{RGBA: colors.LavenderBlue, Set: true}
	}
	if c.AutoClear == nil {
		on := true
		c.AutoClear = &on
	}
	if c.TPS == 0 {
		c.TPS = DefaultTPS
	}
	if c.Window.Title == "" {
		c.Window.Title = DefaultTitle
	}
	if c.Window.Scale == 0 {
		c.Window.Scale = 1
	}
	if c.Window.Width == 0 || c.Window.Height == 0 {
		c.Window.Width = c.Virtual.Width * c.Window.Scale
		c.Window.Height = c.Virtual.Height * c.Window.Scale
	}
}

// Validate reports the first unusable setting.
func (c *GameFile) Validate() error {
	switch {
	case c.Virtual.Width <= 0 || c.Virtual.Height <= 0:
		return fmt.Errorf("%w: virtual resolution %dx%d", ErrInvalidConfig, c.Virtual.Width, c.Virtual.Height)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	case c.Window.Scale < 0:
		return fmt.Errorf("%w: window scale %d", ErrInvalidConfig, c.Window.Scale)
	case c.TPS < 0:
		return fmt.Errorf("%w: tps %d", ErrInvalidConfig, c.TPS)
	}
	for _, p := range c.ResourcePaths {
		if !fs.ValidPath(p) {
			return fmt.Errorf("%w: resource path %q", ErrInvalidConfig, p)
		}
	}
	return nil
}

// ToLoopConfig converts the file into the loop's construction config.
func (c *GameFile) ToLoopConfig() game.Config {
	autoClear := true
	if c.AutoClear != nil {
		autoClear = *c.AutoClear
	}
	return game.Config{
		Caption:       c.Window.Title,
		VirtualWidth:  c.Virtual.Width,
		VirtualHeight: c.Virtual.Height,
		Background:    c.Background.RGBA,
		AutoClear:     autoClear,
		ShowFPS:       c.ShowFPS,
		ResourcePaths: append([]string(nil), c.ResourcePaths...),
	}
}
