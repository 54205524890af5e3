package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/younwookim/framekit/internal/domain/colors"
)

// GameFile is the root config for game.json
type GameFile struct {
	Window        WindowConfig `json:"window"`
	Virtual       SizeConfig   `json:"virtual"`
	Background    ColorSpec    `json:"background"`
	AutoClear     *bool        `json:"autoClear"`
	ShowFPS       bool         `json:"showFPS"`
	TPS           int          `json:"tps"`
	ResourcePaths []string     `json:"resourcePaths"`
}

// WindowConfig sizes the host window. Zero width or height means the
// virtual size scaled by Scale.
type WindowConfig struct {
	Title      string `json:"title"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Scale      int    `json:"scale"`
	Resizable  bool   `json:"resizable"`
	Fullscreen bool   `json:"fullscreen"`
}

// SizeConfig is a width/height pair in pixels.
type SizeConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ColorSpec is a color given as [r,g,b], [r,g,b,a] (0-255, alpha defaults
// to 255) or a CSS color name.
type ColorSpec struct {
	colors.RGBA
	Set bool
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *ColorSpec) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		rgba, ok := colors.Named(name)
		if !ok {
			return fmt.Errorf("unknown color name %q", name)
		}
		c.RGBA, c.Set = rgba, true
		return nil
	}

	var channels []int
	if err := json.Unmarshal(data, &channels); err != nil {
		return fmt.Errorf("color must be a name or an array: %w", err)
	}
	if len(channels) != 3 && len(channels) != 4 {
		return fmt.Errorf("color needs 3 or 4 channels, got %d", len(channels))
	}
	b := make([]uint8, len(channels))
	for i, v := range channels {
		if v < 0 || v > 255 {
			return fmt.Errorf("color channel %d out of range: %d", i, v)
		}
		b[i] = uint8(v)
	}
	c.RGBA, c.Set = colors.FromBytes(b[0], b[1], b[2], b[3:]...), true
	return nil
}

// MarshalJSON writes the color as a 4-element byte array.
func (c ColorSpec) MarshalJSON() ([]byte, error) {
	if !c.Set {
		return []byte("null"), nil
	}
	n := c.Bytes()
	return json.Marshal([]int{int(n.R), int(n.G), int(n.B), int(n.A)})
}
