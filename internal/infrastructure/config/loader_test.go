package config

import (
	"encoding/json"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/framekit/internal/domain/colors"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, "framekit demo", cfg.Window.Title)
	assert.Equal(t, 320, cfg.Virtual.Width)
	assert.Equal(t, 240, cfg.Virtual.Height)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, colors.LavenderBlue, cfg.Background.RGBA)
	assert.True(t, cfg.ShowFPS)
	assert.Equal(t, 60, cfg.TPS)
}

func TestLoader_Defaults(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{"game.json": {Data: []byte(`{}`)}}, ".")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, SizeConfig{Width: DefaultWidth, Height: DefaultHeight}, cfg.Virtual)
	assert.Equal(t, DefaultTitle, cfg.Window.Title)
	assert.Equal(t, DefaultWidth, cfg.Window.Width)
	assert.Equal(t, DefaultTPS, cfg.TPS)
	assert.Equal(t, colors.LavenderBlue, cfg.Background.RGBA)
	require.NotNil(t, cfg.AutoClear)
	assert.True(t, *cfg.AutoClear)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewFSLoader(fstest.MapFS{}, ".").LoadGame()
	assert.Error(t, err)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{"zero virtual height", `{"virtual": {"width": 320, "height": 0}}`},
		{"negative window", `{"window": {"width": -1, "height": 10}}`},
		{"negative tps", `{"tps": -5}`},
		{"escaping resource path", `{"resourcePaths": ["../assets"]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.json))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestColorSpec_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		json string
		want [4]uint8
	}{
		{"rgb defaults alpha", `[255, 0, 0]`, [4]uint8{255, 0, 0, 255}},
		{"rgba", `[255, 0, 0, 128]`, [4]uint8{255, 0, 0, 128}},
		{"css name", `"CornflowerBlue"`, [4]uint8{100, 149, 237, 255}},
		{"palette name", `"Lavender Blue"`, [4]uint8{204, 204, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c ColorSpec
			require.NoError(t, json.Unmarshal([]byte(tt.json), &c))
			assert.True(t, c.Set)
			n := c.Bytes()
			assert.Equal(t, tt.want, [4]uint8{n.R, n.G, n.B, n.A})
		})
	}
}

func TestColorSpec_UnmarshalErrors(t *testing.T) {
	for _, in := range []string{`"not-a-color"`, `[1, 2]`, `[1, 2, 3, 4, 5]`, `[300, 0, 0]`, `{}`} {
		var c ColorSpec
		assert.Error(t, json.Unmarshal([]byte(in), &c), in)
	}
}

func TestColorSpec_MarshalRoundTrip(t *testing.T) {
	in := ColorSpec{RGBA: colors.FromBytes(255, 0, 0, 128), Set: true}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `[255, 0, 0, 128]`, string(data))

	var out ColorSpec
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestGameFile_ToLoopConfig(t *testing.T) {
	cfg, err := Parse([]byte(`{"virtual": {"width": 640, "height": 360}, "background": [0, 0, 0], "autoClear": false, "resourcePaths": ["assets"]}`))
	require.NoError(t, err)

	lc := cfg.ToLoopConfig()

	assert.Equal(t, 640, lc.VirtualWidth)
	assert.Equal(t, 360, lc.VirtualHeight)
	assert.Equal(t, colors.Black, lc.Background)
	assert.False(t, lc.AutoClear)
	assert.Equal(t, []string{"assets"}, lc.ResourcePaths)
	assert.Equal(t, DefaultTitle, lc.Caption)
}
