package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/philipparndt/clipview/pkg/clipping"
	"github.com/philipparndt/clipview/pkg/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("CLIPVIEW_CONFIG", path)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CLIPVIEW_CONFIG", "")

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0, c.Slider.Min)
	assert.Equal(t, 100, c.Slider.Max)
	assert.Equal(t, []string{"x"}, c.Slider.Enabled)
	assert.Equal(t, 1400, c.Window.Width)
	assert.Equal(t, 900, c.Window.Height)
	assert.True(t, c.Window.Watch)
	assert.Equal(t, slog.LevelWarn, c.LogLevel())

	kinds, err := c.Kinds()
	require.NoError(t, err)
	assert.Equal(t, []volume.Kind{volume.KindImage, volume.KindLabels}, kinds)

	axes, err := c.EnabledAxes()
	require.NoError(t, err)
	assert.Equal(t, map[clipping.Axis]bool{clipping.AxisX: true}, axes)
}

func TestLoadFile(t *testing.T) {
	writeConfig(t, `
[slider]
max = 50
enabled = ["y", "z"]

[clipping]
kinds = ["image"]

[window]
watch = false

[log]
level = "debug"
`)

	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, c.Slider.Max)
	assert.Equal(t, []string{"y", "z"}, c.Slider.Enabled)
	assert.Equal(t, []string{"image"}, c.Clipping.Kinds)
	assert.False(t, c.Window.Watch)
	assert.Equal(t, 1400, c.Window.Width)
	assert.Equal(t, slog.LevelDebug, c.LogLevel())
}

func TestLoadEnvOverride(t *testing.T) {
	writeConfig(t, "[window]\nwidth = 800\n")
	t.Setenv("CLIPVIEW_WINDOW_WIDTH", "1024")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1024, c.Window.Width)
}

func TestLoadRejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"kind", "[clipping]\nkinds = [\"surface\"]\n"},
		{"axis", "[slider]\nenabled = [\"w\"]\n"},
		{"level", "[log]\nlevel = \"loud\"\n"},
		{"range", "[slider]\nmin = 10\nmax = 5\n"},
		{"empty range", "[slider]\nmin = 5\nmax = 5\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeConfig(t, tt.content)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	t.Setenv("CLIPVIEW_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))
	_, err := Load()
	assert.Error(t, err)
}
