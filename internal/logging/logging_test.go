package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(slog.LevelWarn, false, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(slog.LevelWarn, false, true, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(slog.LevelWarn, true, true, false))
	assert.Equal(t, slog.LevelError, LevelFromFlags(slog.LevelWarn, true, false, true))
}

func TestNewWriterFilters(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriter(&buf, slog.LevelWarn)

	log.Info("hidden")
	log.Warn("shown", "layer", "nuclei")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "layer=nuclei")
}
