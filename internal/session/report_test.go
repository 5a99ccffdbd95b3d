package session

import (
	"bytes"
	"errors"
	"testing"

	"github.com/philipparndt/clipview/pkg/clipping"
	"github.com/philipparndt/clipview/pkg/slider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSet(t *testing.T) {
	axis, iv, err := ParseSet("y=10:90")
	require.NoError(t, err)
	assert.Equal(t, clipping.AxisY, axis)
	assert.Equal(t, slider.Interval{Low: 10, High: 90}, iv)

	axis, iv, err = ParseSet(" Z = 5 : 6 ")
	require.NoError(t, err)
	assert.Equal(t, clipping.AxisZ, axis)
	assert.Equal(t, slider.Interval{Low: 5, High: 6}, iv)

	for _, bad := range []string{"y", "y=10", "w=1:2", "x=a:2", "x=1:b"} {
		_, _, err := ParseSet(bad)
		assert.Error(t, err, bad)
	}

	_, _, err = ParseSet("w=1:2")
	assert.True(t, errors.Is(err, clipping.ErrUnknownAxis))
}

func TestApplyEdits(t *testing.T) {
	s := newSession(t)

	err := s.Apply(Edits{
		Enable:  []string{"y", "z"},
		Disable: []string{"x"},
		Set:     []string{"y=10:90"},
	})
	require.NoError(t, err)

	assert.False(t, s.Control(clipping.AxisX).State())
	assert.True(t, s.Control(clipping.AxisY).State())
	assert.True(t, s.Control(clipping.AxisZ).State())
	assert.Equal(t, slider.Interval{Low: 10, High: 90}, s.Control(clipping.AxisY).Value())

	assert.Error(t, s.Apply(Edits{Enable: []string{"q"}}))
	assert.Error(t, s.Apply(Edits{Disable: []string{"q"}}))
	assert.Error(t, s.Apply(Edits{Set: []string{"q=1:2"}}))
}

func TestWritePlanes(t *testing.T) {
	s := newSession(t)
	require.NoError(t, s.Apply(Edits{Set: []string{"x=0:50"}}))

	var buf bytes.Buffer
	require.NoError(t, s.WritePlanes(&buf))
	out := buf.String()

	assert.Contains(t, out, "x: on  (0, 50)")
	assert.Contains(t, out, "y: off (0, 100)")
	assert.Contains(t, out, "Position (z, y, x)")
	assert.Contains(t, out, "x-high")
	assert.Contains(t, out, "(0.00, 0.00, 15.00)")
	assert.NotContains(t, out, "pts")
}

func TestWritePlanesEmpty(t *testing.T) {
	s, err := New("", DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.WritePlanes(&buf))
	assert.Contains(t, buf.String(), "No layer has clipping planes.")
}

func TestWriteBounds(t *testing.T) {
	s := newSession(t)

	var buf bytes.Buffer
	require.NoError(t, s.WriteBounds(&buf))
	out := buf.String()

	assert.Contains(t, out, "0..10 / 0..20 / 0..30")
	assert.Contains(t, out, "(10.00, 20.00, 30.00)")
	assert.Contains(t, out, "pts")
	assert.Contains(t, out, "0..0 / 0..5 / 0..3")
}
