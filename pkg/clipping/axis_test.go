package clipping

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAxis(t *testing.T) {
	for _, name := range []string{"z", "y", "x"} {
		axis, err := ParseAxis(name)
		require.NoError(t, err)
		assert.Equal(t, name, axis.String())
	}

	axis, err := ParseAxis("X")
	require.NoError(t, err)
	assert.Equal(t, AxisX, axis)

	_, err = ParseAxis("w")
	assert.True(t, errors.Is(err, ErrUnknownAxis))
}

func TestDefaultIndexRef(t *testing.T) {
	ref := DefaultIndexRef()

	assert.Equal(t, []Axis{AxisZ, AxisY, AxisX}, ref.Axes())
	assert.Equal(t, []string{"x", "y", "z"}, ref.Names())
	assert.True(t, ref.Complete())

	want := map[Axis]AxisRef{
		AxisZ: {PlanePair: 0, Coord: 0},
		AxisY: {PlanePair: 2, Coord: 1},
		AxisX: {PlanePair: 4, Coord: 2},
	}
	for axis, r := range want {
		got, ok := ref.Lookup(axis)
		require.True(t, ok)
		assert.Equal(t, r, got, axis.String())
	}

	_, ok := ref.Lookup(Axis(7))
	assert.False(t, ok)
}

func TestNewIndexRefRejects(t *testing.T) {
	tests := []struct {
		name string
		refs map[Axis]AxisRef
	}{
		{"missing axis", map[Axis]AxisRef{AxisZ: {0, 0}, AxisY: {2, 1}}},
		{"odd pair", map[Axis]AxisRef{AxisZ: {1, 0}, AxisY: {2, 1}, AxisX: {4, 2}}},
		{"pair out of range", map[Axis]AxisRef{AxisZ: {0, 0}, AxisY: {2, 1}, AxisX: {6, 2}}},
		{"coord out of range", map[Axis]AxisRef{AxisZ: {0, 0}, AxisY: {2, 1}, AxisX: {4, 3}}},
		{"reused pair", map[Axis]AxisRef{AxisZ: {0, 0}, AxisY: {0, 1}, AxisX: {4, 2}}},
		{"reused coord", map[Axis]AxisRef{AxisZ: {0, 0}, AxisY: {2, 0}, AxisX: {4, 2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIndexRef(tt.refs)
			assert.True(t, errors.Is(err, ErrInvalidRef), "got %v", err)
		})
	}
}

func TestNewIndexRefCustomOrder(t *testing.T) {
	ref, err := NewIndexRef(map[Axis]AxisRef{
		AxisX: {PlanePair: 0, Coord: 2},
		AxisY: {PlanePair: 2, Coord: 1},
		AxisZ: {PlanePair: 4, Coord: 0},
	})
	require.NoError(t, err)

	r, ok := ref.Lookup(AxisX)
	require.True(t, ok)
	assert.Equal(t, AxisRef{PlanePair: 0, Coord: 2}, r)
	assert.False(t, IndexRef{}.Complete())
}
