package slider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const name = "TestSlider"

func TestNewDefaults(t *testing.T) {
	c := New(name)

	assert.Equal(t, name, c.Name())
	assert.False(t, c.State())
	assert.Equal(t, Interval{Low: 0, High: 100}, c.Value())

	min, max := c.Bounds()
	assert.Equal(t, 0, min)
	assert.Equal(t, 100, max)
}

func TestNewWithOptions(t *testing.T) {
	c := New(name, WithBounds(10, 50), WithValue(20, 40))

	assert.Equal(t, Interval{Low: 20, High: 40}, c.Value())
	min, max := c.Bounds()
	assert.Equal(t, 10, min)
	assert.Equal(t, 50, max)
}

func TestNewWithBoundsOnly(t *testing.T) {
	c := New(name, WithBounds(10, 50))

	assert.Equal(t, Interval{Low: 10, High: 50}, c.Value())
	assert.Equal(t, 0, c.ValueChanged.Receivers())

	c = New(name, WithBounds(50, 10), WithValue(20, 30))
	min, max := c.Bounds()
	assert.Equal(t, 10, min)
	assert.Equal(t, 50, max)
	assert.Equal(t, Interval{Low: 20, High: 30}, c.Value())
}

func TestStateChange(t *testing.T) {
	c := New(name)
	var got []StateEvent
	c.StateChanged.Connect(func(ev StateEvent) { got = append(got, ev) })

	c.SetState(true)
	assert.True(t, c.State())
	assert.Equal(t, []StateEvent{{Name: name, State: true}}, got)

	// unchanged values are emitted again
	c.SetState(true)
	assert.Len(t, got, 2)
}

func TestValueChange(t *testing.T) {
	c := New(name)
	var got []ValueEvent
	c.ValueChanged.Connect(func(ev ValueEvent) { got = append(got, ev) })

	c.SetValue(Interval{Low: 10, High: 90})
	assert.Equal(t, Interval{Low: 10, High: 90}, c.Value())
	assert.Equal(t, []ValueEvent{{Name: name, Value: Interval{Low: 10, High: 90}}}, got)

	c.SetValue(Interval{Low: 10, High: 90})
	assert.Len(t, got, 2)
}

func TestValueNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   Interval
		want Interval
	}{
		{"in range", Interval{5, 6}, Interval{5, 6}},
		{"swapped", Interval{80, 20}, Interval{20, 80}},
		{"below", Interval{-10, 50}, Interval{0, 50}},
		{"above", Interval{50, 120}, Interval{50, 100}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(name)
			c.SetValue(tt.in)
			assert.Equal(t, tt.want, c.Value())
		})
	}
}

func TestRangeChange(t *testing.T) {
	c := New(name)
	var got []ValueEvent
	c.ValueChanged.Connect(func(ev ValueEvent) { got = append(got, ev) })

	c.SetBounds(30, 70)

	min, max := c.Bounds()
	assert.Equal(t, 30, min)
	assert.Equal(t, 70, max)
	assert.Equal(t, Interval{Low: 30, High: 70}, c.Value())
	assert.Equal(t, []ValueEvent{{Name: name, Value: Interval{Low: 30, High: 70}}}, got)
}

func TestRangeChangeWithoutClamp(t *testing.T) {
	c := New(name, WithValue(40, 60))
	calls := 0
	c.ValueChanged.Connect(func(ValueEvent) { calls++ })
	c.StateChanged.Connect(func(StateEvent) { calls++ })

	c.SetBounds(0, 200)
	assert.Equal(t, 0, calls)
	assert.Equal(t, Interval{Low: 40, High: 60}, c.Value())
}

func TestReceivers(t *testing.T) {
	c := New(name)
	con := c.StateChanged.Connect(func(StateEvent) {})
	assert.Equal(t, 1, c.StateChanged.Receivers())
	assert.Equal(t, 0, c.ValueChanged.Receivers())

	assert.NoError(t, c.StateChanged.Disconnect(con))
	assert.Equal(t, 0, c.StateChanged.Receivers())
}
