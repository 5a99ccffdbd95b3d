// Package slider holds the toolkit-independent state of a labeled
// on/off toggle plus integer range control, one per spatial axis.
package slider

import (
	"fmt"

	"github.com/philipparndt/clipview/pkg/event"
)

// Default domain of a range control.
const (
	DefaultMin = 0
	DefaultMax = 100
)

// Interval is the pair of thumb positions of a range control.
type Interval struct {
	Low, High int
}

func (iv Interval) String() string {
	return fmt.Sprintf("(%d, %d)", iv.Low, iv.High)
}

// StateEvent is emitted whenever the toggle is set.
type StateEvent struct {
	Name  string
	State bool
}

// ValueEvent is emitted whenever the thumbs are set.
type ValueEvent struct {
	Name  string
	Value Interval
}

// Control is a named toggle with a range. Every SetState and SetValue call
// emits its event, whether or not the value actually changed.
type Control struct {
	name     string
	state    bool
	value    Interval
	min, max int

	StateChanged event.Signal[StateEvent]
	ValueChanged event.Signal[ValueEvent]
}

// Option configures a Control at construction.
type Option func(*options)

type options struct {
	min, max  int
	low, high int
}

// WithBounds sets the legal index domain [min, max].
func WithBounds(min, max int) Option {
	return func(o *options) {
		o.min, o.max = min, max
	}
}

// WithValue sets the initial thumb positions.
func WithValue(low, high int) Option {
	return func(o *options) {
		o.low, o.high = low, high
	}
}

// New creates an unchecked control. The initial value is applied through
// SetValue, so one value event is emitted (to no one, as nothing can be
// connected yet).
func New(name string, opts ...Option) *Control {
	o := options{min: DefaultMin, max: DefaultMax, low: DefaultMin, high: DefaultMax}
	for _, opt := range opts {
		opt(&o)
	}

	if o.min > o.max {
		o.min, o.max = o.max, o.min
	}
	c := &Control{name: name, min: o.min, max: o.max}
	c.SetValue(Interval{Low: o.low, High: o.high})
	return c
}

// Name returns the name the control was created with.
func (c *Control) Name() string {
	return c.name
}

// State reports whether the toggle is checked.
func (c *Control) State() bool {
	return c.state
}

// SetState sets the toggle and emits a StateEvent.
func (c *Control) SetState(state bool) {
	c.state = state
	c.StateChanged.Emit(StateEvent{Name: c.name, State: state})
}

// Value returns the current thumb positions.
func (c *Control) Value() Interval {
	return c.value
}

// SetValue moves the thumbs and emits a ValueEvent. Positions are clamped
// into the domain and swapped if given in descending order.
func (c *Control) SetValue(v Interval) {
	c.value = c.normalize(v)
	c.ValueChanged.Emit(ValueEvent{Name: c.name, Value: c.value})
}

// Bounds returns the legal index domain.
func (c *Control) Bounds() (min, max int) {
	return c.min, c.max
}

// SetBounds changes the index domain. It emits nothing on its own; if the
// current value no longer fits it is clamped, which is a value change.
func (c *Control) SetBounds(min, max int) {
	if min > max {
		min, max = max, min
	}
	c.min, c.max = min, max

	clamped := c.normalize(c.value)
	if clamped != c.value {
		c.SetValue(clamped)
	}
}

func (c *Control) normalize(v Interval) Interval {
	if v.Low > v.High {
		v.Low, v.High = v.High, v.Low
	}
	return Interval{Low: clamp(v.Low, c.min, c.max), High: clamp(v.High, c.min, c.max)}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
