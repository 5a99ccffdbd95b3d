package session

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/clipview/pkg/clipping"
	"github.com/philipparndt/clipview/pkg/slider"
)

// Edits are slider changes given on the command line.
type Edits struct {
	Enable  []string // axis names to turn on
	Disable []string // axis names to turn off
	Set     []string // axis=low:high
}

// Apply drives the session's controls the way the panel would: toggles
// first, then thumb positions.
func (s *Session) Apply(e Edits) error {
	for _, name := range e.Enable {
		axis, err := clipping.ParseAxis(name)
		if err != nil {
			return err
		}
		s.Control(axis).SetState(true)
	}
	for _, name := range e.Disable {
		axis, err := clipping.ParseAxis(name)
		if err != nil {
			return err
		}
		s.Control(axis).SetState(false)
	}
	for _, arg := range e.Set {
		axis, iv, err := ParseSet(arg)
		if err != nil {
			return err
		}
		s.Control(axis).SetValue(iv)
	}
	return nil
}

// ParseSet parses axis=low:high.
func ParseSet(arg string) (clipping.Axis, slider.Interval, error) {
	name, rng, ok := strings.Cut(arg, "=")
	if !ok {
		return 0, slider.Interval{}, fmt.Errorf("invalid --set %q: expected axis=low:high", arg)
	}
	axis, err := clipping.ParseAxis(strings.TrimSpace(name))
	if err != nil {
		return 0, slider.Interval{}, fmt.Errorf("invalid --set %q: %w", arg, err)
	}
	lo, hi, ok := strings.Cut(rng, ":")
	if !ok {
		return 0, slider.Interval{}, fmt.Errorf("invalid --set %q: expected axis=low:high", arg)
	}
	low, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, slider.Interval{}, fmt.Errorf("invalid --set %q: %w", arg, err)
	}
	high, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, slider.Interval{}, fmt.Errorf("invalid --set %q: %w", arg, err)
	}
	return axis, slider.Interval{Low: low, High: high}, nil
}
