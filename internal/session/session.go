// Package session wires a viewer, its scene file and the three axis
// controls into a clipping manager. Front ends drive it from their UI
// thread; nothing here is safe for concurrent use.
package session

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/philipparndt/clipview/internal/config"
	"github.com/philipparndt/clipview/pkg/clipping"
	"github.com/philipparndt/clipview/pkg/scene"
	"github.com/philipparndt/clipview/pkg/slider"
	"github.com/philipparndt/clipview/pkg/volume"
)

// Order is the display order of the axis controls.
var Order = []clipping.Axis{clipping.AxisX, clipping.AxisY, clipping.AxisZ}

// Options configures a Session.
type Options struct {
	Min, Max int
	Enabled  map[clipping.Axis]bool
	Kinds    []volume.Kind
	Logger   *slog.Logger
}

// DefaultOptions matches the default configuration.
func DefaultOptions() Options {
	return Options{
		Min:     slider.DefaultMin,
		Max:     slider.DefaultMax,
		Enabled: map[clipping.Axis]bool{clipping.AxisX: true},
		Kinds:   clipping.DefaultKinds,
	}
}

// OptionsFromConfig converts the loaded configuration.
func OptionsFromConfig(cfg config.Config, log *slog.Logger) (Options, error) {
	kinds, err := cfg.Kinds()
	if err != nil {
		return Options{}, err
	}
	enabled, err := cfg.EnabledAxes()
	if err != nil {
		return Options{}, err
	}
	return Options{
		Min:     cfg.Slider.Min,
		Max:     cfg.Slider.Max,
		Enabled: enabled,
		Kinds:   kinds,
		Logger:  log,
	}, nil
}

// Session is one viewer with its clipping controls.
type Session struct {
	viewer    *volume.Viewer
	manager   *clipping.Manager
	controls  map[clipping.Axis]*slider.Control
	sceneFile string
	selected  clipping.Axis
	log       *slog.Logger
}

// New loads sceneFile (if not empty) into a fresh viewer, then builds the
// controls and the manager so the loaded layers are planed right away.
func New(sceneFile string, opts Options) (*Session, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Session{
		viewer:    volume.NewViewer(),
		controls:  make(map[clipping.Axis]*slider.Control, len(Order)),
		sceneFile: sceneFile,
		selected:  clipping.AxisX,
		log:       log,
	}

	if sceneFile != "" {
		sc, err := scene.Load(sceneFile)
		if err != nil {
			return nil, err
		}
		if _, err := sc.Apply(s.viewer); err != nil {
			return nil, err
		}
	}

	list := make([]*slider.Control, 0, len(Order))
	for _, axis := range Order {
		c := slider.New(axis.String(), slider.WithBounds(opts.Min, opts.Max), slider.WithValue(opts.Min, opts.Max))
		if opts.Enabled[axis] {
			c.SetState(true)
		}
		s.controls[axis] = c
		list = append(list, c)
	}

	m, err := clipping.NewManager(s.viewer, clipping.DefaultIndexRef(), list,
		clipping.WithKinds(opts.Kinds...), clipping.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	s.manager = m
	return s, nil
}

// Viewer returns the session's viewer.
func (s *Session) Viewer() *volume.Viewer { return s.viewer }

// Manager returns the plane manager.
func (s *Session) Manager() *clipping.Manager { return s.manager }

// SceneFile returns the path the session was loaded from.
func (s *Session) SceneFile() string { return s.sceneFile }

// Control returns the control of axis.
func (s *Session) Control(axis clipping.Axis) *slider.Control {
	return s.controls[axis]
}

// Controls returns the controls in display order.
func (s *Session) Controls() []*slider.Control {
	out := make([]*slider.Control, 0, len(Order))
	for _, axis := range Order {
		out = append(out, s.controls[axis])
	}
	return out
}

// Reload re-reads the scene file and appends the layers it now has that
// the viewer does not. Removed or changed layers are left as they are.
func (s *Session) Reload() ([]string, error) {
	if s.sceneFile == "" {
		return nil, nil
	}
	sc, err := scene.Load(s.sceneFile)
	if err != nil {
		return nil, err
	}
	added, err := sc.Apply(s.viewer)
	if len(added) > 0 {
		s.log.Info("scene reloaded", "file", s.sceneFile, "added", added)
	}
	return added, err
}

// Selected returns the axis keyboard edits apply to.
func (s *Session) Selected() clipping.Axis { return s.selected }

// Select changes the axis keyboard edits apply to.
func (s *Session) Select(axis clipping.Axis) {
	if _, ok := s.controls[axis]; ok {
		s.selected = axis
	}
}

// Toggle flips the selected axis on or off.
func (s *Session) Toggle() {
	c := s.controls[s.selected]
	c.SetState(!c.State())
}

// Nudge moves the thumbs of the selected axis by the given steps.
func (s *Session) Nudge(low, high int) {
	c := s.controls[s.selected]
	v := c.Value()
	c.SetValue(slider.Interval{Low: v.Low + low, High: v.High + high})
}

// Reset puts every control back to its full range and turns it off.
func (s *Session) Reset() {
	for _, c := range s.Controls() {
		min, max := c.Bounds()
		c.SetValue(slider.Interval{Low: min, High: max})
		c.SetState(false)
	}
}

// Close detaches the manager.
func (s *Session) Close() error {
	return s.manager.Close()
}
