// Package clipping keeps six axis-aligned clipping planes per volumetric
// layer in sync with one range slider per spatial axis.
//
// Planes are created once per eligible layer, when the manager first sees
// it, in the order [z-low, z-high, y-low, y-high, x-low, x-high]. After
// that, slider events only rewrite the enabled flag or position of the two
// planes belonging to the slider's axis. Everything runs on the caller's
// goroutine; the manager holds no locks.
package clipping

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/philipparndt/clipview/pkg/event"
	"github.com/philipparndt/clipview/pkg/geometry"
	"github.com/philipparndt/clipview/pkg/slider"
	"github.com/philipparndt/clipview/pkg/volume"
	"golang.org/x/image/math/f64"
)

var (
	// ErrSliderMismatch means the slider names differ from the axes of
	// the index table.
	ErrSliderMismatch = errors.New("slider names do not match axis table")
	// ErrUnknownSlider is returned when unregistering a name that is not
	// registered.
	ErrUnknownSlider = errors.New("slider not registered")
	// ErrUnknownAxis is returned for names that are not an axis of the
	// index table.
	ErrUnknownAxis = errors.New("unknown axis")
	// ErrDuplicateSlider is returned when registering a name twice.
	ErrDuplicateSlider = errors.New("slider already registered")
)

// DefaultKinds are the layer kinds that receive clipping planes.
var DefaultKinds = []volume.Kind{volume.KindImage, volume.KindLabels}

// Viewer is the part of a viewer the manager observes.
type Viewer interface {
	Layers() *volume.LayerList
}

type registration struct {
	control *slider.Control
	axis    Axis
	state   event.Connection
	value   event.Connection
}

// Manager connects slider controls to the clipping planes of every
// eligible layer of a viewer.
type Manager struct {
	viewer   Viewer
	ref      IndexRef
	kinds    map[volume.Kind]bool
	log      *slog.Logger
	sliders  map[string]*registration
	inserted event.Connection
	closed   bool
}

// Option configures a Manager.
type Option func(*Manager)

// WithKinds replaces the set of eligible layer kinds.
func WithKinds(kinds ...volume.Kind) Option {
	return func(m *Manager) {
		m.kinds = make(map[volume.Kind]bool, len(kinds))
		for _, k := range kinds {
			m.kinds[k] = true
		}
	}
}

// WithLogger sets the logger used for spawn decisions.
func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

// NewManager registers sliders, spawns planes on the layers already in the
// viewer and follows layer insertions from then on. The slider names must
// be exactly the axes of ref; otherwise nothing is registered and
// ErrSliderMismatch is returned.
func NewManager(viewer Viewer, ref IndexRef, sliders []*slider.Control, opts ...Option) (*Manager, error) {
	m := &Manager{
		viewer:  viewer,
		ref:     ref,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		sliders: make(map[string]*registration, len(sliders)),
	}
	WithKinds(DefaultKinds...)(m)
	for _, opt := range opts {
		opt(m)
	}

	if !ref.Complete() {
		return nil, fmt.Errorf("new manager: %w: table has axes %v", ErrInvalidRef, ref.Axes())
	}
	if err := checkNames(ref, sliders); err != nil {
		return nil, err
	}

	for _, s := range sliders {
		if err := m.RegisterSlider(s); err != nil {
			return nil, err
		}
	}

	for _, layer := range viewer.Layers().All() {
		if m.Eligible(layer) {
			m.SpawnPlanes(layer)
		}
	}

	m.inserted = viewer.Layers().Inserted.Connect(m.layerInserted)
	return m, nil
}

func checkNames(ref IndexRef, sliders []*slider.Control) error {
	names := make([]string, 0, len(sliders))
	seen := make(map[string]bool, len(sliders))
	for _, s := range sliders {
		name := strings.ToLower(s.Name())
		if seen[name] {
			return fmt.Errorf("%w: %q given twice", ErrSliderMismatch, s.Name())
		}
		seen[name] = true
		names = append(names, name)
	}
	sort.Strings(names)

	want := ref.Names()
	if strings.Join(names, ",") != strings.Join(want, ",") {
		return fmt.Errorf("%w: sliders %v, axes %v", ErrSliderMismatch, names, want)
	}
	return nil
}

// RegisterSlider adds a control and connects its signals.
func (m *Manager) RegisterSlider(s *slider.Control) error {
	axis, err := ParseAxis(s.Name())
	if err != nil {
		return fmt.Errorf("register slider: %w", err)
	}
	if _, ok := m.ref.Lookup(axis); !ok {
		return fmt.Errorf("register slider: %w: %v not in axis table", ErrUnknownAxis, axis)
	}
	for _, reg := range m.sliders {
		if reg.axis == axis {
			return fmt.Errorf("register slider %q: %w", s.Name(), ErrDuplicateSlider)
		}
	}

	m.sliders[axis.String()] = &registration{
		control: s,
		axis:    axis,
		state:   s.StateChanged.Connect(m.sliderStateChanged),
		value:   s.ValueChanged.Connect(m.sliderValueChanged),
	}
	return nil
}

// UnregisterSlider disconnects the named control and hands it back, so the
// caller can dispose of it or register it again. Names match regardless
// of case.
func (m *Manager) UnregisterSlider(name string) (*slider.Control, error) {
	key := strings.ToLower(name)
	reg, ok := m.sliders[key]
	if !ok {
		return nil, fmt.Errorf("unregister %q: %w", name, ErrUnknownSlider)
	}
	delete(m.sliders, key)

	if err := reg.control.StateChanged.Disconnect(reg.state); err != nil {
		return nil, fmt.Errorf("unregister %q: %w", name, err)
	}
	if err := reg.control.ValueChanged.Disconnect(reg.value); err != nil {
		return nil, fmt.Errorf("unregister %q: %w", name, err)
	}
	return reg.control, nil
}

// Slider returns a registered control by name.
func (m *Manager) Slider(name string) (*slider.Control, bool) {
	reg, ok := m.sliders[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return reg.control, true
}

// Sliders returns the axis names of the registered controls, sorted.
func (m *Manager) Sliders() []string {
	names := make([]string, 0, len(m.sliders))
	for name := range m.sliders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ref returns the axis index table.
func (m *Manager) Ref() IndexRef {
	return m.ref
}

// Close disconnects every slider and stops following layer insertions.
func (m *Manager) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true

	var errs []error
	for _, name := range m.Sliders() {
		if _, err := m.UnregisterSlider(name); err != nil {
			errs = append(errs, err)
		}
	}
	if err := m.viewer.Layers().Inserted.Disconnect(m.inserted); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Eligible reports whether the layer's kind receives clipping planes.
func (m *Manager) Eligible(layer volume.Layer) bool {
	return m.kinds[layer.Kind()]
}

// SpawnPlanes creates the six clipping planes of a layer and caches its
// spacing tables. Layers that already have planes, or have two or fewer
// dimensions, are left alone. It reports whether planes were created.
func (m *Manager) SpawnPlanes(layer volume.Layer) bool {
	if len(layer.ClippingPlanes()) > 0 {
		m.log.Debug("layer already has clipping planes", "layer", layer.Name())
		return false
	}
	if layer.NDim() <= 2 {
		m.log.Debug("layer has no third dimension", "layer", layer.Name(), "ndim", layer.NDim())
		return false
	}

	bounds := SpatialBoundsOf(layer.Shape())
	layer.SetClipSpacing(bounds.Spacing())

	planes := make([]*volume.ClippingPlane, NumPlanes)
	for _, axis := range Axes {
		r, ok := m.ref.Lookup(axis)
		if !ok {
			continue
		}
		enabled := m.axisState(axis)
		for i, sign := range [2]float64{1, -1} {
			planes[r.PlanePair+i] = &volume.ClippingPlane{
				Position: toWorld(layer, geometry.OnAxis(r.Coord, bounds[r.Coord][i])),
				Normal:   geometry.Unit(r.Coord, sign),
				Enabled:  enabled,
			}
		}
	}
	layer.SetClippingPlanes(planes)

	m.log.Debug("spawned clipping planes", "layer", layer.Name(), "bounds", bounds)
	return true
}

func (m *Manager) axisState(axis Axis) bool {
	for _, reg := range m.sliders {
		if reg.axis == axis {
			return reg.control.State()
		}
	}
	return false
}

// planed yields the eligible layers that carry a full plane list.
func (m *Manager) planed() []volume.Layer {
	var layers []volume.Layer
	for _, layer := range m.viewer.Layers().All() {
		if m.Eligible(layer) && len(layer.ClippingPlanes()) == NumPlanes {
			layers = append(layers, layer)
		}
	}
	return layers
}

func (m *Manager) lookup(name string) (AxisRef, bool) {
	axis, err := ParseAxis(name)
	if err != nil {
		return AxisRef{}, false
	}
	return m.ref.Lookup(axis)
}

func (m *Manager) sliderStateChanged(ev slider.StateEvent) {
	r, ok := m.lookup(ev.Name)
	if !ok {
		return
	}
	for _, layer := range m.planed() {
		planes := layer.ClippingPlanes()
		planes[r.PlanePair].Enabled = ev.State
		planes[r.PlanePair+1].Enabled = ev.State
	}
}

func (m *Manager) sliderValueChanged(ev slider.ValueEvent) {
	axis, err := ParseAxis(ev.Name)
	if err != nil {
		return
	}
	r, ok := m.ref.Lookup(axis)
	if !ok {
		return
	}
	min, max := slider.DefaultMin, slider.DefaultMax
	if reg, ok := m.sliders[axis.String()]; ok {
		min, max = reg.control.Bounds()
	}
	for _, layer := range m.planed() {
		spacing := layer.ClipSpacing()
		if spacing == nil {
			m.log.Debug("layer has planes but no spacing table", "layer", layer.Name())
			continue
		}
		table := spacing[r.Coord]
		low := tableIndex(ev.Value.Low, min, max, len(table))
		high := tableIndex(ev.Value.High, min, max, len(table))
		lower := toWorld(layer, geometry.OnAxis(r.Coord, sample(table, low)))
		upper := toWorld(layer, geometry.OnAxis(r.Coord, sample(table, high)))

		planes := layer.ClippingPlanes()
		planes[r.PlanePair].Position = lower
		planes[r.PlanePair+1].Position = upper
	}
}

// tableIndex maps index i of the slider domain [min, max] onto a table of
// n samples, so both ends of the domain land on both ends of the table.
// The default 0..100 domain maps one to one onto the 101 samples.
func tableIndex(i, min, max, n int) int {
	if max == min || n < 2 {
		return 0
	}
	return int(math.Round(float64(i-min) * float64(n-1) / float64(max-min)))
}

// sample reads table[i], clamping i into the table.
func sample(table []float64, i int) float64 {
	if len(table) == 0 {
		return 0
	}
	if i < 0 {
		i = 0
	}
	if i >= len(table) {
		i = len(table) - 1
	}
	return table[i]
}

func (m *Manager) layerInserted(ev volume.InsertedEvent) {
	layer := ev.Source.Last()
	if layer == nil || !m.Eligible(layer) {
		return
	}
	m.SpawnPlanes(layer)
}

// Positions returns the low/high plane positions of axis on layer.
func Positions(layer volume.Layer, ref IndexRef, axis Axis) (low, high f64.Vec3, ok bool) {
	r, found := ref.Lookup(axis)
	planes := layer.ClippingPlanes()
	if !found || len(planes) != NumPlanes {
		return f64.Vec3{}, f64.Vec3{}, false
	}
	return planes[r.PlanePair].Position, planes[r.PlanePair+1].Position, true
}
