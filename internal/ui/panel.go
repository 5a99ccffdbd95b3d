// Package ui holds the fyne widgets of the desktop front end.
package ui

import (
	"fmt"
	"io"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/clipview/pkg/clipping"
	"github.com/philipparndt/clipview/pkg/slider"
	"github.com/philipparndt/clipview/pkg/volume"
)

// PanelAxes is the top-to-bottom order of the dock's slider widgets.
var PanelAxes = []clipping.Axis{clipping.AxisX, clipping.AxisY, clipping.AxisZ}

// PanelConfig holds the settings of a ClipperPanel.
type PanelConfig struct {
	Min, Max int
	Enabled  map[clipping.Axis]bool
	Kinds    []volume.Kind
	Logger   *slog.Logger
}

// DefaultPanelConfig matches the default configuration: full 0..100 range
// with x clipping on.
func DefaultPanelConfig() PanelConfig {
	return PanelConfig{
		Min:     slider.DefaultMin,
		Max:     slider.DefaultMax,
		Enabled: map[clipping.Axis]bool{clipping.AxisX: true},
		Kinds:   clipping.DefaultKinds,
	}
}

// ClipperPanel is the dock: one slider widget per axis, driving a
// clipping.Manager over the viewer's layers.
type ClipperPanel struct {
	widget.BaseWidget

	manager *clipping.Manager
	widgets []*SliderWidget
}

// NewClipperPanel creates the axis controls, applies the initial toggles
// and then builds the manager, so layers already in the viewer are planed
// with those toggles.
func NewClipperPanel(viewer clipping.Viewer, cfg PanelConfig) (*ClipperPanel, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	controls := make([]*slider.Control, 0, len(PanelAxes))
	for _, axis := range PanelAxes {
		c := slider.New(axis.String(), slider.WithBounds(cfg.Min, cfg.Max), slider.WithValue(cfg.Min, cfg.Max))
		if cfg.Enabled[axis] {
			c.SetState(true)
		}
		controls = append(controls, c)
	}

	m, err := clipping.NewManager(viewer, clipping.DefaultIndexRef(), controls,
		clipping.WithKinds(cfg.Kinds...), clipping.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("clipper panel: %w", err)
	}

	p := &ClipperPanel{manager: m}
	for _, c := range controls {
		p.widgets = append(p.widgets, NewSliderWidget(c))
	}
	p.ExtendBaseWidget(p)
	return p, nil
}

// Manager returns the plane manager driven by the panel.
func (p *ClipperPanel) Manager() *clipping.Manager {
	return p.manager
}

// Widgets returns the slider widgets in display order.
func (p *ClipperPanel) Widgets() []*SliderWidget {
	return p.widgets
}

// Controls returns the bound controls in display order.
func (p *ClipperPanel) Controls() []*slider.Control {
	out := make([]*slider.Control, 0, len(p.widgets))
	for _, w := range p.widgets {
		out = append(out, w.control)
	}
	return out
}

// Widget returns the slider widget of an axis.
func (p *ClipperPanel) Widget(axis clipping.Axis) (*SliderWidget, bool) {
	for _, w := range p.widgets {
		if w.control.Name() == axis.String() {
			return w, true
		}
	}
	return nil, false
}

// Reset turns every axis off and moves the thumbs back to the full range.
func (p *ClipperPanel) Reset() {
	for _, w := range p.widgets {
		min, max := w.control.Bounds()
		w.control.SetValue(slider.Interval{Low: min, High: max})
		w.control.SetState(false)
	}
}

// Close unbinds the widgets and detaches the manager.
func (p *ClipperPanel) Close() error {
	for _, w := range p.widgets {
		w.Unbind()
	}
	return p.manager.Close()
}

// CreateRenderer implements fyne.Widget.
func (p *ClipperPanel) CreateRenderer() fyne.WidgetRenderer {
	box := container.NewVBox(widget.NewLabelWithStyle("Clipping", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, w := range p.widgets {
		box.Add(w)
		box.Add(widget.NewSeparator())
	}
	box.Add(widget.NewButton("Reset", p.Reset))
	return widget.NewSimpleRenderer(box)
}
