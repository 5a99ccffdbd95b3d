package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/philipparndt/clipview/pkg/clipping"
	"github.com/philipparndt/clipview/pkg/slider"
	"github.com/philipparndt/clipview/pkg/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPanel(t *testing.T) (*ClipperPanel, *volume.Viewer) {
	t.Helper()
	test.NewTempApp(t)

	v := volume.NewViewer()
	require.NoError(t, v.Add(volume.NewImage("vol", 10, 20, 30)))
	p, err := NewClipperPanel(v, DefaultPanelConfig())
	require.NoError(t, err)
	t.Cleanup(func() { p.Close() })
	return p, v
}

func TestPanelHasOneWidgetPerAxis(t *testing.T) {
	p, _ := newPanel(t)

	require.Len(t, p.Widgets(), 3)
	for i, axis := range PanelAxes {
		assert.Equal(t, axis.String(), p.Widgets()[i].Control().Name())
	}
	assert.Equal(t, []string{"x", "y", "z"}, p.Manager().Sliders())
}

func TestPanelEnablesXBeforePlaning(t *testing.T) {
	p, v := newPanel(t)

	x, ok := p.Widget(clipping.AxisX)
	require.True(t, ok)
	assert.True(t, x.check.Checked)
	assert.False(t, x.low.Disabled())

	y, _ := p.Widget(clipping.AxisY)
	assert.False(t, y.check.Checked)
	assert.True(t, y.low.Disabled())

	layer, _ := v.Layers().ByName("vol")
	planes := layer.ClippingPlanes()
	require.Len(t, planes, clipping.NumPlanes)
	assert.False(t, planes[0].Enabled)
	assert.True(t, planes[4].Enabled)
	assert.True(t, planes[5].Enabled)
}

func TestCheckDrivesPlanes(t *testing.T) {
	p, v := newPanel(t)
	layer, _ := v.Layers().ByName("vol")

	y, _ := p.Widget(clipping.AxisY)
	test.Tap(y.check)

	assert.True(t, y.Control().State())
	assert.True(t, layer.ClippingPlanes()[2].Enabled)
	assert.True(t, layer.ClippingPlanes()[3].Enabled)
	assert.False(t, y.low.Disabled())
}

func TestSliderDrivesPlanes(t *testing.T) {
	p, v := newPanel(t)
	layer, _ := v.Layers().ByName("vol")
	z, _ := p.Widget(clipping.AxisZ)

	// what a drag on the low thumb reports
	z.low.OnChanged(50)

	assert.Equal(t, slider.Interval{Low: 50, High: 100}, z.Control().Value())
	assert.InDelta(t, 5.0, layer.ClippingPlanes()[0].Position[0], 1e-9)
	assert.InDelta(t, 10.0, layer.ClippingPlanes()[1].Position[0], 1e-9)
}

func TestControlDrivesWidget(t *testing.T) {
	p, _ := newPanel(t)
	x, _ := p.Widget(clipping.AxisX)

	x.Control().SetValue(slider.Interval{Low: 70, High: 20})
	assert.Equal(t, 20.0, x.low.Value)
	assert.Equal(t, 70.0, x.high.Value)
	assert.Equal(t, "20..70", x.label.Text)

	x.Control().SetState(false)
	assert.False(t, x.check.Checked)
	assert.True(t, x.high.Disabled())
}

func TestPanelReset(t *testing.T) {
	p, v := newPanel(t)
	layer, _ := v.Layers().ByName("vol")
	x, _ := p.Widget(clipping.AxisX)
	x.Control().SetValue(slider.Interval{Low: 10, High: 20})

	p.Reset()

	assert.Equal(t, slider.Interval{Low: 0, High: 100}, x.Control().Value())
	assert.False(t, x.Control().State())
	for _, plane := range layer.ClippingPlanes() {
		assert.False(t, plane.Enabled)
	}
}

func TestPanelCloseUnbinds(t *testing.T) {
	test.NewTempApp(t)
	v := volume.NewViewer()
	p, err := NewClipperPanel(v, DefaultPanelConfig())
	require.NoError(t, err)

	x, _ := p.Widget(clipping.AxisX)
	require.NoError(t, p.Close())
	assert.Equal(t, 0, x.Control().StateChanged.Receivers())
	assert.Equal(t, 0, x.Control().ValueChanged.Receivers())
}

func TestPlaneTableFollows(t *testing.T) {
	p, v := newPanel(t)
	table := NewPlaneTable(v.Layers(), clipping.DefaultIndexRef())
	controls := make([]*slider.Control, 0, 3)
	for _, w := range p.Widgets() {
		controls = append(controls, w.Control())
	}
	table.Follow(controls...)

	require.Len(t, table.Rows(), 6)
	assert.Equal(t, "vol", table.Cell(0, 0))
	assert.Equal(t, "off", table.Cell(2, 4))

	y, _ := p.Widget(clipping.AxisY)
	y.Control().SetState(true)
	assert.Equal(t, "on", table.Cell(2, 4))

	require.NoError(t, v.Add(volume.NewLabels("seg", 4, 4, 4)))
	assert.Len(t, table.Rows(), 12)
	assert.Equal(t, "seg", table.Cell(6, 0))
	assert.Equal(t, "", table.Cell(12, 0))
}

func TestBoxViewRender(t *testing.T) {
	p, v := newPanel(t)
	view := NewBoxView(v.Layers(), p.Manager().Ref())

	w := test.NewTempWindow(t, view)
	w.Resize(fyne.NewSize(500, 500))
	view.Render(500, 500)

	// world box, visible box and the three gizmo axes
	assert.Len(t, view.Lines(), 12+12+3)
}
