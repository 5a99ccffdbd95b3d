package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/clipview/pkg/clipping"
	"github.com/philipparndt/clipview/pkg/geometry"
	"github.com/philipparndt/clipview/pkg/slider"
	"github.com/philipparndt/clipview/pkg/volume"
	"golang.org/x/image/math/f64"
)

var (
	boundsColor  = color.RGBA{110, 110, 110, 255}
	visibleColor = color.RGBA{255, 200, 0, 255}
)

// axisColors colors the axis gizmo: x red, y green, z blue.
var axisColors = map[clipping.Axis]color.RGBA{
	clipping.AxisX: {255, 80, 80, 255},
	clipping.AxisY: {80, 255, 80, 255},
	clipping.AxisZ: {80, 80, 255, 255},
}

// BoxView draws each layer's world box and, inside it, the region left by
// the enabled clipping planes. Drag to orbit, scroll to zoom.
type BoxView struct {
	widget.BaseWidget

	layers    *volume.LayerList
	ref       clipping.IndexRef
	camera    *Camera
	lines     []*canvas.Line
	dragStart *fyne.Position
	width     float64
	height    float64
}

// NewBoxView creates a view over layers.
func NewBoxView(layers *volume.LayerList, ref clipping.IndexRef) *BoxView {
	v := &BoxView{
		layers: layers,
		ref:    ref,
		camera: NewCamera(sceneBox(layers)),
	}
	v.ExtendBaseWidget(v)
	return v
}

func sceneBox(layers *volume.LayerList) geometry.Box {
	box := geometry.NewBox()
	for _, l := range layers.All() {
		if l.NDim() <= 2 {
			continue
		}
		b := clipping.WorldBounds(l)
		box.Extend(b.Min)
		box.Extend(b.Max)
	}
	return box
}

// ResetCamera frames all layers again.
func (v *BoxView) ResetCamera() {
	v.camera.Frame(sceneBox(v.layers))
	v.Render(v.width, v.height)
}

// Reload redraws at the current size.
func (v *BoxView) Reload() {
	v.Render(v.width, v.height)
}

// Follow redraws on layer insertions and slider events. Connect it after
// the manager so the planes are already updated when it runs.
func (v *BoxView) Follow(controls ...*slider.Control) {
	v.layers.Inserted.Connect(func(volume.InsertedEvent) { v.Reload() })
	for _, c := range controls {
		c.StateChanged.Connect(func(slider.StateEvent) { v.Reload() })
		c.ValueChanged.Connect(func(slider.ValueEvent) { v.Reload() })
	}
}

// Lines returns the segments of the last render.
func (v *BoxView) Lines() []*canvas.Line {
	return v.lines
}

// Render rebuilds the line segments for the given size.
func (v *BoxView) Render(width, height float64) {
	v.width = width
	v.height = height
	v.lines = v.lines[:0]
	if width <= 0 || height <= 0 {
		v.Refresh()
		return
	}

	for _, l := range v.layers.All() {
		if l.NDim() <= 2 {
			continue
		}
		v.addBox(clipping.WorldBounds(l), boundsColor, 1)
		if len(l.ClippingPlanes()) == clipping.NumPlanes {
			visible := clipping.VisibleBox(l, v.ref)
			if !visible.Empty() {
				v.addBox(visible, visibleColor, 2)
			}
		}
	}
	v.addGizmo()

	v.Refresh()
}

func (v *BoxView) addBox(box geometry.Box, col color.Color, width float32) {
	for _, e := range box.Edges() {
		v.addLine(geometry.Reverse(e[0]), geometry.Reverse(e[1]), col, width)
	}
}

func (v *BoxView) addGizmo() {
	box := sceneBox(v.layers)
	if box.Empty() {
		return
	}
	origin := geometry.Reverse(box.Min)
	length := box.Diagonal() * 0.15
	for _, axis := range clipping.Axes {
		r, _ := v.ref.Lookup(axis)
		tip := geometry.Add(origin, geometry.Reverse(geometry.OnAxis(r.Coord, length)))
		v.addLine(origin, tip, axisColors[axis], 2)
	}
}

func (v *BoxView) addLine(a, b f64.Vec3, col color.Color, width float32) {
	x1, y1, _ := v.camera.Project(a, v.width, v.height)
	x2, y2, _ := v.camera.Project(b, v.width, v.height)

	line := canvas.NewLine(col)
	line.StrokeWidth = width
	line.Position1 = fyne.NewPos(float32(x1), float32(y1))
	line.Position2 = fyne.NewPos(float32(x2), float32(y2))
	v.lines = append(v.lines, line)
}

// Dragged handles mouse drag events for rotation
func (v *BoxView) Dragged(ev *fyne.DragEvent) {
	if v.dragStart != nil {
		dx := ev.Position.X - v.dragStart.X
		dy := ev.Position.Y - v.dragStart.Y
		v.camera.Rotate(float64(dy)*0.01, float64(-dx)*0.01)
		v.Render(v.width, v.height)
	}
	pos := ev.Position
	v.dragStart = &pos
}

// DragEnd handles the end of a drag event
func (v *BoxView) DragEnd() {
	v.dragStart = nil
}

// Scrolled handles scroll events for zooming
func (v *BoxView) Scrolled(ev *fyne.ScrollEvent) {
	v.camera.Zoom(-float64(ev.Scrolled.DY) * 0.001)
	v.Render(v.width, v.height)
}

// CreateRenderer implements fyne.Widget.
func (v *BoxView) CreateRenderer() fyne.WidgetRenderer {
	return &boxViewRenderer{view: v}
}

type boxViewRenderer struct {
	view    *BoxView
	objects []fyne.CanvasObject
}

func (r *boxViewRenderer) Layout(size fyne.Size) {
	r.view.Render(float64(size.Width), float64(size.Height))
}

func (r *boxViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *boxViewRenderer) Refresh() {
	r.objects = r.objects[:0]
	for _, line := range r.view.lines {
		r.objects = append(r.objects, line)
	}
	canvas.Refresh(r.view)
}

func (r *boxViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boxViewRenderer) Destroy() {}
