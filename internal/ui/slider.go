package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/clipview/pkg/event"
	"github.com/philipparndt/clipview/pkg/slider"
)

// SliderWidget shows a slider.Control as a check box plus two sliders for
// the low and high thumb. Edits on either side are mirrored to the other.
type SliderWidget struct {
	widget.BaseWidget

	control *slider.Control
	check   *widget.Check
	low     *widget.Slider
	high    *widget.Slider
	label   *widget.Label

	// set while pushing control state into the widgets
	syncing bool
	state   event.Connection
	value   event.Connection
}

// NewSliderWidget binds a widget to control. Call Unbind when discarding
// the widget while the control lives on.
func NewSliderWidget(control *slider.Control) *SliderWidget {
	min, max := control.Bounds()
	w := &SliderWidget{
		control: control,
		low:     widget.NewSlider(float64(min), float64(max)),
		high:    widget.NewSlider(float64(min), float64(max)),
		label:   widget.NewLabel(""),
	}
	w.check = widget.NewCheck(control.Name(), func(on bool) {
		if !w.syncing {
			w.control.SetState(on)
		}
	})
	w.low.OnChanged = func(v float64) {
		if !w.syncing {
			w.control.SetValue(slider.Interval{Low: int(v), High: w.control.Value().High})
		}
	}
	w.high.OnChanged = func(v float64) {
		if !w.syncing {
			w.control.SetValue(slider.Interval{Low: w.control.Value().Low, High: int(v)})
		}
	}

	w.state = control.StateChanged.Connect(func(ev slider.StateEvent) { w.showState(ev.State) })
	w.value = control.ValueChanged.Connect(func(ev slider.ValueEvent) { w.showValue(ev.Value) })
	w.showState(control.State())
	w.showValue(control.Value())

	w.ExtendBaseWidget(w)
	return w
}

// Control returns the bound control.
func (w *SliderWidget) Control() *slider.Control {
	return w.control
}

// Unbind stops following the control.
func (w *SliderWidget) Unbind() {
	_ = w.control.StateChanged.Disconnect(w.state)
	_ = w.control.ValueChanged.Disconnect(w.value)
}

func (w *SliderWidget) showState(on bool) {
	w.syncing = true
	defer func() { w.syncing = false }()

	w.check.SetChecked(on)
	if on {
		w.low.Enable()
		w.high.Enable()
	} else {
		w.low.Disable()
		w.high.Disable()
	}
}

func (w *SliderWidget) showValue(v slider.Interval) {
	w.syncing = true
	defer func() { w.syncing = false }()

	w.low.SetValue(float64(v.Low))
	w.high.SetValue(float64(v.High))
	w.label.SetText(fmt.Sprintf("%d..%d", v.Low, v.High))
}

// CreateRenderer implements fyne.Widget.
func (w *SliderWidget) CreateRenderer() fyne.WidgetRenderer {
	header := container.NewBorder(nil, nil, w.check, w.label)
	return widget.NewSimpleRenderer(container.NewVBox(header, w.low, w.high))
}
