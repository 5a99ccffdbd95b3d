package app

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/clipview/internal/session"
	"github.com/philipparndt/clipview/pkg/clipping"
	"github.com/philipparndt/clipview/pkg/geometry"
	"github.com/philipparndt/clipview/pkg/slider"
	"github.com/philipparndt/clipview/pkg/volume"
)

const (
	sliderWidth        = 200.0
	sliderHeight       = 8.0
	sliderHandleRadius = 6.0
	rowHeight          = 50.0
	panelPadding       = 15.0
	panelTitleHeight   = 30.0
)

// Axis colors (matching standard 3D convention)
var axisColors = map[clipping.Axis]rl.Color{
	clipping.AxisX: rl.NewColor(255, 80, 80, 255),  // X - Red
	clipping.AxisY: rl.NewColor(80, 255, 80, 255),  // Y - Green
	clipping.AxisZ: rl.NewColor(80, 120, 255, 255), // Z - Blue
}

// drawClippingPlanes draws every enabled clipping plane as a translucent
// quad spanning its layer's box
func (app *App) drawClippingPlanes() {
	if !app.View.showPlanes {
		return
	}
	ref := app.Scene.session.Manager().Ref()
	for _, l := range app.Scene.session.Viewer().Layers().All() {
		planes := l.ClippingPlanes()
		if len(planes) != clipping.NumPlanes {
			continue
		}
		box := clipping.WorldBounds(l)
		for _, axis := range clipping.Axes {
			r, _ := ref.Lookup(axis)
			color := axisColors[axis]
			color.A = 40
			for _, p := range planes[r.PlanePair : r.PlanePair+2] {
				if p.Enabled {
					drawClippingPlane(box, r.Coord, p, color)
				}
			}
		}
	}
}

// drawClippingPlane draws a single plane clamped to box
func drawClippingPlane(box geometry.Box, coord int, p *volume.ClippingPlane, color rl.Color) {
	// the two coordinates spanning the plane
	u, v := (coord+1)%3, (coord+2)%3

	corner := func(useMaxU, useMaxV bool) rl.Vector3 {
		pos := p.Position
		pos[u], pos[v] = box.Min[u], box.Min[v]
		if useMaxU {
			pos[u] = box.Max[u]
		}
		if useMaxV {
			pos[v] = box.Max[v]
		}
		return toRL(pos)
	}
	v1, v2, v3, v4 := corner(false, false), corner(true, false), corner(true, true), corner(false, true)

	// Draw both windings so the quad is visible from either side
	rl.DrawTriangle3D(v1, v2, v3, color)
	rl.DrawTriangle3D(v1, v3, v4, color)
	rl.DrawTriangle3D(v3, v2, v1, color)
	rl.DrawTriangle3D(v4, v3, v1, color)

	borderColor := color
	borderColor.A = 150
	rl.DrawLine3D(v1, v2, borderColor)
	rl.DrawLine3D(v2, v3, borderColor)
	rl.DrawLine3D(v3, v4, borderColor)
	rl.DrawLine3D(v4, v1, borderColor)
}

// drawSlicingPanel renders the clipping control panel
func (app *App) drawSlicingPanel() {
	if !app.Panel.visible {
		return
	}

	screenWidth := float32(rl.GetScreenWidth())
	screenHeight := float32(rl.GetScreenHeight())

	panelWidth := float32(340)
	panelHeight := float32(panelTitleHeight + 15 + rowHeight*3 + 25)
	if app.Panel.collapsed {
		panelWidth, panelHeight = 150, 30
	}
	panelX := screenWidth - panelWidth - 20
	panelY := screenHeight - panelHeight - 50 // Above version/FPS

	app.Panel.bounds = rl.Rectangle{X: panelX, Y: panelY, Width: panelWidth, Height: panelHeight}

	rl.DrawRectangleRounded(app.Panel.bounds, 0.1, 8, rl.NewColor(20, 25, 35, 230))
	rl.DrawRectangleRoundedLines(app.Panel.bounds, 0.1, 8, rl.NewColor(80, 160, 255, 255))

	titleColor := rl.NewColor(100, 200, 255, 255)
	if app.Panel.collapsed {
		rl.DrawTextEx(app.font, "CLIPPING +", rl.Vector2{X: panelX + 12, Y: panelY + 8}, 14, 1, titleColor)
		return
	}
	rl.DrawTextEx(app.font, "CLIPPING", rl.Vector2{X: panelX + panelPadding, Y: panelY + 8}, 16, 1, titleColor)

	separatorY := panelY + panelTitleHeight
	rl.DrawLineEx(
		rl.Vector2{X: panelX + panelPadding, Y: separatorY},
		rl.Vector2{X: panelX + panelWidth - panelPadding, Y: separatorY},
		1,
		rl.NewColor(60, 80, 120, 150),
	)

	y := separatorY + 15
	for row, axis := range session.Order {
		app.drawAxisRow(row, axis, rl.Vector2{X: panelX + panelPadding, Y: y})
		y += rowHeight
	}

	helpText := "1/2/3: Select | Space: Toggle | Arrows: Move | R: Reset"
	rl.DrawTextEx(app.font, helpText, rl.Vector2{X: panelX + panelPadding, Y: panelY + panelHeight - 20}, 10, 1, rl.NewColor(120, 140, 180, 255))
}

// drawAxisRow draws the toggle, label and two-thumb track of one axis
func (app *App) drawAxisRow(row int, axis clipping.Axis, pos rl.Vector2) {
	c := app.Scene.session.Control(axis)
	color := axisColors[axis]
	selected := app.Scene.session.Selected() == axis

	check := rl.Rectangle{X: pos.X, Y: pos.Y, Width: 14, Height: 14}
	app.Panel.checkBounds[row] = check
	rl.DrawRectangleLinesEx(check, 1, color)
	if c.State() {
		rl.DrawRectangleRec(rl.Rectangle{X: check.X + 3, Y: check.Y + 3, Width: 8, Height: 8}, color)
	}

	labelColor := rl.LightGray
	if selected {
		labelColor = rl.White
	}
	label := fmt.Sprintf("%s Axis", axis)
	if selected {
		label += " <"
	}
	rl.DrawTextEx(app.font, label, rl.Vector2{X: pos.X + 22, Y: pos.Y}, 14, 1, labelColor)

	v := c.Value()
	rl.DrawTextEx(app.font, v.String(), rl.Vector2{X: pos.X + 140, Y: pos.Y}, 12, 1, rl.LightGray)

	trackX := pos.X + 22
	trackY := pos.Y + 24
	track := rl.Rectangle{X: trackX, Y: trackY, Width: sliderWidth, Height: sliderHeight}
	app.Panel.trackBounds[row] = track

	trackBg := rl.NewColor(40, 45, 55, 255)
	if app.Panel.hoveredRow == row {
		trackBg = rl.NewColor(50, 55, 65, 255)
	}
	rl.DrawRectangleRounded(track, 0.5, 8, trackBg)

	lowX := trackX + thumbFraction(c, v.Low)*sliderWidth
	highX := trackX + thumbFraction(c, v.High)*sliderWidth

	fillColor := color
	fillColor.A = 100
	if !c.State() {
		fillColor.A = 40
	}
	rl.DrawRectangleRounded(rl.Rectangle{X: lowX, Y: trackY, Width: highX - lowX, Height: sliderHeight}, 0.5, 8, fillColor)

	for i, x := range []float32{lowX, highX} {
		handleColor := color
		if app.Panel.dragRow == row && app.Panel.dragHigh == (i == 1) {
			handleColor = rl.White
		} else if !c.State() {
			handleColor = rl.Gray
		}
		center := rl.Vector2{X: x, Y: trackY + sliderHeight/2}
		rl.DrawCircleV(center, sliderHandleRadius, handleColor)
		rl.DrawCircleLines(int32(center.X), int32(center.Y), sliderHandleRadius, rl.NewColor(255, 255, 255, 150))
	}
}

// thumbFraction maps an index of c's domain onto [0, 1]
func thumbFraction(c *slider.Control, index int) float32 {
	min, max := c.Bounds()
	if max == min {
		return 0
	}
	return float32(index-min) / float32(max-min)
}

// indexAt maps a mouse x position on a track to an index of c's domain
func indexAt(c *slider.Control, track rl.Rectangle, mouseX float32) int {
	min, max := c.Bounds()
	f := (mouseX - track.X) / track.Width
	f = float32(math.Max(0, math.Min(1, float64(f))))
	return min + int(math.Round(float64(f)*float64(max-min)))
}

// handleSlicingInput handles panel clicks and thumb dragging. It reports
// whether the mouse is captured by the panel.
func (app *App) handleSlicingInput() bool {
	if !app.Panel.visible {
		return false
	}

	mousePos := rl.GetMousePosition()
	overPanel := rl.CheckCollisionPointRec(mousePos, app.Panel.bounds)
	pressed := rl.IsMouseButtonPressed(rl.MouseLeftButton)

	if app.Panel.collapsed {
		if pressed && overPanel {
			app.Panel.collapsed = false
		}
		return overPanel
	}

	// Collapse with a click on the title bar
	title := rl.Rectangle{X: app.Panel.bounds.X, Y: app.Panel.bounds.Y, Width: app.Panel.bounds.Width, Height: panelTitleHeight}
	if pressed && rl.CheckCollisionPointRec(mousePos, title) {
		app.Panel.collapsed = true
		return true
	}

	app.Panel.hoveredRow = -1
	for row, axis := range session.Order {
		hit := app.Panel.trackBounds[row]
		hit.X -= sliderHandleRadius
		hit.Y -= sliderHandleRadius
		hit.Width += sliderHandleRadius * 2
		hit.Height += sliderHandleRadius * 2

		if pressed && rl.CheckCollisionPointRec(mousePos, app.Panel.checkBounds[row]) {
			app.Scene.session.Select(axis)
			app.Scene.session.Toggle()
		}
		if rl.CheckCollisionPointRec(mousePos, hit) {
			app.Panel.hoveredRow = row
			if pressed {
				app.startThumbDrag(row, axis, mousePos.X)
			}
		}
	}

	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.Panel.dragRow = -1
	}

	if app.Panel.dragRow != -1 {
		axis := session.Order[app.Panel.dragRow]
		c := app.Scene.session.Control(axis)
		idx := indexAt(c, app.Panel.trackBounds[app.Panel.dragRow], mousePos.X)
		v := c.Value()
		if app.Panel.dragHigh && idx != v.High {
			c.SetValue(slider.Interval{Low: v.Low, High: max(idx, v.Low)})
		} else if !app.Panel.dragHigh && idx != v.Low {
			c.SetValue(slider.Interval{Low: min(idx, v.High), High: v.High})
		}
		return true
	}
	return overPanel
}

// startThumbDrag picks the thumb nearest to the click
func (app *App) startThumbDrag(row int, axis clipping.Axis, mouseX float32) {
	c := app.Scene.session.Control(axis)
	app.Scene.session.Select(axis)
	idx := indexAt(c, app.Panel.trackBounds[row], mouseX)
	v := c.Value()

	app.Panel.dragRow = row
	app.Panel.dragHigh = abs(idx-v.High) < abs(idx-v.Low) || (idx > v.High)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
