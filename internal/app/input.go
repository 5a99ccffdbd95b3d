package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/clipview/pkg/clipping"
)

// keyDown reports a press or an auto-repeat of key
func keyDown(key int32) bool {
	return rl.IsKeyPressed(key) || rl.IsKeyPressedRepeat(key)
}

// handleInput processes user input
func (app *App) handleInput() {
	s := app.Scene.session

	// Axis selection and editing
	if rl.IsKeyPressed(rl.KeyOne) {
		s.Select(clipping.AxisX)
	}
	if rl.IsKeyPressed(rl.KeyTwo) {
		s.Select(clipping.AxisY)
	}
	if rl.IsKeyPressed(rl.KeyThree) {
		s.Select(clipping.AxisZ)
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		s.Toggle()
	}

	step := 1
	if rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift) {
		step = 10
	}
	if keyDown(rl.KeyLeft) {
		s.Nudge(-step, 0)
	}
	if keyDown(rl.KeyRight) {
		s.Nudge(step, 0)
	}
	if keyDown(rl.KeyDown) {
		s.Nudge(0, -step)
	}
	if keyDown(rl.KeyUp) {
		s.Nudge(0, step)
	}
	if rl.IsKeyPressed(rl.KeyR) {
		s.Reset()
	}

	// View toggles
	if rl.IsKeyPressed(rl.KeyHome) {
		app.resetCameraView()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		app.View.showPlanes = !app.View.showPlanes
	}
	if rl.IsKeyPressed(rl.KeyB) {
		app.View.showBounds = !app.View.showBounds
	}
	if rl.IsKeyPressed(rl.KeyG) {
		app.View.showGrid = !app.View.showGrid
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.View.showHelp = !app.View.showHelp
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		app.Panel.visible = !app.Panel.visible
	}

	// Panel takes the mouse when over it or dragging a thumb
	if app.handleSlicingInput() {
		app.Interaction.isRotating = false
		app.Interaction.isPanning = false
		return
	}

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		shiftPressed := rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
		app.Interaction.isPanning = shiftPressed
		app.Interaction.isRotating = !shiftPressed
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		app.Interaction.isPanning = false
		app.Interaction.isRotating = false
	}

	delta := rl.GetMouseDelta()
	app.Interaction.lastMousePos = rl.GetMousePosition()
	if delta.X != 0 || delta.Y != 0 {
		switch {
		case app.Interaction.isPanning || rl.IsMouseButtonDown(rl.MouseMiddleButton):
			app.doPan(delta)
		case app.Interaction.isRotating:
			app.doRotate(delta)
		}
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		app.doZoom(wheel)
	}
}
