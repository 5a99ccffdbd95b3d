package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// resetCameraView resets the camera to the default view
func (app *App) resetCameraView() {
	app.Camera.distance = app.Camera.defaultDist
	app.Camera.angleX = app.Camera.defaultAngleX
	app.Camera.angleY = app.Camera.defaultAngleY
	app.Camera.target = app.Scene.center
}

// frameScene recomputes the scene center and size and makes the result
// the default view. The current view is kept unless reset is set.
func (app *App) frameScene(reset bool) {
	box := sceneBox(app.Scene.session)
	center := box.Center()
	size := box.Size()

	app.Scene.center = toRL(center)
	app.Scene.size = float32(math.Max(size[0], math.Max(size[1], size[2])))
	if app.Scene.size <= 0 {
		app.Scene.size = 1
	}

	app.Camera.defaultDist = app.Scene.size * 2
	app.Camera.defaultAngleX = 0.4
	app.Camera.defaultAngleY = 0.6
	if reset {
		app.resetCameraView()
	}
}

// updateCamera updates camera position based on angles
func (app *App) updateCamera() {
	x := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Sin(float64(app.Camera.angleY)))
	y := app.Camera.distance * float32(math.Sin(float64(app.Camera.angleX)))
	z := app.Camera.distance * float32(math.Cos(float64(app.Camera.angleX))) * float32(math.Cos(float64(app.Camera.angleY)))

	app.Camera.camera.Position = rl.Vector3{
		X: app.Camera.target.X + x,
		Y: app.Camera.target.Y + y,
		Z: app.Camera.target.Z + z,
	}
	app.Camera.camera.Target = app.Camera.target
}

// doRotate orbits the camera based on mouse delta
func (app *App) doRotate(delta rl.Vector2) {
	app.Camera.angleY -= delta.X * 0.01
	app.Camera.angleX += delta.Y * 0.01

	// Clamp X rotation to prevent gimbal lock
	maxAngle := float32(math.Pi/2 - 0.1)
	if app.Camera.angleX > maxAngle {
		app.Camera.angleX = maxAngle
	}
	if app.Camera.angleX < -maxAngle {
		app.Camera.angleX = -maxAngle
	}
}

// doPan performs camera panning based on mouse delta
func (app *App) doPan(delta rl.Vector2) {
	forward := rl.Vector3Normalize(rl.Vector3Subtract(app.Camera.target, app.Camera.camera.Position))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(forward, app.Camera.camera.Up))
	up := rl.Vector3Normalize(rl.Vector3CrossProduct(right, forward))

	// Pan speed based on distance from target
	panSpeed := app.Camera.distance * 0.001

	rightMove := rl.Vector3Scale(right, -delta.X*panSpeed)
	upMove := rl.Vector3Scale(up, delta.Y*panSpeed)

	app.Camera.target = rl.Vector3Add(app.Camera.target, rightMove)
	app.Camera.target = rl.Vector3Add(app.Camera.target, upMove)
}

// doZoom scales the camera distance by a mouse wheel step
func (app *App) doZoom(wheel float32) {
	app.Camera.distance *= 1 - wheel*0.1
	if minDist := app.Scene.size * 0.05; app.Camera.distance < minDist {
		app.Camera.distance = minDist
	}
}
