package ui

import (
	"math"

	"github.com/philipparndt/clipview/pkg/geometry"
	"golang.org/x/image/math/f64"
)

// Camera orbits a target. Its vectors are in display (x, y, z) order; use
// geometry.Reverse to convert world positions.
type Camera struct {
	Position  f64.Vec3
	Target    f64.Vec3
	Up        f64.Vec3
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // Rotation around X axis (vertical)
	RotationY float64 // Rotation around Y axis (horizontal)
}

// NewCamera creates a camera looking at a world-space box
func NewCamera(box geometry.Box) *Camera {
	c := &Camera{
		Up:        f64.Vec3{0, 1, 0},
		FOV:       math.Pi / 4,
		RotationX: 0.5,
		RotationY: 0.6,
	}
	c.Frame(box)
	return c
}

// Frame moves the target to the box center and backs off far enough to
// see all of it. Empty boxes frame the unit cube.
func (c *Camera) Frame(box geometry.Box) {
	if box.Empty() {
		box = geometry.BoxOf(f64.Vec3{}, f64.Vec3{1, 1, 1})
	}
	c.Target = geometry.Reverse(box.Center())
	c.Distance = math.Max(box.Diagonal()*1.5, 1)
	c.UpdatePosition()
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = geometry.Add(c.Target, f64.Vec3{x, y, z})
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp X rotation to prevent gimbal lock
	maxAngle := math.Pi/2 - 0.1
	c.RotationX = math.Max(-maxAngle, math.Min(maxAngle, c.RotationX))

	c.UpdatePosition()
}

// Zoom changes the camera distance
func (c *Camera) Zoom(delta float64) {
	c.Distance *= 1.0 + delta
	if c.Distance < 0.1 {
		c.Distance = 0.1
	}
	c.UpdatePosition()
}

// Project maps a display-space point to screen coordinates and depth
func (c *Camera) Project(point f64.Vec3, width, height float64) (float64, float64, float64) {
	forward := geometry.Normalize(geometry.Sub(c.Target, c.Position))
	right := geometry.Normalize(geometry.Cross(forward, c.Up))
	up := geometry.Cross(right, forward)

	relative := geometry.Sub(point, c.Position)
	x := geometry.Dot(relative, right)
	y := geometry.Dot(relative, up)
	z := geometry.Dot(relative, forward)

	if z <= 0.01 {
		z = 0.01 // Prevent division by zero
	}

	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(z*fovScale*aspect))*(width/2) + width/2
	screenY := (-y/(z*fovScale))*(height/2) + height/2

	return screenX, screenY, z
}
