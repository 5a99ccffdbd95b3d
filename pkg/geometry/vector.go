package geometry

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Coordinate indices of a spatial 3-vector. Vectors are ordered (z, y, x),
// outermost array dimension first.
const (
	AxisZ = 0
	AxisY = 1
	AxisX = 2
)

// Unit returns the vector with sign on the given coordinate and 0 elsewhere
func Unit(axis int, sign float64) f64.Vec3 {
	var v f64.Vec3
	v[axis] = sign
	return v
}

// OnAxis returns the vector with value on the given coordinate and 0 elsewhere
func OnAxis(axis int, value float64) f64.Vec3 {
	var v f64.Vec3
	v[axis] = value
	return v
}

// Trailing3 returns the last three components of v as a spatial vector.
// Shorter inputs are right-aligned, leaving the leading components 0.
func Trailing3(v []float64) f64.Vec3 {
	var out f64.Vec3
	n := len(v)
	for i := 0; i < 3 && i < n; i++ {
		out[2-i] = v[n-1-i]
	}
	return out
}

// Add returns the component-wise sum
func Add(a, b f64.Vec3) f64.Vec3 {
	return f64.Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// Sub returns the component-wise difference
func Sub(a, b f64.Vec3) f64.Vec3 {
	return f64.Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Scale multiplies every component by s
func Scale(v f64.Vec3, s float64) f64.Vec3 {
	return f64.Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Length returns the magnitude of the vector
func Length(v f64.Vec3) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Linspace returns n evenly spaced samples from start to stop, both
// included. n < 2 yields just start.
func Linspace(start, stop float64, n int) []float64 {
	if n < 2 {
		return []float64{start}
	}
	out := make([]float64, n)
	step := float64(n - 1)
	for i := range out {
		out[i] = start + (stop-start)*float64(i)/step
	}
	out[n-1] = stop
	return out
}

// Dot returns the dot product
func Dot(a, b f64.Vec3) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns the cross product, taking the components in index order
func Cross(a, b f64.Vec3) f64.Vec3 {
	return f64.Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Normalize returns a unit vector in the same direction. The zero vector
// is returned unchanged.
func Normalize(v f64.Vec3) f64.Vec3 {
	l := Length(v)
	if l == 0 {
		return v
	}
	return f64.Vec3{v[0] / l, v[1] / l, v[2] / l}
}

// Reverse swaps between (z, y, x) and (x, y, z) component order
func Reverse(v f64.Vec3) f64.Vec3 {
	return f64.Vec3{v[2], v[1], v[0]}
}
