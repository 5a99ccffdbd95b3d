package geometry

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Box is an axis-aligned box in (z, y, x) ordered space
type Box struct {
	Min, Max f64.Vec3
}

// NewBox creates an empty box that any Extend call will replace
func NewBox() Box {
	inf := math.Inf(1)
	return Box{
		Min: f64.Vec3{inf, inf, inf},
		Max: f64.Vec3{-inf, -inf, -inf},
	}
}

// BoxOf returns the smallest box containing all points
func BoxOf(points ...f64.Vec3) Box {
	b := NewBox()
	for _, p := range points {
		b.Extend(p)
	}
	return b
}

// Extend grows the box to include p
func (b *Box) Extend(p f64.Vec3) {
	for i := 0; i < 3; i++ {
		b.Min[i] = math.Min(b.Min[i], p[i])
		b.Max[i] = math.Max(b.Max[i], p[i])
	}
}

// Empty reports whether the box contains no point
func (b Box) Empty() bool {
	return b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2]
}

// Center returns the center point of the box
func (b Box) Center() f64.Vec3 {
	return Scale(Add(b.Min, b.Max), 0.5)
}

// Size returns the extent of the box along each axis
func (b Box) Size() f64.Vec3 {
	return Sub(b.Max, b.Min)
}

// Diagonal returns the length of the box diagonal
func (b Box) Diagonal() float64 {
	return Length(b.Size())
}

// ClampAxis limits the box to [lo, hi] along one axis. The bounds may be
// given in either order.
func (b Box) ClampAxis(axis int, lo, hi float64) Box {
	if lo > hi {
		lo, hi = hi, lo
	}
	b.Min[axis] = math.Max(b.Min[axis], lo)
	b.Max[axis] = math.Min(b.Max[axis], hi)
	return b
}

// Corners returns the eight corners. Bit i of the index selects Max on
// coordinate i.
func (b Box) Corners() [8]f64.Vec3 {
	var out [8]f64.Vec3
	for i := range out {
		for c := 0; c < 3; c++ {
			if i&(1<<c) != 0 {
				out[i][c] = b.Max[c]
			} else {
				out[i][c] = b.Min[c]
			}
		}
	}
	return out
}

// Edges returns the twelve edges as corner pairs
func (b Box) Edges() [12][2]f64.Vec3 {
	corners := b.Corners()
	var out [12][2]f64.Vec3
	n := 0
	for i := range corners {
		for c := 0; c < 3; c++ {
			if i&(1<<c) == 0 {
				out[n] = [2]f64.Vec3{corners[i], corners[i|1<<c]}
				n++
			}
		}
	}
	return out
}
