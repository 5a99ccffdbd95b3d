package clipping

import (
	"github.com/philipparndt/clipview/pkg/geometry"
	"github.com/philipparndt/clipview/pkg/volume"
	"golang.org/x/image/math/f64"
)

// SpacingSamples is the number of entries in each axis spacing table,
// one per index of the default 0..100 slider domain.
const SpacingSamples = 101

// SpatialBounds holds a (min, max) pair per spatial axis in (z, y, x) order.
type SpatialBounds [3][2]float64

// SpatialBoundsOf takes the last three dimensions of shape, outermost
// first. Missing leading dimensions stay (0, 0).
func SpatialBoundsOf(shape []int) SpatialBounds {
	var b SpatialBounds
	n := len(shape)
	for i := 0; i < 3 && i < n; i++ {
		b[2-i] = [2]float64{0, float64(shape[n-1-i])}
	}
	return b
}

// Spacing builds the per-axis index-to-coordinate tables.
func (b SpatialBounds) Spacing() *volume.AxisSpacing {
	var s volume.AxisSpacing
	for axis, bounds := range b {
		s[axis] = geometry.Linspace(bounds[0], bounds[1], SpacingSamples)
	}
	return &s
}

// toWorld converts a spatial data position and keeps the trailing three
// world components; extra leading dimensions are not spatial.
func toWorld(layer volume.Layer, pos f64.Vec3) f64.Vec3 {
	return geometry.Trailing3(layer.DataToWorld(pos[:]))
}

// WorldBounds returns the world-space box covered by the layer's spatial
// dimensions.
func WorldBounds(layer volume.Layer) geometry.Box {
	b := SpatialBoundsOf(layer.Shape())
	lo := f64.Vec3{b[0][0], b[1][0], b[2][0]}
	hi := f64.Vec3{b[0][1], b[1][1], b[2][1]}
	return geometry.BoxOf(toWorld(layer, lo), toWorld(layer, hi))
}

// VisibleBox is the part of the layer's world box left after applying its
// enabled clipping planes. A disabled pair leaves its axis untouched.
func VisibleBox(layer volume.Layer, ref IndexRef) geometry.Box {
	box := WorldBounds(layer)
	planes := layer.ClippingPlanes()
	if len(planes) != NumPlanes {
		return box
	}
	for _, axis := range ref.Axes() {
		r, _ := ref.Lookup(axis)
		low, high := planes[r.PlanePair], planes[r.PlanePair+1]
		if !low.Enabled && !high.Enabled {
			continue
		}
		lo, hi := box.Min[r.Coord], box.Max[r.Coord]
		if low.Enabled {
			lo = low.Position[r.Coord]
		}
		if high.Enabled {
			hi = high.Position[r.Coord]
		}
		box = box.ClampAxis(r.Coord, lo, hi)
	}
	return box
}
