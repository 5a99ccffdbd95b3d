package volume

import (
	"fmt"

	"golang.org/x/image/math/f64"
)

// ClippingPlane is an axis-aligned half-space cutoff in world coordinates.
// Everything on the side the normal points to is kept.
type ClippingPlane struct {
	Position f64.Vec3
	Normal   f64.Vec3
	Enabled  bool
}

func (p ClippingPlane) String() string {
	return fmt.Sprintf("pos=%v normal=%v enabled=%t", p.Position, p.Normal, p.Enabled)
}

// AxisSpacing holds per-axis lookup tables, indexed (z, y, x), that map
// slider indices to data coordinates.
type AxisSpacing [3][]float64
