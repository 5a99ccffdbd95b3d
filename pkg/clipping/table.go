package clipping

import (
	"fmt"

	"github.com/philipparndt/clipview/pkg/volume"
	"golang.org/x/image/math/f64"
)

// PlaneName labels plane i of a layer's list, e.g. "x-low".
func PlaneName(ref IndexRef, i int) string {
	for _, axis := range ref.Axes() {
		r, _ := ref.Lookup(axis)
		switch i {
		case r.PlanePair:
			return axis.String() + "-low"
		case r.PlanePair + 1:
			return axis.String() + "-high"
		}
	}
	return fmt.Sprintf("plane-%d", i)
}

// PlaneRow is one clipping plane of one layer, flattened for display.
type PlaneRow struct {
	Layer    string
	Plane    string
	Position f64.Vec3
	Normal   f64.Vec3
	Enabled  bool
}

// Cells formats the row for a text table.
func (r PlaneRow) Cells() []string {
	on := "off"
	if r.Enabled {
		on = "on"
	}
	return []string{r.Layer, r.Plane, formatVec(r.Position), formatVec(r.Normal), on}
}

// RowHeaders are the column titles matching Cells.
var RowHeaders = []string{"Layer", "Plane", "Position (z, y, x)", "Normal", "Enabled"}

func formatVec(v f64.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}

// Rows lists the planes of every layer in viewer order. Layers without
// planes contribute nothing.
func Rows(layers *volume.LayerList, ref IndexRef) []PlaneRow {
	var rows []PlaneRow
	for _, layer := range layers.All() {
		for i, p := range layer.ClippingPlanes() {
			rows = append(rows, PlaneRow{
				Layer:    layer.Name(),
				Plane:    PlaneName(ref, i),
				Position: p.Position,
				Normal:   p.Normal,
				Enabled:  p.Enabled,
			})
		}
	}
	return rows
}
