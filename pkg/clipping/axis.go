package clipping

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/philipparndt/clipview/pkg/geometry"
)

// Axis names one spatial axis. The numeric value is the axis' coordinate
// index in (z, y, x) ordered vectors.
type Axis int

const (
	AxisZ Axis = geometry.AxisZ
	AxisY Axis = geometry.AxisY
	AxisX Axis = geometry.AxisX
)

// Axes lists the spatial axes in coordinate order.
var Axes = [3]Axis{AxisZ, AxisY, AxisX}

var axisNames = [3]string{"z", "y", "x"}

func (a Axis) String() string {
	if a < 0 || int(a) >= len(axisNames) {
		return fmt.Sprintf("Axis(%d)", int(a))
	}
	return axisNames[a]
}

// ParseAxis converts "x", "y" or "z".
func ParseAxis(s string) (Axis, error) {
	for i, name := range axisNames {
		if strings.EqualFold(s, name) {
			return Axis(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAxis, s)
}

// NumPlanes is the length of a planed layer's clipping plane list.
const NumPlanes = 6

// AxisRef locates an axis in a layer's plane list and in 3-vectors.
// The axis' low plane sits at PlanePair, its high plane at PlanePair+1.
type AxisRef struct {
	PlanePair int
	Coord     int
}

// ErrInvalidRef is returned by NewIndexRef for inconsistent tables.
var ErrInvalidRef = errors.New("invalid axis index table")

// IndexRef is an immutable table from axis to AxisRef.
type IndexRef struct {
	refs    [3]AxisRef
	present [3]bool
}

// DefaultIndexRef orders planes [z-low, z-high, y-low, y-high, x-low,
// x-high] with (z, y, x) vectors.
func DefaultIndexRef() IndexRef {
	ref, _ := NewIndexRef(map[Axis]AxisRef{
		AxisZ: {PlanePair: 0, Coord: 0},
		AxisY: {PlanePair: 2, Coord: 1},
		AxisX: {PlanePair: 4, Coord: 2},
	})
	return ref
}

// NewIndexRef builds a table covering all three axes. Plane pairs must be
// 0, 2 or 4, coordinates 0, 1 or 2, and neither may be used twice.
func NewIndexRef(refs map[Axis]AxisRef) (IndexRef, error) {
	var ir IndexRef
	if len(refs) != len(Axes) {
		return IndexRef{}, fmt.Errorf("%w: %d axes, want %d", ErrInvalidRef, len(refs), len(Axes))
	}
	var pairs, coords [3]bool
	for axis, r := range refs {
		if axis < 0 || int(axis) >= len(ir.refs) {
			return IndexRef{}, fmt.Errorf("%w: %v", ErrInvalidRef, axis)
		}
		if r.PlanePair < 0 || r.PlanePair >= NumPlanes || r.PlanePair%2 != 0 {
			return IndexRef{}, fmt.Errorf("%w: %v plane pair %d", ErrInvalidRef, axis, r.PlanePair)
		}
		if r.Coord < 0 || r.Coord > 2 {
			return IndexRef{}, fmt.Errorf("%w: %v coordinate %d", ErrInvalidRef, axis, r.Coord)
		}
		if pairs[r.PlanePair/2] || coords[r.Coord] {
			return IndexRef{}, fmt.Errorf("%w: %v reuses an index", ErrInvalidRef, axis)
		}
		pairs[r.PlanePair/2], coords[r.Coord] = true, true
		ir.refs[axis] = r
		ir.present[axis] = true
	}
	return ir, nil
}

// Lookup returns the entry for axis.
func (ir IndexRef) Lookup(axis Axis) (AxisRef, bool) {
	if axis < 0 || int(axis) >= len(ir.refs) || !ir.present[axis] {
		return AxisRef{}, false
	}
	return ir.refs[axis], true
}

// Complete reports whether every axis has an entry. Only the zero value
// is incomplete.
func (ir IndexRef) Complete() bool {
	return ir.present == [3]bool{true, true, true}
}

// Axes returns the axes present, in coordinate order.
func (ir IndexRef) Axes() []Axis {
	var axes []Axis
	for _, a := range Axes {
		if ir.present[a] {
			axes = append(axes, a)
		}
	}
	return axes
}

// Names returns the axis names present, sorted.
func (ir IndexRef) Names() []string {
	var names []string
	for _, a := range ir.Axes() {
		names = append(names, a.String())
	}
	sort.Strings(names)
	return names
}
