// Package volume is the viewer data model: layers with an array shape and
// a data-to-world transform, collected in an ordered, observable list.
package volume

import (
	"errors"
	"fmt"
)

// Layer is what a viewer holds. Clipping planes and their spacing tables
// are owned by the layer; other packages only read and mutate them.
type Layer interface {
	Name() string
	Kind() Kind
	Shape() []int
	NDim() int

	ClippingPlanes() []*ClippingPlane
	SetClippingPlanes(planes []*ClippingPlane)

	ClipSpacing() *AxisSpacing
	SetClipSpacing(spacing *AxisSpacing)

	// DataToWorld converts a position in data index space to world space.
	DataToWorld(pos []float64) []float64
}

// ErrInvalidShape is returned for shapes that cannot describe an array.
var ErrInvalidShape = errors.New("invalid shape")

// ArrayLayer is an n-dimensional array layer. Only its shape is kept, the
// voxel data itself is not needed to place clipping planes.
type ArrayLayer struct {
	name      string
	kind      Kind
	shape     []int
	transform Transform

	planes  []*ClippingPlane
	spacing *AxisSpacing
}

// Option configures an ArrayLayer.
type Option func(*ArrayLayer)

// WithTransform sets the data-to-world transform.
func WithTransform(t Transform) Option {
	return func(l *ArrayLayer) {
		l.transform = t
	}
}

// WithScale sets the per-dimension scale, keeping the translation.
func WithScale(scale ...float64) Option {
	return func(l *ArrayLayer) {
		l.transform.Scale = scale
	}
}

// WithTranslate sets the per-dimension translation, keeping the scale.
func WithTranslate(translate ...float64) Option {
	return func(l *ArrayLayer) {
		l.transform.Translate = translate
	}
}

// New creates a layer of the given kind and validates its shape and
// transform.
func New(name string, kind Kind, shape []int, opts ...Option) (*ArrayLayer, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("layer %q: %w: no dimensions", name, ErrInvalidShape)
	}
	for i, d := range shape {
		if d < 0 {
			return nil, fmt.Errorf("layer %q: %w: dimension %d is %d", name, ErrInvalidShape, i, d)
		}
	}

	l := &ArrayLayer{
		name:      name,
		kind:      kind,
		shape:     append([]int(nil), shape...),
		transform: IdentityTransform(len(shape)),
	}
	for _, opt := range opts {
		opt(l)
	}
	if err := l.transform.Validate(len(shape)); err != nil {
		return nil, fmt.Errorf("layer %q: %w", name, err)
	}
	return l, nil
}

// NewImage creates an image layer with an identity transform.
func NewImage(name string, shape ...int) *ArrayLayer {
	return mustNew(name, KindImage, shape)
}

// NewLabels creates a labels layer with an identity transform.
func NewLabels(name string, shape ...int) *ArrayLayer {
	return mustNew(name, KindLabels, shape)
}

// NewPoints creates a points layer holding n points of dims coordinates.
func NewPoints(name string, n, dims int) *ArrayLayer {
	return mustNew(name, KindPoints, []int{n, dims})
}

func mustNew(name string, kind Kind, shape []int) *ArrayLayer {
	l, err := New(name, kind, shape)
	if err != nil {
		panic(err)
	}
	return l
}

func (l *ArrayLayer) Name() string { return l.name }
func (l *ArrayLayer) Kind() Kind   { return l.kind }
func (l *ArrayLayer) NDim() int    { return len(l.shape) }

// Shape returns a copy of the array shape.
func (l *ArrayLayer) Shape() []int {
	return append([]int(nil), l.shape...)
}

// Transform returns the data-to-world transform.
func (l *ArrayLayer) Transform() Transform {
	return l.transform
}

func (l *ArrayLayer) ClippingPlanes() []*ClippingPlane {
	return l.planes
}

func (l *ArrayLayer) SetClippingPlanes(planes []*ClippingPlane) {
	l.planes = planes
}

func (l *ArrayLayer) ClipSpacing() *AxisSpacing {
	return l.spacing
}

func (l *ArrayLayer) SetClipSpacing(spacing *AxisSpacing) {
	l.spacing = spacing
}

func (l *ArrayLayer) DataToWorld(pos []float64) []float64 {
	return l.transform.Apply(pos)
}

// WorldToData is the inverse of DataToWorld.
func (l *ArrayLayer) WorldToData(pos []float64) []float64 {
	return l.transform.Invert(pos)
}

func (l *ArrayLayer) String() string {
	return fmt.Sprintf("%s %q %v", l.kind, l.name, l.shape)
}
