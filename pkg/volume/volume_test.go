package volume

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind("Labels")
	require.NoError(t, err)
	assert.Equal(t, KindLabels, k)
	assert.Equal(t, "labels", k.String())

	_, err = ParseKind("surface")
	assert.Error(t, err)

	kinds, err := ParseKinds([]string{"image", "labels"})
	require.NoError(t, err)
	assert.Equal(t, []Kind{KindImage, KindLabels}, kinds)
}

func TestNewValidates(t *testing.T) {
	_, err := New("empty", KindImage, nil)
	assert.True(t, errors.Is(err, ErrInvalidShape))

	_, err = New("negative", KindImage, []int{3, -1})
	assert.True(t, errors.Is(err, ErrInvalidShape))

	_, err = New("scale", KindImage, []int{3, 4, 5}, WithScale(1, 1))
	assert.Error(t, err)

	_, err = New("zero", KindImage, []int{3, 4, 5}, WithScale(1, 0, 1))
	assert.Error(t, err)
}

func TestLayerShapeIsCopied(t *testing.T) {
	l := NewImage("3D", 10, 100, 100)
	shape := l.Shape()
	shape[0] = 99

	assert.Equal(t, []int{10, 100, 100}, l.Shape())
	assert.Equal(t, 3, l.NDim())
}

func TestDataToWorld(t *testing.T) {
	l, err := New("scaled", KindImage, []int{10, 100, 100},
		WithScale(2, 0.5, 1), WithTranslate(10, 0, -5))
	require.NoError(t, err)

	assert.Equal(t, []float64{14, 25, 0}, l.DataToWorld([]float64{2, 50, 5}))
	assert.Equal(t, []float64{2, 50, 5}, l.WorldToData([]float64{14, 25, 0}))
}

func TestDataToWorldPadsLeadingDimensions(t *testing.T) {
	l, err := New("4D", KindImage, []int{5, 10, 100, 100}, WithTranslate(3, 0, 0, 0))
	require.NoError(t, err)

	world := l.DataToWorld([]float64{10, 0, 0})
	assert.Equal(t, []float64{3, 10, 0, 0}, world)
}

func TestLayerListAppend(t *testing.T) {
	v := NewViewer()
	var events []InsertedEvent
	v.Layers().Inserted.Connect(func(ev InsertedEvent) { events = append(events, ev) })

	require.NoError(t, v.Add(NewImage("a", 10, 10, 10)))
	require.NoError(t, v.Add(NewLabels("b", 10, 10, 10)))

	require.Len(t, events, 2)
	assert.Same(t, v.Layers(), events[1].Source)
	assert.Equal(t, 1, events[1].Index)
	assert.Equal(t, "b", events[1].Source.Last().Name())

	err := v.Add(NewImage("a", 1, 1, 1))
	assert.True(t, errors.Is(err, ErrDuplicateName))
	assert.Equal(t, 2, v.Layers().Len())
	assert.Len(t, events, 2)

	l, ok := v.Layers().ByName("b")
	require.True(t, ok)
	assert.Equal(t, KindLabels, l.Kind())
	assert.Equal(t, "a", v.Layers().At(0).Name())
}

func TestLayerListLastEmpty(t *testing.T) {
	var ll LayerList
	assert.Nil(t, ll.Last())
	assert.Empty(t, ll.All())
}
