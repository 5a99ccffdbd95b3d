package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/philipparndt/clipview/pkg/volume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
layers:
  - name: nuclei
    kind: image
    shape: [10, 100, 100]
    scale: [2, 1, 1]
  - name: seg
    kind: labels
    shape: [10, 100, 100]
  - name: slice
    kind: image
    shape: [100, 100]
`

func TestParse(t *testing.T) {
	s, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, s.Layers, 3)

	assert.Equal(t, "nuclei", s.Layers[0].Name)
	assert.Equal(t, []float64{2, 1, 1}, s.Layers[0].Scale)

	l, err := s.Layers[0].Build()
	require.NoError(t, err)
	assert.Equal(t, volume.KindImage, l.Kind())
	assert.Equal(t, []float64{20, 0, 0}, l.DataToWorld([]float64{10, 0, 0}))
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, s.Layers)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"unknown kind", "layers:\n  - {name: a, kind: surface, shape: [1, 2, 3]}\n"},
		{"no name", "layers:\n  - {kind: image, shape: [1, 2, 3]}\n"},
		{"duplicate", "layers:\n  - {name: a, kind: image, shape: [1]}\n  - {name: a, kind: image, shape: [1]}\n"},
		{"no shape", "layers:\n  - {name: a, kind: image}\n"},
		{"negative", "layers:\n  - {name: a, kind: image, shape: [1, -2, 3]}\n"},
		{"scale length", "layers:\n  - {name: a, kind: image, shape: [1, 2, 3], scale: [1, 1]}\n"},
		{"unknown field", "layers:\n  - {name: a, kind: image, shape: [1, 2, 3], color: red}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestApplyAddsOnlyMissingLayers(t *testing.T) {
	s, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	v := volume.NewViewer()
	inserted := 0
	v.Layers().Inserted.Connect(func(volume.InsertedEvent) { inserted++ })

	added, err := s.Apply(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"nuclei", "seg", "slice"}, added)
	assert.Equal(t, 3, inserted)

	s.Layers = append(s.Layers, LayerSpec{Name: "late", Kind: "image", Shape: []int{5, 5, 5}})
	added, err = s.Apply(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"late"}, added)
	assert.Equal(t, 4, inserted)
	assert.Equal(t, "late", v.Layers().Last().Name())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, s.Layers, 3)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
