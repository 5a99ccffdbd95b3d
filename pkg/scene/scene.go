// Package scene reads layer descriptions from YAML files.
//
// A scene file lists the layers of a viewer:
//
//	layers:
//	  - name: nuclei
//	    kind: image
//	    shape: [10, 256, 256]
//	    scale: [4, 1, 1]
//	  - name: segmentation
//	    kind: labels
//	    shape: [10, 256, 256]
//
// Applying a scene appends the layers the viewer does not have yet, so a
// reloaded file only inserts what was added to it.
package scene

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/clipview/pkg/volume"
	"gopkg.in/yaml.v3"
)

// LayerSpec describes one layer.
type LayerSpec struct {
	Name      string    `yaml:"name"`
	Kind      string    `yaml:"kind"`
	Shape     []int     `yaml:"shape"`
	Scale     []float64 `yaml:"scale,omitempty"`
	Translate []float64 `yaml:"translate,omitempty"`
}

// Scene is the content of a scene file.
type Scene struct {
	Layers []LayerSpec `yaml:"layers"`
}

// Load reads and validates a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	s, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scene.
func Parse(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks every layer can be built and names are unique.
func (s *Scene) Validate() error {
	seen := make(map[string]bool, len(s.Layers))
	for i, spec := range s.Layers {
		if spec.Name == "" {
			return fmt.Errorf("layer %d has no name", i)
		}
		if seen[spec.Name] {
			return fmt.Errorf("layer %q defined twice", spec.Name)
		}
		seen[spec.Name] = true
		if _, err := spec.Build(); err != nil {
			return err
		}
	}
	return nil
}

// Build creates the layer described by spec.
func (spec LayerSpec) Build() (*volume.ArrayLayer, error) {
	kind, err := volume.ParseKind(spec.Kind)
	if err != nil {
		return nil, fmt.Errorf("layer %q: %w", spec.Name, err)
	}
	t := volume.IdentityTransform(len(spec.Shape))
	if spec.Scale != nil {
		t.Scale = spec.Scale
	}
	if spec.Translate != nil {
		t.Translate = spec.Translate
	}
	return volume.New(spec.Name, kind, spec.Shape, volume.WithTransform(t))
}

// Apply appends the layers missing from v, in file order, and returns
// their names. Layers already present by name are left as they are.
func (s *Scene) Apply(v *volume.Viewer) ([]string, error) {
	var added []string
	for _, spec := range s.Layers {
		if _, ok := v.Layers().ByName(spec.Name); ok {
			continue
		}
		layer, err := spec.Build()
		if err != nil {
			return added, err
		}
		if err := v.Add(layer); err != nil {
			return added, err
		}
		added = append(added, spec.Name)
	}
	return added, nil
}
