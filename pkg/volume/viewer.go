package volume

// Viewer owns the layer list shown in one window.
type Viewer struct {
	layers LayerList
}

// NewViewer creates a viewer without layers.
func NewViewer() *Viewer {
	return &Viewer{}
}

// Layers returns the viewer's layer list.
func (v *Viewer) Layers() *LayerList {
	return &v.layers
}

// Add appends layer to the viewer.
func (v *Viewer) Add(layer Layer) error {
	return v.layers.Append(layer)
}
