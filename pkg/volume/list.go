package volume

import (
	"errors"
	"fmt"

	"github.com/philipparndt/clipview/pkg/event"
)

// ErrDuplicateName is returned when appending a layer whose name is taken.
var ErrDuplicateName = errors.New("layer name already in use")

// InsertedEvent reports a layer appended to Source. The new layer is
// Source.Last().
type InsertedEvent struct {
	Source *LayerList
	Index  int
}

// LayerList is the ordered collection of a viewer's layers.
type LayerList struct {
	layers []Layer

	Inserted event.Signal[InsertedEvent]
}

// Append adds layer at the end and emits Inserted.
func (ll *LayerList) Append(layer Layer) error {
	if _, ok := ll.ByName(layer.Name()); ok {
		return fmt.Errorf("append %q: %w", layer.Name(), ErrDuplicateName)
	}
	ll.layers = append(ll.layers, layer)
	ll.Inserted.Emit(InsertedEvent{Source: ll, Index: len(ll.layers) - 1})
	return nil
}

// Len returns the number of layers.
func (ll *LayerList) Len() int {
	return len(ll.layers)
}

// At returns the layer at index i.
func (ll *LayerList) At(i int) Layer {
	return ll.layers[i]
}

// Last returns the most recently appended layer, or nil if empty.
func (ll *LayerList) Last() Layer {
	if len(ll.layers) == 0 {
		return nil
	}
	return ll.layers[len(ll.layers)-1]
}

// All returns the layers in order. The slice is a copy.
func (ll *LayerList) All() []Layer {
	return append([]Layer(nil), ll.layers...)
}

// ByName looks a layer up by name.
func (ll *LayerList) ByName(name string) (Layer, bool) {
	for _, l := range ll.layers {
		if l.Name() == name {
			return l, true
		}
	}
	return nil, false
}
