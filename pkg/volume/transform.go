package volume

import "fmt"

// Transform is a per-dimension scale followed by a translation, mapping a
// layer's data index space into world space.
type Transform struct {
	Scale     []float64
	Translate []float64
}

// IdentityTransform returns the identity for ndim dimensions.
func IdentityTransform(ndim int) Transform {
	t := Transform{Scale: make([]float64, ndim), Translate: make([]float64, ndim)}
	for i := range t.Scale {
		t.Scale[i] = 1
	}
	return t
}

// Validate checks the transform matches ndim dimensions and does not
// collapse any of them.
func (t Transform) Validate(ndim int) error {
	if len(t.Scale) != ndim {
		return fmt.Errorf("scale has %d entries, layer has %d dimensions", len(t.Scale), ndim)
	}
	if len(t.Translate) != ndim {
		return fmt.Errorf("translate has %d entries, layer has %d dimensions", len(t.Translate), ndim)
	}
	for i, s := range t.Scale {
		if s == 0 {
			return fmt.Errorf("scale of dimension %d is zero", i)
		}
	}
	return nil
}

// Apply maps a data position to world space. Positions with fewer
// components than the transform are right-aligned onto the trailing
// dimensions, the leading ones being 0.
func (t Transform) Apply(pos []float64) []float64 {
	ndim := len(t.Scale)
	if len(pos) > ndim {
		ndim = len(pos)
	}
	out := make([]float64, ndim)
	offset := ndim - len(pos)
	for i := range out {
		var v float64
		if i >= offset {
			v = pos[i-offset]
		}
		j := i - (ndim - len(t.Scale))
		if j >= 0 {
			v = v*t.Scale[j] + t.Translate[j]
		}
		out[i] = v
	}
	return out
}

// Invert maps a world position back to data space, with the same
// alignment rules as Apply.
func (t Transform) Invert(pos []float64) []float64 {
	inv := Transform{Scale: make([]float64, len(t.Scale)), Translate: make([]float64, len(t.Translate))}
	for i, s := range t.Scale {
		inv.Scale[i] = 1 / s
		inv.Translate[i] = -t.Translate[i] / s
	}
	return inv.Apply(pos)
}
