package session

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/philipparndt/clipview/pkg/clipping"
	"golang.org/x/image/math/f64"
)

// WritePlanes prints the slider states followed by a table of every
// layer's clipping planes.
func (s *Session) WritePlanes(w io.Writer) error {
	fmt.Fprintln(w, "Sliders:")
	for _, c := range s.Controls() {
		state := "off"
		if c.State() {
			state = "on"
		}
		fmt.Fprintf(w, "  %s: %-3s %s\n", c.Name(), state, c.Value())
	}
	fmt.Fprintln(w)

	rows := clipping.Rows(s.Viewer().Layers(), s.Manager().Ref())
	if len(rows) == 0 {
		fmt.Fprintln(w, "No layer has clipping planes.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(clipping.RowHeaders, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r.Cells(), "\t"))
	}
	return tw.Flush()
}

// WriteBounds prints the spatial and world bounds of every layer.
func (s *Session) WriteBounds(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Layer\tKind\tShape\tData z / y / x\tWorld min (z, y, x)\tWorld max (z, y, x)\tPlanes")
	for _, l := range s.Viewer().Layers().All() {
		b := clipping.SpatialBoundsOf(l.Shape())
		data := fmt.Sprintf("%g..%g / %g..%g / %g..%g", b[0][0], b[0][1], b[1][0], b[1][1], b[2][0], b[2][1])

		world := clipping.WorldBounds(l)
		planes := "no"
		if len(l.ClippingPlanes()) == clipping.NumPlanes {
			planes = "yes"
		}
		fmt.Fprintf(tw, "%s\t%s\t%v\t%s\t%s\t%s\t%s\n",
			l.Name(), l.Kind(), l.Shape(), data, vec(world.Min), vec(world.Max), planes)
	}
	return tw.Flush()
}

func vec(v f64.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}
