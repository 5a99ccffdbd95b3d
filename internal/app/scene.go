package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/clipview/internal/session"
	"github.com/philipparndt/clipview/pkg/clipping"
	"github.com/philipparndt/clipview/pkg/geometry"
	"github.com/philipparndt/clipview/pkg/volume"
	"golang.org/x/image/math/f64"
)

var (
	boundsColor  = rl.NewColor(100, 100, 100, 200)
	visibleColor = rl.NewColor(255, 200, 0, 255)
)

// toRL converts a world (z, y, x) position to a raylib vector
func toRL(v f64.Vec3) rl.Vector3 {
	return rl.Vector3{X: float32(v[2]), Y: float32(v[1]), Z: float32(v[0])}
}

// spatial reports whether a layer has a third dimension to draw
func spatial(l volume.Layer) bool {
	return l.NDim() > 2
}

// sceneBox returns the world box around every spatial layer
func sceneBox(s *session.Session) geometry.Box {
	box := geometry.NewBox()
	for _, l := range s.Viewer().Layers().All() {
		if !spatial(l) {
			continue
		}
		b := clipping.WorldBounds(l)
		box.Extend(b.Min)
		box.Extend(b.Max)
	}
	if box.Empty() {
		return geometry.BoxOf(f64.Vec3{}, f64.Vec3{1, 1, 1})
	}
	return box
}

// drawBox draws the edges of a world box
func drawBox(box geometry.Box, color rl.Color) {
	for _, e := range box.Edges() {
		rl.DrawLine3D(toRL(e[0]), toRL(e[1]), color)
	}
}

// drawLayers draws each spatial layer's world box and the region its
// enabled planes leave visible
func (app *App) drawLayers() {
	ref := app.Scene.session.Manager().Ref()
	for _, l := range app.Scene.session.Viewer().Layers().All() {
		if !spatial(l) {
			continue
		}
		if app.View.showBounds {
			drawBox(clipping.WorldBounds(l), boundsColor)
		}
		if len(l.ClippingPlanes()) != clipping.NumPlanes {
			continue
		}
		if visible := clipping.VisibleBox(l, ref); !visible.Empty() {
			drawBox(visible, visibleColor)
		}
	}
}
