package app

import (
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/clipview/pkg/clipping"
	"github.com/philipparndt/clipview/version"
)

// drawUI draws the info overlay and the slicing panel
func (app *App) drawUI() {
	y := float32(10)
	lineHeight := float32(20)
	fontSize16 := float32(16)
	fontSize14 := float32(14)
	fontSize12 := float32(12)

	s := app.Scene.session
	ref := s.Manager().Ref()

	// === LAYERS ===
	rl.DrawTextEx(app.font, "Layers:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
	y += lineHeight
	for _, l := range s.Viewer().Layers().All() {
		color := rl.White
		status := "no planes"
		if len(l.ClippingPlanes()) == clipping.NumPlanes {
			status = "planed"
		} else {
			color = rl.Gray
		}
		text := fmt.Sprintf("  %s %s %v (%s)", l.Kind(), l.Name(), l.Shape(), status)
		rl.DrawTextEx(app.font, text, rl.Vector2{X: 10, Y: y}, fontSize14, 1, color)
		y += lineHeight

		if len(l.ClippingPlanes()) == clipping.NumPlanes {
			b := clipping.VisibleBox(l, ref)
			size := b.Size()
			text := fmt.Sprintf("    visible: %.1f x %.1f x %.1f", size[2], size[1], size[0])
			rl.DrawTextEx(app.font, text, rl.Vector2{X: 10, Y: y}, fontSize12, 1, rl.NewColor(100, 200, 255, 255))
			y += lineHeight
		}
	}
	y += lineHeight

	// === HELP ===
	if app.View.showHelp {
		rl.DrawTextEx(app.font, "View:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
		y += lineHeight
		for _, line := range []string{
			"  Left Drag: Rotate | Shift+Drag: Pan",
			"  Mouse Wheel: Zoom | Home: Reset camera",
			"  P: Planes | B: Bounds | G: Grid | Tab: Panel",
		} {
			rl.DrawTextEx(app.font, line, rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
			y += lineHeight
		}
		y += lineHeight

		rl.DrawTextEx(app.font, "Clip:", rl.Vector2{X: 10, Y: y}, fontSize16, 1, rl.Yellow)
		y += lineHeight
		for _, line := range []string{
			"  1/2/3: Select x/y/z | Space: Toggle",
			"  Left/Right: Low thumb | Down/Up: High thumb",
			"  Shift: Step 10 | R: Reset all axes",
		} {
			rl.DrawTextEx(app.font, line, rl.Vector2{X: 10, Y: y}, fontSize14, 1, rl.LightGray)
			y += lineHeight
		}
	}

	screenWidth := float32(rl.GetScreenWidth())

	// Reload status (top-right corner)
	if !app.FileWatch.reloadedAt.IsZero() && time.Since(app.FileWatch.reloadedAt) < 5*time.Second {
		text := fmt.Sprintf("Reloaded: %d new layer(s)", len(app.FileWatch.lastAdded))
		color := rl.Yellow
		if app.FileWatch.lastError != nil {
			text = fmt.Sprintf("Reload failed: %v", app.FileWatch.lastError)
			color = rl.Red
		}
		size := rl.MeasureTextEx(app.font, text, fontSize14, 1)
		box := rl.Rectangle{X: screenWidth - size.X - 40, Y: 20, Width: size.X + 20, Height: size.Y + 20}
		rl.DrawRectangleRec(box, rl.NewColor(0, 0, 0, 180))
		rl.DrawRectangleLinesEx(box, 1, color)
		rl.DrawTextEx(app.font, text, rl.Vector2{X: box.X + 10, Y: box.Y + 10}, fontSize14, 1, color)
	}

	// Version and FPS in bottom-left corner
	bottomY := float32(rl.GetScreenHeight()) - 30
	versionText := fmt.Sprintf("v%s", version.GetVersion())
	rl.DrawTextEx(app.font, versionText, rl.Vector2{X: 10, Y: bottomY}, fontSize12, 1, rl.Gray)

	fpsText := fmt.Sprintf("FPS: %d", rl.GetFPS())
	versionWidth := rl.MeasureTextEx(app.font, versionText, fontSize12, 1).X
	rl.DrawTextEx(app.font, fpsText, rl.Vector2{X: 10 + versionWidth + 15, Y: bottomY}, fontSize12, 1, rl.Lime)

	app.drawSlicingPanel()
}
