// Package app is the raylib 3D viewer: layer boxes, the regions left
// visible by their clipping planes, and a panel with one range slider per
// axis.
package app

import (
	"fmt"
	"io"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/clipview/internal/session"
)

// Options configures the viewer window.
type Options struct {
	Width, Height int32
	Watch         bool
	Logger        *slog.Logger
}

type App struct {
	Camera      CameraState
	Scene       SceneData
	View        ViewSettings
	Interaction InteractionState
	FileWatch   FileWatchState
	Panel       PanelState

	font rl.Font
	log  *slog.Logger
}

// Run opens the window and blocks until it is closed.
func Run(s *session.Session, opts Options) error {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	app := &App{
		Scene: SceneData{session: s},
		View: ViewSettings{
			showPlanes: true,
			showBounds: true,
			showGrid:   true,
			showHelp:   true,
		},
		Panel: PanelState{visible: true, dragRow: -1, hoveredRow: -1},
		log:   log,
	}

	// Set up file watching
	if opts.Watch && s.SceneFile() != "" {
		if err := app.setupFileWatcher(); err != nil {
			fmt.Printf("Warning: Failed to set up file watching: %v\n", err)
			fmt.Println("Auto-reload will not be available")
		} else {
			defer app.FileWatch.fileWatcher.Close()
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(opts.Width, opts.Height, "clipview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyNull)

	app.font = rl.GetFontDefault()

	app.frameScene(true)
	app.Camera.camera = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: 0, Z: app.Camera.distance},
		Target:     app.Camera.target,
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45.0,
		Projection: rl.CameraPerspective,
	}

	for !rl.WindowShouldClose() {
		// Check for Ctrl+C or Escape to exit
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if (ctrlPressed && rl.IsKeyPressed(rl.KeyC)) || rl.IsKeyPressed(rl.KeyEscape) {
			break
		}

		// Scene file changed on the watcher goroutine
		if app.FileWatch.needsReload.Swap(false) {
			app.reloadScene()
		}

		app.handleInput()
		app.updateCamera()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(15, 18, 25, 255))

		rl.BeginMode3D(app.Camera.camera)
		if app.View.showGrid {
			app.drawGrid()
		}
		app.drawLayers()
		app.drawClippingPlanes()
		rl.EndMode3D()

		app.drawUI()

		rl.EndDrawing()
	}
	return nil
}

// drawGrid draws a floor grid under the scene sized to its extent
func (app *App) drawGrid() {
	rl.PushMatrix()
	rl.Translatef(app.Scene.center.X, app.Scene.center.Y-app.Scene.size/2, app.Scene.center.Z)
	spacing := app.Scene.size / 10
	rl.DrawGrid(20, spacing)
	rl.PopMatrix()
}
