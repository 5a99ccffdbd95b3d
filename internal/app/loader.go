package app

import (
	"fmt"
	"time"

	"github.com/philipparndt/clipview/pkg/watcher"
)

// setupFileWatcher watches the scene file; changes set needsReload, which
// the frame loop consumes on the main thread
func (app *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(watcher.WithDebounce(500*time.Millisecond), watcher.WithLogger(app.log))
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}

	file := app.Scene.session.SceneFile()
	callback := func(changedFile string) {
		app.log.Debug("scene file changed", "file", changedFile)
		app.FileWatch.needsReload.Store(true)
	}
	if err := fw.Watch(file, callback); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch files: %w", err)
	}

	fw.Start()
	app.FileWatch.fileWatcher = fw
	app.log.Info("watching scene for changes", "file", file)
	return nil
}

// reloadScene appends the layers added to the scene file since the last
// load. New eligible layers get their planes through the insertion signal.
func (app *App) reloadScene() {
	added, err := app.Scene.session.Reload()
	app.FileWatch.lastError = err
	app.FileWatch.reloadedAt = time.Now()
	if err != nil {
		app.log.Warn("scene reload failed", "err", err)
		return
	}
	app.FileWatch.lastAdded = added
	if len(added) > 0 {
		fmt.Printf("Added %d layer(s): %v\n", len(added), added)
		app.frameScene(false)
	}
}
