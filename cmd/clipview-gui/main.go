package main

import (
	"fmt"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/clipview/internal/config"
	"github.com/philipparndt/clipview/internal/logging"
	"github.com/philipparndt/clipview/internal/ui"
	"github.com/philipparndt/clipview/pkg/scene"
	"github.com/philipparndt/clipview/pkg/volume"
	"github.com/philipparndt/clipview/pkg/watcher"
	"github.com/philipparndt/clipview/version"
)

type App struct {
	window  fyne.Window
	cfg     config.Config
	log     *slog.Logger
	viewer  *volume.Viewer
	panel   *ui.ClipperPanel
	table   *ui.PlaneTable
	view    *ui.BoxView
	watcher *watcher.FileWatcher
	status  *widget.Label
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow("clipview " + version.GetVersion())

	appInstance := &App{
		window: w,
		cfg:    cfg,
		log:    logging.New(cfg.LogLevel()),
	}
	defer appInstance.closeScene()

	if len(os.Args) > 1 {
		appInstance.loadFile(os.Args[1])
	} else {
		appInstance.showWelcomeScreen()
	}

	w.Resize(fyne.NewSize(float32(cfg.Window.Width), float32(cfg.Window.Height)))
	w.ShowAndRun()
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to clipview")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open Scene' to load a YAML scene file")

	openButton := widget.NewButton("Open Scene", a.showFileDialog)

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	sc, err := scene.Load(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load scene: %w", err), a.window)
		return
	}

	a.closeScene()

	a.viewer = volume.NewViewer()
	if _, err := sc.Apply(a.viewer); err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	panel, err := ui.NewClipperPanel(a.viewer, a.panelConfig())
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.panel = panel

	ref := panel.Manager().Ref()
	a.table = ui.NewPlaneTable(a.viewer.Layers(), ref)
	a.view = ui.NewBoxView(a.viewer.Layers(), ref)

	// table and view connect after the manager so they see updated planes
	a.table.Follow(panel.Controls()...)
	a.view.Follow(panel.Controls()...)

	if a.cfg.Window.Watch {
		a.watch(filename)
	}
	a.setupMainUI(filename)
}

func (a *App) panelConfig() ui.PanelConfig {
	cfg := ui.DefaultPanelConfig()
	cfg.Min, cfg.Max = a.cfg.Slider.Min, a.cfg.Slider.Max
	cfg.Logger = a.log
	// already validated by config.Load
	cfg.Enabled, _ = a.cfg.EnabledAxes()
	cfg.Kinds, _ = a.cfg.Kinds()
	return cfg
}

// watch reloads the scene on change. The watcher calls back on its own
// goroutine, so the reload is handed to the fyne thread.
func (a *App) watch(filename string) {
	fw, err := watcher.NewFileWatcher(watcher.WithLogger(a.log))
	if err != nil {
		a.log.Warn("auto-reload not available", "err", err)
		return
	}
	viewer := a.viewer
	err = fw.Watch(filename, func(path string) {
		fyne.Do(func() { a.reload(viewer, path) })
	})
	if err != nil {
		fw.Close()
		a.log.Warn("auto-reload not available", "err", err)
		return
	}
	fw.Start()
	a.watcher = fw
}

func (a *App) reload(viewer *volume.Viewer, path string) {
	if viewer != a.viewer {
		return // scene was replaced since the change was reported
	}
	sc, err := scene.Load(path)
	if err != nil {
		a.status.SetText(fmt.Sprintf("Reload failed: %v", err))
		return
	}
	added, err := sc.Apply(viewer)
	if err != nil {
		a.status.SetText(fmt.Sprintf("Reload failed: %v", err))
		return
	}
	a.status.SetText(fmt.Sprintf("Reloaded, %d new layer(s)", len(added)))
}

func (a *App) closeScene() {
	if a.watcher != nil {
		a.watcher.Close()
		a.watcher = nil
	}
	if a.panel != nil {
		a.panel.Close()
		a.panel = nil
	}
}

func (a *App) setupMainUI(filename string) {
	a.status = widget.NewLabel(fmt.Sprintf("%s: %d layer(s)", filename, a.viewer.Layers().Len()))
	a.status.Wrapping = fyne.TextWrapWord

	openButton := widget.NewButton("Open Scene", a.showFileDialog)
	resetButton := widget.NewButton("Reset Camera", a.view.ResetCamera)

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Tick an axis to clip along it\n" +
			"• Drag the two sliders to move the planes\n" +
			"• Drag the view to rotate, scroll to zoom",
	)
	instructions.Wrapping = fyne.TextWrapWord

	side := container.NewVBox(
		a.panel,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		a.status,
		openButton,
		resetButton,
	)
	sideScroll := container.NewVScroll(side)
	sideScroll.SetMinSize(fyne.NewSize(320, 0))

	split := container.NewVSplit(a.view, a.table.Widget())
	split.SetOffset(0.7)

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		sideScroll, // right
		split,      // center
	)
	a.window.SetContent(content)
}
