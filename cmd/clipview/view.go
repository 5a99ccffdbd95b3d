package main

import (
	"github.com/philipparndt/clipview/internal/app"
	"github.com/philipparndt/clipview/internal/session"
	"github.com/spf13/cobra"
)

var noWatch bool

var viewCmd = &cobra.Command{
	Use:               "view <scene.yaml>",
	Short:             "Open the 3D viewer",
	Long:              "Open a window showing every layer of the scene with its clipping planes. The scene file is reloaded when it changes.",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeScene,
	RunE:              runView,
}

func init() {
	viewCmd.Flags().BoolVar(&noWatch, "no-watch", false, "do not reload the scene file on change")
	rootCmd.AddCommand(viewCmd)
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}
	opts, err := session.OptionsFromConfig(cfg, log)
	if err != nil {
		return err
	}

	s, err := session.New(args[0], opts)
	if err != nil {
		return err
	}
	defer s.Close()

	return app.Run(s, app.Options{
		Width:  int32(cfg.Window.Width),
		Height: int32(cfg.Window.Height),
		Watch:  cfg.Window.Watch && !noWatch,
		Logger: log,
	})
}
