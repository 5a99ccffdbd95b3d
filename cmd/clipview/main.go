package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/clipview/internal/config"
	"github.com/philipparndt/clipview/internal/logging"
	"github.com/philipparndt/clipview/internal/session"
	"github.com/philipparndt/clipview/version"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	veryVerbose bool
	quiet       bool
)

var rootCmd = &cobra.Command{
	Use:   "clipview",
	Short: "Axis-aligned clipping planes for volumetric layers",
	Long: `clipview loads layers described in a YAML scene file and keeps six
axis-aligned clipping planes per volumetric layer in sync with one range
slider per spatial axis (x, y, z).`,
	Version:       version.GetFullVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log info messages")
	rootCmd.PersistentFlags().BoolVar(&veryVerbose, "vv", false, "log debug messages")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "log errors only")
}

// setup loads the configuration and builds the logger for a command.
func setup() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, err
	}
	log := logging.New(logging.LevelFromFlags(cfg.LogLevel(), veryVerbose, verbose, quiet))
	return cfg, log, nil
}

// openSession loads a scene with the configured slider settings.
func openSession(sceneFile string) (*session.Session, error) {
	cfg, log, err := setup()
	if err != nil {
		return nil, err
	}
	opts, err := session.OptionsFromConfig(cfg, log)
	if err != nil {
		return nil, err
	}
	return session.New(sceneFile, opts)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
