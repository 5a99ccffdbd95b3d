package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/clipview/internal/logging"
	"github.com/philipparndt/clipview/pkg/clipping"
	"github.com/philipparndt/clipview/pkg/volume"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Slider   SliderConfig   `mapstructure:"slider"`
	Clipping ClippingConfig `mapstructure:"clipping"`
	Window   WindowConfig   `mapstructure:"window"`
	Log      LogConfig      `mapstructure:"log"`
}

// SliderConfig holds the range and initial toggles of the axis sliders.
type SliderConfig struct {
	Min     int      `mapstructure:"min"`
	Max     int      `mapstructure:"max"`
	Enabled []string `mapstructure:"enabled"`
}

// ClippingConfig selects which layer kinds get planes.
type ClippingConfig struct {
	Kinds []string `mapstructure:"kinds"`
}

// WindowConfig holds viewer window settings.
type WindowConfig struct {
	Width  int  `mapstructure:"width"`
	Height int  `mapstructure:"height"`
	Watch  bool `mapstructure:"watch"`
}

// LogConfig holds the default log level.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and env. Env var overrides use prefix CLIPVIEW_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("slider.min", 0)
	v.SetDefault("slider.max", 100)
	v.SetDefault("slider.enabled", []string{"x"})
	v.SetDefault("clipping.kinds", []string{"image", "labels"})
	v.SetDefault("window.width", 1400)
	v.SetDefault("window.height", 900)
	v.SetDefault("window.watch", true)
	v.SetDefault("log.level", "warn")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("CLIPVIEW_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "clipview"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("CLIPVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// an explicit path that does not exist is an error, a missing default is not
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values that have a closed set of choices.
func (c Config) Validate() error {
	if _, err := c.Kinds(); err != nil {
		return fmt.Errorf("clipping.kinds: %w", err)
	}
	if _, err := c.EnabledAxes(); err != nil {
		return fmt.Errorf("slider.enabled: %w", err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Slider.Min >= c.Slider.Max {
		return fmt.Errorf("slider.min %d must be below slider.max %d", c.Slider.Min, c.Slider.Max)
	}
	return nil
}

// Kinds returns the eligible layer kinds.
func (c Config) Kinds() ([]volume.Kind, error) {
	return volume.ParseKinds(c.Clipping.Kinds)
}

// EnabledAxes returns the axes whose slider starts toggled on.
func (c Config) EnabledAxes() (map[clipping.Axis]bool, error) {
	axes := make(map[clipping.Axis]bool, len(c.Slider.Enabled))
	for _, name := range c.Slider.Enabled {
		axis, err := clipping.ParseAxis(name)
		if err != nil {
			return nil, err
		}
		axes[axis] = true
	}
	return axes, nil
}

// LogLevel returns the parsed log level.
func (c Config) LogLevel() slog.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}
