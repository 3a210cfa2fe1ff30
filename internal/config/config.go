// Package config loads user preferences for the shapeshift CLI.
//
// Preferences are read from $SHAPESHIFT_CONFIG or
// ~/.config/shapeshift/config.toml when present. Every key can be
// overridden from the environment with the SHAPESHIFT_ prefix, dots
// replaced by underscores (grid.gutter_x becomes SHAPESHIFT_GRID_GUTTER_X).
// Grid preferences seed the options of every board file.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/matzehuels/shapeshift/pkg/core/grid"
	"github.com/matzehuels/shapeshift/pkg/core/grid/sink"
	errs "github.com/matzehuels/shapeshift/pkg/errors"
)

// Config holds application preferences.
type Config struct {
	Grid   GridConfig   `mapstructure:"grid"`
	Render RenderConfig `mapstructure:"render"`
	TUI    TUIConfig    `mapstructure:"tui"`
}

// GridConfig holds default grid options.
type GridConfig struct {
	GutterX             float64 `mapstructure:"gutter_x"`
	GutterY             float64 `mapstructure:"gutter_y"`
	PaddingX            float64 `mapstructure:"padding_x"`
	PaddingY            float64 `mapstructure:"padding_y"`
	CenterGrid          bool    `mapstructure:"center_grid"`
	EnableAnimation     bool    `mapstructure:"enable_animation"`
	EnableDragAnimation bool    `mapstructure:"enable_drag_animation"`
	EnableAutoHeight    bool    `mapstructure:"enable_auto_height"`
}

// RenderConfig holds render command defaults.
type RenderConfig struct {
	Formats string `mapstructure:"formats"`
	Columns bool   `mapstructure:"columns"`
}

// TUIConfig holds interactive host settings.
type TUIConfig struct {
	ScaleX float64 `mapstructure:"scale_x"`
	ScaleY float64 `mapstructure:"scale_y"`
}

// Base returns the grid configuration the preferences describe. Options
// without a preference keep their stock defaults.
func (g GridConfig) Base() grid.Config {
	cfg := grid.DefaultConfig()
	cfg.GutterX = g.GutterX
	cfg.GutterY = g.GutterY
	cfg.PaddingX = g.PaddingX
	cfg.PaddingY = g.PaddingY
	cfg.CenterGrid = g.CenterGrid
	cfg.EnableAnimation = g.EnableAnimation
	cfg.EnableDragAnimation = g.EnableDragAnimation
	cfg.EnableAutoHeight = g.EnableAutoHeight
	return cfg
}

// TextOptions returns the text renderer scale for the TUI.
func (t TUIConfig) TextOptions() sink.TextOptions {
	return sink.TextOptions{ScaleX: t.ScaleX, ScaleY: t.ScaleY}
}

// Load reads preferences from file and env. An explicit path (from a
// flag) takes precedence over $SHAPESHIFT_CONFIG. A missing default file
// is not an error; a missing explicit file is.
func Load(path string) (Config, error) {
	v := viper.New()

	def := grid.DefaultConfig()
	v.SetDefault("grid.gutter_x", def.GutterX)
	v.SetDefault("grid.gutter_y", def.GutterY)
	v.SetDefault("grid.padding_x", def.PaddingX)
	v.SetDefault("grid.padding_y", def.PaddingY)
	v.SetDefault("grid.center_grid", def.CenterGrid)
	v.SetDefault("grid.enable_animation", def.EnableAnimation)
	v.SetDefault("grid.enable_drag_animation", def.EnableDragAnimation)
	v.SetDefault("grid.enable_auto_height", def.EnableAutoHeight)
	v.SetDefault("render.formats", "svg")
	v.SetDefault("render.columns", false)
	v.SetDefault("tui.scale_x", sink.DefaultScaleX)
	v.SetDefault("tui.scale_y", sink.DefaultScaleY)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("SHAPESHIFT_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "shapeshift"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHAPESHIFT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && !explicit:
		case explicit && errors.Is(err, os.ErrNotExist):
			return Config{}, errs.Wrap(errs.ErrCodeFileNotFound, err, "read config %s", path)
		default:
			return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "read config")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "unmarshal config")
	}
	if err := c.Grid.Base().Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
