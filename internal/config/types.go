// Package config loads the optional YAML configuration of the form builder.
package config

import (
	"io"

	"github.com/alexisbeaulieu97/formbuilder/internal/logger"
	"github.com/alexisbeaulieu97/formbuilder/internal/theme"
	"github.com/alexisbeaulieu97/formbuilder/internal/uimode"
)

// Config is the top-level configuration document.
type Config struct {
	Log    LogConfig              `yaml:"log"`
	UI     UIConfig               `yaml:"ui"`
	Themes map[string]ThemeColors `yaml:"themes" validate:"omitempty,dive,keys,theme_id,endkeys"`
}

// LogConfig controls where and how much the application logs.
type LogConfig struct {
	Level         string `yaml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	File          string `yaml:"file"`
	HumanReadable bool   `yaml:"human_readable"`
}

// UIConfig sets the initial state of the interactive builder.
type UIConfig struct {
	Theme           string `yaml:"theme" validate:"omitempty,theme_id"`
	Mouse           bool   `yaml:"mouse"`
	Unicode         bool   `yaml:"unicode"`
	PaletteExpanded bool   `yaml:"palette_expanded"`
}

// ThemeColors overrides the terminal presentation of one theme. Empty fields
// keep the built-in value.
type ThemeColors struct {
	Background string `yaml:"background" validate:"omitempty,term_color"`
	Foreground string `yaml:"foreground" validate:"omitempty,term_color"`
	Accent     string `yaml:"accent" validate:"omitempty,term_color"`
	Border     string `yaml:"border" validate:"omitempty,oneof=normal rounded thick double"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:         "info",
			HumanReadable: true,
		},
		UI: UIConfig{
			Theme:   theme.Theme1.String(),
			Mouse:   true,
			Unicode: true,
		},
	}
}

// InitialState returns the UI state a new session starts in.
func (c *Config) InitialState() uimode.State {
	state := uimode.Initial()
	if c == nil {
		return state
	}
	if id, err := theme.ParseID(c.UI.Theme); err == nil {
		state.ActiveTheme = id
	}
	state.PaletteExpanded = c.UI.PaletteExpanded
	return state
}

// Registry builds the theme registry with the configured overrides applied.
func (c *Config) Registry() *theme.Registry {
	if c == nil {
		return theme.DefaultRegistry()
	}
	return theme.NewRegistry(c.TerminalOverrides())
}

// TerminalOverrides converts the themes section into registry overrides.
// Entries with unknown theme tokens are skipped; Validate rejects them first.
func (c *Config) TerminalOverrides() map[theme.ID]theme.Terminal {
	if c == nil || len(c.Themes) == 0 {
		return nil
	}
	out := make(map[theme.ID]theme.Terminal, len(c.Themes))
	for token, colors := range c.Themes {
		id, err := theme.ParseID(token)
		if err != nil {
			continue
		}
		out[id] = theme.Terminal{
			Background: colors.Background,
			Foreground: colors.Foreground,
			Accent:     colors.Accent,
			Border:     theme.BorderKind(colors.Border),
		}
	}
	return out
}

// LoggerOptions maps the log section onto logger options. w receives output
// unless a log file is configured.
func (c *Config) LoggerOptions(w io.Writer) logger.Options {
	if c == nil {
		return logger.Options{Level: "info", Writer: w}
	}
	return logger.Options{
		Level:         c.Log.Level,
		HumanReadable: c.Log.HumanReadable,
		Writer:        w,
		File:          c.Log.File,
	}
}
