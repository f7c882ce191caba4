// Package config holds the aichronos configuration: defaults, the YAML file
// under the configuration directory, and environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/rshade/aichronos/internal/i18n"
	"github.com/rshade/aichronos/internal/timeline"
)

// Environment variables that override the configuration file.
const (
	EnvHome     = "AICHRONOS_HOME"
	EnvLang     = "AICHRONOS_LANG"
	EnvTheme    = "AICHRONOS_THEME"
	EnvLogLevel = "AICHRONOS_LOG_LEVEL"
)

// ConfigFileName is the name of the configuration file inside the config dir.
const ConfigFileName = "config.yaml"

// Viewport defaults beyond the scale bounds owned by the timeline package.
const (
	DefaultZoomStep   = 1.25
	DefaultWheelDelta = 20.0
	DefaultPanStep    = 8.0
)

// Config is the complete configuration.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Viewport ViewportConfig `yaml:"viewport"`
	Dataset  DatasetConfig  `yaml:"dataset"`
	Logging  LoggingConfig  `yaml:"logging"`

	configPath string
}

// DisplayConfig selects language and theme. An empty language is negotiated
// from the locale environment.
type DisplayConfig struct {
	Language string `yaml:"language"`
	Theme    string `yaml:"theme"`
}

// ViewportConfig tunes the pan/zoom controller and the item layout.
type ViewportConfig struct {
	MinScale     float64 `yaml:"min_scale"`
	MaxScale     float64 `yaml:"max_scale"`
	InitialScale float64 `yaml:"initial_scale"`
	// ZoomStep is the factor applied by one zoom key press.
	ZoomStep float64 `yaml:"zoom_step"`
	// WheelDelta is the wheel delta reported for one mouse wheel notch.
	WheelDelta float64 `yaml:"wheel_delta"`
	// PanStep is the number of columns one pan key press moves.
	PanStep float64 `yaml:"pan_step"`
	Spacing float64 `yaml:"spacing"`
}

// DatasetConfig points at an external dataset file. An empty path uses the
// embedded dataset.
type DatasetConfig struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// New returns a configuration populated with defaults, pointing at the
// default configuration file path.
func New() *Config {
	cfg := &Config{
		Display: DisplayConfig{
			Theme: string(DefaultTheme),
		},
		Viewport: ViewportConfig{
			MinScale:     timeline.DefaultMinScale,
			MaxScale:     timeline.DefaultMaxScale,
			InitialScale: timeline.DefaultInitialScale,
			ZoomStep:     DefaultZoomStep,
			WheelDelta:   DefaultWheelDelta,
			PanStep:      DefaultPanStep,
			Spacing:      timeline.DefaultSpacing,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, ConfigFileName)
	}
	return cfg
}

// Load returns the defaults overlaid with the configuration file (when it
// exists) and the environment, validated.
func Load() (*Config, error) {
	cfg := New()
	if err := cfg.LoadFile(); err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile merges the file at ConfigPath onto c. A missing file is not an
// error.
func (c *Config) LoadFile() error {
	if c.configPath == "" {
		return nil
	}
	if _, err := os.Stat(c.configPath); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return ShallowMergeYAML(c, c.configPath)
}

// ApplyEnv applies environment overrides using lookupEnv.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvLang); ok && v != "" {
		c.Display.Language = v
	}
	if v, ok := lookupEnv(EnvTheme); ok && v != "" {
		c.Display.Theme = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
}

// Validate reports every invalid value, joined.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Display.Language != "" {
		if _, err := i18n.ParseLanguage(c.Display.Language); err != nil {
			invalid("display.language: %v", err)
		}
	}
	if _, err := ParseTheme(c.Display.Theme); err != nil {
		invalid("display.theme: %v", err)
	}

	v := c.Viewport
	if err := c.Bounds().Validate(); err != nil {
		invalid("viewport: %v", err)
	}
	if v.ZoomStep <= 1 {
		invalid("viewport.zoom_step must be > 1, got %g", v.ZoomStep)
	}
	if v.WheelDelta <= 0 {
		invalid("viewport.wheel_delta must be > 0, got %g", v.WheelDelta)
	}
	if v.PanStep <= 0 {
		invalid("viewport.pan_step must be > 0, got %g", v.PanStep)
	}
	if v.Spacing <= 0 {
		invalid("viewport.spacing must be > 0, got %g", v.Spacing)
	}

	switch c.Logging.Format {
	case "", "console", "json":
	default:
		invalid("logging.format must be console or json, got %q", c.Logging.Format)
	}

	return errors.Join(errs...)
}

// Bounds returns the scale bounds of the viewport section.
func (c *Config) Bounds() timeline.Bounds {
	return timeline.Bounds{
		MinScale:     c.Viewport.MinScale,
		MaxScale:     c.Viewport.MaxScale,
		InitialScale: c.Viewport.InitialScale,
	}
}

// Layout returns the item layout of the viewport section.
func (c *Config) Layout() timeline.Layout {
	return timeline.Layout{Margin: timeline.DefaultMargin, Spacing: c.Viewport.Spacing}
}

// Language resolves the display language: the configured value, otherwise
// the locale environment, otherwise the default.
func (c *Config) Language() i18n.Language {
	if lang, err := i18n.ParseLanguage(c.Display.Language); err == nil {
		return lang
	}
	return i18n.Negotiate(os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG"))
}

// Theme resolves the display theme, falling back to the default.
func (c *Config) Theme() Theme {
	if t, err := ParseTheme(c.Display.Theme); err == nil {
		return t
	}
	return DefaultTheme
}

// ConfigPath returns the file Save writes to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath overrides the file Load and Save use.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes c as YAML to ConfigPath, creating the directory if needed.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("no configuration path set")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", c.configPath, err)
	}
	return nil
}
