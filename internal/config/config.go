package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/Tiliavir/schedule-monitor/internal/model"
	"github.com/Tiliavir/schedule-monitor/internal/schedule"
)

// Config is the root configuration for smc, stored in ~/.smc/config.yaml.
type Config struct {
	Window WindowConfig `mapstructure:"window"`
	Hours  HoursConfig  `mapstructure:"hours"`
	Log    LogConfig    `mapstructure:"log"`
	Serve  ServeConfig  `mapstructure:"serve"`
}

// WindowConfig is the weekday normal window as HH:MM strings; End is exclusive.
type WindowConfig struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

// HoursConfig holds the base hour weights.
type HoursConfig struct {
	// Edge is the weight of the first and last counted entry.
	Edge float64 `mapstructure:"edge"`
	// Middle is the weight of every other entry.
	Middle float64 `mapstructure:"middle"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ServeConfig configures the web form.
type ServeConfig struct {
	Port int `mapstructure:"port"`
}

const (
	DefaultWindowStart = "08:00"
	DefaultWindowEnd   = "17:00"
	DefaultLogLevel    = "info"
	DefaultPort        = 8484

	// envPrefix scopes environment overrides, e.g. SMC_WINDOW_START.
	envPrefix = "SMC"
)

// configTemplate is the annotated config written on first run.
const configTemplate = `# smc configuration – ~/.smc/config.yaml
#
# All settings are optional; the defaults below match the standard
# monitoring rules. Any key can be overridden from the environment,
# e.g. SMC_WINDOW_END=18:00 or SMC_LOG_LEVEL=debug.

# Weekday window counted as normal hours. Weekends are always after-hours.
# start is inclusive, end is exclusive (17:00 itself is after-hours).
window:
  start: "08:00"
  end: "17:00"

# Base hour weights: the first and last counted day get "edge",
# every day in between gets "middle".
hours:
  edge: 4.0
  middle: 2.0

# Log level: debug, info, warn, error.
log:
  level: info

# Port for "smc serve".
serve:
  port: 8484
`

// DefaultPath returns the path to ~/.smc/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".smc", "config.yaml"), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.start", DefaultWindowStart)
	v.SetDefault("window.end", DefaultWindowEnd)
	v.SetDefault("hours.edge", schedule.DefaultEdgeHours)
	v.SetDefault("hours.middle", schedule.DefaultMiddleHours)
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("serve.port", DefaultPort)
}

// Load reads the config file at path (DefaultPath when empty), creating it
// with annotated defaults on first run. Missing keys fall back to the
// built-in defaults and SMC_* environment variables override the file.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return decode(v)
		}
		path = p
	}

	_, statErr := os.Stat(path)
	switch {
	case os.IsNotExist(statErr):
		// First run: write the annotated template so users can discover options.
		if err := writeDefault(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, err)
		}
		return decode(v)
	case statErr != nil:
		return decode(v)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return Default(), errors.Wrapf(err, "parsing config file %s (delete the file to regenerate defaults)", path)
	}
	return decode(v)
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	cfg, _ := decode(v)
	return cfg
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	return cfg, nil
}

// Rules converts the window and weights into schedule rules.
func (c Config) Rules() (schedule.Rules, error) {
	var start, end model.Clock
	if err := start.UnmarshalText([]byte(c.Window.Start)); err != nil {
		return schedule.Rules{}, errors.Wrap(err, "window.start")
	}
	if err := end.UnmarshalText([]byte(c.Window.End)); err != nil {
		return schedule.Rules{}, errors.Wrap(err, "window.end")
	}
	r := schedule.Rules{
		Window:      schedule.Window{Start: start, End: end},
		EdgeHours:   c.Hours.Edge,
		MiddleHours: c.Hours.Middle,
	}
	if err := r.Validate(); err != nil {
		return schedule.Rules{}, errors.Wrap(err, "invalid config")
	}
	return r, nil
}

// writeDefault creates the config directory and writes the annotated
// default config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
