// Package config loads rocketdoc runtime configuration from viper.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrInvalid is wrapped by every validation failure returned from Load.
var ErrInvalid = errors.New("invalid configuration")

// SVGConfig holds drawing options for the svg writer.
type SVGConfig struct {
	Scale float64 `mapstructure:"scale"`
}

// JSBSimConfig holds options for the JSBSim engine writer.
type JSBSimConfig struct {
	BuildupTime float64 `mapstructure:"buildup_time"`
}

// OpenRocketConfig maps OpenRocket surface finishes to roughness in
// micrometres.
type OpenRocketConfig struct {
	DefaultRoughnessUM float64            `mapstructure:"default_roughness_um"`
	FinishRoughnessUM  map[string]float64 `mapstructure:"finish_roughness_um"`
}

// Config holds all runtime configuration for a rocketdoc invocation.
// Values are populated from .rocketdoc.yaml, ROCKETDOC_* env vars, and CLI flags.
type Config struct {
	LogLevel        string           `mapstructure:"log_level"`
	LogFormat       string           `mapstructure:"log_format"`
	Verbose         bool             `mapstructure:"verbose"`
	Overwrite       bool             `mapstructure:"overwrite"`
	OutputFormat    string           `mapstructure:"output_format"`
	CurveSamples    int              `mapstructure:"curve_samples"`
	TelemetryPath   string           `mapstructure:"telemetry_path"`
	WatchDebounceMS int              `mapstructure:"watch_debounce_ms"`
	SVG             SVGConfig        `mapstructure:"svg"`
	JSBSim          JSBSimConfig     `mapstructure:"jsbsim"`
	OpenRocket      OpenRocketConfig `mapstructure:"openrocket"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("log_level", "info")
	viper.SetDefault("log_format", "text")
	viper.SetDefault("verbose", false)
	viper.SetDefault("overwrite", false)
	viper.SetDefault("output_format", "")
	viper.SetDefault("curve_samples", 3)
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("watch_debounce_ms", 100)
	viper.SetDefault("svg.scale", 1000.0)
	viper.SetDefault("jsbsim.buildup_time", 0.1)
	viper.SetDefault("openrocket.default_roughness_um", 60.0)
	viper.SetDefault("openrocket.finish_roughness_um", map[string]any{
		"rough":      500.0,
		"unfinished": 150.0,
		"normal":     60.0,
		"smooth":     20.0,
		"polished":   2.0,
	})

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	var errs []error
	if c.CurveSamples < 1 {
		errs = append(errs, fmt.Errorf("%w: curve_samples must be at least 1, got %d", ErrInvalid, c.CurveSamples))
	}
	if c.WatchDebounceMS < 0 {
		errs = append(errs, fmt.Errorf("%w: watch_debounce_ms must not be negative, got %d", ErrInvalid, c.WatchDebounceMS))
	}
	if c.SVG.Scale <= 0 {
		errs = append(errs, fmt.Errorf("%w: svg.scale must be positive, got %v", ErrInvalid, c.SVG.Scale))
	}
	if c.JSBSim.BuildupTime < 0 {
		errs = append(errs, fmt.Errorf("%w: jsbsim.buildup_time must not be negative, got %v", ErrInvalid, c.JSBSim.BuildupTime))
	}
	if c.OpenRocket.DefaultRoughnessUM < 0 {
		errs = append(errs, fmt.Errorf("%w: openrocket.default_roughness_um must not be negative", ErrInvalid))
	}
	for finish, um := range c.OpenRocket.FinishRoughnessUM {
		if um < 0 {
			errs = append(errs, fmt.Errorf("%w: openrocket.finish_roughness_um.%s must not be negative", ErrInvalid, finish))
		}
	}
	return errors.Join(errs...)
}
