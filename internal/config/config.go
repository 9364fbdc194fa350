// Package config centralizes the command-line tool's configuration into typed
// structs.
//
// Go Learning Note — Layered Configuration:
// Values are resolved in increasing order of priority: built-in defaults, an
// optional YAML file, GEODNA_* environment variables, and finally command-line
// flags bound by the cli package. spf13/viper implements the layering; the
// typed Config struct is what the rest of the program sees, so no code outside
// this package touches viper keys directly.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"geodna/pkg/geodna"
)

// Config is the top-level configuration container.
type Config struct {
	Codec  CodecConfig  `mapstructure:"codec"`
	Search SearchConfig `mapstructure:"search"`
	Log    LogConfig    `mapstructure:"log"`
	Output OutputConfig `mapstructure:"output"`
}

// CodecConfig controls encoding. Precision is the code length including the
// hemisphere marker; 22 gives ~10 m cells.
type CodecConfig struct {
	Precision int `mapstructure:"precision"`
}

// SearchConfig controls the radius search. A Precision of 0 searches at the
// precision of the input code.
type SearchConfig struct {
	RadiusKm  float64 `mapstructure:"radius_km"`
	Precision int     `mapstructure:"precision"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig selects how results are written to stdout.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

const envPrefix = "GEODNA"

// NewDefaultConfig returns a Config populated with defaults without reading
// files or the environment.
func NewDefaultConfig() *Config {
	return &Config{
		Codec: CodecConfig{
			Precision: geodna.DefaultPrecision,
		},
		Search: SearchConfig{
			RadiusKm:  1.0,
			Precision: 0,
		},
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Format: "text",
		},
	}
}

// New returns a viper instance with defaults, the config file search path and
// environment binding set up. The cli package binds its flags onto it before
// calling Load.
func New(path string) *viper.Viper {
	v := viper.New()

	d := NewDefaultConfig()
	v.SetDefault("codec.precision", d.Codec.Precision)
	v.SetDefault("search.radius_km", d.Search.RadiusKm)
	v.SetDefault("search.precision", d.Search.Precision)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("output.format", d.Output.Format)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("geodna")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/geodna")
	}

	// Environment variables: GEODNA_CODEC_PRECISION → codec.precision
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load reads the config file (optional unless an explicit path was given),
// unmarshals and validates the result.
func Load(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every field holds a usable value and reports all
// problems at once.
func (c *Config) Validate() error {
	var errs []string

	if c.Codec.Precision < 1 {
		errs = append(errs, fmt.Sprintf("codec.precision must be at least 1, got %d", c.Codec.Precision))
	}
	if c.Search.RadiusKm < 0 {
		errs = append(errs, fmt.Sprintf("search.radius_km must not be negative, got %v", c.Search.RadiusKm))
	}
	if c.Search.Precision < 0 {
		errs = append(errs, fmt.Sprintf("search.precision must not be negative, got %d", c.Search.Precision))
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}
	switch strings.ToLower(c.Output.Format) {
	case "text", "json", "yaml":
	default:
		errs = append(errs, fmt.Sprintf("output.format must be text, json or yaml, got %q", c.Output.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
