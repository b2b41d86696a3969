// Package config layers defaults, an optional TOML file, PATHSHADOW_* environment
// variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"pathshadow/internal/model"
)

const (
	// AppName is the application name.
	AppName = "pathshadow"
	// EnvPrefix prefixes every environment override, e.g. PATHSHADOW_DELIMITER.
	EnvPrefix = "PATHSHADOW"
	// ConfigFileName is the config file looked up in Dir.
	ConfigFileName = "config.toml"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds every setting a command may consult.
type Config struct {
	Delimiter string `mapstructure:"delimiter"`
	ShowSame  string `mapstructure:"show_same"`
	Jobs      int    `mapstructure:"jobs"`
	Color     string `mapstructure:"color"`
	Format    string `mapstructure:"format"`
	Verbose   bool   `mapstructure:"verbose"`
	Addr      string `mapstructure:"addr"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Delimiter: ":",
		ShowSame:  model.Suppress.String(),
		Jobs:      1,
		Color:     ColorAuto,
		Format:    FormatText,
		Addr:      "localhost:8080",
	}
}

// keys maps config keys to the flag names that override them.
var keys = map[string]string{
	"delimiter": "delimiter",
	"show_same": "show-same",
	"jobs":      "jobs",
	"color":     "color",
	"format":    "format",
	"verbose":   "verbose",
	"addr":      "addr",
}

var configDirOverride string

// Dir returns $XDG_CONFIG_HOME/pathshadow, defaulting to ~/.config/pathshadow.
func Dir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName), nil
}

// Load resolves the configuration. An explicit file must exist; the default one is optional.
// Only flags present in flags and explicitly set override lower layers.
func Load(flags *pflag.FlagSet, file string) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("delimiter", defaults.Delimiter)
	v.SetDefault("show_same", defaults.ShowSame)
	v.SetDefault("jobs", defaults.Jobs)
	v.SetDefault("color", defaults.Color)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("addr", defaults.Addr)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := readFile(v, file); err != nil {
		return nil, err
	}

	if flags != nil {
		for key, name := range keys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readFile(v *viper.Viper, file string) error {
	if file == "" {
		dir, err := Dir()
		if err != nil {
			return nil
		}
		file = filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			return nil
		}
	} else if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("config file not found: %w", err)
	}

	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", file, err)
	}
	return nil
}

// Validate rejects values no command can act on.
func (c Config) Validate() error {
	if _, err := c.Visibility(); err != nil {
		return err
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid format %q: must be text or json", c.Format)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q: must be auto, always or never", c.Color)
	}
	if c.Jobs < 1 {
		return fmt.Errorf("invalid jobs %d: must be at least 1", c.Jobs)
	}
	return nil
}

// Visibility parses ShowSame.
func (c Config) Visibility() (model.Visibility, error) {
	return model.ParseVisibility(c.ShowSame)
}
