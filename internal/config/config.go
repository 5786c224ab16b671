// Package config loads huewheel settings from flags, environment and an optional YAML file.
//
// Precedence: flags > env (HUEWHEEL_*) > config file > defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmylchreest/huewheel/internal/colour"
	"github.com/jmylchreest/huewheel/internal/widget"
)

const (
	// EnvPrefix is prepended to every environment override, e.g. HUEWHEEL_MODE.
	EnvPrefix = "HUEWHEEL"
	// DefaultConfigFileName is the config file name without extension.
	DefaultConfigFileName = "config"
	appDir                = "huewheel"
)

// Keys understood by Load. Flags with the same name are bound automatically.
const (
	KeyWidth   = "width"
	KeyHeight  = "height"
	KeyMode    = "mode"
	KeyColor   = "color"
	KeyVerbose = "verbose"
)

// Config holds the picker settings shared by every command.
type Config struct {
	Width   int    `mapstructure:"width"`
	Height  int    `mapstructure:"height"`
	Mode    string `mapstructure:"mode"`
	Color   string `mapstructure:"color"`
	Verbose bool   `mapstructure:"verbose"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:  200,
		Height: 150,
		Mode:   string(widget.ModeHSV),
		Color:  "#FF0000",
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyWidth, d.Width)
	v.SetDefault(KeyHeight, d.Height)
	v.SetDefault(KeyMode, d.Mode)
	v.SetDefault(KeyColor, d.Color)
	v.SetDefault(KeyVerbose, d.Verbose)
}

// Dir returns the directory searched for config.yaml ($XDG_CONFIG_HOME/huewheel on Linux).
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(base, appDir), nil
}

// Load reads the configuration into a fresh viper instance. An empty cfgFile searches the user
// config directory; a missing file there is not an error. flags may be nil; any flag named like
// a config key overrides the other sources once it has been set on the command line.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
		v.SetConfigName(DefaultConfigFileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for _, key := range []string{KeyWidth, KeyHeight, KeyMode, KeyColor, KeyVerbose} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", key, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks that the settings describe a usable picker.
func (c *Config) Validate() error {
	if _, err := widget.NewGeometry(c.Width, c.Height); err != nil {
		return err
	}
	if _, err := widget.ParseMode(c.Mode); err != nil {
		return err
	}
	if _, err := colour.ParseAny(c.Color); err != nil {
		return fmt.Errorf("invalid color: %w", err)
	}
	return nil
}

// PickerMode returns the configured mode. It is only meaningful after Validate succeeded.
func (c *Config) PickerMode() widget.Mode {
	m, _ := widget.ParseMode(c.Mode)
	return m
}

// InitialColor returns the configured starting colour. It is only meaningful after Validate
// succeeded.
func (c *Config) InitialColor() colour.Color {
	col, _ := colour.ParseAny(c.Color)
	return col
}
