// Package config handles nyancat configuration using Viper.
//
// Configuration sources (in priority order):
//  1. Command line flags
//  2. Environment variables (NYANCAT_*)
//  3. Config file ($XDG_CONFIG_HOME/nyancat/config.yaml or --config)
//  4. Built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/lixenwraith/nyancat/audio"
)

// Keys shared by flags, environment variables and the config file.
const (
	KeyNoCounter = "no-counter"
	KeyNoClear   = "no-clear"
	KeyNoTitle   = "no-title"
	KeyFrames    = "frames"
	KeyWidth     = "width"
	KeyHeight    = "height"
	KeyMute      = "mute"
	KeyVolume    = "volume"
	KeyLogFile   = "log-file"
	KeyLogLevel  = "log-level"
	KeyConfig    = "config"
)

const envPrefix = "NYANCAT"

// boundKeys are the settings read through viper
var boundKeys = []string{
	KeyNoCounter, KeyNoClear, KeyNoTitle, KeyFrames, KeyWidth, KeyHeight,
	KeyMute, KeyVolume, KeyLogFile, KeyLogLevel,
}

// Config is the validated runtime configuration.
type Config struct {
	Counter  bool
	Clear    bool
	Frames   uint
	Width    int
	Height   int
	Mute     bool
	Volume   float64
	LogFile  string
	LogLevel string

	// File is the config file that was read, empty if none.
	File string
}

// RegisterFlags defines the command line flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolP(KeyNoCounter, "n", false, "Do not display the timer")
	fs.BoolP(KeyNoClear, "e", false, "Do not clear the display between frames")
	fs.BoolP(KeyNoTitle, "s", false, "Do not set the titlebar text (accepted for compatibility)")
	fs.IntP(KeyFrames, "f", 0, "Display the requested number of frames, then quit")
	fs.IntP(KeyWidth, "W", 0, "Crop the animation to the given width")
	fs.IntP(KeyHeight, "H", 0, "Crop the animation to the given height")
	fs.Bool(KeyMute, false, "Do not play the theme")
	fs.Float64(KeyVolume, audio.DefaultVolume, "Theme volume between 0 and 1")
	fs.String(KeyLogFile, "", "Write structured logs to this file")
	fs.String(KeyLogLevel, "info", "Log level: error, warn, info, debug")
	fs.String(KeyConfig, "", "Config file path")
}

// Load reads configuration from all sources. An explicit path must exist;
// the default config file is optional.
func Load(fs *pflag.FlagSet, path string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault(KeyVolume, audio.DefaultVolume)
	v.SetDefault(KeyLogLevel, "info")

	// Environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for _, key := range boundKeys {
			if f := fs.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", key, err)
				}
			}
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "nyancat"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Ignore if not found, fail on anything else
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	return fromViper(v)
}

// fromViper extracts and validates the settings.
func fromViper(v *viper.Viper) (*Config, error) {
	frames := v.GetInt(KeyFrames)
	if frames < 0 {
		return nil, fmt.Errorf("frames must not be negative, got %d", frames)
	}

	cfg := &Config{
		Counter:  !v.GetBool(KeyNoCounter),
		Clear:    !v.GetBool(KeyNoClear),
		Frames:   uint(frames),
		Width:    v.GetInt(KeyWidth),
		Height:   v.GetInt(KeyHeight),
		Mute:     v.GetBool(KeyMute),
		Volume:   v.GetFloat64(KeyVolume),
		LogFile:  v.GetString(KeyLogFile),
		LogLevel: v.GetString(KeyLogLevel),
		File:     v.ConfigFileUsed(),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Width < 0 {
		return fmt.Errorf("width must not be negative, got %d", c.Width)
	}
	if c.Height < 0 {
		return fmt.Errorf("height must not be negative, got %d", c.Height)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume must be between 0 and 1, got %g", c.Volume)
	}
	return nil
}

// Audio returns the player configuration.
func (c *Config) Audio() audio.Config {
	cfg := audio.DefaultConfig()
	cfg.Enabled = !c.Mute
	cfg.Volume = c.Volume
	return cfg
}
