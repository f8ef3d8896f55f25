package csfml

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/agiangrant/csfml/internal/ffi"
)

// ConfigFile is the name LoadConfig and FindConfig look for.
const ConfigFile = "csfml.toml"

// Config represents the csfml.toml configuration file
type Config struct {
	Library LibraryConfig `toml:"library"`
	Log     LogConfig     `toml:"log"`
}

// LibraryConfig controls where the CSFML shared libraries are loaded from.
type LibraryConfig struct {
	// Directory searched before the default locations
	Dir string `toml:"dir"`
	// Version suffix for Unix file names, e.g. "2.1" for libcsfml-graphics.so.2.1
	Version string `toml:"version"`

	// Full file names or absolute paths, overriding the platform naming
	System   string `toml:"system"`
	Window   string `toml:"window"`
	Graphics string `toml:"graphics"`
}

// LogConfig selects the binding logger.
type LogConfig struct {
	// One of debug, info, warn, error, or off
	Level string `toml:"level"`
}

// DefaultConfig returns the configuration used when no file is present
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level: "off",
		},
	}
}

// LoadConfig loads the configuration from path, or from ConfigFile in the
// working directory when path is empty. If the file doesn't exist, returns
// the default config.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if path == "" {
		path = ConfigFile
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Relative library directories are relative to the config file
	if config.Library.Dir != "" && !filepath.IsAbs(config.Library.Dir) {
		config.Library.Dir = filepath.Join(filepath.Dir(path), config.Library.Dir)
	}
	if config.Log.Level == "" {
		config.Log.Level = "off"
	}

	return config, nil
}

// SaveConfig writes the configuration to path
func SaveConfig(path string, config Config) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// FindConfig looks for ConfigFile in dir and its parents.
func FindConfig(dir string) (string, bool) {
	for {
		path := filepath.Join(dir, ConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", false
		}
		dir = parent
	}
}

// options converts the library section for the loader.
func (c Config) options() ffi.Options {
	o := ffi.Options{
		Dir:     c.Library.Dir,
		Version: c.Library.Version,
	}
	names := map[ffi.Module]string{
		ffi.System:   c.Library.System,
		ffi.Window:   c.Library.Window,
		ffi.Graphics: c.Library.Graphics,
	}
	for m, name := range names {
		if name == "" {
			continue
		}
		if o.Names == nil {
			o.Names = make(map[ffi.Module]string)
		}
		o.Names[m] = name
	}
	return o
}

// NewLogger builds a logger for the configured level. It returns a no-op
// logger for "off".
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	if c.Level == "" || c.Level == "off" {
		return zap.NewNop(), nil
	}
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zc.Build()
}
