package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	appName               = "textboard"
	defaultConfigFileName = "config.toml"
)

type Config struct {
	Editor EditorConfig `toml:"editor"`
	Export ExportConfig `toml:"export"`
	Logger LoggerConfig `toml:"logger"`
}

type EditorConfig struct {
	SaveDirectory string `toml:"save_directory"`
	Confirmations bool   `toml:"confirmations"`
	RecordNoops   bool   `toml:"record_noops"`
	Mouse         bool   `toml:"mouse"`
}

// ExportConfig controls PNG export. Cell sizes map canvas cells to pixels.
type ExportConfig struct {
	CharWidth  float64 `toml:"char_width"`
	CharHeight float64 `toml:"char_height"`
	Padding    int     `toml:"padding"`
	Scale      float64 `toml:"scale"`
}

type LoggerConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func defaultConfig() *Config {
	return &Config{
		Editor: EditorConfig{
			Confirmations: true,
			Mouse:         true,
		},
		Export: ExportConfig{
			CharWidth:  8,
			CharHeight: 16,
			Padding:    2,
			Scale:      1,
		},
		Logger: LoggerConfig{
			Level: "info",
		},
	}
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, appName, defaultConfigFileName)
}

// loadConfig reads path on top of the defaults. An empty path means the
// default location; a missing file is not an error.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if path == "" {
		return config, nil
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return config, nil
		}
		return config, fmt.Errorf("config %s: %w", path, err)
	}

	meta, err := toml.DecodeFile(path, config)
	if err != nil {
		return defaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		slog.Warn("unrecognized config keys", "path", path, "keys", undecoded)
	}

	config.Editor.SaveDirectory = expandPath(config.Editor.SaveDirectory)
	config.Logger.File = expandPath(config.Logger.File)
	config.validate()
	return config, nil
}

func (c *Config) validate() {
	defaults := defaultConfig()
	if c.Export.CharWidth <= 0 {
		c.Export.CharWidth = defaults.Export.CharWidth
	}
	if c.Export.CharHeight <= 0 {
		c.Export.CharHeight = defaults.Export.CharHeight
	}
	if c.Export.Padding < 0 {
		c.Export.Padding = defaults.Export.Padding
	}
	if c.Export.Scale <= 0 {
		c.Export.Scale = defaults.Export.Scale
	}
	if c.Logger.Level == "" {
		c.Logger.Level = defaults.Logger.Level
	}
}

func expandPath(value string) string {
	if value == "" || value == "-" {
		return value
	}
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

// GetSavePath resolves an export filename against the save directory.
func (c *Config) GetSavePath(filename string) (string, error) {
	if c.Editor.SaveDirectory == "" || filepath.IsAbs(filename) {
		return filename, nil
	}
	if err := os.MkdirAll(c.Editor.SaveDirectory, 0755); err != nil {
		return "", fmt.Errorf("create save directory: %w", err)
	}
	return filepath.Join(c.Editor.SaveDirectory, filename), nil
}
