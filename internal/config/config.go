// Package config locates and loads the daysplit configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up inside Dir.
const FileName = "config.yaml"

// Config holds settings read from config.yaml. Zero values mean "not set".
type Config struct {
	Root string `yaml:"root"`
	Log  Log    `yaml:"log"`
}

// Log configures diagnostic logging.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Dir returns the daysplit configuration directory.
//
// Resolution:
//   - $DAYSPLIT_CONFIG_HOME if set
//   - $XDG_CONFIG_HOME/daysplit if set
//   - %AppData%/daysplit on Windows
//   - ~/.config/daysplit elsewhere
func Dir() string {
	if dir := os.Getenv("DAYSPLIT_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "daysplit")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "daysplit")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "daysplit")
}

// DefaultPath returns Dir()/config.yaml, or "" when no directory resolves.
func DefaultPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, FileName)
}

// Load reads the config file at path. A missing file is not an error and
// yields an empty Config.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}
