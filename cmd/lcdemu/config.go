package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// storeConfig selects and locates the snapshot store engine.
type storeConfig struct {
	// Engine is "bbolt" (default) or "badger".
	Engine string `yaml:"engine"`
	// Path is the database file (bbolt) or directory (badger).
	Path string `yaml:"path"`
}

type config struct {
	// Listen is the HTTP listen address for the emulator API.
	Listen string `yaml:"listen"`

	// Devices lists the device classes that start out plugged in: "mono",
	// "color", or both.
	Devices []string `yaml:"devices"`

	// LogLevel is a logrus level name ("debug", "info", ...).
	LogLevel string `yaml:"log_level"`

	Store storeConfig `yaml:"store"`
}

func defaultConfig() *config {
	return &config{
		Listen:   ":8080",
		Devices:  []string{"mono", "color"},
		LogLevel: "info",
		Store: storeConfig{
			Engine: "bbolt",
			Path:   "lcdemu.db",
		},
	}
}

// loadConfig reads the YAML config at path, falling back to defaults when the
// file doesn't exist.
func loadConfig(path string) (*config, error) {
	cfg := defaultConfig()

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read config %q: %w", path, err)
	}

	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config %q: %w", path, err)
	}

	return cfg, nil
}
