// Package config provides configuration for the tether editor.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tether/interaction"
)

// Config holds editor configuration, loadable from a YAML file.
type Config struct {
	// Interaction configures the connection engine.
	Interaction interaction.Options `yaml:"interaction"`
	// Editor configures the terminal shell.
	Editor EditorConfig `yaml:"editor"`
}

// EditorConfig holds terminal shell settings.
type EditorConfig struct {
	// Scale is the number of logical units per terminal cell.
	Scale float64 `yaml:"scale"`
	// ShowHandles draws handle markers on every node, not just during a
	// gesture.
	ShowHandles bool `yaml:"showHandles"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		Interaction: interaction.DefaultOptions(),
		Editor: EditorConfig{
			Scale:       1,
			ShowHandles: true,
		},
	}
}

// Load reads a YAML config file, overlaying it on the defaults. A missing
// file is not an error: the defaults are returned. Keys absent from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Editor.Scale <= 0 {
		cfg.Editor.Scale = 1
	}
	return cfg, nil
}
