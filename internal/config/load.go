package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load layers configuration: defaults, then the YAML file at path. An
// empty path falls back to ./dampsim.yaml when it exists; defaults alone
// otherwise.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat("dampsim.yaml"); err == nil {
			path = "dampsim.yaml"
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
