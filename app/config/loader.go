package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the sources configuration
type Loader struct {
	path string
}

// NewLoader creates a new configuration loader
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads and validates the sources configuration file
func (l *Loader) Load() (*Config, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := l.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", l.path, err)
	}

	return &config, nil
}

// validate validates the configuration
func (l *Loader) validate(config *Config) error {
	if len(config.Teams) == 0 {
		return fmt.Errorf("at least one team is required")
	}

	known := make(map[string]bool, len(config.Teams))
	for i, team := range config.Teams {
		if team == "" {
			return fmt.Errorf("team at index %d must be non-empty", i)
		}
		known[team] = true
	}

	for i, feed := range config.Feeds.General {
		if feed.URL == "" {
			return fmt.Errorf("general feed at index %d is missing a URL", i)
		}
	}

	for team, urls := range config.Feeds.Team {
		if !known[team] {
			return fmt.Errorf("team feed key '%s' is not in the teams list", team)
		}
		for i, url := range urls {
			if url == "" {
				return fmt.Errorf("team feed URL at index %d for '%s' must be non-empty", i, team)
			}
		}
	}

	return nil
}
