// Package config loads the optional YAML settings file for the noughts CLI.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime settings. Zero seed means "seed from the clock".
type Config struct {
	Seed     int64    `yaml:"seed"`
	SelfPlay SelfPlay `yaml:"selfplay"`
}

// SelfPlay configures the selfplay command.
type SelfPlay struct {
	Games   int `yaml:"games"`
	Workers int `yaml:"workers"`
}

// Default returns the built-in settings used when no file is given.
func Default() Config {
	return Config{
		SelfPlay: SelfPlay{
			Games:   100,
			Workers: 4,
		},
	}
}

// Load reads path and unmarshals it over the defaults, so a partial file
// only overrides the keys it names. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.SelfPlay.Games < 1 {
		return Config{}, fmt.Errorf("config: selfplay.games must be at least 1, got %d", cfg.SelfPlay.Games)
	}
	if cfg.SelfPlay.Workers < 1 {
		return Config{}, fmt.Errorf("config: selfplay.workers must be at least 1, got %d", cfg.SelfPlay.Workers)
	}
	return cfg, nil
}
