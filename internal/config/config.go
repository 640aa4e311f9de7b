package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all run configuration.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Seating SeatingConfig `yaml:"seating"`
	Tiles   TilesConfig   `yaml:"tiles"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// SeatingConfig holds seating automaton settings
type SeatingConfig struct {
	Policy  string `yaml:"policy"`
	Workers int    `yaml:"workers"`
}

// TilesConfig holds hex tile automaton settings
type TilesConfig struct {
	Days int `yaml:"days"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log:     LogConfig{Level: "info"},
		Seating: SeatingConfig{Policy: "adjacent", Workers: 1},
		Tiles:   TilesConfig{Days: 100},
	}
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration over the defaults. Keys absent from the
// document keep their default; explicit values, zero included, are kept.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// SimConfig returns the key/value settings for the named simulation, in the
// form accepted by the simulation registry.
func (c *Config) SimConfig(name string) map[string]string {
	switch name {
	case "seating":
		return map[string]string{
			"policy":  c.Seating.Policy,
			"workers": strconv.Itoa(c.Seating.Workers),
		}
	case "tiles":
		return map[string]string{
			"days": strconv.Itoa(c.Tiles.Days),
		}
	}
	return nil
}
