// Package config loads the hexmaze CLI configuration from a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the full CLI configuration.
type Config struct {
	Maze MazeConfig `yaml:"maze"`
	Path PathConfig `yaml:"path"`
}

// MazeConfig describes the maze to build.
type MazeConfig struct {
	Radius int     `yaml:"radius"`
	Seed   *uint64 `yaml:"seed"`  // nil ⇒ unseeded, non-reproducible
	Start  *Coord  `yaml:"start"` // nil ⇒ origin
}

// PathConfig optionally names two tiles to solve a path between.
type PathConfig struct {
	From *Coord `yaml:"from"`
	To   *Coord `yaml:"to"`
}

// Coord is an axial hex coordinate in the config file.
type Coord struct {
	Q int `yaml:"q"`
	R int `yaml:"r"`
}

// Default returns the configuration used when no file is given:
// radius 5, unseeded, start at the origin, no path query.
func Default() *Config {
	return &Config{Maze: MazeConfig{Radius: 5}}
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects configurations the builder would reject anyway, with
// friendlier messages.
func (c *Config) Validate() error {
	if c.Maze.Radius < 0 {
		return fmt.Errorf("config: maze.radius must be non-negative, got %d", c.Maze.Radius)
	}
	if (c.Path.From == nil) != (c.Path.To == nil) {
		return fmt.Errorf("config: path.from and path.to must be set together")
	}

	return nil
}
