// Package config holds the runtime configuration for the life binary.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config carries board dimensions and presentation settings. Everything in
// it belongs to the outer shell; the model packages take plain values.
type Config struct {
	Width          int     `yaml:"width"`
	Height         int     `yaml:"height"`
	Scale          int     `yaml:"scale"`
	TPS            int     `yaml:"tps"`
	AutoTickMillis int     `yaml:"auto_tick_ms"`
	Seed           int64   `yaml:"seed"`
	Density        float64 `yaml:"density"`
	Pattern        string  `yaml:"pattern"`
	LogLevel       string  `yaml:"log_level"`
}

// Default returns the standard configuration: an empty 50x50 board drawn at
// 12 pixels per cell, 60 TPS, held-key auto-advance every 50ms.
func Default() Config {
	return Config{
		Width:          50,
		Height:         50,
		Scale:          12,
		TPS:            60,
		AutoTickMillis: 50,
		Seed:           42,
		LogLevel:       "info",
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parse config")
	}
	return cfg, nil
}

// Validate rejects values the board and window cannot absorb.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("board dimensions must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return errors.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.TPS <= 0 {
		return errors.Errorf("tps must be positive, got %d", c.TPS)
	}
	if c.AutoTickMillis <= 0 {
		return errors.Errorf("auto_tick_ms must be positive, got %d", c.AutoTickMillis)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("density must be in [0,1], got %g", c.Density)
	}
	return nil
}
