package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDataDir    = ".physiquest"
	DefaultStore      = "file"
	DefaultTheme      = "cyberpunk"
	DefaultLogLevel   = "info"
	DefaultPlotWidth  = 70
	DefaultPlotHeight = 12
	DefaultWorkers    = 4
)

// ErrInvalid reports a configuration value outside its accepted range.
var ErrInvalid = errors.New("config: invalid value")

// Stores lists the accepted storage backends.
var Stores = []string{"file", "sqlite"}

type Config struct {
	DataDir  string     `yaml:"data_dir"`
	Store    string     `yaml:"store"`
	Theme    string     `yaml:"theme"`
	LogLevel string     `yaml:"log_level"`
	Plot     PlotConfig `yaml:"plot"`
	Workers  int        `yaml:"workers"`
}

type PlotConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		DataDir:  DefaultDataDir,
		Store:    DefaultStore,
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
		Plot: PlotConfig{
			Width:  DefaultPlotWidth,
			Height: DefaultPlotHeight,
		},
		Workers: DefaultWorkers,
	}
}

// Load reads a YAML config file. Keys missing from the file keep their
// defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	known := false
	for _, s := range Stores {
		if c.Store == s {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("%w: store %q (want one of %v)", ErrInvalid, c.Store, Stores)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	}
	if c.Plot.Width < 1 || c.Plot.Height < 1 {
		return fmt.Errorf("%w: plot size %dx%d", ErrInvalid, c.Plot.Width, c.Plot.Height)
	}
	return nil
}
