package config

import (
	"errors"
	"fmt"
	"os"

	"emoji-city/internal/entity"
	"emoji-city/internal/registry"

	"github.com/BurntSushi/toml"
)

type Config struct {
	City     CityConfig     `toml:"city"`
	Prices   KindInts       `toml:"prices"`
	Pools    KindInts       `toml:"pools"`
	Snapshot SnapshotConfig `toml:"snapshot"`
	Logging  LoggingConfig  `toml:"logging"`
}

type CityConfig struct {
	StartingResources int     `toml:"starting_resources"`
	AreaWidth         int     `toml:"area_width"`  // world cells
	AreaHeight        int     `toml:"area_height"` // world cells
	RefundRate        float64 `toml:"refund_rate"` // fraction of the price returned on removal (0.0-1.0)
	Seed              int64   `toml:"seed"`        // 0 = seed from the clock
}

// KindInts holds one integer per entity kind (prices or pool capacities).
type KindInts struct {
	Building int `toml:"building"`
	Vehicle  int `toml:"vehicle"`
	Citizen  int `toml:"citizen"`
}

// Of returns the value for one kind.
func (k KindInts) Of(kind entity.Kind) int {
	switch kind {
	case entity.Building:
		return k.Building
	case entity.Vehicle:
		return k.Vehicle
	case entity.Citizen:
		return k.Citizen
	}
	return 0
}

// Map returns the values keyed by kind.
func (k KindInts) Map() map[entity.Kind]int {
	m := make(map[entity.Kind]int, len(entity.Kinds()))
	for _, kind := range entity.Kinds() {
		m[kind] = k.Of(kind)
	}
	return m
}

type SnapshotConfig struct {
	Format registry.Format `toml:"format"` // "json" or "yaml"
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty = <data dir>/emoji-city.log
}

// Load reads a TOML file over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOptional is Load, except that a missing file yields the defaults.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Default returns the built-in configuration.
func Default() *Config { return defaults() }

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	if c.City.StartingResources < 0 {
		return fmt.Errorf("city.starting_resources must be >= 0, got %d", c.City.StartingResources)
	}
	if c.City.AreaWidth < 2 || c.City.AreaHeight < 2 {
		return fmt.Errorf("city area must be at least 2x2, got %dx%d", c.City.AreaWidth, c.City.AreaHeight)
	}
	if c.City.RefundRate < 0 || c.City.RefundRate > 1 {
		return fmt.Errorf("city.refund_rate must be within [0,1], got %g", c.City.RefundRate)
	}
	for _, k := range entity.Kinds() {
		if c.Prices.Of(k) < 0 {
			return fmt.Errorf("prices.%s must be >= 0, got %d", k, c.Prices.Of(k))
		}
		if c.Pools.Of(k) < 1 {
			return fmt.Errorf("pools.%s must be >= 1, got %d", k, c.Pools.Of(k))
		}
	}
	return nil
}

func defaults() *Config {
	return &Config{
		City: CityConfig{
			StartingResources: registry.DefaultResources,
			AreaWidth:         30,
			AreaHeight:        12,
			RefundRate:        0.5,
		},
		Prices: KindInts{
			Building: entity.Building.Def().Price,
			Vehicle:  entity.Vehicle.Def().Price,
			Citizen:  entity.Citizen.Def().Price,
		},
		Pools: KindInts{
			Building: 5,
			Vehicle:  5,
			Citizen:  5,
		},
		Snapshot: SnapshotConfig{
			Format: registry.FormatJSON,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
