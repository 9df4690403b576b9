// Package config loads the decant configuration file (YAML) holding server,
// cache and puzzle preset settings.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/decant/pkg/domain"
)

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// CacheConfig configures the solution cache.
// Backend is "memory" (default) or "redis".
type CacheConfig struct {
	Backend  string        `mapstructure:"backend"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Preset is a named puzzle: three capacities and a target volume.
type Preset struct {
	Capacities []int `mapstructure:"capacities"`
	Target     int   `mapstructure:"target"`
}

// Config is the root configuration.
type Config struct {
	Server  ServerConfig      `mapstructure:"server"`
	Cache   CacheConfig       `mapstructure:"cache"`
	Presets map[string]Preset `mapstructure:"presets"`
}

// Default returns the built-in configuration, including the stock presets.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8080"},
		Cache:  CacheConfig{Backend: "memory"},
		Presets: map[string]Preset{
			// The textbook instance: measure 4 with 3, 5 and 8 liter vessels.
			"classic": {Capacities: []int{3, 5, 8}, Target: 4},
			"tiny":    {Capacities: []int{1, 2, 3}, Target: 1},
		},
	}
}

// Load reads a YAML config file and merges it over the defaults.
// A missing file is not an error; the defaults apply as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	// Decode in two stages: YAML to a generic map, then mapstructure into
	// the typed config so string durations ("10m") work in the cache TTL.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
		Result:     &cfg,
	})
	if err != nil {
		return cfg, err
	}
	if err := dec.Decode(raw); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Preset resolves a named puzzle into validated capacities and a target.
func (c Config) Preset(name string) (domain.Capacities, int, error) {
	p, ok := c.Presets[name]
	if !ok {
		return domain.Capacities{}, 0, fmt.Errorf("%w: %q", domain.ErrUnknownPreset, name)
	}
	if len(p.Capacities) != domain.Vessels {
		return domain.Capacities{}, 0, fmt.Errorf("preset %q must list exactly %d capacities", name, domain.Vessels)
	}
	caps, err := domain.NewCapacities(p.Capacities[0], p.Capacities[1], p.Capacities[2])
	if err != nil {
		return domain.Capacities{}, 0, fmt.Errorf("preset %q: %w", name, err)
	}
	if p.Target < 0 {
		return domain.Capacities{}, 0, fmt.Errorf("preset %q: %w", name, domain.ErrNegativeTarget)
	}
	return caps, p.Target, nil
}
