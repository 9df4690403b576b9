package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/decant/pkg/domain"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Contains(t, cfg.Presets, "classic")
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decant.yaml")
	data := `
server:
  addr: ":9999"
cache:
  backend: redis
  addr: "localhost:6379"
  ttl: 10m
presets:
  riddle:
    capacities: [7, 11, 13]
    target: 6
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL, "string durations must decode")

	caps, target, err := cfg.Preset("riddle")
	require.NoError(t, err)
	assert.Equal(t, domain.MustCapacities(7, 11, 13), caps)
	assert.Equal(t, 6, target)
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decant.yaml")
	require.NoError(t, os.WriteFile(path, []byte(":\n -"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestConfig_Preset(t *testing.T) {
	cfg := Default()

	t.Run("stock classic preset", func(t *testing.T) {
		caps, target, err := cfg.Preset("classic")
		require.NoError(t, err)
		assert.Equal(t, domain.MustCapacities(3, 5, 8), caps)
		assert.Equal(t, 4, target)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, _, err := cfg.Preset("missing")
		assert.True(t, errors.Is(err, domain.ErrUnknownPreset))
	})

	t.Run("invalid capacities", func(t *testing.T) {
		cfg.Presets["broken"] = Preset{Capacities: []int{0, 1, 2}, Target: 1}
		_, _, err := cfg.Preset("broken")
		assert.True(t, errors.Is(err, domain.ErrNonPositiveCapacity))
	})

	t.Run("wrong arity", func(t *testing.T) {
		cfg.Presets["short"] = Preset{Capacities: []int{1, 2}, Target: 1}
		_, _, err := cfg.Preset("short")
		assert.Error(t, err)
	})
}
