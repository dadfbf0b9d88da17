package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EEseka/physiquest/internal/engine"
	"github.com/EEseka/physiquest/internal/physics"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "file", cfg.Store)
	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Positive(t, cfg.Workers)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Store = "redis"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg = DefaultConfig()
	cfg.Workers = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)

	cfg = DefaultConfig()
	cfg.Plot.Height = 0
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physiquest.yaml")

	cfg := DefaultConfig()
	cfg.Store = "sqlite"
	cfg.Theme = "nord"
	cfg.Plot.Width = 100
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoad_PartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physiquest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: sqlite\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Store)
	assert.Equal(t, DefaultWorkers, cfg.Workers)
	assert.Equal(t, DefaultPlotWidth, cfg.Plot.Width)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physiquest.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: -2\n"), 0644))

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGetPreset(t *testing.T) {
	p := GetPreset(engine.Projectile, "45deg")
	require.NotNil(t, p)
	assert.Equal(t, 20.0, p["velocity"])

	p["velocity"] = 1
	assert.Equal(t, 20.0, GetPreset(engine.Projectile, "45deg")["velocity"])
}

func TestGetPreset_NotFound(t *testing.T) {
	assert.Nil(t, GetPreset(engine.Projectile, "nonexistent"))
	assert.Nil(t, GetPreset(engine.Domain("nonexistent"), "45deg"))

	_, err := PresetSet(engine.Circuit, "nonexistent")
	assert.Error(t, err)
}

func TestListPresets(t *testing.T) {
	assert.Equal(t, []string{"45deg", "cliff", "lob", "vertical"}, ListPresets(engine.Projectile))
	assert.Nil(t, ListPresets(engine.Domain("nonexistent")))
}

func TestPresetsCompute(t *testing.T) {
	for _, d := range engine.Domains {
		names := ListPresets(d)
		require.NotEmpty(t, names, "domain %s has no presets", d)
		for _, name := range names {
			in, err := PresetSet(d, name)
			require.NoError(t, err)
			_, err = physics.Compute(d, in)
			assert.NoError(t, err, "%s/%s", d, name)
		}
	}
}
