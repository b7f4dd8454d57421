package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Catalog.Sources, cfg.Catalog.Sources)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	doc := `
catalog:
  sources:
    - /data/units.ucum.json
    - /data/extra.yaml
  watch: true
  common_kinds: [Length, Mass]
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/data/units.ucum.json", "/data/extra.yaml"}, cfg.Catalog.Sources)
	assert.True(t, cfg.Catalog.Watch)
	assert.Equal(t, []string{"Length", "Mass"}, cfg.Catalog.CommonKinds)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog: [unclosed"), 0644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("UNITCONV_CATALOG replaces sources", func(t *testing.T) {
		t.Setenv("UNITCONV_CATALOG", "/a.json"+string(os.PathListSeparator)+"/b.yaml")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, []string{"/a.json", "/b.yaml"}, cfg.Catalog.Sources)
	})

	t.Run("UNITCONV_WATCH enables watching", func(t *testing.T) {
		t.Setenv("UNITCONV_WATCH", "true")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.True(t, cfg.Catalog.Watch)
	})

	t.Run("UNITCONV_LOG_LEVEL overrides level", func(t *testing.T) {
		t.Setenv("UNITCONV_LOG_LEVEL", "warn")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("empty environment leaves config untouched", func(t *testing.T) {
		t.Setenv("UNITCONV_CATALOG", "")
		t.Setenv("UNITCONV_LOG_LEVEL", "")
		cfg := DefaultConfig()
		cfg.applyEnvOverrides()
		assert.Equal(t, DefaultConfig().Catalog.Sources, cfg.Catalog.Sources)
		assert.Equal(t, "info", cfg.Logging.Level)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := DefaultConfig()
	cfg.Logging.Level = "debug"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Catalog.Sources, loaded.Catalog.Sources)
	assert.Equal(t, "debug", loaded.Logging.Level)
}
