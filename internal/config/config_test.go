package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "us_average", cfg.DefaultRegion)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Logging.File)
}

func TestLoad(t *testing.T) {
	t.Run("missing file uses defaults", func(t *testing.T) {
		cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
default_region: uk
logging:
  level: debug
`), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "uk", cfg.DefaultRegion)
		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("default_region: canada\n"), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "canada", cfg.DefaultRegion)
		assert.Equal(t, "info", cfg.Logging.Level)
	})

	t.Run("unknown region is rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("default_region: atlantis\n"), 0600))

		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "default_region")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(":\t not yaml"), 0600))

		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestInitLogger(t *testing.T) {
	t.Run("console only", func(t *testing.T) {
		assert.NoError(t, InitLogger("debug", ""))
	})

	t.Run("bad level falls back to info", func(t *testing.T) {
		assert.NoError(t, InitLogger("chatty", ""))
	})

	t.Run("file output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "carbontrack.log")
		require.NoError(t, InitLogger("info", path))

		_, err := os.Stat(path)
		assert.NoError(t, err)
	})

	t.Run("unwritable file path", func(t *testing.T) {
		assert.Error(t, InitLogger("info", filepath.Join(t.TempDir(), "missing", "dir.log")))
	})
}
