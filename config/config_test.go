package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, DefaultDBName, cfg.DBPath)

	_, err = os.Stat(path)
	assert.NoError(t, err, "a default config file is written on first launch")
}

func TestLoadOrCreateReadsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(
		"addr = \":9090\"\ndb_path = \"data/app.db\"\ncors_origins = [\"https://app.example.com\"]\n"), 0o644))

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "data/app.db", cfg.DBPath)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.CORSOrigins)
}

func TestEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("FRILANCE_ADDR", ":7070")
	t.Setenv("FRILANCE_DB_PATH", "override.db")

	cfg, err := LoadOrCreate(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "override.db", cfg.DBPath)
}
