package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	t.Setenv("DATABASE_URI", "")

	path := filepath.Join(t.TempDir(), "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte("database_url: sqlite://catalog.db\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sqlite://catalog.db", cfg.DatabaseURL)
}

func TestEnvironmentOverridesFile(t *testing.T) {
	t.Setenv("DATABASE_URI", "postgres://catalog:secret@db:5432/catalog")

	path := filepath.Join(t.TempDir(), "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte("database_url: sqlite://catalog.db\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://catalog:secret@db:5432/catalog", cfg.DatabaseURL)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URI", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultDatabaseURL, cfg.DatabaseURL)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yml")
	require.NoError(t, os.WriteFile(path, []byte("database_url: [broken\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
