package service

import (
	"path/filepath"
	"testing"

	"github.com/auchan-scraper/auchan/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("EXPORT_PATH", "")
	t.Setenv("SEED_COUNT", "")

	config, err := LoadConfig()
	require.NoError(t, err)

	defaultPath, err := storage.DefaultPath()
	require.NoError(t, err)

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "8000", config.Port)
	assert.Equal(t, defaultPath, config.DBPath)
	assert.True(t, filepath.IsAbs(config.DBPath))
	assert.Empty(t, config.Export.Path)
	assert.Equal(t, 25, config.Seed.Count)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("EXPORT_PATH", "/tmp/products.csv")
	t.Setenv("SEED_COUNT", "3")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", config.DBPath)
	assert.Equal(t, "/tmp/products.csv", config.Export.Path)
	assert.Equal(t, 3, config.Seed.Count)
}

func TestLoadConfig_InvalidSeedCount(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name  string
		value string
	}{
		{"not_a_number", "many"},
		{"negative", "-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SEED_COUNT", tt.value)

			_, err := LoadConfig()
			assert.ErrorContains(t, err, "invalid SEED_COUNT")
		})
	}
}

func TestLoadConfig_DBPathIgnoresWorkingDirectory(t *testing.T) {
	t.Setenv("DB_PATH", "")

	t.Chdir(t.TempDir())
	first, err := LoadConfig()
	require.NoError(t, err)

	t.Chdir(t.TempDir())
	second, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, first.DBPath, second.DBPath)
}
