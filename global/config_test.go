package global

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingConfigIsCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "en", config.Language)
	assert.Equal(t, DefaultShinyRate, config.ShinyRate)
	assert.NotEmpty(t, config.AssetsDir)

	written, err := os.ReadFile(path)
	require.NoError(t, err)

	saved := Config{}
	require.NoError(t, json.Unmarshal(written, &saved))
	assert.Equal(t, config, saved)
}

func TestEmptyConfigGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	config, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "en", config.Language)
}

func TestConfigKeepsUserValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, SaveConfig(path, Config{AssetsDir: "/opt/pokemon", Language: "ja", ShinyRate: 0.5, Debug: true}))

	config, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, Config{AssetsDir: "/opt/pokemon", Language: "ja", ShinyRate: 0.5, Debug: true}, config)
}

func TestBrokenConfigFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	config, err := loadConfig(path)
	require.Error(t, err)
	assert.Equal(t, "en", config.Language)
}

func TestShinyRateBounds(t *testing.T) {
	assert.Equal(t, DefaultShinyRate, populateConfig(Config{ShinyRate: -1}).ShinyRate)
	assert.Equal(t, 1.0, populateConfig(Config{ShinyRate: 3}).ShinyRate)
	assert.Equal(t, 0.25, populateConfig(Config{ShinyRate: 0.25}).ShinyRate)
}
