package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/redlist/internal/cmd/globals"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("REDLIST_OUTPUT", "")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, config.LogLevel)
	assert.Empty(t, config.Output)
	assert.Equal(t, "stderr", config.LogOutput)
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("REDLIST_OUTPUT", "yaml")

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "ERROR", config.LogLevel)
	assert.Equal(t, "json", config.LogFormat)
	assert.Equal(t, "yaml", config.Output)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("REDLIST_OUTPUT=table\nLOG_OUTPUT=stdout\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.local"), []byte("REDLIST_OUTPUT=wide\n"), 0o600))
	t.Chdir(dir)

	// Unset so godotenv may fill them, and restore afterwards.
	t.Setenv("REDLIST_OUTPUT", "")
	t.Setenv("LOG_OUTPUT", "")
	require.NoError(t, os.Unsetenv("REDLIST_OUTPUT"))
	require.NoError(t, os.Unsetenv("LOG_OUTPUT"))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "wide", config.Output)
	assert.Equal(t, "stdout", config.LogOutput)
}

func TestUpdateFromFlags(t *testing.T) {
	config := &Config{Output: "json", LogLevel: "info"}
	config.UpdateFromFlags(&globals.Flags{LogLevel: "DEBUG", CatalogFile: "c.yaml"})

	assert.Equal(t, "json", config.Output)
	assert.Equal(t, "DEBUG", config.LogLevel)
	assert.Equal(t, "c.yaml", config.CatalogFile)

	config.UpdateFromFlags(nil)
	assert.Equal(t, "DEBUG", config.LogLevel)
}

func TestDetermineLogLevel(t *testing.T) {
	assert.Equal(t, "warning", determineLogLevel(&Config{}))
	assert.Equal(t, "error", determineLogLevel(&Config{LogLevel: "ERROR"}))
	assert.Equal(t, "warning", determineLogLevel(&Config{LogLevel: "loud"}))
}
