package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// Run from an empty directory so no stray inkpad.yaml is picked up
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.DataDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogFile)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("INKPAD_DATA_DIR", "/tmp/inkpad-test")
	t.Setenv("INKPAD_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/inkpad-test", cfg.DataDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestConfig_Paths(t *testing.T) {
	cfg := &Config{DataDir: "/data"}

	assert.Equal(t, filepath.Join("/data", "inkpad.db"), cfg.RecordDBPath())
	assert.Equal(t, filepath.Join("/data", "settings.db"), cfg.SettingsDBPath())
	assert.Equal(t, filepath.Join("/data", "notebook-backgrounds"), cfg.BackgroundsDir())
	assert.Equal(t, filepath.Join("/data", "backup-staging"), cfg.StagingDir())
}
