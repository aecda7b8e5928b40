package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_DIR", "STORAGE_BACKEND", "ZIPKIN_ADDRESS", "METRICS_ENABLED", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, ":3001", cfg.Addr())
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, "json", cfg.StorageBackend)
	assert.Empty(t, cfg.ZipkinAddress)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("STORAGE_BACKEND", "badger")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "badger", cfg.StorageBackend)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromEnvFile(t *testing.T) {
	t.Setenv("DATA_DIR", "")
	os.Unsetenv("DATA_DIR")
	t.Setenv("PORT", "9000")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DATA_DIR=/srv/galleria\nPORT=1234\n"), 0644))

	cfg := Load(envFile)

	assert.Equal(t, "/srv/galleria", cfg.DataDir)
	// the environment wins over the file
	assert.Equal(t, "9000", cfg.Port)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("METRICS_ENABLED", "maybe")
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))

	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}
