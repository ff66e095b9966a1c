package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
filesystem:
  root: "` + filepath.ToSlash(dir) + `"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "INFO", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "stdout", cfg.Logging.Output)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 64, cfg.Engine.CommandBuffer)
	assert.Equal(t, 100, cfg.Engine.HistoryLimit)
}

func TestLoadMissingFilesystemRootFailsValidation(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("logging:\n  level: DEBUG\n"), 0o644))

	_, err := Load(configPath)
	assert.Error(t, err)
}

func TestLoadDurationAndByteSizeDecodeHooks(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
filesystem:
  root: "` + filepath.ToSlash(dir) + `"
server:
  shutdown_timeout: 5s
registry:
  persistent: true
  path: "` + filepath.ToSlash(dir) + `/registry"
  max_entries_cache: 10Mi
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.EqualValues(t, 10*1024*1024, cfg.Registry.MaxEntriesCache)
}

func TestSaveConfigRoundTrips(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{Filesystem: FilesystemConfig{Root: dir}}
	ApplyDefaults(cfg)

	path := filepath.Join(dir, "out.yaml")
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Logging.Level, loaded.Logging.Level)
	assert.Equal(t, cfg.Server.Port, loaded.Server.Port)
}
