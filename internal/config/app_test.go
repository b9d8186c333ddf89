package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TERMCORE_RUNTIME_PATH", dir)

	cfg, err := ParseAppConfig()
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.GetRuntimePath())
	assert.Equal(t, HistoryBackendFile, cfg.GetHistoryBackend())
	assert.Equal(t, filepath.Join(dir, "history.txt"), cfg.GetHistoryFilePath())
	assert.Equal(t, filepath.Join(dir, "history.db"), cfg.GetHistoryDBPath())
	assert.Equal(t, 500, cfg.GetHistoryLimit())
	assert.Equal(t, "127.0.0.1:8080", cfg.GetAddr())
	assert.Equal(t, 64, cfg.GetMaxConns())
	assert.Equal(t, 5*time.Minute, cfg.GetIdleTimeout())
	assert.Equal(t, 100*time.Millisecond, cfg.TUITick)
	assert.False(t, cfg.IsTelegramSelected())
}

func TestParseAppConfig_Overrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TERMCORE_RUNTIME_PATH", dir)
	t.Setenv("TERMCORE_HISTORY_FILE", filepath.Join(dir, "custom"))
	t.Setenv("TERMCORE_BRIDGE_ADDR", ":9000")
	t.Setenv("TERMCORE_BRIDGE_IDLE_TIMEOUT", "0s")
	t.Setenv("TERMCORE_ENABLE_TELEGRAM", "true")

	cfg, err := ParseAppConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "custom"), cfg.GetHistoryFilePath())
	assert.Equal(t, ":9000", cfg.GetAddr())
	assert.Zero(t, cfg.GetIdleTimeout())
	assert.True(t, cfg.IsTelegramSelected())
}

func TestParseAppConfig_Invalid(t *testing.T) {
	t.Setenv("TERMCORE_RUNTIME_PATH", t.TempDir())
	t.Setenv("TERMCORE_BRIDGE_MAX_CONNS", "many")

	_, err := ParseAppConfig()
	assert.Error(t, err)
}

func TestGetRuntimePath_Relative(t *testing.T) {
	t.Setenv("TERMCORE_RUNTIME_PATH", "")
	t.Setenv("HOME", "/home/tester")

	assert.Equal(t, filepath.Join("/home/tester", ".termcore"), GetRuntimePath())
}
