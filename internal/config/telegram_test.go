package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTelegramConfig(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_OWNER_ID", "42")

	cfg, err := ParseTelegramConfig()
	require.NoError(t, err)
	assert.Equal(t, "123:abc", cfg.Token)
	assert.Equal(t, int64(42), cfg.OwnerID)
}

func TestParseTelegramConfig_Missing(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("TELEGRAM_OWNER_ID", "42")

	cfg, err := ParseTelegramConfig()
	require.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, int64(42), cfg.OwnerID)
}
