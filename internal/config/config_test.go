package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "text", cfg.LogFormat)
		assert.False(t, cfg.NoColor)
		assert.Empty(t, cfg.PlayerName)
	})

	t.Run("overrides from environment", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("LOG_FORMAT", "json")
		t.Setenv("NO_COLOR", "1")
		t.Setenv("PLAYER_NAME", "Ada")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "json", cfg.LogFormat)
		assert.True(t, cfg.NoColor)
		assert.Equal(t, "Ada", cfg.PlayerName)
	})

	t.Run("invalid log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOG_LEVEL")
	})

	t.Run("invalid log format", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LOG_FORMAT")
	})
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("FLAG", "false")
	assert.False(t, getEnvBool("FLAG", true))

	t.Setenv("FLAG", "1")
	assert.True(t, getEnvBool("FLAG", false))

	assert.True(t, getEnvBool("MISSING_FLAG", true))
}
