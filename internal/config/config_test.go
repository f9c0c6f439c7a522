package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults when the file is missing", func(t *testing.T) {
		conf, err := Load(filepath.Join(t.TempDir(), "config.yml"))

		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, "X", conf.HumanMark)
		assert.Equal(t, "X", conf.FirstMover)
		assert.True(t, conf.Color)
		assert.Equal(t, StoreMemory, conf.SessionStore)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, 24*time.Hour, conf.Redis.SessionTTL)
	})

	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file selecting redis
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\n" +
			"human-mark: O\n" +
			"session-store: redis\n" +
			"redis:\n" +
			"  host: cache\n" +
			"  port: \"6380\"\n" +
			"  session-ttl: 1h\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: it is loaded
		conf, err := Load(path)

		// Then: file values win over defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "O", conf.HumanMark)
		assert.Equal(t, StoreRedis, conf.SessionStore)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, time.Hour, conf.Redis.SessionTTL)
	})

	t.Run("Environment overrides", func(t *testing.T) {
		t.Setenv("FIRST_MOVER", "O")

		conf, err := Load(filepath.Join(t.TempDir(), "config.yml"))

		require.NoError(t, err)
		assert.Equal(t, "O", conf.FirstMover)
	})
}

func TestMustLoad_PanicsOnBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("log-level: [unclosed"), 0o600))

	assert.Panics(t, func() {
		MustLoad(path)
	})
}
