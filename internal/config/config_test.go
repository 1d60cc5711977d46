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
	t.Run("Defaults without a file", func(t *testing.T) {
		// Given: no config file
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: the config is loaded
		conf, err := Load(path)

		// Then: defaults are applied
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.False(t, conf.OpeningBook.Enabled)
		assert.Equal(t, 24*time.Hour, conf.OpeningBook.TTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Values from the yaml file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\n" +
			"seed: 42\n" +
			"opening-book:\n  enabled: true\n  ttl: 1h\n" +
			"redis:\n  host: cache\n  port: \"6380\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: the config is loaded
		conf, err := Load(path)

		// Then: file values win over defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, uint64(42), conf.Seed)
		assert.True(t, conf.OpeningBook.Enabled)
		assert.Equal(t, time.Hour, conf.OpeningBook.TTL)
		assert.Equal(t, "cache:6380", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides", func(t *testing.T) {
		// Given: environment variables and no file
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("OPENING_BOOK_ENABLED", "true")
		t.Setenv("REDIS_HOST", "redis.internal")

		// When: the config is loaded
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: environment values are used
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.True(t, conf.OpeningBook.Enabled)
		assert.Equal(t, "redis.internal:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Broken file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [unclosed"), 0o600))

		_, err := Load(path)

		assert.Error(t, err)
	})
}
