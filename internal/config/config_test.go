package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"WEB_ADDR", "LOG_LEVEL", "DEBUG", "EXCERPT_LENGTH", "MAX_UPLOAD_MB",
		"REQUEST_TIMEOUT_SECONDS", "PREFER_IPV4", "HTTP_TIMEOUT_SECONDS",
		"FETCH_PROXY", "FETCH_MANIFEST", "TELEGRAM_BOT_TOKEN", "MAX_CONCURRENT",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultWebAddr, cfg.WebAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 50, cfg.ExcerptLength)
	assert.Equal(t, int64(25<<20), cfg.MaxUploadBytes)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Empty(t, cfg.FetchProxy)
	assert.Equal(t, "images.yaml", cfg.FetchManifest)
	assert.True(t, cfg.PreferIPv4)
	assert.Error(t, cfg.RequireTelegram())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WEB_ADDR", "0.0.0.0:9000")
	t.Setenv("LOG_LEVEL", " DEBUG ")
	t.Setenv("EXCERPT_LENGTH", "12")
	t.Setenv("MAX_UPLOAD_MB", "2")
	t.Setenv("PREFER_IPV4", "false")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("FETCH_PROXY", "http://127.0.0.1:18081")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.WebAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 12, cfg.ExcerptLength)
	assert.Equal(t, int64(2<<20), cfg.MaxUploadBytes)
	assert.False(t, cfg.PreferIPv4)
	assert.Equal(t, "http://127.0.0.1:18081", cfg.FetchProxy)
	assert.NoError(t, cfg.RequireTelegram())
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("EXCERPT_LENGTH", "zero")
	t.Setenv("MAX_CONCURRENT", "-3")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "-1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.ExcerptLength)
	assert.Equal(t, 1, cfg.MaxConcurrent)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
}

func TestLoadRejectsInvalidProxy(t *testing.T) {
	t.Setenv("FETCH_PROXY", "http://[::1")

	_, err := Load()
	assert.Error(t, err)
}
