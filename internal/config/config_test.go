package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("APP_NAME", "skillmatch")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	for _, k := range []string{"LOG_JSON", "LOG_DEBUG", "CATALOG_PATH", "UPLOAD_MAX_BYTES", "REDIS_ENABLED", "REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_TTL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "skillmatch", cfg.App.AppName)
	assert.Equal(t, "8080", cfg.App.HTTPPort)
	assert.False(t, cfg.Log.JSON)
	assert.Empty(t, cfg.Catalog.Path)
	assert.Equal(t, int64(10<<20), cfg.Upload.MaxBytes)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, 600*time.Second, cfg.Redis.TTL)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("LOG_JSON", "true")
	t.Setenv("LOG_DEBUG", "1")
	t.Setenv("CATALOG_PATH", " /etc/jobs.yaml ")
	t.Setenv("UPLOAD_MAX_BYTES", "2048")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("REDIS_TTL", "30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Log.JSON)
	assert.True(t, cfg.Log.Debug)
	assert.Equal(t, "/etc/jobs.yaml", cfg.Catalog.Path)
	assert.Equal(t, int64(2048), cfg.Upload.MaxBytes)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr())
	assert.Equal(t, 30*time.Second, cfg.Redis.TTL)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")

	_, err := Load()
	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "APP_NAME")
	assert.Contains(t, err.Error(), "HTTP_PORT")
}

func TestParseHelpers(t *testing.T) {
	assert.True(t, parseBool("", true))
	assert.False(t, parseBool("nope", false))
	assert.Equal(t, int64(5), parseInt64("-3", 5))
	assert.Equal(t, int64(5), parseInt64("x", 5))
	assert.Equal(t, int64(7), parseInt64("7", 5))
}
