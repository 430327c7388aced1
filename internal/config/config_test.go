package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	// Save current env and restore later
	origKey := os.Getenv("GEMINI_API_KEY")
	defer os.Setenv("GEMINI_API_KEY", origKey)

	os.Setenv("GEMINI_API_KEY", "test-key")
	os.Setenv("GEMINI_TIMEOUT_SEC", "30")
	os.Setenv("APP_ENV", "production")
	defer os.Unsetenv("APP_ENV")
	defer os.Unsetenv("GEMINI_TIMEOUT_SEC")

	cfg := Load()

	assert.Equal(t, "test-key", cfg.Gemini.APIKey)
	assert.Equal(t, 30, cfg.Gemini.TimeoutSec)
	assert.True(t, cfg.Production())
}

func TestLoadDefaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("SESSION_COOKIE_NAME")
	os.Unsetenv("SESSION_TTL_SEC")
	os.Unsetenv("UPLOAD_DIR")

	cfg := Load()

	assert.False(t, cfg.Production())
	assert.Equal(t, "session", cfg.Session.CookieName)
	assert.Equal(t, 60*60*24*7, cfg.Session.TTLSec)
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
	assert.Equal(t, "uploads/temp", cfg.Uploads.TempDir)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	os.Setenv(key, "value")
	defer os.Unsetenv(key)

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvInt(t *testing.T) {
	key := "TEST_INT_VAR"

	os.Setenv(key, "123")
	assert.Equal(t, 123, getEnvInt(key, 0))

	os.Setenv(key, "invalid")
	assert.Equal(t, 10, getEnvInt(key, 10))

	os.Unsetenv(key)
	assert.Equal(t, 10, getEnvInt(key, 10))
}
