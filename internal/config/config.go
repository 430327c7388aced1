package config

import (
	"os"
	"strconv"
)

// GeminiConfig holds settings for the external Gemini text-completion API.
type GeminiConfig struct {
	APIKey     string
	Model      string
	TimeoutSec int
}

// SessionConfig holds signed session cookie settings.
type SessionConfig struct {
	Secret     string
	CookieName string
	TTLSec     int
}

// UploadsConfig holds local filesystem paths for SOP documents and
// in-flight classification uploads.
type UploadsConfig struct {
	Dir     string
	TempDir string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Env     string
	Port    string
	Gemini  GeminiConfig
	Session SessionConfig
	Uploads UploadsConfig
}

// Production reports whether the app runs in production mode.
// It controls the Secure attribute on the session cookie.
func (c *AppConfig) Production() bool {
	return c.Env == "production"
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "8080"), // default only for non-sensitive value
		Gemini: GeminiConfig{
			APIKey:     getEnv("GEMINI_API_KEY", ""),
			Model:      getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
			TimeoutSec: getEnvInt("GEMINI_TIMEOUT_SEC", 60),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", ""),
			CookieName: getEnv("SESSION_COOKIE_NAME", "session"),
			TTLSec:     getEnvInt("SESSION_TTL_SEC", 60*60*24*7),
		},
		Uploads: UploadsConfig{
			Dir:     getEnv("UPLOAD_DIR", "uploads"),
			TempDir: getEnv("UPLOAD_TEMP_DIR", "uploads/temp"),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
