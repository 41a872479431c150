package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const testSecret = "a-very-secret-key-for-testing-!"

// clearEnv blanks every variable Load reads so the host environment does
// not leak into the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_ADDR", "APP_NAME", "APP_DEFAULT_LANG", "APP_LOCALES_DIR",
		"APP_LOCALES_HOT_RELOAD", "SESSION_SECRET", "LOG_FORMAT", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.GetServerAddr())
	assert.Equal(t, "Super Application", cfg.GetAppName())
	assert.Equal(t, language.English, cfg.GetDefaultLang())
	assert.Empty(t, cfg.GetLocalesDir())
	assert.False(t, cfg.GetHotReload())
	assert.Equal(t, "text", cfg.GetLogFormat())
	assert.Equal(t, slog.LevelDebug, cfg.GetLogLevel())
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SESSION_SECRET", testSecret)
	t.Setenv("SERVER_ADDR", "127.0.0.1:9000")
	t.Setenv("APP_NAME", "Google")
	t.Setenv("APP_DEFAULT_LANG", "de")
	t.Setenv("APP_LOCALES_DIR", "/srv/locales")
	t.Setenv("APP_LOCALES_HOT_RELOAD", "true")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.GetServerAddr())
	assert.Equal(t, "Google", cfg.GetAppName())
	assert.Equal(t, language.German, cfg.GetDefaultLang())
	assert.Equal(t, "/srv/locales", cfg.GetLocalesDir())
	assert.True(t, cfg.GetHotReload())
	assert.Equal(t, "json", cfg.GetLogFormat())
	assert.Equal(t, slog.LevelWarn, cfg.GetLogLevel())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing secret", env: map[string]string{}},
		{name: "short secret", env: map[string]string{"SESSION_SECRET": "short"}},
		{name: "bad log format", env: map[string]string{"SESSION_SECRET": testSecret, "LOG_FORMAT": "xml"}},
		{name: "bad log level", env: map[string]string{"SESSION_SECRET": testSecret, "LOG_LEVEL": "loud"}},
		{name: "bad language", env: map[string]string{"SESSION_SECRET": testSecret, "APP_DEFAULT_LANG": "not a tag"}},
		{name: "bad bool", env: map[string]string{"SESSION_SECRET": testSecret, "APP_LOCALES_HOT_RELOAD": "maybe"}},
		{name: "hot reload without dir", env: map[string]string{"SESSION_SECRET": testSecret, "APP_LOCALES_HOT_RELOAD": "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
