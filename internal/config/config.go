package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"golang.org/x/text/language"
)

// ErrInvalidConfig wraps every validation failure returned by Load.
var ErrInvalidConfig = errors.New("invalid configuration")

// Provider exposes configuration values to the rest of the application.
type Provider interface {
	GetServerAddr() string
	GetAppName() string
	GetDefaultLang() language.Tag
	GetLocalesDir() string
	GetHotReload() bool
	GetSessionSecret() string
	GetLogFormat() string
	GetLogLevel() slog.Level
}

// Config holds all configuration for the application.
type Config struct {
	ServerAddr    string `validate:"required"`
	AppName       string `validate:"required"`
	DefaultLang   string `validate:"required,bcp47_language_tag"`
	LocalesDir    string
	HotReload     bool
	SessionSecret string `validate:"required,min=16"`
	LogFormat     string `validate:"oneof=text json"`
	LogLevel      string `validate:"oneof=debug info warn error"`
}

var _ Provider = (*Config)(nil)

// New loads configuration and exits the process if it is invalid.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}

// Load reads an optional .env file, then the environment, applies defaults
// and validates the result.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		ServerAddr:    getenv("SERVER_ADDR", ":8080"),
		AppName:       getenv("APP_NAME", "Super Application"),
		DefaultLang:   getenv("APP_DEFAULT_LANG", "en"),
		LocalesDir:    os.Getenv("APP_LOCALES_DIR"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		LogFormat:     strings.ToLower(getenv("LOG_FORMAT", "text")),
		LogLevel:      strings.ToLower(getenv("LOG_LEVEL", "debug")),
	}

	if raw := os.Getenv("APP_LOCALES_HOT_RELOAD"); raw != "" {
		hot, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: APP_LOCALES_HOT_RELOAD: %v", ErrInvalidConfig, err)
		}
		cfg.HotReload = hot
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the struct tags on Config.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.HotReload && c.LocalesDir == "" {
		return fmt.Errorf("%w: APP_LOCALES_HOT_RELOAD requires APP_LOCALES_DIR", ErrInvalidConfig)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func (c *Config) GetServerAddr() string { return c.ServerAddr }

func (c *Config) GetAppName() string { return c.AppName }

// GetDefaultLang returns the parsed default language, or English if it does
// not parse.
func (c *Config) GetDefaultLang() language.Tag {
	tag, err := language.Parse(c.DefaultLang)
	if err != nil {
		return language.English
	}
	return tag
}

func (c *Config) GetLocalesDir() string { return c.LocalesDir }

func (c *Config) GetHotReload() bool { return c.HotReload }

func (c *Config) GetSessionSecret() string { return c.SessionSecret }

func (c *Config) GetLogFormat() string { return c.LogFormat }

func (c *Config) GetLogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelDebug
	}
	return level
}
