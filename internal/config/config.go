package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vango-dev/vango-ant/app/components/ui"
	"github.com/vango-dev/vango-ant/pkg/runtime"
)

// Config holds all configuration for the application.
type Config struct {
	// Server
	Port        string
	Environment string // development, staging, production
	LogLevel    string

	// Widgets
	Prefix          string
	Direction       ui.Direction
	AutoInsertSpace bool

	// Runtime
	MaxRenderPasses int
}

// Load reads configuration from environment variables.
// In development, it will also load from a .env file if present.
func Load() (*Config, error) {
	// Load .env file in development (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	autoInsertSpace, err := strconv.ParseBool(getEnv("VANGO_AUTO_INSERT_SPACE", "true"))
	if err != nil {
		return nil, fmt.Errorf("VANGO_AUTO_INSERT_SPACE: %w", err)
	}

	maxPasses, err := strconv.Atoi(getEnv("VANGO_MAX_RENDER_PASSES", strconv.Itoa(runtime.DefaultMaxPasses)))
	if err != nil {
		return nil, fmt.Errorf("VANGO_MAX_RENDER_PASSES: %w", err)
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		Prefix:          getEnv("VANGO_PREFIX", ui.DefaultPrefix),
		Direction:       ui.Direction(strings.ToLower(getEnv("VANGO_DIRECTION", string(ui.DirectionLTR)))),
		AutoInsertSpace: autoInsertSpace,

		MaxRenderPasses: maxPasses,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the values Load cannot parse-check on its own.
func (c *Config) Validate() error {
	if err := ValidatePrefix(c.Prefix); err != nil {
		return fmt.Errorf("VANGO_PREFIX %q: %w", c.Prefix, err)
	}
	if c.Direction != ui.DirectionLTR && c.Direction != ui.DirectionRTL {
		return fmt.Errorf("VANGO_DIRECTION must be ltr or rtl, got %q", c.Direction)
	}
	if c.MaxRenderPasses < 1 {
		return fmt.Errorf("VANGO_MAX_RENDER_PASSES must be positive, got %d", c.MaxRenderPasses)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

// UIContext returns the root configuration every widget renders under.
func (c *Config) UIContext() *ui.ConfigContext {
	return ui.NewConfigContext(
		ui.WithPrefix(c.Prefix),
		ui.WithDirection(c.Direction),
		ui.WithAutoInsertSpace(c.AutoInsertSpace),
	)
}

// getEnv returns the value of an environment variable or a fallback default.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
