package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the server configuration, loaded from the environment
type Config struct {
	// HTTP listener
	Host string `env:"LOMBAKU_HOST" envDefault:""`
	Port int    `env:"LOMBAKU_PORT" envDefault:"8080"`

	// Remote store backend: memory or sqlite
	RemoteBackend string `env:"LOMBAKU_REMOTE_BACKEND" envDefault:"sqlite"`
	SQLitePath    string `env:"LOMBAKU_SQLITE_PATH" envDefault:"lombaku.db"`

	// Overlay backend: memory, file or redis
	OverlayBackend string `env:"LOMBAKU_OVERLAY_BACKEND" envDefault:"file"`
	OverlayDir     string `env:"LOMBAKU_OVERLAY_DIR" envDefault:".lombaku"`
	RedisURL       string `env:"LOMBAKU_REDIS_URL" envDefault:"redis://localhost:6379"`

	// AuthSalt overrides the built-in credential digest salt. Changing it
	// invalidates every stored password hash.
	AuthSalt string `env:"LOMBAKU_AUTH_SALT"`

	LogLevel slog.Level `env:"LOMBAKU_LOG_LEVEL" envDefault:"info"`
}

// Load reads configuration from environment variables
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
