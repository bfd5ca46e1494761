// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	SessionDBPath string `env:"LUMINA_SESSION_DB_PATH" envDefault:"./data/lumina.db"`
	Env           string `env:"LUMINA_ENV" envDefault:"development"`
	LogLevel      string `env:"LUMINA_LOG_LEVEL" envDefault:"info"`

	// Session slot backend configuration
	RedisURL      string `env:"LUMINA_REDIS_URL"`                          // Optional Redis URL for the session slot
	SessionPrefix string `env:"LUMINA_SESSION_PREFIX" envDefault:"lumina:"` // Redis key prefix

	// Seeding configuration
	DoSeed bool `env:"LUMINA_DO_SEED" envDefault:"true"` // Load sample content on startup
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// UseRedisSessions returns true if the durable session slot should live in Redis.
func (c Config) UseRedisSessions() bool {
	return c.RedisURL != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
