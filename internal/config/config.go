// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"EVENTHUB_DB_PATH" envDefault:"./data/eventhub.db"`
	ServerHost string `env:"EVENTHUB_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"EVENTHUB_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"EVENTHUB_ENV" envDefault:"development"`
	LogLevel   string `env:"EVENTHUB_LOG_LEVEL" envDefault:"info"`

	// Cache configuration
	RedisURL     string `env:"EVENTHUB_REDIS_URL"`                          // Optional Redis URL for the events cache
	CachePrefix  string `env:"EVENTHUB_CACHE_PREFIX" envDefault:"eventhub:"` // Redis key prefix
	CacheTTL     int    `env:"EVENTHUB_CACHE_TTL" envDefault:"3600"`        // Default cache TTL in seconds
	CacheMaxSize int    `env:"EVENTHUB_CACHE_MAX_SIZE" envDefault:"1000"`   // Max memory cache entries

	// Seeding configuration. Seeding is create-if-empty and idempotent,
	// so it is on by default; disable it to start from a blank store.
	DoSeed bool `env:"EVENTHUB_DO_SEED" envDefault:"true"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
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
