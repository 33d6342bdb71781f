// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"net/mail"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	ServerHost string `env:"FITBLOG_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"FITBLOG_SERVER_PORT" envDefault:"8080"`
	Env        string `env:"FITBLOG_ENV" envDefault:"development"`
	LogLevel   string `env:"FITBLOG_LOG_LEVEL" envDefault:"info"`
	DBPath     string `env:"FITBLOG_DB_PATH" envDefault:"./data/fitblog.db"`
	BaseURL    string `env:"FITBLOG_BASE_URL" envDefault:"http://localhost:8080"`

	// Cache configuration
	RedisURL     string `env:"FITBLOG_REDIS_URL"`                         // Optional Redis URL for distributed caching
	CachePrefix  string `env:"FITBLOG_CACHE_PREFIX" envDefault:"fitblog:"` // Redis key prefix
	CacheTTL     int    `env:"FITBLOG_CACHE_TTL" envDefault:"3600"`        // Default cache TTL in seconds
	CacheMaxSize int    `env:"FITBLOG_CACHE_MAX_SIZE" envDefault:"10000"`  // Max memory cache entries

	// Email configuration
	SendGridAPIKey string `env:"FITBLOG_SENDGRID_API_KEY"`                               // Empty disables outbound email
	EmailFrom      string `env:"FITBLOG_EMAIL_FROM" envDefault:"newsletter@fitblog.app"` // Sender address
	EmailFromName  string `env:"FITBLOG_EMAIL_FROM_NAME" envDefault:"FitBlog"`           // Sender display name
	AdminEmail     string `env:"FITBLOG_ADMIN_EMAIL"`                                    // Empty disables admin alerts

	// Rate limiting for the subscribe endpoint
	SubscribeRateLimit int `env:"FITBLOG_SUBSCRIBE_RATE_LIMIT" envDefault:"10"` // Requests per minute per IP
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

// EmailEnabled returns true if a SendGrid API key is configured.
func (c Config) EmailEnabled() bool {
	return c.SendGridAPIKey != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if _, err := mail.ParseAddress(cfg.EmailFrom); err != nil {
		return nil, fmt.Errorf("FITBLOG_EMAIL_FROM is not a valid address: %w", err)
	}
	if cfg.AdminEmail != "" {
		if _, err := mail.ParseAddress(cfg.AdminEmail); err != nil {
			return nil, fmt.Errorf("FITBLOG_ADMIN_EMAIL is not a valid address: %w", err)
		}
	}
	if cfg.SubscribeRateLimit < 1 {
		return nil, fmt.Errorf("FITBLOG_SUBSCRIBE_RATE_LIMIT must be at least 1, got %d", cfg.SubscribeRateLimit)
	}

	return cfg, nil
}
