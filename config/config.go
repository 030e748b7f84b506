package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"
)

// Config holds all application configuration
type Config struct {
	// HTTP server
	Port int

	// Database configuration
	DatabaseURL  string
	SkipDatabase bool // run without a store; ingestion is rejected in this mode

	// Upstream fiscal-data service
	FiscalAPIBaseURL string

	// Ingestion trigger secret (Authorization: Bearer <secret>)
	CronSecret string

	// Optional shared rate-limit counter store
	RedisURL string

	// Rate limiting
	RateLimitPerMinute int

	// Environment
	Environment string // "development" or "production"
}

var (
	instance *Config
	once     sync.Once
)

// Get returns the global configuration instance
func Get() *Config {
	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			panic(fmt.Sprintf("failed to load config: %v", err))
		}
	})
	return instance
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		Port:               8080,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		SkipDatabase:       os.Getenv("SKIP_DATABASE") == "true",
		FiscalAPIBaseURL:   os.Getenv("FISCAL_API_BASE_URL"),
		CronSecret:         os.Getenv("CRON_SECRET"),
		RedisURL:           os.Getenv("REDIS_URL"),
		RateLimitPerMinute: 60,
		Environment:        os.Getenv("ENVIRONMENT"),
	}

	if port := os.Getenv("PORT"); port != "" {
		if parsed, err := strconv.Atoi(port); err == nil {
			config.Port = parsed
		}
	}
	if limit := os.Getenv("RATE_LIMIT_PER_MINUTE"); limit != "" {
		if parsed, err := strconv.Atoi(limit); err == nil {
			config.RateLimitPerMinute = parsed
		}
	}

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment == "production" {
		// Validate required configuration
		if config.DatabaseURL == "" && !config.SkipDatabase {
			return nil, fmt.Errorf("DATABASE_URL is required (or set SKIP_DATABASE=true)")
		}
		if config.CronSecret == "" {
			return nil, fmt.Errorf("CRON_SECRET is required")
		}
	}

	return config, nil
}

// IsDevelopment reports whether the process runs in local-development
// mode, where the ingestion trigger skips bearer-token auth.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
