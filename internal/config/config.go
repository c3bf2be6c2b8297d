package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	xenv "github.com/nutrisync/nutrisync/internal/env"
)

const DefaultWearableURL = "https://api.nutrisync.dev"

type Config struct {
	Port        string           `env:"PORT" envDefault:"8080"`
	Environment xenv.Environment `env:"ENVIRONMENT" envDefault:"development"`

	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`

	WearableURL   string        `env:"WEARABLE_API_URL" envDefault:"https://api.nutrisync.dev"`
	WearableToken string        `env:"WEARABLE_API_TOKEN"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	// SyncDays bounds how far back backfill reaches.
	SyncDays int `env:"SYNC_DAYS" envDefault:"30"`

	// RateLimitPerMinute caps requests per client key at the HTTP surface.
	RateLimitPerMinute int `env:"RATE_LIMIT_PER_MINUTE" envDefault:"60"`
}

func Read() (Config, error) {
	return env.ParseAs[Config]()
}
