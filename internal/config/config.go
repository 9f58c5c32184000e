package config

import (
	"errors"
	"fmt"
	"time"
)

// Config is the complete service configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Redis     RedisConfig     `koanf:"redis"`
	Backend   BackendConfig   `koanf:"backend"`
	Provider  ProviderConfig  `koanf:"provider"`
	Batch     BatchConfig     `koanf:"batch"`
	Recommend RecommendConfig `koanf:"recommend"`
	Log       LogConfig       `koanf:"log"`
}

type ServerConfig struct {
	Port               int           `koanf:"port"`
	BearerToken        string        `koanf:"bearer_token"`
	CORSOrigins        []string      `koanf:"cors_origins"`
	RateLimitPerMinute int           `koanf:"rate_limit_per_minute"`
	ShutdownTimeout    time.Duration `koanf:"shutdown_timeout"`
}

type DatabaseConfig struct {
	URL           string `koanf:"url"`
	MaxConns      int32  `koanf:"max_conns"`
	MigrationsDir string `koanf:"migrations_dir"`
}

type RedisConfig struct {
	URL        string        `koanf:"url"`
	ExploreTTL time.Duration `koanf:"explore_ttl"`
}

// BackendConfig points at the product recommendation backend. An empty URL disables it.
type BackendConfig struct {
	URL              string        `koanf:"url"`
	Timeout          time.Duration `koanf:"timeout"`
	BreakerTimeout   time.Duration `koanf:"breaker_timeout"`
	BreakerTripAfter uint32        `koanf:"breaker_trip_after"`
}

// ProviderConfig configures the live pricing provider.
type ProviderConfig struct {
	Enabled      bool   `koanf:"enabled"`
	BaseURL      string `koanf:"base_url"`
	ClientID     string `koanf:"client_id"`
	ClientSecret string `koanf:"client_secret"`
	RPS          int    `koanf:"rps"`
	Currency     string `koanf:"currency"`
}

type BatchConfig struct {
	Size  int           `koanf:"size"`
	Delay time.Duration `koanf:"delay"`
}

type RecommendConfig struct {
	MinScore          int `koanf:"min_score"`
	DefaultMaxResults int `koanf:"default_max_results"`
	MaxResults        int `koanf:"max_results"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Validate checks required keys and value ranges. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error
	req := func(v, key string) {
		if v == "" {
			errs = append(errs, fmt.Errorf("%s is required", key))
		}
	}

	req(c.Database.URL, "database.url (DATABASE_URL)")
	req(c.Redis.URL, "redis.url (REDIS_URL)")
	req(c.Server.BearerToken, "server.bearer_token (BEARER_TOKEN)")

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Server.RateLimitPerMinute < 1 {
		errs = append(errs, errors.New("server.rate_limit_per_minute must be positive"))
	}
	if c.Provider.Enabled {
		req(c.Provider.ClientID, "provider.client_id (AMADEUS_CLIENT_ID)")
		req(c.Provider.ClientSecret, "provider.client_secret (AMADEUS_CLIENT_SECRET)")
	}
	req(c.Provider.Currency, "provider.currency")
	if c.Batch.Size < 1 {
		errs = append(errs, errors.New("batch.size must be at least 1"))
	}
	if c.Batch.Delay < 0 {
		errs = append(errs, errors.New("batch.delay must not be negative"))
	}
	if c.Recommend.MinScore < 0 || c.Recommend.MinScore > 100 {
		errs = append(errs, fmt.Errorf("recommend.min_score %d out of range 0-100", c.Recommend.MinScore))
	}
	if c.Recommend.MaxResults < 1 {
		errs = append(errs, errors.New("recommend.max_results must be at least 1"))
	}
	if c.Recommend.DefaultMaxResults < 1 || c.Recommend.DefaultMaxResults > c.Recommend.MaxResults {
		errs = append(errs, fmt.Errorf("recommend.default_max_results must be between 1 and %d", c.Recommend.MaxResults))
	}

	return errors.Join(errs...)
}
