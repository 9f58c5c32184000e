package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths are searched in order when CONFIG_PATH is unset. The file is optional.
var DefaultConfigPaths = []string{"config.yaml", "config.yml"}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               8080,
			CORSOrigins:        []string{"*"},
			RateLimitPerMinute: 100,
			ShutdownTimeout:    30 * time.Second,
		},
		Database: DatabaseConfig{
			MaxConns:      10,
			MigrationsDir: "migrations",
		},
		Redis: RedisConfig{
			ExploreTTL: 30 * time.Minute,
		},
		Backend: BackendConfig{
			Timeout:          5 * time.Second,
			BreakerTimeout:   30 * time.Second,
			BreakerTripAfter: 5,
		},
		Provider: ProviderConfig{
			Enabled:  false,
			BaseURL:  "https://test.api.amadeus.com",
			RPS:      5,
			Currency: "GBP",
		},
		Batch: BatchConfig{
			Size:  5,
			Delay: 200 * time.Millisecond,
		},
		Recommend: RecommendConfig{
			MinScore:          60,
			DefaultMaxResults: 20,
			MaxResults:        50,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load builds the configuration from defaults, then an optional YAML file, then
// environment variables, and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("loading environment variables: %w", err)
	}

	if err := splitList(k, "server.cors_origins"); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// splitList turns a comma-separated string value (from env) into a slice.
func splitList(k *koanf.Koanf, path string) error {
	s, ok := k.Get(path).(string)
	if !ok {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if err := k.Set(path, out); err != nil {
		return fmt.Errorf("setting %s: %w", path, err)
	}
	return nil
}

var envMappings = map[string]string{
	"port":                  "server.port",
	"bearer_token":          "server.bearer_token",
	"cors_origins":          "server.cors_origins",
	"rate_limit_per_minute": "server.rate_limit_per_minute",
	"shutdown_timeout":      "server.shutdown_timeout",

	"database_url":       "database.url",
	"database_max_conns": "database.max_conns",
	"migrations_dir":     "database.migrations_dir",

	"redis_url":         "redis.url",
	"explore_cache_ttl": "redis.explore_ttl",

	"backend_url":                "backend.url",
	"backend_timeout":            "backend.timeout",
	"backend_breaker_timeout":    "backend.breaker_timeout",
	"backend_breaker_trip_after": "backend.breaker_trip_after",

	"provider_enabled":      "provider.enabled",
	"amadeus_base_url":      "provider.base_url",
	"amadeus_client_id":     "provider.client_id",
	"amadeus_client_secret": "provider.client_secret",
	"amadeus_rps":           "provider.rps",
	"price_currency":        "provider.currency",

	"batch_size":  "batch.size",
	"batch_delay": "batch.delay",

	"recommend_min_score":           "recommend.min_score",
	"recommend_default_max_results": "recommend.default_max_results",
	"recommend_max_results":         "recommend.max_results",

	"log_level":  "log.level",
	"log_format": "log.format",
}

// envTransform maps known environment variable names to config keys.
// Unknown variables are ignored.
func envTransform(key string) string {
	return envMappings[strings.ToLower(key)]
}
