// Package config loads runtime settings from an optional .env file, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"loan-amortizer/logging"
)

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

type Config struct {
	// HTTP Server
	Port string `mapstructure:"port"`

	// Cache
	CacheBackend string        `mapstructure:"cache_backend"`
	RedisAddr    string        `mapstructure:"redis_addr"`
	RedisDB      int           `mapstructure:"redis_db"`
	CacheTTL     time.Duration `mapstructure:"cache_ttl"`

	// Rate limiting
	RateLimitCapacity int           `mapstructure:"rate_limit_capacity"`
	RateLimitWindow   time.Duration `mapstructure:"rate_limit_window"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"port":          "port",
	"cache-backend": "cache_backend",
	"redis-addr":    "redis_addr",
	"log-level":     "log_level",
	"log-format":    "log_format",
}

// Load reads envFile (or ./.env when envFile is empty and the file exists),
// then the environment, then any changed flags in fs. fs may be nil.
func Load(envFile string, fs *pflag.FlagSet) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("error loading env file %s: %w", envFile, err)
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("error loading .env: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("error binding flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")

	v.SetDefault("cache_backend", CacheBackendMemory)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_db", 0)
	v.SetDefault("cache_ttl", 10*time.Minute)

	v.SetDefault("rate_limit_capacity", 5)
	v.SetDefault("rate_limit_window", time.Minute)

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
}

// Validate validates the configuration and returns an error listing every problem.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.CacheBackend {
	case CacheBackendMemory:
	case CacheBackendRedis:
		if c.RedisAddr == "" {
			problems = append(problems, "redis address cannot be empty when using redis cache backend")
		}
		if c.RedisDB < 0 {
			problems = append(problems, fmt.Sprintf("invalid redis db %d: must not be negative", c.RedisDB))
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid cache backend '%s': must be one of [%s %s]", c.CacheBackend, CacheBackendMemory, CacheBackendRedis))
	}

	if c.CacheTTL < 0 {
		problems = append(problems, fmt.Sprintf("invalid cache ttl %v: must not be negative", c.CacheTTL))
	}
	if c.RateLimitCapacity < 1 {
		problems = append(problems, fmt.Sprintf("invalid rate limit capacity %d: must be at least 1", c.RateLimitCapacity))
	}
	if c.RateLimitWindow <= 0 {
		problems = append(problems, fmt.Sprintf("invalid rate limit window %v: must be positive", c.RateLimitWindow))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, err.Error())
	}
	if f := strings.ToLower(c.LogFormat); f != "text" && f != "json" {
		problems = append(problems, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if len(problems) > 0 {
		return errors.New("configuration validation failed: " + strings.Join(problems, "; "))
	}
	return nil
}
