// Package config loads process configuration once at startup. Values are
// immutable afterwards.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Backend selects the cache store implementation.
type Backend string

const (
	// BackendMemory is the default in-process store.
	BackendMemory Backend = "memory"

	// BackendRedis shares the cache between processes via Redis.
	BackendRedis Backend = "redis"
)

// Config holds all service configuration.
type Config struct {
	// Upstream
	LCWBaseURL string `yaml:"lcw_base_url"`
	LCWAPIKey  string `yaml:"lcw_api_key"`

	// Cache
	CacheTTL     time.Duration `yaml:"-"`
	CacheTTLSecs int           `yaml:"cache_ttl_seconds"`
	CacheBackend Backend       `yaml:"cache_backend"`

	// Redis (only read when CacheBackend is redis)
	RedisAddr     string `yaml:"redis_addr"`
	RedisPassword string `yaml:"redis_password"`
	RedisDB       int    `yaml:"redis_db"`

	// HTTP
	HTTPPort string `yaml:"http_port"`

	// Service identity
	APITitle   string `yaml:"api_title"`
	APIVersion string `yaml:"api_version"`

	// Logging
	LogLevel  string `yaml:"log_level"`
	LogPretty bool   `yaml:"log_pretty"`
}

func defaults() Config {
	return Config{
		LCWBaseURL:   "https://api.livecoinwatch.com",
		CacheTTLSecs: 300,
		CacheBackend: BackendMemory,
		RedisAddr:    "localhost:6379",
		HTTPPort:     "8080",
		APITitle:     "Cryptocurrency API",
		APIVersion:   "1.0.0",
		LogLevel:     "info",
	}
}

// Load builds the configuration: defaults, then an optional YAML file
// named by CONFIG_FILE, then a best-effort .env file, then environment
// variables. A missing upstream API key is a startup error.
func Load() (Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg.LCWBaseURL = getEnv("LCW_BASE_URL", cfg.LCWBaseURL)
	cfg.LCWAPIKey = getEnv("LCW_API_KEY", cfg.LCWAPIKey)
	cfg.CacheTTLSecs = getEnvInt("CACHE_TTL_SECONDS", cfg.CacheTTLSecs)
	cfg.CacheBackend = Backend(getEnv("CACHE_BACKEND", string(cfg.CacheBackend)))
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", cfg.RedisPassword)
	cfg.RedisDB = getEnvInt("REDIS_DB", cfg.RedisDB)
	cfg.HTTPPort = getEnv("PORT", cfg.HTTPPort)
	cfg.APITitle = getEnv("API_TITLE", cfg.APITitle)
	cfg.APIVersion = getEnv("API_VERSION", cfg.APIVersion)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	cfg.LogPretty = getEnvBool("LOG_PRETTY", cfg.LogPretty)

	if cfg.LCWAPIKey == "" {
		return Config{}, fmt.Errorf("LCW_API_KEY is required")
	}
	if cfg.CacheTTLSecs <= 0 {
		return Config{}, fmt.Errorf("CACHE_TTL_SECONDS must be positive (got %d)", cfg.CacheTTLSecs)
	}
	switch cfg.CacheBackend {
	case BackendMemory, BackendRedis:
	default:
		return Config{}, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}

	cfg.CacheTTL = time.Duration(cfg.CacheTTLSecs) * time.Second

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return b
}
