package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/ammarcodes29/cryptoAPI/internal/api"
	"github.com/ammarcodes29/cryptoAPI/internal/config"
	"github.com/ammarcodes29/cryptoAPI/pkg/cache"
	"github.com/ammarcodes29/cryptoAPI/pkg/lcw"
	"github.com/ammarcodes29/cryptoAPI/pkg/logging"
)

func main() {
	logger := logging.Setup(logging.DefaultConfig())

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Configuration error")
	}

	logger = logging.Setup(logging.Config{
		Level:  logging.LogLevel(cfg.LogLevel),
		Pretty: cfg.LogPretty,
		Output: os.Stderr,
	})

	store, err := buildStore(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Cache backend unavailable")
	}

	client := lcw.NewClient(cfg.LCWBaseURL, cfg.LCWAPIKey)
	svc := lcw.NewService(client, store)

	srv := api.NewServer(":"+cfg.HTTPPort, svc, cfg.APITitle, cfg.APIVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Str("title", cfg.APITitle).
		Str("version", cfg.APIVersion).
		Str("cache_backend", string(cfg.CacheBackend)).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("Starting crypto API")

	if err := srv.Start(ctx); err != nil {
		logger.Fatal().Err(err).Msg("Server failed")
	}

	logger.Info().Msg("Server stopped")
}

// buildStore selects the cache backend from config. Redis is pinged at
// startup so a misconfigured backend fails fast.
func buildStore(cfg config.Config) (cache.Store, error) {
	switch cfg.CacheBackend {
	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, err
		}
		return cache.NewRedis(client, cfg.CacheTTL), nil
	default:
		return cache.NewMemory(cfg.CacheTTL), nil
	}
}
