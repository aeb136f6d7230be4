package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"business-simulator/config"
	httpLayer "business-simulator/http"
	"business-simulator/logger"
	"business-simulator/repository"
	"business-simulator/service"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	cache := newCache(cfg, log)

	narrative := service.NewNarrativeService(cfg.OpenAIAPIKey, cfg.OpenAIModel, log)
	if !narrative.Enabled() {
		log.Info("OPENAI_API_KEY not set, verdicts use the built-in text")
	}

	simulator := service.NewSimulatorService(cache, narrative,
		service.WithCacheTTL(cfg.CacheTTL),
		service.WithProjectionMonths(cfg.ProjectionMonths),
		service.WithLogger(log),
	)
	handler := httpLayer.NewSimulationHandler(simulator, log)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpLayer.NewRouter(handler, rateLimiter, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("API listening", zap.String("addr", cfg.HTTPAddr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Error("error starting server", zap.Error(err))
		return
	case <-quit:
		log.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("error during server shutdown", zap.Error(err))
	}

	log.Info("server exited")
}

// newCache prefers Redis when configured and reachable, else memory.
func newCache(cfg *config.Config, log *zap.Logger) repository.CacheRepository {
	if cfg.RedisAddr == "" {
		return repository.NewMemoryCache()
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		log.Warn("redis unavailable, falling back to in-memory cache",
			zap.String("addr", cfg.RedisAddr),
			zap.Error(err),
		)
		_ = redisCache.Close()
		return repository.NewMemoryCache()
	}

	log.Info("using redis cache", zap.String("addr", cfg.RedisAddr))
	return redisCache
}
