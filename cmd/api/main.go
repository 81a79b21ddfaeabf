package main

// @title Address Navigator API
// @version 1.0.0
// @description Поиск адресов по почтовому индексу через Yahoo API.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/address-navigator/docs/swagger"
	"github.com/address-navigator/internal/config"
	httpDelivery "github.com/address-navigator/internal/delivery/http"
	"github.com/address-navigator/internal/delivery/http/handler"
	"github.com/address-navigator/internal/domain/repository"
	"github.com/address-navigator/internal/infrastructure/yahoo"
	"github.com/address-navigator/internal/pkg/logger"
	redisRepo "github.com/address-navigator/internal/repository/redis"
	"github.com/address-navigator/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Address Navigator")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("zipcode_search_url", cfg.YahooAPI.GetZipcodeSearchURL()),
		zap.Duration("request_timeout", cfg.YahooAPI.GetRequestTimeout()),
		zap.Bool("events_enabled", cfg.Events.Enabled),
	)

	// 3. Connect to Redis (only for lookup events)
	var (
		streamRepo   repository.StreamRepository
		healthChecks = map[string]handler.HealthChecker{}
		redisClient  *redisRepo.Client
	)
	if cfg.Events.Enabled {
		redisClient, err = redisRepo.NewClient(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		streamRepo = redisRepo.NewStreamRepository(redisClient.Redis(), log)
		healthChecks["redis"] = redisClient
		log.Info("Lookup events enabled",
			zap.String("stream", cfg.Events.Stream),
			zap.String("redis_addr", cfg.GetRedisAddr()))
	}

	// 4. External API client
	lookupRepo := yahoo.NewYahooClient(&cfg.YahooAPI, log)

	// 5. Use cases
	addressUC := usecase.NewAddressUseCase(lookupRepo, streamRepo, cfg.Events.Stream, log)

	// 6. HTTP handlers
	addressPageHandler, err := handler.NewAddressPageHandler(addressUC, log)
	if err != nil {
		log.Fatal("Failed to load page templates", zap.Error(err))
	}
	addressHandler := handler.NewAddressHandler(addressUC, log)
	healthHandler := handler.NewHealthHandler(healthChecks, log)

	// 7. HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		addressPageHandler,
		addressHandler,
		healthHandler,
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis", zap.Error(err))
		}
	}

	log.Info("Server stopped successfully")
}
