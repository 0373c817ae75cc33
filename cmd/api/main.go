package main

// @title Destination Service API
// @version 1.0.0
// @description CRUD-бэкенд для travel-planning клиента. Дестинации собираются
// @description из четырёх внешних сервисов (геокодирование, погода, точки
// @description интереса, рестораны) при создании и сохраняются в PostgreSQL.
// @description Отдельный ресурс custom-locations хранит пользовательские метки.

// @contact.name API Support

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

	_ "github.com/destination-service/docs/swagger"
	"github.com/destination-service/internal/config"
	httpDelivery "github.com/destination-service/internal/delivery/http"
	"github.com/destination-service/internal/delivery/http/handler"
	"github.com/destination-service/internal/infrastructure/foursquare"
	"github.com/destination-service/internal/infrastructure/openmeteo"
	"github.com/destination-service/internal/infrastructure/positionstack"
	"github.com/destination-service/internal/infrastructure/wikipedia"
	"github.com/destination-service/internal/pkg/logger"
	"github.com/destination-service/internal/repository/cache"
	"github.com/destination-service/internal/repository/postgres"
	"github.com/destination-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Destination Service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Bootstrap schema (idempotent)
	bootstrapCtx, cancelBootstrap := context.WithTimeout(context.Background(), 10*time.Second)
	if err := db.Bootstrap(bootstrapCtx); err != nil {
		cancelBootstrap()
		log.Fatal("Failed to bootstrap database schema", zap.Error(err))
	}
	cancelBootstrap()

	// 5. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 6. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 7. Initialize Repositories
	destRepo := postgres.NewDestinationRepository(db)
	locRepo := postgres.NewCustomLocationRepository(db)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 8. Initialize upstream provider clients
	geocoder := positionstack.NewClient(&cfg.Providers, log)
	weatherProvider := openmeteo.NewClient(&cfg.Providers, log)
	placeProvider := wikipedia.NewClient(&cfg.Providers, log)
	restaurantProvider := foursquare.NewClient(&cfg.Providers, log)

	log.Info("Provider clients initialized")

	// 9. Initialize Use Cases
	destinationUC := usecase.NewDestinationUseCase(
		destRepo,
		cacheRepo,
		geocoder,
		weatherProvider,
		placeProvider,
		restaurantProvider,
		log,
		cfg.Cache.DestinationTTL,
	)

	customLocationUC := usecase.NewCustomLocationUseCase(locRepo, log)

	log.Info("Use cases initialized")

	// 10. Initialize HTTP Handlers
	destinationHandler := handler.NewDestinationHandler(destinationUC, log)
	customLocationHandler := handler.NewCustomLocationHandler(customLocationUC, log)

	// 11. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		destinationHandler,
		customLocationHandler,
	)

	log.Info("HTTP server initialized")

	// 12. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 13. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
