package main

// @title Property Administration API
// @version 1.0.0
// @description Backend for the property management admin console. Keeps an in-memory
// @description snapshot of the property portfolio (properties, tenants, maintenance
// @description requests, payments, messages, appointments), projects map markers for
// @description the portfolio map, proxies authentication to the auth service and
// @description answers the scripted assistant chat.

// @contact.name API Support
// @contact.email support@property-admin.com

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

	_ "github.com/property-admin/docs"
	"github.com/property-admin/internal/config"
	httpDelivery "github.com/property-admin/internal/delivery/http"
	"github.com/property-admin/internal/delivery/http/handler"
	"github.com/property-admin/internal/domain"
	"github.com/property-admin/internal/infrastructure/authapi"
	"github.com/property-admin/internal/infrastructure/propdata"
	"github.com/property-admin/internal/pkg/logger"
	"github.com/property-admin/internal/repository/cache"
	redisRepo "github.com/property-admin/internal/repository/redis"
	"github.com/property-admin/internal/store"
	"github.com/property-admin/internal/usecase"
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

	log.Info("Starting Property Administration API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 4. Health check
	healthCtx, cancelHealth := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelHealth()

	if err := redisClient.Health(healthCtx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	// 5. Initialize repositories
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	dataRepo := propdata.NewClient(&cfg.PropertyData, log)
	authRepo := authapi.NewClient(&cfg.AuthService, log)

	log.Info("Repositories initialized")

	// 6. Initialize stores
	entityStore := store.New()
	sessionStore := store.NewSessionStore()

	// 7. Initialize use cases
	entityUC := usecase.NewEntityUseCase(
		dataRepo,
		cacheRepo,
		streamRepo,
		entityStore,
		cfg.Cache.SnapshotTTL,
		log,
	)

	sessionUC := usecase.NewSessionUseCase(
		authRepo,
		cacheRepo,
		sessionStore,
		cfg.Cache.SessionTTL,
		log,
	)

	markerUC := usecase.NewMarkerUseCase(entityStore, log, domain.Viewport{
		Center: domain.Point{
			Lat: cfg.Map.DefaultCenterLat,
			Lon: cfg.Map.DefaultCenterLon,
		},
		Zoom: cfg.Map.DefaultZoom,
	})

	chatUC := usecase.NewChatUseCase(cfg.Chat.TypingDelay, log)

	log.Info("Use cases initialized")

	// 8. Warm start from cached snapshots
	warmCtx, cancelWarm := context.WithTimeout(context.Background(), 10*time.Second)
	entityUC.WarmStart(warmCtx)
	cancelWarm()

	// 9. Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(sessionUC, log)
	propertyHandler := handler.NewPropertyHandler(entityUC, entityStore, log)
	tenantHandler := handler.NewTenantHandler(entityUC, entityStore, log)
	maintenanceHandler := handler.NewMaintenanceHandler(entityUC, entityStore, log)
	paymentHandler := handler.NewPaymentHandler(entityUC, entityStore, log)
	messageHandler := handler.NewMessageHandler(entityUC, entityStore, log)
	appointmentHandler := handler.NewAppointmentHandler(entityUC, entityStore, log)
	filterHandler := handler.NewFilterHandler(entityStore, log)
	mapHandler := handler.NewMapHandler(markerUC, log)
	chatHandler := handler.NewChatHandler(chatUC, log)

	log.Info("HTTP handlers initialized")

	// 10. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		authHandler,
		propertyHandler,
		tenantHandler,
		maintenanceHandler,
		paymentHandler,
		messageHandler,
		appointmentHandler,
		filterHandler,
		mapHandler,
		chatHandler,
	)

	// 11. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 12. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped")
}
