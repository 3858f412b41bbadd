package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Kilat-Pet-Delivery/service-walking/internal/application"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/config"
	walkingEvents "github.com/Kilat-Pet-Delivery/service-walking/internal/events"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/handler"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/metrics"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/platform/database"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/platform/health"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/platform/kafka"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/platform/logger"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/platform/middleware"
	"github.com/Kilat-Pet-Delivery/service-walking/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, cfg.LogLevel, "service-walking")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting service-walking",
		zap.String("port", cfg.Port),
		zap.String("env", cfg.AppEnv),
	)

	// Connect to database; the pool is shared by every request
	db, err := database.Connect(cfg.DatabaseURL, cfg.DBPool, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(repository.AllModels()...); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.Migrations, log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize Kafka producer
	kafkaProducer := kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
	defer func() { _ = kafkaProducer.Close() }()

	// Initialize repository, metrics and application service
	walkingRepo := repository.NewGormWalkingRepository(db)
	walkingMetrics := metrics.NewWalkingMetrics(prometheus.DefaultRegisterer)
	walkingService := application.NewWalkingService(walkingRepo, kafkaProducer, walkingMetrics, log)

	// Initialize and start identity event consumer in a goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	groupID := cfg.KafkaConfig.GroupPrefix + "walking-service"
	ownerConsumer := walkingEvents.NewOwnerEventConsumer(
		cfg.KafkaConfig.Brokers,
		groupID,
		walkingService,
		log,
	)
	defer func() { _ = ownerConsumer.Close() }()

	go func() {
		log.Info("starting identity event consumer")
		if err := ownerConsumer.Start(ctx); err != nil && err != context.Canceled {
			log.Error("identity event consumer error", zap.Error(err))
		}
	}()

	// Setup Gin router
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.CORSMiddleware())

	// Register health check and metrics routes
	healthHandler := health.NewHandler(db, "service-walking")
	healthHandler.RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Register API routes
	walkingHandler := handler.NewWalkingHandler(walkingService)
	walkingHandler.RegisterRoutes(&router.RouterGroup)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down service-walking...")

	// Cancel the consumer context
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("service-walking stopped")
}
