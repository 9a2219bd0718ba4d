package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/evoteng/voter-card-api/internal/application"
	"github.com/evoteng/voter-card-api/internal/router"
	"github.com/evoteng/voter-card-api/internal/storage"
	"github.com/evoteng/voter-card-api/internal/system/config"
	"github.com/evoteng/voter-card-api/internal/system/database"
	"github.com/evoteng/voter-card-api/internal/system/database/provider"
	"github.com/evoteng/voter-card-api/internal/system/log"
	"github.com/evoteng/voter-card-api/internal/system/middleware"
)

// Version information (set by build script)
var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	logger.WithFields(logrus.Fields{
		"version":    version,
		"build_date": buildDate,
	}).Info("Starting Voter Card API Server...")

	// Load configuration
	// Priority: CONFIG_PATH env var > repository/conf/deployment.yaml > cmd/server/repository/conf/deployment.yaml
	configPath := os.Getenv("CONFIG_PATH")

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Set log level from config
	log.Init(cfg.Logging.Level, cfg.Logging.Format)
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	}

	logger.WithFields(logrus.Fields{
		"config_path": configPath,
		"log_level":   logger.GetLevel().String(),
	}).Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.Initialize(&cfg.Database.Registry)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}
	defer db.Close()

	// Verify database connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.HealthCheck(ctx); err != nil {
		logger.WithError(err).Fatal("Database health check failed")
	}

	logger.Info("Database connection established successfully")

	dbClient := provider.NewDBClient(db, cfg.Database.Registry.Type)

	// Initialize artifact storage
	artifactStore, err := storage.New(&cfg.Storage)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize artifact storage")
	}
	logger.WithField("type", cfg.Storage.Type).Info("Artifact storage initialized")

	// Create http.ServeMux and register modules
	mux := http.NewServeMux()
	applicationService, cardService := registerServices(mux, dbClient, artifactStore, cfg)

	// Setup gin router for application-record endpoints
	applicationHandler := application.NewApplicationHandler(applicationService, cardService)
	ginRouter := router.SetupRouter(applicationHandler, cfg)

	// Mount gin router under /api/v1; module routes registered with more
	// specific patterns on the mux take precedence.
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", ginRouter))

	// Wrap with correlation ID middleware
	httpHandler := middleware.WrapWithCorrelationID(mux)

	// Configure HTTP server
	serverAddr := cfg.Server.GetServerAddress()
	server := &http.Server{
		Addr:           serverAddr,
		Handler:        httpHandler,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}
	if cfg.Server.ReadTimeout > 0 {
		server.ReadTimeout = cfg.Server.ReadTimeout
	}
	if cfg.Server.WriteTimeout > 0 {
		server.WriteTimeout = cfg.Server.WriteTimeout
	}
	if cfg.Server.IdleTimeout > 0 {
		server.IdleTimeout = cfg.Server.IdleTimeout
	}

	// Start server in a goroutine
	go func() {
		logger.WithFields(logrus.Fields{
			"hostname": cfg.Server.Hostname,
			"port":     cfg.Server.Port,
			"addr":     serverAddr,
		}).Info("Starting HTTP server...")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	logger.WithField("address", serverAddr).Info("Server is running")

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Fatal("Server forced to shutdown")
	}

	logger.Info("Server exited gracefully")
}
