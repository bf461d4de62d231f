package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leadbridge/dialer-sync-api/docs"
	"github.com/leadbridge/dialer-sync-api/internal/config"
	"github.com/leadbridge/dialer-sync-api/internal/database"
	"github.com/leadbridge/dialer-sync-api/internal/highlevel"
	"github.com/leadbridge/dialer-sync-api/internal/http/handler"
	"github.com/leadbridge/dialer-sync-api/internal/http/middleware"
	"github.com/leadbridge/dialer-sync-api/internal/http/router"
	"github.com/leadbridge/dialer-sync-api/internal/jobs"
	"github.com/leadbridge/dialer-sync-api/internal/logger"
	"github.com/leadbridge/dialer-sync-api/internal/repository"
	"github.com/leadbridge/dialer-sync-api/internal/service"
	"go.uber.org/zap"
)

// @title LeadBridge Dialer Sync API
// @version 1.0
// @description Webhook adapter that syncs outbound dialer call events into HighLevel CRM accounts

// @contact.name API Support
// @contact.email support@leadbridge.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description API key for admin operations

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Configure Swagger host based on environment
	switch basicCfg.App.Environment {
	case "staging":
		docs.SwaggerInfo.Host = "dialer-sync-staging.leadbridge.io"
	case "production":
		docs.SwaggerInfo.Host = "dialer-sync.leadbridge.io"
	default:
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	// Connect to database
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize repositories
	tenantRepo := repository.NewTenantConfigRepository(db)
	eventRepo := repository.NewSyncEventRepository(db)

	// Initialize services
	newClient := func(locationID, apiKey string) service.CRMClient {
		return highlevel.NewClient(&cfg.CRM, locationID, apiKey, log)
	}
	syncService := service.NewSyncService(tenantRepo, eventRepo, newClient, &cfg.Sync, log)
	tenantService := service.NewTenantConfigService(tenantRepo, log)

	// Initialize middleware
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	// Initialize handlers
	webhookHandler := handler.NewWebhookHandler(syncService, log)
	tenantHandler := handler.NewTenantConfigHandler(tenantService, log)
	syncEventHandler := handler.NewSyncEventHandler(syncService, log)

	// Setup router
	rt := router.NewRouter(
		cfg,
		log,
		db,
		rateLimiter,
		webhookHandler,
		tenantHandler,
		syncEventHandler,
	)

	// Start scheduler with the event cleanup job
	scheduler := jobs.NewScheduler(log)
	cleanupJob := jobs.NewEventCleanupJob(eventRepo, log, cfg.Sync.EventRetentionDays, 5*time.Minute)
	if err := scheduler.AddJob(jobs.EventCleanupJobName, cfg.Sync.EventCleanupCron, cleanupJob.Run); err != nil {
		log.Error("Failed to register event cleanup job", zap.Error(err))
	} else {
		scheduler.Start()
		log.Info("Scheduler started with event cleanup job",
			zap.String("cron_expr", cfg.Sync.EventCleanupCron),
			zap.Int("retention_days", cfg.Sync.EventRetentionDays),
		)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	// Start server in goroutine
	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	// Wait for interrupt signal
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		stopCtx := scheduler.Stop()
		<-stopCtx.Done()
		log.Info("Scheduler stopped")

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}
