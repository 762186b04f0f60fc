package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/condomanager/condomanager-api/internal/ai"
	"github.com/condomanager/condomanager-api/internal/config"
	"github.com/condomanager/condomanager-api/internal/database"
	"github.com/condomanager/condomanager-api/internal/extract"
	"github.com/condomanager/condomanager-api/internal/handlers"
	"github.com/condomanager/condomanager-api/internal/logging"
	"github.com/condomanager/condomanager-api/internal/middleware"
	"github.com/condomanager/condomanager-api/internal/routes"
	"github.com/condomanager/condomanager-api/internal/services"
	"github.com/condomanager/condomanager-api/internal/storage"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(db)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(db, 30, cleanupDone)

	// External contracts
	uploader := storage.NewBucketClient(cfg.StorageURL, cfg.StorageKey, cfg.StorageBucket)
	aiClient := ai.NewClient(cfg)
	googleVerifier := services.NewGoogleTokenInfoClient(cfg.GoogleClientID)

	// Services
	authService := services.NewAuthService(db, cfg, googleVerifier)
	userService := services.NewUserService(db)
	condominiumService := services.NewCondominiumService(db)
	providerService := services.NewProviderService(db)
	inspectionService := services.NewInspectionService(db)
	workOrderService := services.NewWorkOrderService(db)
	alertService := services.NewAlertService(db)
	financialService := services.NewFinancialService(db)
	documentService := services.NewDocumentService(db, uploader, extract.PlainText{}, aiClient)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	condominiumHandler := handlers.NewCondominiumHandler(condominiumService)
	providerHandler := handlers.NewProviderHandler(providerService)
	inspectionHandler := handlers.NewInspectionHandler(inspectionService, uploader)
	workOrderHandler := handlers.NewWorkOrderHandler(workOrderService)
	alertHandler := handlers.NewAlertHandler(alertService)
	financialHandler := handlers.NewFinancialHandler(financialService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	fileHandler := handlers.NewFileHandler(uploader)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    16 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})

	// Routes
	routes.Setup(app, cfg, db,
		authHandler, healthHandler, userHandler, condominiumHandler,
		providerHandler, inspectionHandler, workOrderHandler, alertHandler,
		financialHandler, documentHandler, fileHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
