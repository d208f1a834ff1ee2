package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/jcalbornoz/adressbackendnet/docs" // Swagger docs
	"github.com/jcalbornoz/adressbackendnet/internal/config"
	"github.com/jcalbornoz/adressbackendnet/internal/database"
	"github.com/jcalbornoz/adressbackendnet/internal/handlers"
	"github.com/jcalbornoz/adressbackendnet/internal/middleware"
	"github.com/jcalbornoz/adressbackendnet/internal/repository"
	"github.com/jcalbornoz/adressbackendnet/internal/services"
	"github.com/jcalbornoz/adressbackendnet/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title ADRES Acquisitions API
// @version 1.0
// @description REST API for the ADRES procurement record-keeper

// @host localhost:8080
// @BasePath /api
// @schemes http
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	// Apply schema and seed the reference catalogs
	if err := database.Migrate(db); err != nil {
		logger.Error("Failed to migrate database", "error", err)
		os.Exit(1)
	}
	logger.Info("Database schema up to date")

	// Initialize repositories
	repos := repository.NewRepositories(db)

	// Initialize services
	svcs := services.NewServices(repos)

	// Initialize handlers
	h := handlers.NewHandlers(svcs)

	// Setup router
	router := setupRouter(h, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Flush Sentry events before exit
	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		api.GET("/health", h.Health.Index)

		acquisitions := api.Group("/acquisitions")
		{
			acquisitions.GET("", h.Acquisition.Index)
			acquisitions.POST("", h.Acquisition.Create)
			acquisitions.GET("/export", h.Acquisition.Export)
			acquisitions.GET("/:id", h.Acquisition.Show)
			acquisitions.PUT("/:id", h.Acquisition.Update)
			acquisitions.PATCH("/:id/status", h.Acquisition.UpdateStatus)
			acquisitions.GET("/:id/history", h.Acquisition.History)
		}

		api.GET("/catalogs", h.Catalog.Index)
		api.GET("/catalogs/xml", h.Catalog.XML)
	}

	return router
}
