package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/matt94856/excel-financial-processor/config"
	"github.com/matt94856/excel-financial-processor/handler"
	"github.com/matt94856/excel-financial-processor/middleware"
	"github.com/matt94856/excel-financial-processor/pkg/logger"
	"github.com/matt94856/excel-financial-processor/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize logger
	logger.Init(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})

	slog.Info("configuration loaded successfully")

	// Initialize services
	storageSvc, err := service.NewStorageService(&cfg.Storage)
	if err != nil {
		slog.Error("failed to initialize storage service", "error", err)
		os.Exit(1)
	}

	// Ensure bucket exists
	if err := storageSvc.EnsureBucket(context.Background()); err != nil {
		slog.Error("failed to ensure storage bucket", "error", err)
		os.Exit(1)
	}

	// Initialize job store with config
	service.InitJobStore(&cfg.Store)

	workbookSvc := service.NewWorkbookService(storageSvc)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(cfg)
	workbookHandler := handler.NewWorkbookHandler(workbookSvc, &cfg.Upload)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New() // Use New() instead of Default() to avoid default middleware

	// Add custom middleware
	router.Use(middleware.RequestID())     // Request ID for tracing
	router.Use(middleware.Recovery())      // Panic recovery
	router.Use(middleware.RequestLogger()) // Access logging
	router.Use(corsMiddleware())           // CORS
	router.Use(middleware.RateLimit(100))  // Rate limiting: 100 requests per minute

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Public routes
	api := router.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)
	}

	// Protected routes
	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(&cfg.Auth))
	{
		protected.GET("/auth/me", authHandler.GetCurrentUser)
		protected.POST("/workbooks/upload", workbookHandler.Upload)
		protected.GET("/workbooks", workbookHandler.List)
		protected.GET("/workbooks/:id", workbookHandler.Get)
		protected.GET("/workbooks/:id/status", workbookHandler.GetStatus)
		protected.DELETE("/workbooks/:id", workbookHandler.Delete)
	}

	// Create server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server exited gracefully")
}

// corsMiddleware handles CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
