package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	customersapp "github.com/Anugrah-Lens/backend-anugrah-lens/internal/application/customers"
	glassesapp "github.com/Anugrah-Lens/backend-anugrah-lens/internal/application/glasses"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/infrastructure/config"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/infrastructure/logger"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/infrastructure/persistence"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/interfaces/http/handler"
	"github.com/Anugrah-Lens/backend-anugrah-lens/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Anugrah Lens backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Create GORM logger backed by zap
	gormLogLevel := logger.MapGormLogLevel(cfg.Log.Level)
	gormLog := logger.NewGormLogger(log, gormLogLevel)

	// Initialize database connection with custom logger
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Initialize repositories
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	glassRepo := persistence.NewGormGlassRepository(db.DB)

	// Initialize application services
	customerService := customersapp.NewCustomerService(customerRepo)
	orderService := glassesapp.NewOrderService(customerRepo, glassRepo)
	installmentService := glassesapp.NewInstallmentService(glassRepo)

	// Initialize HTTP handlers
	systemHandler := handler.NewSystemHandler()
	customerHandler := handler.NewCustomerHandler(customerService)
	glassHandler := handler.NewGlassHandler(orderService)
	installmentHandler := handler.NewInstallmentHandler(installmentService)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup validation
	handler.RegisterValidators()

	engine := router.New(router.Config{
		Logger:           log,
		System:           systemHandler,
		Customers:        customerHandler,
		Glasses:          glassHandler,
		Installments:     installmentHandler,
		CORSAllowOrigins: cfg.HTTP.CORSAllowOrigins,
	})

	// Configure trusted proxies
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
