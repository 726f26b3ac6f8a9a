package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/heygogu/car-rental/internal/authutils"
	"github.com/heygogu/car-rental/internal/config"
	"github.com/heygogu/car-rental/internal/database"
	"github.com/heygogu/car-rental/internal/handler"
	"github.com/heygogu/car-rental/internal/interfaces"
	"github.com/heygogu/car-rental/internal/logger"
	"github.com/heygogu/car-rental/internal/messaging"
	"github.com/heygogu/car-rental/internal/service"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Setup ---
	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Encoding:    cfg.LogEncoding,
		OutputPaths: cfg.LogOutputs,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	zap.ReplaceGlobals(log)
	zap.L().Info("Configuration loaded", zap.String("env", cfg.Env), zap.String("logLevel", cfg.LogLevel))

	// --- External Connections ---
	if err := database.ApplyMigrations(cfg.PostgresDSN(), log.Named("Migrations")); err != nil {
		zap.L().Fatal("Failed to apply database migrations", zap.Error(err))
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancelStartup()

	pgPool, err := database.Connect(startupCtx, database.PoolConfig{
		DSN:         cfg.PostgresDSN(),
		MaxConns:    cfg.DBMaxConns,
		IdleTimeout: cfg.DBIdleTimeout,
		MaxRetries:  50,
		RetryDelay:  3 * time.Second,
	}, log)
	if err != nil {
		zap.L().Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer pgPool.Close()

	var publisher interfaces.BookingEventPublisher
	if cfg.RabbitMQURL != "" {
		mqConn, err := messaging.Connect(startupCtx, cfg.RabbitMQURL, 20, 3*time.Second, log)
		if err != nil {
			zap.L().Fatal("Failed to connect to RabbitMQ", zap.Error(err))
		}
		defer mqConn.Close()

		bookingPublisher, err := messaging.NewRabbitMQBookingPublisher(mqConn, cfg.BookingEventsExchange, log)
		if err != nil {
			zap.L().Fatal("Failed to create booking event publisher", zap.Error(err))
		}
		defer bookingPublisher.Close()
		publisher = bookingPublisher
	} else {
		zap.L().Info("RABBITMQ_URL is not set, booking events are disabled")
	}

	// --- Dependency Injection ---
	tokenManager, err := authutils.NewTokenManager(cfg.JWTSecret, cfg.JWTTokenTTL, log)
	if err != nil {
		zap.L().Fatal("Failed to create token manager", zap.Error(err))
	}

	userRepo := database.NewPgUserRepository(pgPool, log)
	bookingRepo := database.NewPgBookingRepository(pgPool, log)
	authSvc := service.NewAuthService(userRepo, service.NewBcryptHasher(cfg.BcryptCost), tokenManager, cfg.OperationTimeout, log)
	bookingSvc := service.NewBookingService(bookingRepo, publisher, cfg.OperationTimeout, log)
	h := handler.NewHandler(authSvc, bookingSvc, tokenManager, log)

	// --- HTTP Server Setup (Gin) ---
	gin.SetMode(gin.ReleaseMode)
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	}
	router := newRouter(cfg, log, h)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  cfg.ServerIdleTimeout,
	}

	go func() {
		zap.L().Info("Starting HTTP server", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("HTTP Server listen error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exiting")
}
