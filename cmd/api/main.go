package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"restaurant-api/internal/auth"
	"restaurant-api/internal/config"
	"restaurant-api/internal/database"
	"restaurant-api/internal/handler"
	"restaurant-api/internal/repository"
	"restaurant-api/internal/router"
	"restaurant-api/internal/seed"
	"restaurant-api/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting restaurant API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Apply schema
	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(pool, logger)
	foodRepo := repository.NewFoodRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	// Seed the menu catalogue when configured; failure to seed is logged
	// but never blocks startup.
	if cfg.Seed.S3Enabled {
		s3Loader, err := seed.NewS3Loader(ctx, cfg.Seed.S3Bucket, cfg.Seed.S3Region, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to initialise S3 seed loader, skipping seed")
		} else if err := seed.Apply(ctx, foodRepo, s3Loader, cfg.Seed.S3Key, logger); err != nil {
			logger.Warn().Err(err).Msg("failed to seed menu catalogue from S3")
		}
	} else if cfg.Seed.FilePath != "" {
		fileLoader := seed.NewFileLoader(logger)
		if err := seed.Apply(ctx, foodRepo, fileLoader, cfg.Seed.FilePath, logger); err != nil {
			logger.Warn().Err(err).Msg("failed to seed menu catalogue from file")
		}
	}

	// Initialize session token manager
	tokens := auth.NewTokenManager(cfg.Auth.TokenSecret, logger)

	// Initialize services
	userService := service.NewUserService(userRepo, logger)
	foodService := service.NewFoodService(foodRepo, logger)
	orderService := service.NewOrderService(orderRepo, logger)

	// Initialize HTTP handlers
	authHandler := handler.NewAuthHandler(tokens, logger)
	userHandler := handler.NewUserHandler(userService, logger)
	foodHandler := handler.NewFoodHandler(foodService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)

	// Initialize router
	mux := router.New(authHandler, foodHandler, orderHandler, userHandler, tokens, cfg.CORS.Origin, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
