package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grub-pool/internal/config"
	"grub-pool/internal/database"
	"grub-pool/internal/handler"
	"grub-pool/internal/repository"
	"grub-pool/internal/router"
	"grub-pool/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Str("backend", cfg.Storage.Backend).Msg("starting grub-pool API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Select the storage backing at startup. Both backings satisfy the same
	// store contract.
	var store repository.Store
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()
		store = repository.NewPostgresStore(pool, logger)
	default:
		store = repository.NewMemoryStore(logger)
	}

	// Initialize services
	menuService := service.NewMenuService(store, logger)
	sessionService := service.NewSessionService(store, cfg.Server.PublicBaseURL, logger)
	orderService := service.NewOrderService(store, logger)
	statsService := service.NewStatsService(store, logger)

	// Initialize HTTP handlers
	menuHandler := handler.NewMenuHandler(menuService, logger)
	sessionHandler := handler.NewSessionHandler(sessionService, statsService, logger)
	orderHandler := handler.NewOrderHandler(orderService, statsService, logger)

	// Initialize router
	mux := router.New(menuHandler, sessionHandler, orderHandler, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
