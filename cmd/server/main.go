package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segyhp/zakat-engine/internal/app"
	"github.com/segyhp/zakat-engine/internal/config"
	"github.com/segyhp/zakat-engine/internal/handler"
	"github.com/segyhp/zakat-engine/internal/logging"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := logging.New(cfg.Logging)
	slog.SetDefault(logger)

	a, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", slog.Any("error", err))
		os.Exit(1)
	}
	defer a.Close()

	// A nil *redis.Client must not reach the handler as a non-nil interface
	var redisPinger handler.RedisPinger
	if a.Redis != nil {
		redisPinger = a.Redis
	}

	router := handler.NewRouter(handler.Handlers{
		Health:    handler.NewHealthHandler(a.DB, redisPinger, cfg.GetHealthTimeout()),
		Zakat:     handler.NewZakatHandler(a.Zakat, a.Analytics),
		Nisab:     handler.NewNisabHandler(a.Nisab),
		Reminders: handler.NewReminderHandler(a.Reminders),
	}, logger)

	// Start server
	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.GetReadTimeout(),
		WriteTimeout: cfg.GetWriteTimeout(),
	}

	// Start server in a goroutine
	go func() {
		logger.Info("server starting", slog.String("addr", server.Addr), slog.String("env", cfg.Server.Env))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed to start", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", slog.Any("error", err))
		return
	}

	logger.Info("server exited")
}
