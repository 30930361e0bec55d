package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"

	"github.com/segyhp/zakat-engine/internal/app"
	"github.com/segyhp/zakat-engine/internal/config"
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
	logger.Info("starting zakat scheduler")

	a, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to initialize", slog.Any("error", err))
		os.Exit(1)
	}
	defer a.Close()

	// Initialize cron scheduler
	c := cron.New(
		cron.WithSeconds(),
		cron.WithLocation(cfg.GetSchedulerLocation()),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	// Schedule tasks
	if err := setupCronJobs(c, cfg, a, logger); err != nil {
		logger.Error("failed to schedule jobs", slog.Any("error", err))
		os.Exit(1)
	}

	// Start the scheduler
	c.Start()
	logger.Info("scheduler started")

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down scheduler")
	<-c.Stop().Done()
	logger.Info("scheduler stopped")
}

func setupCronJobs(c *cron.Cron, cfg *config.Config, a *app.App, logger *slog.Logger) error {
	// Move stale unpaid calculations to overdue
	if _, err := c.AddFunc(cfg.Scheduler.OverdueSpec, func() {
		moved, err := a.Zakat.MarkOverdue(context.Background())
		if err != nil {
			logger.Error("overdue sweep failed", slog.Any("error", err))
			return
		}
		logger.Info("overdue sweep finished", slog.Int("moved", moved))
	}); err != nil {
		return err
	}

	// Create next occurrences of recurring reminders that went out
	if _, err := c.AddFunc(cfg.Scheduler.ReminderSpec, func() {
		advanced, err := a.Reminders.AdvanceRecurring(context.Background())
		if err != nil {
			logger.Error("reminder advance failed", slog.Any("error", err))
			return
		}
		logger.Info("reminder advance finished", slog.Int("advanced", advanced))
	}); err != nil {
		return err
	}

	logger.Info("cron jobs scheduled",
		slog.String("overdue_spec", cfg.Scheduler.OverdueSpec),
		slog.String("reminder_spec", cfg.Scheduler.ReminderSpec),
	)
	return nil
}
