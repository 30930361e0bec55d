// Package app wires configuration into the stores, caches and services shared
// by the server and scheduler binaries.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/segyhp/zakat-engine/internal/cache"
	"github.com/segyhp/zakat-engine/internal/config"
	"github.com/segyhp/zakat-engine/internal/events"
	"github.com/segyhp/zakat-engine/internal/repository"
	"github.com/segyhp/zakat-engine/internal/service"
)

type App struct {
	DB        *sqlx.DB
	Redis     *redis.Client
	Zakat     *service.ZakatService
	Nisab     *service.NisabService
	Reminders *service.ReminderService
	Analytics *service.AnalyticsService
}

// New opens the database, connects redis when enabled and builds the services.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.Open(ctx, cfg.Database.Driver, cfg.Database.URL, repository.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.GetConnMaxLifetime(),
	})
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	var redisClient *redis.Client
	nisabCache := cache.NewNoopNisabCache()
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		nisabCache = cache.NewRedisNisabCache(redisClient, cfg.GetNisabCacheTTL())
	}

	var sink events.Sink = events.NewLogSink(logger)
	if strings.EqualFold(cfg.Events.Sink, "redis") {
		sink = events.NewRedisStreamSink(redisClient, cfg.Events.Stream)
	}

	tx := repository.NewTransactor(db)
	calculationRepo := repository.NewCalculationRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	nisab := service.NewNisabService(repository.NewNisabRepository(db), nisabCache, sink, logger)
	reminders := service.NewReminderService(repository.NewReminderRepository(db), tx, logger)
	zakat := service.NewZakatService(calculationRepo, paymentRepo, tx, nisab, reminders, sink, logger, cfg.GetPaymentOverdueAfter())

	return &App{
		DB:        db,
		Redis:     redisClient,
		Zakat:     zakat,
		Nisab:     nisab,
		Reminders: reminders,
		Analytics: service.NewAnalyticsService(calculationRepo, paymentRepo),
	}, nil
}

func (a *App) Close() error {
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
	return a.DB.Close()
}
