package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/zakat-engine/internal/config"
	"github.com/segyhp/zakat-engine/internal/domain"
	"github.com/segyhp/zakat-engine/internal/logging"
)

func sqliteConfig() *config.Config {
	return &config.Config{
		Database: config.DatabaseConfig{Driver: "sqlite", URL: ":memory:", ConnMaxLifetime: "5m"},
		Redis:    config.RedisConfig{Enabled: false, NisabTTL: "1h"},
		Events:   config.EventsConfig{Sink: "log"},
		Business: config.BusinessConfig{PaymentOverdueAfter: "720h"},
	}
}

func TestNew_SQLiteWithoutRedis(t *testing.T) {
	ctx := context.Background()

	a, err := New(ctx, sqliteConfig(), logging.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	assert.Nil(t, a.Redis)

	rates, err := a.Nisab.CurrentRates(ctx, "USD")
	require.NoError(t, err)
	assert.Nil(t, rates)

	result, err := a.Zakat.Calculate(ctx, domain.WealthSnapshot{Currency: "USD"})
	require.NoError(t, err)
	assert.True(t, result.NisabThreshold.IsZero())
}

func TestNew_UnsupportedDriver(t *testing.T) {
	cfg := sqliteConfig()
	cfg.Database.Driver = "mysql"

	a, err := New(context.Background(), cfg, logging.Discard())

	assert.Error(t, err)
	assert.Nil(t, a)
}
