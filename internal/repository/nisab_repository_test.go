package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/zakat-engine/internal/domain"
)

func TestNisabRepository_GetLatestByCurrency(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNisabRepository(db)
	ctx := context.Background()

	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	older := domain.NewNisabRates("USD", decimal.NewFromInt(58), decimal.RequireFromString("0.7"), base)
	older.CreatedAt = base
	newer := domain.NewNisabRates("USD", decimal.NewFromInt(60), decimal.RequireFromString("0.8"), base.AddDate(0, 0, 1))
	newer.CreatedAt = base
	other := domain.NewNisabRates("EUR", decimal.NewFromInt(55), decimal.RequireFromString("0.75"), base.AddDate(0, 0, 5))
	other.CreatedAt = base

	// Insert newest first to prove ordering comes from rate_date.
	for _, r := range []*domain.NisabRates{newer, older, other} {
		require.NoError(t, repo.Create(ctx, r))
	}

	got, err := repo.GetLatestByCurrency(ctx, "USD")
	require.NoError(t, err)
	assert.Equal(t, newer.ID, got.ID)
	assert.True(t, got.GoldPricePerGram.Equal(decimal.NewFromInt(60)))
	assert.True(t, got.SilverPricePerGram.Equal(decimal.RequireFromString("0.8")))
	assert.True(t, got.GoldNisabGrams.Equal(decimal.NewFromInt(85)))
	assert.True(t, got.SilverNisabGrams.Equal(decimal.NewFromInt(595)))
	assert.Nil(t, got.Source)

	_, err = repo.GetLatestByCurrency(ctx, "GBP")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}
