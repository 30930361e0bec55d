package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/zakat-engine/internal/domain"
)

func TestPaymentRepository_CreateAndList(t *testing.T) {
	db := setupTestDB(t)
	calcRepo := NewCalculationRepository(db)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	calc := newCalculation("user-1", 1000, now)
	require.NoError(t, calcRepo.Create(ctx, calc))

	payments := []*domain.ZakatPayment{
		newPayment(calc, 100, domain.VerificationStatusVerified, now.AddDate(0, 0, -7)),
		newPayment(calc, 200, domain.VerificationStatusPending, now.AddDate(0, 0, -1)),
		newPayment(calc, 300, domain.VerificationStatusRejected, now),
	}
	payments[1].ReferenceNumber = strPtr("TRX-9")
	for _, p := range payments {
		require.NoError(t, repo.Create(ctx, p))
	}

	result, err := repo.ListByCalculation(ctx, calc.ID)
	require.NoError(t, err)
	require.Len(t, result, 3)
	// Should be ordered by payment_date DESC
	assert.True(t, result[0].Amount.Equal(decimal.NewFromInt(300)))
	assert.True(t, result[2].Amount.Equal(decimal.NewFromInt(100)))

	got, err := repo.GetByID(ctx, payments[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got.ReferenceNumber)
	assert.Equal(t, "TRX-9", *got.ReferenceNumber)
	assert.Equal(t, domain.VerificationStatusPending, got.VerificationStatus)

	byUser, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, byUser, 3)

	latest, err := repo.GetLatestPayment(ctx, calc.ID)
	require.NoError(t, err)
	assert.Equal(t, payments[2].ID, latest.ID)
}

func TestPaymentRepository_TotalsAndCounts(t *testing.T) {
	db := setupTestDB(t)
	calcRepo := NewCalculationRepository(db)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	calc := newCalculation("user-1", 1000, now)
	require.NoError(t, calcRepo.Create(ctx, calc))

	total, err := repo.GetTotalVerified(ctx, calc.ID)
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	count, err := repo.CountByCalculation(ctx, calc.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	verified := newPayment(calc, 400, domain.VerificationStatusVerified, now)
	verified.Amount = decimal.RequireFromString("400.10")
	require.NoError(t, repo.Create(ctx, verified))
	require.NoError(t, repo.Create(ctx, newPayment(calc, 600, domain.VerificationStatusPending, now)))

	total, err = repo.GetTotalVerified(ctx, calc.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("400.1")), "got %s", total)

	count, err = repo.CountByCalculation(ctx, calc.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPaymentRepository_UpdateVerificationStatus(t *testing.T) {
	db := setupTestDB(t)
	calcRepo := NewCalculationRepository(db)
	repo := NewPaymentRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	calc := newCalculation("user-1", 1000, now)
	require.NoError(t, calcRepo.Create(ctx, calc))
	payment := newPayment(calc, 1000, domain.VerificationStatusPending, now)
	require.NoError(t, repo.Create(ctx, payment))

	require.NoError(t, repo.UpdateVerificationStatus(ctx, payment.ID, domain.VerificationStatusVerified, now.Add(time.Minute)))

	got, err := repo.GetByID(ctx, payment.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationStatusVerified, got.VerificationStatus)

	total, err := repo.GetTotalVerified(ctx, calc.ID)
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.NewFromInt(1000)))
}

func TestPaymentRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPaymentRepository(db)

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.True(t, errors.Is(err, sql.ErrNoRows))
}
