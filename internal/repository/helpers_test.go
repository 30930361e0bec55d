package repository

import (
	"context"
	"io/fs"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/zakat-engine/internal/domain"
	"github.com/segyhp/zakat-engine/internal/repository/migrations"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := Open(context.Background(), DriverSQLite, ":memory:", Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func newCalculation(userID string, zakatDue int64, calculatedAt time.Time) *domain.ZakatCalculation {
	return &domain.ZakatCalculation{
		ID:              uuid.New(),
		UserID:          userID,
		CalculationDate: calculatedAt,
		HijriYear:       "2603",
		TotalWealth:     decimal.NewFromInt(zakatDue * 40),
		TotalDeductions: decimal.Zero,
		NisabThreshold:  decimal.NewFromInt(476),
		ZakatDue:        decimal.NewFromInt(zakatDue),
		Currency:        "USD",
		WealthBreakdown: domain.WealthBreakdown{
			Cash: decimal.NewFromInt(zakatDue * 40),
		},
		DeductionsBreakdown: domain.DeductionsBreakdown{},
		PaymentStatus:       domain.PaymentStatusCalculated,
		AmountPaid:          decimal.Zero,
		CreatedAt:           calculatedAt,
		UpdatedAt:           calculatedAt,
	}
}

func newPayment(calc *domain.ZakatCalculation, amount int64, status string, paidAt time.Time) *domain.ZakatPayment {
	return &domain.ZakatPayment{
		ID:                 uuid.New(),
		CalculationID:      calc.ID,
		UserID:             calc.UserID,
		Amount:             decimal.NewFromInt(amount),
		Currency:           calc.Currency,
		PaymentMethod:      domain.PaymentMethodBankTransfer,
		RecipientType:      domain.RecipientMosque,
		RecipientName:      "Central Mosque",
		PaymentDate:        paidAt,
		VerificationStatus: status,
		CreatedAt:          paidAt,
		UpdatedAt:          paidAt,
	}
}

func strPtr(s string) *string {
	return &s
}

func migrationsFS() fs.FS {
	return migrations.FS
}
