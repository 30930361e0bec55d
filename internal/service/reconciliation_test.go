package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/zakat-engine/internal/domain"
	"github.com/segyhp/zakat-engine/internal/logging"
	"github.com/segyhp/zakat-engine/internal/repository"
)

// newStoreBackedService wires the services to an in-memory sqlite store.
func newStoreBackedService(t *testing.T) (*ZakatService, repository.CalculationRepository) {
	t.Helper()

	db, err := repository.Open(context.Background(), repository.DriverSQLite, ":memory:", repository.Options{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := logging.Discard()
	tx := repository.NewTransactor(db)
	calculations := repository.NewCalculationRepository(db)
	payments := repository.NewPaymentRepository(db)

	nisab := NewNisabService(repository.NewNisabRepository(db), nil, nil, logger)
	nisab.now = clock
	reminders := NewReminderService(repository.NewReminderRepository(db), tx, logger)
	reminders.now = clock

	svc := NewZakatService(calculations, payments, tx, nisab, reminders, nil, logger, 720*time.Hour)
	svc.now = clock

	_, err = nisab.UpdateRates(context.Background(), domain.UpdateNisabRatesRequest{
		Currency:           "USD",
		GoldPricePerGram:   dec("60"),
		SilverPricePerGram: dec("0.8"),
	})
	require.NoError(t, err)

	return svc, calculations
}

func recordThousandDue(t *testing.T, svc *ZakatService) *domain.ZakatCalculation {
	t.Helper()

	calculation, err := svc.CalculateAndRecord(context.Background(), "user-1", domain.RecordCalculationRequest{
		WealthSnapshot: domain.WealthSnapshot{Cash: dec("40000"), Currency: "USD"},
	})
	require.NoError(t, err)
	require.True(t, calculation.ZakatDue.Equal(dec("1000")))

	return calculation
}

func TestReconciliation_VerifiedPaymentsReachingDueMarkPaid(t *testing.T) {
	ctx := context.Background()
	svc, calculations := newStoreBackedService(t)
	calculation := recordThousandDue(t, svc)

	first, err := svc.RecordPayment(ctx, calculation.ID, "user-1", cashPayment("400"))
	require.NoError(t, err)
	second, err := svc.RecordPayment(ctx, calculation.ID, "user-1", cashPayment("600"))
	require.NoError(t, err)

	stored, err := calculations.GetByID(ctx, calculation.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPartiallyPaid, stored.PaymentStatus)
	assert.True(t, stored.AmountPaid.IsZero())

	_, err = svc.VerifyPayment(ctx, first.ID, domain.VerifyPaymentRequest{Status: domain.VerificationStatusVerified})
	require.NoError(t, err)
	_, err = svc.VerifyPayment(ctx, second.ID, domain.VerifyPaymentRequest{Status: domain.VerificationStatusVerified})
	require.NoError(t, err)

	stored, err = calculations.GetByID(ctx, calculation.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPaid, stored.PaymentStatus)
	assert.True(t, stored.AmountPaid.Equal(dec("1000")))
}

func TestReconciliation_PartialVerifiedTotalStaysPartiallyPaid(t *testing.T) {
	ctx := context.Background()
	svc, calculations := newStoreBackedService(t)
	calculation := recordThousandDue(t, svc)

	payment, err := svc.RecordPayment(ctx, calculation.ID, "user-1", cashPayment("400"))
	require.NoError(t, err)
	_, err = svc.VerifyPayment(ctx, payment.ID, domain.VerifyPaymentRequest{Status: domain.VerificationStatusVerified})
	require.NoError(t, err)

	stored, err := calculations.GetByID(ctx, calculation.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStatusPartiallyPaid, stored.PaymentStatus)
	assert.True(t, stored.AmountPaid.Equal(dec("400")))
}

func TestReconciliation_RecordsPaymentDueReminder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newStoreBackedService(t)
	calculation := recordThousandDue(t, svc)

	reminders, err := svc.Reminders.(*ReminderService).ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, domain.ReminderTypePaymentDue, reminders[0].Type)
	assert.Equal(t, calculation.ID, reminders[0].CalculationID.UUID)
	assert.True(t, reminders[0].ScheduledDate.Equal(fixedNow.AddDate(0, 0, 7)))
}
