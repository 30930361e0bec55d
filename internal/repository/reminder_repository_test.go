package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/zakat-engine/internal/domain"
)

func TestReminderRepository_Lifecycle(t *testing.T) {
	db := setupTestDB(t)
	calcRepo := NewCalculationRepository(db)
	repo := NewReminderRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	calc := newCalculation("user-1", 200, now)
	require.NoError(t, calcRepo.Create(ctx, calc))

	dueReminder := &domain.ZakatReminder{
		ID:            uuid.New(),
		UserID:        "user-1",
		CalculationID: uuid.NullUUID{UUID: calc.ID, Valid: true},
		Type:          domain.ReminderTypePaymentDue,
		Title:         "Zakat payment due",
		Message:       "Your zakat of 200.00 USD is due.",
		ScheduledDate: now.AddDate(0, 0, 7),
		CreatedAt:     now,
	}
	recurring := &domain.ZakatReminder{
		ID:                uuid.New(),
		UserID:            "user-1",
		Type:              domain.ReminderTypeAnnualCalculation,
		Title:             "Annual zakat",
		Message:           "Time to calculate your zakat.",
		ScheduledDate:     now.AddDate(0, 0, 1),
		IsRecurring:       true,
		RecurrencePattern: strPtr(domain.RecurrenceLunarYearly),
		CreatedAt:         now,
	}
	require.NoError(t, repo.Create(ctx, dueReminder))
	require.NoError(t, repo.Create(ctx, recurring))

	list, err := repo.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, recurring.ID, list[0].ID)
	assert.True(t, list[1].CalculationID.Valid)
	assert.Equal(t, calc.ID, list[1].CalculationID.UUID)
	assert.False(t, list[0].CalculationID.Valid)

	awaiting, err := repo.ListAwaitingAdvance(ctx)
	require.NoError(t, err)
	assert.Len(t, awaiting, 0)

	require.NoError(t, repo.MarkSent(ctx, recurring.ID, now))
	require.NoError(t, repo.MarkSent(ctx, dueReminder.ID, now))

	awaiting, err = repo.ListAwaitingAdvance(ctx)
	require.NoError(t, err)
	require.Len(t, awaiting, 1)
	assert.Equal(t, recurring.ID, awaiting[0].ID)
	assert.True(t, awaiting[0].IsSent)
	require.NotNil(t, awaiting[0].RecurrencePattern)
	assert.Equal(t, domain.RecurrenceLunarYearly, *awaiting[0].RecurrencePattern)

	require.NoError(t, repo.MarkAdvanced(ctx, recurring.ID, now))

	awaiting, err = repo.ListAwaitingAdvance(ctx)
	require.NoError(t, err)
	assert.Len(t, awaiting, 0)

	got, err := repo.GetByID(ctx, recurring.ID)
	require.NoError(t, err)
	require.NotNil(t, got.SentAt)
	require.NotNil(t, got.AdvancedAt)
}
