package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/segyhp/zakat-engine/internal/domain"
)

const reminderColumns = `id, user_id, calculation_id, reminder_type, title, message, scheduled_date,
		is_recurring, recurrence_pattern, is_sent, sent_at, advanced_at, created_at`

type reminderRepository struct {
	db *sqlx.DB
}

func NewReminderRepository(db *sqlx.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Create(ctx context.Context, rem *domain.ZakatReminder) error {
	q := conn(ctx, r.db)
	query := q.Rebind(`
		INSERT INTO zakat_reminders (` + reminderColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)

	_, err := q.ExecContext(ctx, query,
		rem.ID,
		rem.UserID,
		rem.CalculationID,
		rem.Type,
		rem.Title,
		rem.Message,
		rem.ScheduledDate,
		rem.IsRecurring,
		rem.RecurrencePattern,
		rem.IsSent,
		rem.SentAt,
		rem.AdvancedAt,
		rem.CreatedAt,
	)

	return err
}

func (r *reminderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ZakatReminder, error) {
	q := conn(ctx, r.db)

	var reminder domain.ZakatReminder
	err := q.GetContext(ctx, &reminder, q.Rebind(`SELECT `+reminderColumns+` FROM zakat_reminders WHERE id = ?`), id)
	if err != nil {
		return nil, err
	}

	return &reminder, nil
}

func (r *reminderRepository) ListByUser(ctx context.Context, userID string) ([]*domain.ZakatReminder, error) {
	q := conn(ctx, r.db)
	query := q.Rebind(`
		SELECT ` + reminderColumns + `
		FROM zakat_reminders
		WHERE user_id = ?
		ORDER BY scheduled_date
	`)

	reminders := []*domain.ZakatReminder{}
	if err := q.SelectContext(ctx, &reminders, query, userID); err != nil {
		return nil, err
	}

	return reminders, nil
}

func (r *reminderRepository) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	q := conn(ctx, r.db)

	_, err := q.ExecContext(ctx, q.Rebind(`UPDATE zakat_reminders SET is_sent = ?, sent_at = ? WHERE id = ?`), true, sentAt, id)
	return err
}

func (r *reminderRepository) MarkAdvanced(ctx context.Context, id uuid.UUID, advancedAt time.Time) error {
	q := conn(ctx, r.db)

	_, err := q.ExecContext(ctx, q.Rebind(`UPDATE zakat_reminders SET advanced_at = ? WHERE id = ?`), advancedAt, id)
	return err
}

func (r *reminderRepository) ListAwaitingAdvance(ctx context.Context) ([]*domain.ZakatReminder, error) {
	q := conn(ctx, r.db)
	query := q.Rebind(`
		SELECT ` + reminderColumns + `
		FROM zakat_reminders
		WHERE is_sent = ? AND is_recurring = ? AND advanced_at IS NULL
		ORDER BY scheduled_date
	`)

	reminders := []*domain.ZakatReminder{}
	if err := q.SelectContext(ctx, &reminders, query, true, true); err != nil {
		return nil, err
	}

	return reminders, nil
}
