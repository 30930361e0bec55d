package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/segyhp/zakat-engine/internal/domain"
	"github.com/segyhp/zakat-engine/internal/repository"
	customError "github.com/segyhp/zakat-engine/pkg/errors"
	"github.com/segyhp/zakat-engine/pkg/utils"
	"github.com/segyhp/zakat-engine/pkg/validation"
)

// ReminderService creates and advances reminder records. Delivery happens elsewhere.
type ReminderService struct {
	ReminderRepo repository.ReminderRepository
	Tx           repository.Transactor
	logger       *slog.Logger
	now          func() time.Time
}

func NewReminderService(reminderRepo repository.ReminderRepository, tx repository.Transactor, logger *slog.Logger) *ReminderService {
	return &ReminderService{
		ReminderRepo: reminderRepo,
		Tx:           tx,
		logger:       orDefault(logger),
		now:          time.Now,
	}
}

// Schedule stores a new unsent reminder for userID.
func (s *ReminderService) Schedule(ctx context.Context, userID string, request domain.ReminderRequest) (*domain.ZakatReminder, error) {
	if userID == "" {
		return nil, customError.WrapInvalidInput("user_id is required", nil)
	}
	if err := validation.Struct(request); err != nil {
		return nil, customError.WrapInvalidInput(validation.Describe(err), err)
	}
	if request.Recurring && request.RecurrencePattern == "" {
		return nil, customError.WrapInvalidInput("recurrence_pattern is required for a recurring reminder", nil)
	}

	reminder := &domain.ZakatReminder{
		ID:            uuid.New(),
		UserID:        userID,
		CalculationID: request.CalculationID,
		Type:          request.Type,
		Title:         request.Title,
		Message:       request.Message,
		ScheduledDate: request.ScheduledDate.UTC(),
		IsRecurring:   request.Recurring,
		CreatedAt:     s.now().UTC(),
	}
	if request.Recurring {
		pattern := request.RecurrencePattern
		reminder.RecurrencePattern = &pattern
	}

	if err := s.ReminderRepo.Create(ctx, reminder); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}

	return reminder, nil
}

func (s *ReminderService) ListByUser(ctx context.Context, userID string) ([]*domain.ZakatReminder, error) {
	reminders, err := s.ReminderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	if reminders == nil {
		reminders = []*domain.ZakatReminder{}
	}
	return reminders, nil
}

// MarkSent records delivery of a reminder. A recurring reminder gets its next
// occurrence in the same transaction. Marking a sent reminder again is a no-op.
func (s *ReminderService) MarkSent(ctx context.Context, reminderID uuid.UUID) (*domain.ZakatReminder, error) {
	var reminder *domain.ZakatReminder
	err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
		found, err := s.ReminderRepo.GetByID(ctx, reminderID)
		if err != nil {
			if isNotFound(err) {
				return customError.WrapReminderNotFound(reminderID.String())
			}
			return customError.WrapDatabaseError(err)
		}
		reminder = found
		if reminder.IsSent {
			return nil
		}

		now := s.now().UTC()
		if err := s.ReminderRepo.MarkSent(ctx, reminder.ID, now); err != nil {
			return customError.WrapDatabaseError(err)
		}
		reminder.IsSent = true
		reminder.SentAt = &now

		if reminder.IsRecurring {
			_, err := s.advance(ctx, reminder, now)
			return err
		}
		return nil
	})
	if err != nil {
		return nil, storeError(err)
	}

	return reminder, nil
}

// AdvanceRecurring creates the next occurrence for every sent recurring reminder
// that has none yet and returns how many were created.
func (s *ReminderService) AdvanceRecurring(ctx context.Context) (int, error) {
	pending, err := s.ReminderRepo.ListAwaitingAdvance(ctx)
	if err != nil {
		return 0, customError.WrapDatabaseError(err)
	}

	now := s.now().UTC()
	advanced := 0
	for _, reminder := range pending {
		var next *domain.ZakatReminder
		err := s.Tx.WithinTx(ctx, func(ctx context.Context) error {
			var err error
			next, err = s.advance(ctx, reminder, now)
			return err
		})
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to advance recurring reminder",
				slog.String("reminder_id", reminder.ID.String()),
				slog.Any("error", err),
			)
			continue
		}
		if next != nil {
			advanced++
		}
	}

	return advanced, nil
}

// advance stores the first occurrence of reminder strictly after now and marks
// reminder as advanced. It returns nil without error for an unknown pattern.
func (s *ReminderService) advance(ctx context.Context, reminder *domain.ZakatReminder, now time.Time) (*domain.ZakatReminder, error) {
	if reminder.RecurrencePattern == nil {
		return nil, nil
	}

	scheduled, ok := utils.NextOccurrenceAfter(reminder.ScheduledDate, now, *reminder.RecurrencePattern)
	if !ok {
		s.logger.WarnContext(ctx, "unknown recurrence pattern",
			slog.String("reminder_id", reminder.ID.String()),
			slog.String("pattern", *reminder.RecurrencePattern),
		)
		return nil, nil
	}

	pattern := *reminder.RecurrencePattern
	next := &domain.ZakatReminder{
		ID:                uuid.New(),
		UserID:            reminder.UserID,
		CalculationID:     reminder.CalculationID,
		Type:              reminder.Type,
		Title:             reminder.Title,
		Message:           reminder.Message,
		ScheduledDate:     scheduled,
		IsRecurring:       true,
		RecurrencePattern: &pattern,
		CreatedAt:         now,
	}

	if err := s.ReminderRepo.Create(ctx, next); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	if err := s.ReminderRepo.MarkAdvanced(ctx, reminder.ID, now); err != nil {
		return nil, customError.WrapDatabaseError(err)
	}
	reminder.AdvancedAt = &now

	return next, nil
}
