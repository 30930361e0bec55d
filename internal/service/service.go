package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/segyhp/zakat-engine/internal/domain"
	customError "github.com/segyhp/zakat-engine/pkg/errors"
)

// NisabProvider returns the latest rate snapshot for a currency, or nil when none is recorded.
type NisabProvider interface {
	CurrentRates(ctx context.Context, currency string) (*domain.NisabRates, error)
}

// ReminderScheduler persists reminders for the external delivery system.
type ReminderScheduler interface {
	Schedule(ctx context.Context, userID string, request domain.ReminderRequest) (*domain.ZakatReminder, error)
}

// Pagination bounds for list endpoints
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// storeError passes business errors through and wraps anything else as a persistence failure.
func storeError(err error) error {
	if customError.CodeOf(err) != "" {
		return err
	}
	return customError.WrapDatabaseError(err)
}

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func orDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
