package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/segyhp/zakat-engine/internal/domain"
)

// Transactor runs a unit of work atomically. Repositories called with the
// context passed to fn take part in the transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// CalculationRepository defines the interface for zakat calculation data operations.
// Lookups of a missing row return sql.ErrNoRows.
type CalculationRepository interface {
	// Create inserts a new calculation
	Create(ctx context.Context, calculation *domain.ZakatCalculation) error

	// GetByID retrieves a calculation by id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ZakatCalculation, error)

	// GetByIDForUpdate retrieves a calculation and locks its row for the
	// surrounding transaction where the dialect supports it
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.ZakatCalculation, error)

	// ListByUser returns a page of a user's calculations, newest first
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.ZakatCalculation, error)

	// ListAllByUser returns every calculation a user owns, newest first
	ListAllByUser(ctx context.Context, userID string) ([]*domain.ZakatCalculation, error)

	// CountByUser counts a user's calculations
	CountByUser(ctx context.Context, userID string) (int, error)

	// UpdatePaymentSummary writes the status and payment summary fields only
	UpdatePaymentSummary(ctx context.Context, calculation *domain.ZakatCalculation) error

	// ListUnpaidBefore returns calculations still in calculated status with
	// zakat due, created before cutoff
	ListUnpaidBefore(ctx context.Context, cutoff time.Time) ([]*domain.ZakatCalculation, error)
}

// PaymentRepository defines the interface for zakat payment data operations
type PaymentRepository interface {
	// Create creates a new payment record
	Create(ctx context.Context, payment *domain.ZakatPayment) error

	// GetByID retrieves a payment by id
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ZakatPayment, error)

	// ListByCalculation retrieves all payments for a calculation, latest first
	ListByCalculation(ctx context.Context, calculationID uuid.UUID) ([]*domain.ZakatPayment, error)

	// ListByUser retrieves all payments a user made
	ListByUser(ctx context.Context, userID string) ([]*domain.ZakatPayment, error)

	// GetTotalVerified sums verified payment amounts for a calculation
	GetTotalVerified(ctx context.Context, calculationID uuid.UUID) (decimal.Decimal, error)

	// CountByCalculation counts payment rows of any verification status
	CountByCalculation(ctx context.Context, calculationID uuid.UUID) (int, error)

	// GetLatestPayment gets the most recent payment for a calculation
	GetLatestPayment(ctx context.Context, calculationID uuid.UUID) (*domain.ZakatPayment, error)

	// UpdateVerificationStatus sets the verification status of a payment
	UpdateVerificationStatus(ctx context.Context, id uuid.UUID, status string, updatedAt time.Time) error
}

// NisabRepository defines the interface for nisab rate snapshots. Snapshots are insert-only.
type NisabRepository interface {
	// Create inserts a new snapshot
	Create(ctx context.Context, rates *domain.NisabRates) error

	// GetLatestByCurrency returns the most recent snapshot by rate date
	GetLatestByCurrency(ctx context.Context, currency string) (*domain.NisabRates, error)
}

// ReminderRepository defines the interface for reminder records
type ReminderRepository interface {
	Create(ctx context.Context, reminder *domain.ZakatReminder) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ZakatReminder, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.ZakatReminder, error)
	MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error
	MarkAdvanced(ctx context.Context, id uuid.UUID, advancedAt time.Time) error

	// ListAwaitingAdvance returns sent recurring reminders that have no successor yet
	ListAwaitingAdvance(ctx context.Context) ([]*domain.ZakatReminder, error)
}
