package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/segyhp/zakat-engine/internal/domain"
)

type MockCalculationRepository struct {
	mock.Mock
}

func (m *MockCalculationRepository) Create(ctx context.Context, calculation *domain.ZakatCalculation) error {
	args := m.Called(ctx, calculation)
	return args.Error(0)
}

func (m *MockCalculationRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ZakatCalculation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatCalculation), args.Error(1)
}

func (m *MockCalculationRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.ZakatCalculation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatCalculation), args.Error(1)
}

func (m *MockCalculationRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.ZakatCalculation, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ZakatCalculation), args.Error(1)
}

func (m *MockCalculationRepository) ListAllByUser(ctx context.Context, userID string) ([]*domain.ZakatCalculation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ZakatCalculation), args.Error(1)
}

func (m *MockCalculationRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockCalculationRepository) UpdatePaymentSummary(ctx context.Context, calculation *domain.ZakatCalculation) error {
	args := m.Called(ctx, calculation)
	return args.Error(0)
}

func (m *MockCalculationRepository) ListUnpaidBefore(ctx context.Context, cutoff time.Time) ([]*domain.ZakatCalculation, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ZakatCalculation), args.Error(1)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *domain.ZakatPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ZakatPayment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatPayment), args.Error(1)
}

func (m *MockPaymentRepository) ListByCalculation(ctx context.Context, calculationID uuid.UUID) ([]*domain.ZakatPayment, error) {
	args := m.Called(ctx, calculationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ZakatPayment), args.Error(1)
}

func (m *MockPaymentRepository) ListByUser(ctx context.Context, userID string) ([]*domain.ZakatPayment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ZakatPayment), args.Error(1)
}

func (m *MockPaymentRepository) GetTotalVerified(ctx context.Context, calculationID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, calculationID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) CountByCalculation(ctx context.Context, calculationID uuid.UUID) (int, error) {
	args := m.Called(ctx, calculationID)
	return args.Int(0), args.Error(1)
}

func (m *MockPaymentRepository) GetLatestPayment(ctx context.Context, calculationID uuid.UUID) (*domain.ZakatPayment, error) {
	args := m.Called(ctx, calculationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatPayment), args.Error(1)
}

func (m *MockPaymentRepository) UpdateVerificationStatus(ctx context.Context, id uuid.UUID, status string, updatedAt time.Time) error {
	args := m.Called(ctx, id, status, updatedAt)
	return args.Error(0)
}

type MockNisabRepository struct {
	mock.Mock
}

func (m *MockNisabRepository) Create(ctx context.Context, rates *domain.NisabRates) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

func (m *MockNisabRepository) GetLatestByCurrency(ctx context.Context, currency string) (*domain.NisabRates, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NisabRates), args.Error(1)
}

type MockReminderRepository struct {
	mock.Mock
}

func (m *MockReminderRepository) Create(ctx context.Context, reminder *domain.ZakatReminder) error {
	args := m.Called(ctx, reminder)
	return args.Error(0)
}

func (m *MockReminderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ZakatReminder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatReminder), args.Error(1)
}

func (m *MockReminderRepository) ListByUser(ctx context.Context, userID string) ([]*domain.ZakatReminder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ZakatReminder), args.Error(1)
}

func (m *MockReminderRepository) MarkSent(ctx context.Context, id uuid.UUID, sentAt time.Time) error {
	args := m.Called(ctx, id, sentAt)
	return args.Error(0)
}

func (m *MockReminderRepository) MarkAdvanced(ctx context.Context, id uuid.UUID, advancedAt time.Time) error {
	args := m.Called(ctx, id, advancedAt)
	return args.Error(0)
}

func (m *MockReminderRepository) ListAwaitingAdvance(ctx context.Context) ([]*domain.ZakatReminder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ZakatReminder), args.Error(1)
}

// MockTransactor runs fn inline so repository expectations still apply.
type MockTransactor struct {
	mock.Mock
}

func (m *MockTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx)
}
