package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/segyhp/zakat-engine/internal/domain"
)

type MockZakatService struct {
	mock.Mock
}

func (m *MockZakatService) Calculate(ctx context.Context, wealth domain.WealthSnapshot) (*domain.ZakatCalculationResult, error) {
	args := m.Called(ctx, wealth)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatCalculationResult), args.Error(1)
}

func (m *MockZakatService) CalculateAndRecord(ctx context.Context, userID string, request domain.RecordCalculationRequest) (*domain.ZakatCalculation, error) {
	args := m.Called(ctx, userID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatCalculation), args.Error(1)
}

func (m *MockZakatService) ListCalculations(ctx context.Context, userID string, page, pageSize int) (*domain.CalculationPage, error) {
	args := m.Called(ctx, userID, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CalculationPage), args.Error(1)
}

func (m *MockZakatService) GetCalculation(ctx context.Context, userID string, calculationID uuid.UUID) (*domain.ZakatCalculation, error) {
	args := m.Called(ctx, userID, calculationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatCalculation), args.Error(1)
}

func (m *MockZakatService) RecordPayment(ctx context.Context, calculationID uuid.UUID, userID string, input domain.PaymentInput) (*domain.ZakatPayment, error) {
	args := m.Called(ctx, calculationID, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatPayment), args.Error(1)
}

func (m *MockZakatService) ListPayments(ctx context.Context, userID string, calculationID uuid.UUID) ([]*domain.ZakatPayment, error) {
	args := m.Called(ctx, userID, calculationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ZakatPayment), args.Error(1)
}

func (m *MockZakatService) VerifyPayment(ctx context.Context, paymentID uuid.UUID, request domain.VerifyPaymentRequest) (*domain.ZakatPayment, error) {
	args := m.Called(ctx, paymentID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatPayment), args.Error(1)
}

type MockAnalyticsService struct {
	mock.Mock
}

func (m *MockAnalyticsService) GetAnalytics(ctx context.Context, userID string) (*domain.ZakatAnalyticsSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatAnalyticsSummary), args.Error(1)
}

type MockNisabService struct {
	mock.Mock
}

func (m *MockNisabService) CurrentRates(ctx context.Context, currency string) (*domain.NisabRates, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NisabRates), args.Error(1)
}

func (m *MockNisabService) UpdateRates(ctx context.Context, request domain.UpdateNisabRatesRequest) (*domain.NisabRates, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NisabRates), args.Error(1)
}

type MockReminderService struct {
	MockReminderScheduler
}

func (m *MockReminderService) ListByUser(ctx context.Context, userID string) ([]*domain.ZakatReminder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ZakatReminder), args.Error(1)
}

func (m *MockReminderService) MarkSent(ctx context.Context, reminderID uuid.UUID) (*domain.ZakatReminder, error) {
	args := m.Called(ctx, reminderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatReminder), args.Error(1)
}
