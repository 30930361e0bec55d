package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/segyhp/zakat-engine/internal/domain"
)

type MockNisabCache struct {
	mock.Mock
}

func (m *MockNisabCache) Get(ctx context.Context, currency string) (*domain.NisabRates, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NisabRates), args.Error(1)
}

func (m *MockNisabCache) Set(ctx context.Context, rates *domain.NisabRates) error {
	args := m.Called(ctx, rates)
	return args.Error(0)
}

func (m *MockNisabCache) Invalidate(ctx context.Context, currency string) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

type MockEventSink struct {
	mock.Mock
}

func (m *MockEventSink) Record(ctx context.Context, name, category string, properties map[string]any) error {
	args := m.Called(ctx, name, category, properties)
	return args.Error(0)
}

type MockNisabProvider struct {
	mock.Mock
}

func (m *MockNisabProvider) CurrentRates(ctx context.Context, currency string) (*domain.NisabRates, error) {
	args := m.Called(ctx, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NisabRates), args.Error(1)
}

type MockReminderScheduler struct {
	mock.Mock
}

func (m *MockReminderScheduler) Schedule(ctx context.Context, userID string, request domain.ReminderRequest) (*domain.ZakatReminder, error) {
	args := m.Called(ctx, userID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ZakatReminder), args.Error(1)
}
