package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/segyhp/zakat-engine/internal/domain"
	"github.com/segyhp/zakat-engine/internal/logging"
	"github.com/segyhp/zakat-engine/internal/mocks"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func usdRates() *domain.NisabRates {
	return domain.NewNisabRates("USD", dec("60"), dec("0.8"), fixedNow.AddDate(0, 0, -1))
}

type zakatMocks struct {
	calculationRepo *mocks.MockCalculationRepository
	paymentRepo     *mocks.MockPaymentRepository
	tx              *mocks.MockTransactor
	nisab           *mocks.MockNisabProvider
	reminders       *mocks.MockReminderScheduler
	sink            *mocks.MockEventSink
}

func newZakatServiceWithMocks() (*ZakatService, *zakatMocks) {
	m := &zakatMocks{
		calculationRepo: &mocks.MockCalculationRepository{},
		paymentRepo:     &mocks.MockPaymentRepository{},
		tx:              &mocks.MockTransactor{},
		nisab:           &mocks.MockNisabProvider{},
		reminders:       &mocks.MockReminderScheduler{},
		sink:            &mocks.MockEventSink{},
	}

	svc := NewZakatService(m.calculationRepo, m.paymentRepo, m.tx, m.nisab, m.reminders, m.sink, logging.Discard(), 720*time.Hour)
	svc.now = clock

	return svc, m
}

func (m *zakatMocks) assertExpectations(t *testing.T) {
	m.calculationRepo.AssertExpectations(t)
	m.paymentRepo.AssertExpectations(t)
	m.tx.AssertExpectations(t)
	m.nisab.AssertExpectations(t)
	m.reminders.AssertExpectations(t)
	m.sink.AssertExpectations(t)
}

func storedCalculation(userID string, zakatDue string) *domain.ZakatCalculation {
	created := fixedNow.AddDate(0, 0, -3)
	return &domain.ZakatCalculation{
		ID:              uuid.New(),
		UserID:          userID,
		CalculationDate: created,
		HijriYear:       "2604",
		TotalWealth:     dec(zakatDue).Mul(decimal.NewFromInt(40)),
		NisabThreshold:  dec("476"),
		ZakatDue:        dec(zakatDue),
		Currency:        "USD",
		PaymentStatus:   domain.PaymentStatusCalculated,
		AmountPaid:      decimal.Zero,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func cashPayment(amount string) domain.PaymentInput {
	return domain.PaymentInput{
		Amount:        dec(amount),
		PaymentMethod: domain.PaymentMethodCash,
		RecipientType: domain.RecipientMosque,
		RecipientName: "Central Mosque",
	}
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
