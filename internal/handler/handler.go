package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/segyhp/zakat-engine/internal/domain"
	"github.com/segyhp/zakat-engine/pkg/response"
)

// ZakatService is the calculation and payment surface the HTTP layer needs.
type ZakatService interface {
	Calculate(ctx context.Context, wealth domain.WealthSnapshot) (*domain.ZakatCalculationResult, error)
	CalculateAndRecord(ctx context.Context, userID string, request domain.RecordCalculationRequest) (*domain.ZakatCalculation, error)
	ListCalculations(ctx context.Context, userID string, page, pageSize int) (*domain.CalculationPage, error)
	GetCalculation(ctx context.Context, userID string, calculationID uuid.UUID) (*domain.ZakatCalculation, error)
	RecordPayment(ctx context.Context, calculationID uuid.UUID, userID string, input domain.PaymentInput) (*domain.ZakatPayment, error)
	ListPayments(ctx context.Context, userID string, calculationID uuid.UUID) ([]*domain.ZakatPayment, error)
	VerifyPayment(ctx context.Context, paymentID uuid.UUID, request domain.VerifyPaymentRequest) (*domain.ZakatPayment, error)
}

type AnalyticsService interface {
	GetAnalytics(ctx context.Context, userID string) (*domain.ZakatAnalyticsSummary, error)
}

type NisabService interface {
	CurrentRates(ctx context.Context, currency string) (*domain.NisabRates, error)
	UpdateRates(ctx context.Context, request domain.UpdateNisabRatesRequest) (*domain.NisabRates, error)
}

type ReminderService interface {
	Schedule(ctx context.Context, userID string, request domain.ReminderRequest) (*domain.ZakatReminder, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.ZakatReminder, error)
	MarkSent(ctx context.Context, reminderID uuid.UUID) (*domain.ZakatReminder, error)
}

func decodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// pathUUID parses a uuid path variable, writing a 400 and returning false when it is malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		response.BadRequest(w, "Invalid "+name, err)
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(r *http.Request, name string) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return value
}
