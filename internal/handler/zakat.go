package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/segyhp/zakat-engine/internal/domain"
	"github.com/segyhp/zakat-engine/pkg/response"
)

type ZakatHandler struct {
	zakat     ZakatService
	analytics AnalyticsService
}

func NewZakatHandler(zakat ZakatService, analytics AnalyticsService) *ZakatHandler {
	return &ZakatHandler{
		zakat:     zakat,
		analytics: analytics,
	}
}

// Calculate runs a calculation without persisting it
func (h *ZakatHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var wealth domain.WealthSnapshot
	if err := decodeJSON(r, &wealth); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	result, err := h.zakat.Calculate(r.Context(), wealth)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateCalculation calculates against the latest rates and records the result for the user
func (h *ZakatHandler) CreateCalculation(w http.ResponseWriter, r *http.Request) {
	var request domain.RecordCalculationRequest
	if err := decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	calculation, err := h.zakat.CalculateAndRecord(r.Context(), mux.Vars(r)["userId"], request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, calculation)
}

func (h *ZakatHandler) ListCalculations(w http.ResponseWriter, r *http.Request) {
	page, err := h.zakat.ListCalculations(r.Context(), mux.Vars(r)["userId"], queryInt(r, "page"), queryInt(r, "page_size"))
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, page)
}

func (h *ZakatHandler) GetCalculation(w http.ResponseWriter, r *http.Request) {
	calculationID, ok := pathUUID(w, r, "calculationId")
	if !ok {
		return
	}

	calculation, err := h.zakat.GetCalculation(r.Context(), mux.Vars(r)["userId"], calculationID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, calculation)
}

func (h *ZakatHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	calculationID, ok := pathUUID(w, r, "calculationId")
	if !ok {
		return
	}

	var input domain.PaymentInput
	if err := decodeJSON(r, &input); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	payment, err := h.zakat.RecordPayment(r.Context(), calculationID, mux.Vars(r)["userId"], input)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, payment)
}

func (h *ZakatHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	calculationID, ok := pathUUID(w, r, "calculationId")
	if !ok {
		return
	}

	payments, err := h.zakat.ListPayments(r.Context(), mux.Vars(r)["userId"], calculationID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, payments)
}

// VerifyPayment is the administrative verification action
func (h *ZakatHandler) VerifyPayment(w http.ResponseWriter, r *http.Request) {
	paymentID, ok := pathUUID(w, r, "paymentId")
	if !ok {
		return
	}

	var request domain.VerifyPaymentRequest
	if err := decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	payment, err := h.zakat.VerifyPayment(r.Context(), paymentID, request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, payment)
}

func (h *ZakatHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analytics.GetAnalytics(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, summary)
}
