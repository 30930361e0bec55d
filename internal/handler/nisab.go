package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/segyhp/zakat-engine/internal/domain"
	"github.com/segyhp/zakat-engine/pkg/response"
)

type NisabHandler struct {
	nisab NisabService
}

func NewNisabHandler(nisab NisabService) *NisabHandler {
	return &NisabHandler{nisab: nisab}
}

// GetCurrent returns the latest snapshot for the currency path variable
func (h *NisabHandler) GetCurrent(w http.ResponseWriter, r *http.Request) {
	currency := mux.Vars(r)["currency"]

	rates, err := h.nisab.CurrentRates(r.Context(), currency)
	if err != nil {
		response.FromError(w, err)
		return
	}
	if rates == nil {
		response.NotFound(w, "No nisab rates recorded for currency "+currency)
		return
	}

	response.Success(w, rates)
}

// Update records a new rate snapshot
func (h *NisabHandler) Update(w http.ResponseWriter, r *http.Request) {
	var request domain.UpdateNisabRatesRequest
	if err := decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	rates, err := h.nisab.UpdateRates(r.Context(), request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, rates)
}
