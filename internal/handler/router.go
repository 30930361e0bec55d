package handler

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/segyhp/zakat-engine/pkg/response"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Health    *HealthHandler
	Zakat     *ZakatHandler
	Nisab     *NisabHandler
	Reminders *ReminderHandler
}

func NewRouter(h Handlers, logger *slog.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(response.CORSMiddleware)
	if logger != nil {
		router.Use(response.LoggingMiddleware(logger))
	}

	// Health check
	if h.Health != nil {
		router.HandleFunc("/health", h.Health.Health).Methods(http.MethodGet)
		router.HandleFunc("/health/ready", h.Health.Ready).Methods(http.MethodGet)
	}

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/zakat/calculate", h.Zakat.Calculate).Methods(http.MethodPost)
	api.HandleFunc("/nisab", h.Nisab.Update).Methods(http.MethodPost)
	api.HandleFunc("/nisab/{currency}", h.Nisab.GetCurrent).Methods(http.MethodGet)

	user := api.PathPrefix("/users/{userId}/zakat").Subrouter()
	user.HandleFunc("/calculations", h.Zakat.CreateCalculation).Methods(http.MethodPost)
	user.HandleFunc("/calculations", h.Zakat.ListCalculations).Methods(http.MethodGet)
	user.HandleFunc("/calculations/{calculationId}", h.Zakat.GetCalculation).Methods(http.MethodGet)
	user.HandleFunc("/calculations/{calculationId}/payments", h.Zakat.RecordPayment).Methods(http.MethodPost)
	user.HandleFunc("/calculations/{calculationId}/payments", h.Zakat.ListPayments).Methods(http.MethodGet)
	user.HandleFunc("/analytics", h.Zakat.GetAnalytics).Methods(http.MethodGet)
	user.HandleFunc("/reminders", h.Reminders.Create).Methods(http.MethodPost)
	user.HandleFunc("/reminders", h.Reminders.List).Methods(http.MethodGet)

	api.HandleFunc("/payments/{paymentId}/verification", h.Zakat.VerifyPayment).Methods(http.MethodPost)
	api.HandleFunc("/reminders/{reminderId}/sent", h.Reminders.MarkSent).Methods(http.MethodPost)

	return router
}
