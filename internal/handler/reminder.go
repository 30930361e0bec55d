package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/segyhp/zakat-engine/internal/domain"
	"github.com/segyhp/zakat-engine/pkg/response"
)

type ReminderHandler struct {
	reminders ReminderService
}

func NewReminderHandler(reminders ReminderService) *ReminderHandler {
	return &ReminderHandler{reminders: reminders}
}

func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var request domain.ReminderRequest
	if err := decodeJSON(r, &request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	reminder, err := h.reminders.Schedule(r.Context(), mux.Vars(r)["userId"], request)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Created(w, reminder)
}

func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.reminders.ListByUser(r.Context(), mux.Vars(r)["userId"])
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, reminders)
}

// MarkSent is called by the external deliverer once a reminder went out
func (h *ReminderHandler) MarkSent(w http.ResponseWriter, r *http.Request) {
	reminderID, ok := pathUUID(w, r, "reminderId")
	if !ok {
		return
	}

	reminder, err := h.reminders.MarkSent(r.Context(), reminderID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, reminder)
}
