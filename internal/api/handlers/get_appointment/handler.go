package get_appointment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ytopal/Barbershop-BookingService/internal/api/handlers"
	appointmentsService "github.com/ytopal/Barbershop-BookingService/internal/service/appointments"
)

const (
	msgInvalidCode         = "некорректный код подтверждения"
	msgAppointmentNotFound = "запись не найдена"
)

type Handler struct {
	appointmentsService AppointmentsService
	logger              Logger
}

func NewHandler(appointmentsService AppointmentsService, logger Logger) *Handler {
	return &Handler{
		appointmentsService: appointmentsService,
		logger:              logger,
	}
}

// Handle GET /api/v1/appointments/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	code, err := uuid.Parse(vars["code"])
	if err != nil {
		h.logger.Warn("GET /appointments/{code} - Invalid confirmation code: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCode)
		return
	}

	result, err := h.appointmentsService.GetByConfirmationCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{code} - Appointment not found: code=%s", code)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("GET /appointments/{code} - Failed: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{code} - Appointment fetched: appointment_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
