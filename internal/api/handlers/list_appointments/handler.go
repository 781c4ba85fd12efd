package list_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ytopal/Barbershop-BookingService/internal/api/handlers"
	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	appointmentsService "github.com/ytopal/Barbershop-BookingService/internal/service/appointments"
	appointmentModels "github.com/ytopal/Barbershop-BookingService/internal/service/appointments/models"
	"github.com/ytopal/Barbershop-BookingService/pkg/ptr"
)

const (
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateRequired      = "требуется параметр date"
	msgInvalidServiceID  = "некорректный идентификатор услуги"
	msgInvalidParameters = "некорректные параметры запроса"
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

// Handle GET /api/v1/admin/appointments?date=YYYY-MM-DD&serviceId=&includeCancelled=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	date, err := domain.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /admin/appointments - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &appointmentModels.GetDayAppointmentsRequest{
		Date: date,
		// Администратор по умолчанию видит и отменённые записи
		IncludeCancelled: true,
	}

	if serviceIDStr := query.Get("serviceId"); serviceIDStr != "" {
		serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid service ID %q: %v", serviceIDStr, err)
			handlers.RespondBadRequest(w, msgInvalidServiceID)
			return
		}
		req.ServiceID = ptr.Ptr(serviceID)
	}

	if includeStr := query.Get("includeCancelled"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidParameters)
			return
		}
		req.IncludeCancelled = include
	}

	result, err := h.appointmentsService.GetDayAppointments(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParameters)

		default:
			h.logger.Error("GET /admin/appointments - Failed: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments - Listed %d appointments: date=%s", len(result.Appointments), dateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
