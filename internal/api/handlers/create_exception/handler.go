package create_exception

import (
	"errors"
	"net/http"

	"github.com/ytopal/Barbershop-BookingService/internal/api/handlers"
	availabilityService "github.com/ytopal/Barbershop-BookingService/internal/service/availability"
	availabilityModels "github.com/ytopal/Barbershop-BookingService/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeRange   = "время начала должно быть раньше времени окончания"
	msgInvalidInput       = "некорректные данные исключения"
)

type Handler struct {
	availabilityService AvailabilityService
	logger              Logger
}

func NewHandler(availabilityService AvailabilityService, logger Logger) *Handler {
	return &Handler{
		availabilityService: availabilityService,
		logger:              logger,
	}
}

// Handle POST /api/v1/admin/exceptions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req availabilityModels.CreateExceptionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/exceptions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.availabilityService.CreateException(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidTimeRange):
			h.logger.Warn("POST /admin/exceptions - Invalid time range: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("POST /admin/exceptions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/exceptions - Failed to create exception: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/exceptions - Exception created: exception_id=%d, date=%s, type=%s",
		result.ID, result.Date, result.Type)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
