package create_rule

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
	msgInvalidInput       = "некорректные данные правила"
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

// Handle POST /api/v1/admin/rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req availabilityModels.CreateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/rules - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.availabilityService.CreateRule(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidTimeRange):
			h.logger.Warn("POST /admin/rules - Invalid time range: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("POST /admin/rules - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/rules - Failed to create rule: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/rules - Rule created: rule_id=%d, weekday=%d", result.ID, result.Weekday)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
