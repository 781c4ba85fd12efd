package list_rules

import (
	"net/http"

	"github.com/ytopal/Barbershop-BookingService/internal/api/handlers"
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

// Handle GET /api/v1/admin/rules
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.availabilityService.ListRules(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/rules - Failed to list rules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/rules - Listed %d rules", len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
