package delete_rule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ytopal/Barbershop-BookingService/internal/api/handlers"
	availabilityService "github.com/ytopal/Barbershop-BookingService/internal/service/availability"
)

const (
	msgInvalidRuleID = "некорректный идентификатор правила"
	msgRuleNotFound  = "правило не найдено"
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

// Handle DELETE /api/v1/admin/rules/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	ruleID, err := strconv.ParseInt(vars["ruleId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/rules/{ruleId} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	if err := h.availabilityService.DeleteRule(r.Context(), ruleID); err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrRuleNotFound):
			h.logger.Warn("DELETE /admin/rules/{ruleId} - Rule not found: rule_id=%d", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		default:
			h.logger.Error("DELETE /admin/rules/{ruleId} - Failed: rule_id=%d, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/rules/{ruleId} - Rule deleted: rule_id=%d", ruleID)
	handlers.RespondNoContent(w)
}
