package delete_exception

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ytopal/Barbershop-BookingService/internal/api/handlers"
	availabilityService "github.com/ytopal/Barbershop-BookingService/internal/service/availability"
)

const (
	msgInvalidExceptionID = "некорректный идентификатор исключения"
	msgExceptionNotFound  = "исключение не найдено"
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

// Handle DELETE /api/v1/admin/exceptions/{exceptionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	exceptionID, err := strconv.ParseInt(vars["exceptionId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /admin/exceptions/{exceptionId} - Invalid exception ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExceptionID)
		return
	}

	if err := h.availabilityService.DeleteException(r.Context(), exceptionID); err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrExceptionNotFound):
			h.logger.Warn("DELETE /admin/exceptions/{exceptionId} - Exception not found: exception_id=%d", exceptionID)
			handlers.RespondNotFound(w, msgExceptionNotFound)

		default:
			h.logger.Error("DELETE /admin/exceptions/{exceptionId} - Failed: exception_id=%d, error=%v",
				exceptionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/exceptions/{exceptionId} - Exception deleted: exception_id=%d", exceptionID)
	handlers.RespondNoContent(w)
}
