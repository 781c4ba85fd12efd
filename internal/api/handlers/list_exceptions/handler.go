package list_exceptions

import (
	"errors"
	"net/http"

	"github.com/ytopal/Barbershop-BookingService/internal/api/handlers"
	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	availabilityService "github.com/ytopal/Barbershop-BookingService/internal/service/availability"
	availabilityModels "github.com/ytopal/Barbershop-BookingService/internal/service/availability/models"
)

const (
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRangeRequired     = "требуются параметры from и to"
	msgInvalidParameters = "некорректные параметры запроса"
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

// Handle GET /api/v1/admin/exceptions?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")

	if fromStr == "" || toStr == "" {
		handlers.RespondBadRequest(w, msgRangeRequired)
		return
	}

	from, err := domain.ParseDate(fromStr)
	if err != nil {
		h.logger.Warn("GET /admin/exceptions - Invalid from date %q: %v", fromStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := domain.ParseDate(toStr)
	if err != nil {
		h.logger.Warn("GET /admin/exceptions - Invalid to date %q: %v", toStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.availabilityService.ListExceptions(r.Context(), &availabilityModels.ListExceptionsRequest{
		From: from,
		To:   to,
	})
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("GET /admin/exceptions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParameters)

		default:
			h.logger.Error("GET /admin/exceptions - Failed: from=%s, to=%s, error=%v", fromStr, toStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/exceptions - Listed %d exceptions: from=%s, to=%s",
		len(result.Exceptions), fromStr, toStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
