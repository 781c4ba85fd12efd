package list_open_dates

import (
	"errors"
	"net/http"

	"github.com/ytopal/Barbershop-BookingService/internal/api/handlers"
	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	listOpenDates "github.com/ytopal/Barbershop-BookingService/internal/usecase/list_open_dates"
)

const (
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRangeRequired     = "требуются параметры from и to"
	msgRangeTooLarge     = "слишком большой диапазон дат"
	msgInvalidParameters = "некорректные параметры запроса"
)

type Handler struct {
	useCase ListOpenDatesUseCase
	logger  Logger
}

func NewHandler(useCase ListOpenDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/open-dates?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")

	if fromStr == "" || toStr == "" {
		handlers.RespondBadRequest(w, msgRangeRequired)
		return
	}

	from, err := domain.ParseDate(fromStr)
	if err != nil {
		h.logger.Warn("GET /open-dates - Invalid from date %q: %v", fromStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	to, err := domain.ParseDate(toStr)
	if err != nil {
		h.logger.Warn("GET /open-dates - Invalid to date %q: %v", toStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &listOpenDates.Request{
		From: from,
		To:   to,
	})
	if err != nil {
		switch {
		case errors.Is(err, listOpenDates.ErrRangeTooLarge):
			h.logger.Warn("GET /open-dates - Range too large: from=%s, to=%s", fromStr, toStr)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, listOpenDates.ErrInvalidInput):
			h.logger.Warn("GET /open-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParameters)

		default:
			h.logger.Error("GET /open-dates - Failed: from=%s, to=%s, error=%v", fromStr, toStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /open-dates - Returned %d open dates: from=%s, to=%s", len(result.Dates), fromStr, toStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
