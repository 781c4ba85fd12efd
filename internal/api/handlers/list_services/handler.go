package list_services

import (
	"net/http"

	"github.com/ytopal/Barbershop-BookingService/internal/api/handlers"
)

type Handler struct {
	catalogService CatalogService
	logger         Logger
}

func NewHandler(catalogService CatalogService, logger Logger) *Handler {
	return &Handler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Публичная витрина содержит только активные услуги
	result, err := h.catalogService.List(r.Context(), true)
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /services - Listed %d services", len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
