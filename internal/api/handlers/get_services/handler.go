package get_services

import (
	"net/http"

	"github.com/minari-lab/salon-booking-service/internal/api/handlers"
)

type Handler struct {
	service DesignersService
	logger  Logger
}

func NewHandler(service DesignersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListServices(r.Context())
	if err != nil {
		h.logger.Error("GET /services - Failed to list services: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
