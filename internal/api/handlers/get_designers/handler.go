package get_designers

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

// Handle GET /api/v1/designers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /designers - Failed to list designers: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
