package delete_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/minari-lab/salon-booking-service/internal/api/handlers"
	"github.com/minari-lab/salon-booking-service/internal/service/designers"
)

const (
	msgInvalidBlockID = "некорректный ID блокировки"
	msgBlockNotFound  = "блокировка не найдена"
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

// Handle DELETE /api/v1/admin/blocks/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /admin/blocks/{id} - Invalid block id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidBlockID)
		return
	}

	if err := h.service.DeleteBlock(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, designers.ErrBlockNotFound):
			h.logger.Warn("DELETE /admin/blocks/{id} - Block not found: block_id=%d", id)
			handlers.RespondNotFound(w, msgBlockNotFound)

		default:
			h.logger.Error("DELETE /admin/blocks/{id} - Failed to delete block: block_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/blocks/{id} - Block deleted: block_id=%d", id)
	handlers.RespondNoContent(w)
}
