package create_block

import (
	"errors"
	"net/http"

	"github.com/minari-lab/salon-booking-service/internal/api/handlers"
	"github.com/minari-lab/salon-booking-service/internal/service/designers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается YYYY-MM-DDTHH:MM:SS"
	msgDesignerNotFound   = "дизайнер не найден"
	msgInvalidInput       = "некорректные параметры запроса"
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

// Handle POST /api/v1/admin/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /admin/blocks - Failed to parse time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.service.CreateBlock(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, designers.ErrDesignerNotFound):
			h.logger.Warn("POST /admin/blocks - Designer not found: designer=%s", req.DesignerID)
			handlers.RespondNotFound(w, msgDesignerNotFound)

		case errors.Is(err, designers.ErrInvalidInput):
			h.logger.Warn("POST /admin/blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/blocks - Failed to create block: designer=%s, error=%v",
				req.DesignerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/blocks - Block created: block_id=%d, designer=%s", result.ID, req.DesignerID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
