package update_designer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/minari-lab/salon-booking-service/internal/api/handlers"
	"github.com/minari-lab/salon-booking-service/internal/service/designers"
	"github.com/minari-lab/salon-booking-service/internal/service/designers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDesignerNotFound   = "дизайнер не найден"
	msgInvalidSchedule    = "некорректная конфигурация расписания"
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

// Handle PUT /api/v1/admin/designers/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.UpdateDesignerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/designers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, designers.ErrDesignerNotFound):
			h.logger.Warn("PUT /admin/designers/{id} - Designer not found: designer=%s", id)
			handlers.RespondNotFound(w, msgDesignerNotFound)

		case errors.Is(err, designers.ErrInvalidSchedule):
			h.logger.Warn("PUT /admin/designers/{id} - Invalid schedule: designer=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		case errors.Is(err, designers.ErrInvalidInput):
			h.logger.Warn("PUT /admin/designers/{id} - Invalid input: designer=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /admin/designers/{id} - Failed to update designer: designer=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/designers/{id} - Designer updated: designer=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
