package get_designer_month

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/minari-lab/salon-booking-service/internal/api/handlers"
	"github.com/minari-lab/salon-booking-service/internal/service/bookings"
)

const (
	msgInvalidYear      = "некорректный параметр year"
	msgInvalidMonth     = "некорректный параметр month, ожидается 1-12"
	msgDesignerNotFound = "дизайнер не найден"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/designers/{id}/month?year=2026&month=9
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	designerID := mux.Vars(r)["id"]

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 || year > 2100 {
		h.logger.Warn("GET /admin/designers/{id}/month - Invalid year: %v", r.URL.Query().Get("year"))
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil || month < 1 || month > 12 {
		h.logger.Warn("GET /admin/designers/{id}/month - Invalid month: %v", r.URL.Query().Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.service.GetDesignerMonth(r.Context(), designerID, year, time.Month(month))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrDesignerNotFound):
			h.logger.Warn("GET /admin/designers/{id}/month - Designer not found: designer=%s", designerID)
			handlers.RespondNotFound(w, msgDesignerNotFound)

		default:
			h.logger.Error("GET /admin/designers/{id}/month - Failed to get month: designer=%s, error=%v",
				designerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
