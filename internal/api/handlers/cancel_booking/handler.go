package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/minari-lab/salon-booking-service/internal/api/handlers"
	"github.com/minari-lab/salon-booking-service/internal/service/bookings"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgPhoneRequired    = "параметр phone обязателен"
	msgBookingNotFound  = "бронирование не найдено"
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

// Handle DELETE /api/v1/bookings/{id}?phone=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	phone := r.URL.Query().Get("phone")
	if phone == "" {
		h.logger.Warn("DELETE /bookings/{id} - Missing phone parameter: booking_id=%d", id)
		handlers.RespondBadRequest(w, msgPhoneRequired)
		return
	}

	if err := h.service.Cancel(r.Context(), id, phone); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to cancel booking: booking_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking cancelled: booking_id=%d", id)
	handlers.RespondNoContent(w)
}
