package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/minari-lab/salon-booking-service/internal/api/handlers"
	rescheduleBooking "github.com/minari-lab/salon-booking-service/internal/usecase/reschedule_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidNewStartAt  = "некорректный формат нового времени, ожидается YYYY-MM-DDTHH:MM:SS"
	msgBookingNotFound    = "бронирование не найдено"
	msgDesignerNotFound   = "дизайнер не найден"
	msgSlotNotFound       = "новое время не является доступным слотом"
	msgSlotInPast         = "новое время уже прошло либо слишком близко"
	msgSlotTooFar         = "новое время слишком далеко в будущем"
	msgSlotConflict       = "новое время уже занято"
	msgDailyLimitReached  = "дневной лимит записей на этот день исчерпан"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{id}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid booking id: %v", mux.Vars(r)["id"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Failed to parse newStartAt %q: %v", req.NewStartAt, err)
		handlers.RespondBadRequest(w, msgInvalidNewStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking not found: booking_id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, rescheduleBooking.ErrDesignerNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Designer not found: booking_id=%d", id)
			handlers.RespondNotFound(w, msgDesignerNotFound)

		case errors.Is(err, rescheduleBooking.ErrSlotConflict):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot conflict: booking_id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, rescheduleBooking.ErrDailyLimitReached):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Daily limit reached: booking_id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgDailyLimitReached)

		case errors.Is(err, rescheduleBooking.ErrSlotNotFound):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot not found: booking_id=%d", id)
			handlers.RespondBadRequest(w, msgSlotNotFound)

		case errors.Is(err, rescheduleBooking.ErrSlotInPast):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot in past: booking_id=%d", id)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, rescheduleBooking.ErrSlotTooFar):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Slot too far: booking_id=%d", id)
			handlers.RespondBadRequest(w, msgSlotTooFar)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id}/reschedule - Failed to reschedule: booking_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/reschedule - Booking rescheduled: booking_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
