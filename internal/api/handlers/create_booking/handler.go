package create_booking

import (
	"errors"
	"net/http"

	"github.com/minari-lab/salon-booking-service/internal/api/handlers"
	createBooking "github.com/minari-lab/salon-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartAt     = "некорректный формат времени начала, ожидается YYYY-MM-DDTHH:MM:SS"
	msgDesignerNotFound   = "дизайнер не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgSlotNotFound       = "выбранное время не является доступным слотом"
	msgSlotInPast         = "выбранное время уже прошло либо слишком близко"
	msgSlotTooFar         = "выбранное время слишком далеко в будущем"
	msgSlotConflict       = "выбранный слот уже занят"
	msgDailyLimitReached  = "дневной лимит записей дизайнера исчерпан"
	msgConsentRequired    = "требуется согласие с условиями и политикой персональных данных"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse startAt %q: %v", req.StartAt, err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: designer=%s, start=%s", req.DesignerID, req.StartAt)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrDailyLimitReached):
			h.logger.Warn("POST /bookings - Daily limit reached: designer=%s", req.DesignerID)
			handlers.RespondError(w, http.StatusConflict, msgDailyLimitReached)

		case errors.Is(err, createBooking.ErrDesignerNotFound):
			h.logger.Warn("POST /bookings - Designer not found: designer=%s", req.DesignerID)
			handlers.RespondNotFound(w, msgDesignerNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: designer=%s", req.DesignerID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - Slot not found: designer=%s, start=%s", req.DesignerID, req.StartAt)
			handlers.RespondBadRequest(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotInPast):
			h.logger.Warn("POST /bookings - Slot in past: designer=%s, start=%s", req.DesignerID, req.StartAt)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createBooking.ErrSlotTooFar):
			h.logger.Warn("POST /bookings - Slot too far: designer=%s, start=%s", req.DesignerID, req.StartAt)
			handlers.RespondBadRequest(w, msgSlotTooFar)

		case errors.Is(err, createBooking.ErrConsentRequired):
			h.logger.Warn("POST /bookings - Consent missing: designer=%s", req.DesignerID)
			handlers.RespondBadRequest(w, msgConsentRequired)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: designer=%s, error=%v",
				req.DesignerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, designer=%s",
		result.ID, req.DesignerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
