package availability

import (
	"errors"
	"net/http"

	"github.com/minari-lab/salon-booking-service/internal/api/handlers"
	recommendSlots "github.com/minari-lab/salon-booking-service/internal/usecase/recommend_slots"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase RecommendSlotsUseCase
	logger  Logger
}

func NewHandler(useCase RecommendSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /availability - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, recommendSlots.ErrServiceNotFound):
			h.logger.Warn("POST /availability - Service not found: designer=%s", req.DesignerID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, recommendSlots.ErrInvalidInput):
			h.logger.Warn("POST /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /availability - Failed to recommend slots: designer=%s, error=%v",
				req.DesignerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
