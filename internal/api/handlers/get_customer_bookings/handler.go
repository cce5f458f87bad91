package get_customer_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/minari-lab/salon-booking-service/internal/api/handlers"
	"github.com/minari-lab/salon-booking-service/internal/service/bookings"
	"github.com/minari-lab/salon-booking-service/internal/service/bookings/models"
	"github.com/minari-lab/salon-booking-service/pkg/timeutil"
)

const (
	msgPhoneRequired = "параметр phone обязателен"
)

// BookingItem бронирование в списке
type BookingItem struct {
	ID            int64    `json:"id"`
	DesignerID    string   `json:"designerId"`
	StartAt       string   `json:"startAt"`
	EndAt         string   `json:"endAt"`
	ServiceIDs    []string `json:"serviceIds"`
	CustomerName  string   `json:"customerName"`
	ReminderOptIn bool     `json:"reminderOptIn"`
	TotalPrice    int64    `json:"totalPrice"`
	CreatedAt     string   `json:"createdAt"`
}

// BookingListResponse HTTP response model
type BookingListResponse struct {
	Bookings []*BookingItem `json:"bookings"`
}

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

// Handle GET /api/v1/customers/bookings?phone=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		h.logger.Warn("GET /customers/bookings - Missing phone parameter")
		handlers.RespondBadRequest(w, msgPhoneRequired)
		return
	}

	result, err := h.service.GetCustomerBookings(r.Context(), phone)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgPhoneRequired)

		default:
			h.logger.Error("GET /customers/bookings - Failed to get bookings: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}

func fromServiceResponse(resp *models.BookingListResponse) *BookingListResponse {
	items := make([]*BookingItem, len(resp.Bookings))
	for i, b := range resp.Bookings {
		items[i] = &BookingItem{
			ID:            b.ID,
			DesignerID:    b.DesignerID,
			StartAt:       timeutil.FormatLocalISO(b.StartAt),
			EndAt:         timeutil.FormatLocalISO(b.EndAt),
			ServiceIDs:    b.ServiceIDs,
			CustomerName:  b.CustomerName,
			ReminderOptIn: b.ReminderOptIn,
			TotalPrice:    b.TotalPrice,
			CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		}
	}
	return &BookingListResponse{Bookings: items}
}
