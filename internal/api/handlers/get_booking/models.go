package get_booking

import (
	"time"

	"github.com/minari-lab/salon-booking-service/internal/service/bookings/models"
	"github.com/minari-lab/salon-booking-service/pkg/timeutil"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64    `json:"id"`
	DesignerID    string   `json:"designerId"`
	StartAt       string   `json:"startAt"`
	EndAt         string   `json:"endAt"`
	ServiceIDs    []string `json:"serviceIds"`
	CustomerName  string   `json:"customerName"`
	CustomerPhone string   `json:"customerPhone"`
	ReminderOptIn bool     `json:"reminderOptIn"`
	TotalPrice    int64    `json:"totalPrice"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BookingResponse) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		DesignerID:    resp.DesignerID,
		StartAt:       timeutil.FormatLocalISO(resp.StartAt),
		EndAt:         timeutil.FormatLocalISO(resp.EndAt),
		ServiceIDs:    resp.ServiceIDs,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		ReminderOptIn: resp.ReminderOptIn,
		TotalPrice:    resp.TotalPrice,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
