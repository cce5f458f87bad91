package reschedule_booking

import (
	"time"

	rescheduleBooking "github.com/minari-lab/salon-booking-service/internal/usecase/reschedule_booking"
	"github.com/minari-lab/salon-booking-service/pkg/timeutil"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	CustomerPhone string `json:"customerPhone"`
	NewStartAt    string `json:"newStartAt"` // "2026-09-07T16:00:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            int64    `json:"id"`
	DesignerID    string   `json:"designerId"`
	StartAt       string   `json:"startAt"`
	EndAt         string   `json:"endAt"`
	ServiceIDs    []string `json:"serviceIds"`
	CustomerName  string   `json:"customerName"`
	CustomerPhone string   `json:"customerPhone"`
	TotalPrice    int64    `json:"totalPrice"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID int64) (*rescheduleBooking.Request, error) {
	newStartAt, err := timeutil.ParseLocalISO(r.NewStartAt)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		BookingID:     bookingID,
		CustomerPhone: r.CustomerPhone,
		NewStartAt:    newStartAt,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:            resp.ID,
		DesignerID:    resp.DesignerID,
		StartAt:       timeutil.FormatLocalISO(resp.StartAt),
		EndAt:         timeutil.FormatLocalISO(resp.EndAt),
		ServiceIDs:    resp.ServiceIDs,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		TotalPrice:    resp.TotalPrice,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
