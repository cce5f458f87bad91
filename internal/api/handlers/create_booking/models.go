package create_booking

import (
	"time"

	createBooking "github.com/minari-lab/salon-booking-service/internal/usecase/create_booking"
	"github.com/minari-lab/salon-booking-service/pkg/timeutil"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	DesignerID string   `json:"designerId"`
	StartAt    string   `json:"startAt"` // "2026-09-07T14:00:00"
	ServiceIDs []string `json:"serviceIds"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	AgreedTerms   bool `json:"agreedTerms"`
	AgreedPrivacy bool `json:"agreedPrivacy"`
	ReminderOptIn bool `json:"reminderOptIn"`
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
	ReminderOptIn bool     `json:"reminderOptIn"`
	TotalPrice    int64    `json:"totalPrice"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startAt, err := timeutil.ParseLocalISO(r.StartAt)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		DesignerID:    r.DesignerID,
		StartAt:       startAt,
		ServiceIDs:    r.ServiceIDs,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		AgreedTerms:   r.AgreedTerms,
		AgreedPrivacy: r.AgreedPrivacy,
		ReminderOptIn: r.ReminderOptIn,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
