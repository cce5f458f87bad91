package availability

import (
	"time"

	"github.com/minari-lab/salon-booking-service/internal/domain"
	recommendSlots "github.com/minari-lab/salon-booking-service/internal/usecase/recommend_slots"
	"github.com/minari-lab/salon-booking-service/pkg/timeutil"
)

// AvailabilityRequest HTTP request model
type AvailabilityRequest struct {
	DesignerID string   `json:"designerId"`
	Date       string   `json:"date"` // "2026-09-07"
	ServiceIDs []string `json:"serviceIds,omitempty"`

	// Явная длительность вместо списка услуг (опционально)
	TotalDurationMinutes int `json:"totalDurationMinutes,omitempty"`

	// Переопределения политики (опционально)
	IntervalMinutes *int `json:"intervalMinutes,omitempty"`
	BufferMinutes   *int `json:"bufferMinutes,omitempty"`
	MinLeadHours    *int `json:"minLeadHours,omitempty"`
	MaxLeadDays     *int `json:"maxLeadDays,omitempty"`
}

// SlotResponse кандидатное окно в HTTP ответе
type SlotResponse struct {
	StartAt   string `json:"startAt"` // "2026-09-07T10:00:00"
	EndAt     string `json:"endAt"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"` // "past" | "conflict"
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date                 string          `json:"date"`
	DesignerID           string          `json:"designerId"`
	TotalDurationMinutes int             `json:"totalDurationMinutes"`
	Slots                []*SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AvailabilityRequest) ToUseCaseRequest() (*recommendSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, err
	}

	return &recommendSlots.Request{
		DesignerID:           r.DesignerID,
		Date:                 date,
		ServiceIDs:           r.ServiceIDs,
		TotalDurationMinutes: r.TotalDurationMinutes,
		IntervalMinutes:      r.IntervalMinutes,
		BufferMinutes:        r.BufferMinutes,
		MinLeadHours:         r.MinLeadHours,
		MaxLeadDays:          r.MaxLeadDays,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *recommendSlots.Response) *AvailabilityResponse {
	slots := make([]*SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = &SlotResponse{
			StartAt:   timeutil.FormatLocalISO(s.StartAt),
			EndAt:     timeutil.FormatLocalISO(s.EndAt),
			Available: s.Available,
			Reason:    string(s.Reason),
		}
	}
	return &AvailabilityResponse{
		Date:                 resp.Date.Format(domain.DateFormat),
		DesignerID:           resp.DesignerID,
		TotalDurationMinutes: resp.TotalDurationMinutes,
		Slots:                slots,
	}
}
