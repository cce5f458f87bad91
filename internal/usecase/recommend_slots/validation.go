package recommend_slots

import (
	"fmt"

	"github.com/minari-lab/salon-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Движок перечисления предполагает уже валидированный вход и сам ничего не проверяет
func validateRequest(req *Request) error {
	if req.DesignerID == "" {
		return fmt.Errorf("%w: designerID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.TotalDurationMinutes <= 0 && len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: either serviceIDs or a positive totalDurationMinutes is required", ErrInvalidInput)
	}

	if req.TotalDurationMinutes > domain.MaxDurationMinutes {
		return fmt.Errorf("%w: totalDurationMinutes must not exceed %d", ErrInvalidInput, domain.MaxDurationMinutes)
	}

	if req.IntervalMinutes != nil &&
		(*req.IntervalMinutes < domain.MinIntervalMinutes || *req.IntervalMinutes > domain.MaxIntervalMinutes) {
		return fmt.Errorf("%w: intervalMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinIntervalMinutes, domain.MaxIntervalMinutes)
	}

	if req.BufferMinutes != nil && (*req.BufferMinutes < 0 || *req.BufferMinutes > domain.MaxBufferMinutes) {
		return fmt.Errorf("%w: bufferMinutes must be between 0 and %d", ErrInvalidInput, domain.MaxBufferMinutes)
	}

	if req.MinLeadHours != nil && *req.MinLeadHours < 0 {
		return fmt.Errorf("%w: minLeadHours must not be negative", ErrInvalidInput)
	}

	if req.MaxLeadDays != nil && *req.MaxLeadDays <= 0 {
		return fmt.Errorf("%w: maxLeadDays must be positive", ErrInvalidInput)
	}

	return nil
}
