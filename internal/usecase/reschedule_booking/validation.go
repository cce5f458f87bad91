package reschedule_booking

import "fmt"

// validateRequest валидирует входные данные запроса
// Проверки расписания (окно, сетка, лид-тайм, конфликты, лимиты) живут в
// internal/domain и общие для всех путей записи
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if req.NewStartAt.IsZero() {
		return fmt.Errorf("%w: newStartAt is required", ErrInvalidInput)
	}

	return nil
}
