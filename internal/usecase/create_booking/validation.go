package create_booking

import (
	"fmt"

	"github.com/minari-lab/salon-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Проверки расписания (окно, сетка, лид-тайм, конфликты, лимиты) живут в
// internal/domain и общие для всех путей записи
func validateRequest(req *Request) error {
	if req.DesignerID == "" {
		return fmt.Errorf("%w: designerID is required", ErrInvalidInput)
	}

	if req.StartAt.IsZero() {
		return fmt.Errorf("%w: startAt is required", ErrInvalidInput)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}

	if countDigits(req.CustomerPhone) < domain.MinPhoneLength {
		return fmt.Errorf("%w: customer phone must contain at least %d digits",
			ErrInvalidInput, domain.MinPhoneLength)
	}

	// Оба обязательных согласия должны быть даны явно
	if !req.AgreedTerms || !req.AgreedPrivacy {
		return ErrConsentRequired
	}

	return nil
}

// countDigits считает цифры в строке телефона (разделители игнорируются)
func countDigits(phone string) int {
	count := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			count++
		}
	}
	return count
}
