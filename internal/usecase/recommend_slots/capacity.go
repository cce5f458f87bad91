package recommend_slots

import (
	"time"

	"github.com/minari-lab/salon-booking-service/internal/domain"
	"github.com/minari-lab/salon-booking-service/pkg/timeutil"
)

// applyDailyCaps применяет дневные лимиты дизайнера поверх результата перечисления
//
// Лимиты работают как жёсткий потолок на весь день, а не на отдельные слоты:
// - dailyMaxAppointments: если число бронирований дня уже достигло лимита,
//   день пустеет целиком
// - dailyMaxMinutes: если запрошенная услуга (с буфером) не помещается
//   в остаток минут дня, день пустеет целиком
//
// Если день проходит лимиты, список слотов возвращается без изменений -
// включая недоступные и past-слоты. Лимит минут НЕ фильтрует недоступные
// слоты отдельно: поведение нормализовано, фильтрация по available
// применяется только в пустеющем дне (то есть не применяется вовсе)
func applyDailyCaps(
	slots []domain.Slot,
	designer *domain.Designer,
	date time.Time,
	totalDurationMinutes int,
	bufferMinutes int,
	bookings []*domain.Booking,
) []domain.Slot {
	if !designer.HasDailyLimits() {
		return slots
	}

	count := 0
	usedMinutes := 0
	for _, b := range bookings {
		if b.DesignerID != designer.ID || !timeutil.SameDay(b.StartAt, date) {
			continue
		}
		count++
		usedMinutes += b.DurationMinutes() + bufferMinutes
	}

	if designer.DailyMaxAppointments != nil && count >= *designer.DailyMaxAppointments {
		return []domain.Slot{}
	}

	if designer.DailyMaxMinutes != nil {
		remaining := *designer.DailyMaxMinutes - usedMinutes
		if totalDurationMinutes+bufferMinutes > remaining {
			return []domain.Slot{}
		}
	}

	return slots
}
