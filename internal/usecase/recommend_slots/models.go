package recommend_slots

import (
	"time"

	"github.com/minari-lab/salon-booking-service/internal/domain"
)

// Request модель запроса на подбор слотов
type Request struct {
	DesignerID string    // ID дизайнера
	Date       time.Time // Календарный день поиска (без времени)

	// Либо список услуг (длительность суммируется по каталогу),
	// либо явная суммарная длительность в минутах
	ServiceIDs           []string
	TotalDurationMinutes int

	// Переопределения политики (опционально, nil = значение из конфигурации)
	IntervalMinutes *int
	BufferMinutes   *int
	MinLeadHours    *int
	MaxLeadDays     *int
}

// Response модель ответа со списком слотов
type Response struct {
	Date                 time.Time
	DesignerID           string
	TotalDurationMinutes int
	Slots                []Slot
}

// Slot модель кандидатного окна
type Slot struct {
	StartAt   time.Time
	EndAt     time.Time
	Available bool
	Reason    domain.SlotReason // пустая строка, если слот доступен
}

// Policy дефолты политики подбора слотов (из конфигурации сервиса)
type Policy struct {
	IntervalMinutes int
	BufferMinutes   int
	MinLeadHours    int
	MaxLeadDays     int
}

// slotOptions эффективные параметры подбора после применения переопределений запроса
type slotOptions struct {
	intervalMinutes int
	bufferMinutes   int
	minLeadHours    int
	maxLeadDays     int
}

// resolveOptions применяет переопределения запроса поверх дефолтов политики
func resolveOptions(req *Request, policy Policy) slotOptions {
	opts := slotOptions{
		intervalMinutes: policy.IntervalMinutes,
		bufferMinutes:   policy.BufferMinutes,
		minLeadHours:    policy.MinLeadHours,
		maxLeadDays:     policy.MaxLeadDays,
	}

	if req.IntervalMinutes != nil {
		opts.intervalMinutes = *req.IntervalMinutes
	}
	if req.BufferMinutes != nil {
		opts.bufferMinutes = *req.BufferMinutes
	}
	if req.MinLeadHours != nil {
		opts.minLeadHours = *req.MinLeadHours
	}
	if req.MaxLeadDays != nil {
		opts.maxLeadDays = *req.MaxLeadDays
	}

	return opts
}

func fromDomainSlots(slots []domain.Slot) []Slot {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			StartAt:   s.StartAt,
			EndAt:     s.EndAt,
			Available: s.Available,
			Reason:    s.Reason,
		}
	}
	return result
}
