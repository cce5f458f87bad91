package recommend_slots

import (
	"context"
	"time"

	"github.com/minari-lab/salon-booking-service/internal/domain"
)

// DesignerRepository интерфейс репозитория дизайнеров
type DesignerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Designer, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByDesignerAndDate получает все бронирования дизайнера на календарный день
	GetByDesignerAndDate(ctx context.Context, designerID string, date time.Time) ([]*domain.Booking, error)
}

// BlockRepository интерфейс репозитория ручных блокировок
type BlockRepository interface {
	GetByDesignerAndDate(ctx context.Context, designerID string, date time.Time) ([]*domain.Block, error)
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetByIDs(ctx context.Context, ids []string) ([]*domain.ServiceItem, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
