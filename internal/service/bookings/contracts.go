package bookings

import (
	"context"
	"time"

	"github.com/minari-lab/salon-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByDesignerAndDate(ctx context.Context, designerID string, date time.Time) ([]*domain.Booking, error)
	GetByDesignerAndRange(ctx context.Context, designerID string, from, to time.Time) ([]*domain.Booking, error)
	GetByCustomerPhone(ctx context.Context, phone string) ([]*domain.Booking, error)
	Delete(ctx context.Context, id int64) error
}

// BlockRepository интерфейс репозитория ручных блокировок
type BlockRepository interface {
	GetByDesignerAndDate(ctx context.Context, designerID string, date time.Time) ([]*domain.Block, error)
	GetByDesignerAndRange(ctx context.Context, designerID string, from, to time.Time) ([]*domain.Block, error)
}

// DesignerRepository интерфейс репозитория дизайнеров
type DesignerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Designer, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
