package designers

import (
	"context"
	"time"

	"github.com/minari-lab/salon-booking-service/internal/domain"
)

// DesignerRepository интерфейс репозитория дизайнеров
type DesignerRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Designer, error)
	List(ctx context.Context) ([]*domain.Designer, error)
	Update(ctx context.Context, d *domain.Designer) (*domain.Designer, error)
}

// BlockRepository интерфейс репозитория ручных блокировок
type BlockRepository interface {
	Create(ctx context.Context, b *domain.Block) (*domain.Block, error)
	Delete(ctx context.Context, id int64) error
}

// ServiceItemRepository интерфейс каталога услуг
type ServiceItemRepository interface {
	List(ctx context.Context) ([]*domain.ServiceItem, error)
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
