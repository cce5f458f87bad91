package get_designer_day

import (
	"context"
	"time"

	"github.com/minari-lab/salon-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetDesignerDay(ctx context.Context, designerID string, date time.Time) (*models.DesignerDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
