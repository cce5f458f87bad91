package get_designer_month

import (
	"context"
	"time"

	"github.com/minari-lab/salon-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetDesignerMonth(ctx context.Context, designerID string, year int, month time.Month) (*models.DesignerMonthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
