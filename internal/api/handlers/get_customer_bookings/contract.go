package get_customer_bookings

import (
	"context"

	"github.com/minari-lab/salon-booking-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetCustomerBookings(ctx context.Context, phone string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
