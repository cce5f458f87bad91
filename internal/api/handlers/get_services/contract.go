package get_services

import (
	"context"

	"github.com/minari-lab/salon-booking-service/internal/service/designers/models"
)

type DesignersService interface {
	ListServices(ctx context.Context) (*models.ServiceItemListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
