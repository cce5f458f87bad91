package get_designers

import (
	"context"

	"github.com/minari-lab/salon-booking-service/internal/service/designers/models"
)

type DesignersService interface {
	List(ctx context.Context) (*models.DesignerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
