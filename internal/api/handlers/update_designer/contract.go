package update_designer

import (
	"context"

	"github.com/minari-lab/salon-booking-service/internal/service/designers/models"
)

type DesignersService interface {
	Update(ctx context.Context, id string, req *models.UpdateDesignerRequest) (*models.DesignerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
