package create_block

import (
	"context"

	"github.com/minari-lab/salon-booking-service/internal/service/designers/models"
)

type DesignersService interface {
	CreateBlock(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
