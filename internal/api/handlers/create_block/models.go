package create_block

import (
	"time"

	"github.com/minari-lab/salon-booking-service/internal/service/designers/models"
	"github.com/minari-lab/salon-booking-service/pkg/timeutil"
)

// CreateBlockRequest HTTP request model
type CreateBlockRequest struct {
	DesignerID string  `json:"designerId"`
	StartAt    string  `json:"startAt"` // "2026-09-07T12:00:00"
	EndAt      string  `json:"endAt"`
	Reason     *string `json:"reason,omitempty"`
}

// BlockResponse HTTP response model
type BlockResponse struct {
	ID         int64   `json:"id"`
	DesignerID string  `json:"designerId"`
	StartAt    string  `json:"startAt"`
	EndAt      string  `json:"endAt"`
	Reason     *string `json:"reason,omitempty"`
	CreatedAt  string  `json:"createdAt"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateBlockRequest) ToServiceRequest() (*models.CreateBlockRequest, error) {
	startAt, err := timeutil.ParseLocalISO(r.StartAt)
	if err != nil {
		return nil, err
	}
	endAt, err := timeutil.ParseLocalISO(r.EndAt)
	if err != nil {
		return nil, err
	}

	return &models.CreateBlockRequest{
		DesignerID: r.DesignerID,
		StartAt:    startAt,
		EndAt:      endAt,
		Reason:     r.Reason,
	}, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.BlockResponse) *BlockResponse {
	return &BlockResponse{
		ID:         resp.ID,
		DesignerID: resp.DesignerID,
		StartAt:    timeutil.FormatLocalISO(resp.StartAt),
		EndAt:      timeutil.FormatLocalISO(resp.EndAt),
		Reason:     resp.Reason,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
