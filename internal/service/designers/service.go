package designers

import (
	"context"
	"errors"
	"fmt"

	blockRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/block"
	designerRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/designer"
	"github.com/minari-lab/salon-booking-service/internal/service/designers/models"
)

// Service сервис дизайнеров: публичный каталог и админская конфигурация расписаний
type Service struct {
	designerRepo DesignerRepository
	blockRepo    BlockRepository
	serviceRepo  ServiceItemRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса дизайнеров
func NewService(
	designerRepo DesignerRepository,
	blockRepo BlockRepository,
	serviceRepo ServiceItemRepository,
	logger Logger,
) *Service {
	return &Service{
		designerRepo: designerRepo,
		blockRepo:    blockRepo,
		serviceRepo:  serviceRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// List возвращает всех дизайнеров с их расписаниями
func (s *Service) List(ctx context.Context) (*models.DesignerListResponse, error) {
	s.logger.Info("List: fetching designers")

	designers, err := s.designerRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDesignerList(designers), nil
}

// GetByID возвращает дизайнера по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.DesignerResponse, error) {
	s.logger.Info("GetByID: fetching designer id=%s", id)

	designer, err := s.designerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, designerRepo.ErrDesignerNotFound) {
			s.logger.Warn("GetByID: designer id=%s not found", id)
			return nil, ErrDesignerNotFound
		}
		s.logger.Error("GetByID: repository error for designer id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainDesigner(designer), nil
}

// Update полностью заменяет конфигурацию расписания дизайнера
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateDesignerRequest) (*models.DesignerResponse, error) {
	s.logger.Info("Update: updating designer id=%s", id)

	if err := validateUpdateRequest(req); err != nil {
		s.logger.Warn("Update: validation failed for designer id=%s: %v", id, err)
		return nil, err
	}

	updated, err := s.designerRepo.Update(ctx, req.ToDomainDesigner(id))
	if err != nil {
		if errors.Is(err, designerRepo.ErrDesignerNotFound) {
			s.logger.Warn("Update: designer id=%s not found", id)
			return nil, ErrDesignerNotFound
		}
		s.logger.Error("Update: repository error for designer id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated designer id=%s", id)
	return models.FromDomainDesigner(updated), nil
}

// CreateBlock создает ручную блокировку времени дизайнера
func (s *Service) CreateBlock(ctx context.Context, req *models.CreateBlockRequest) (*models.BlockResponse, error) {
	s.logger.Info("CreateBlock: designer=%s, start=%s", req.DesignerID, req.StartAt)

	if err := validateCreateBlockRequest(req); err != nil {
		s.logger.Warn("CreateBlock: validation failed: %v", err)
		return nil, err
	}

	// Блокировку можно создать только для существующего дизайнера
	if _, err := s.designerRepo.GetByID(ctx, req.DesignerID); err != nil {
		if errors.Is(err, designerRepo.ErrDesignerNotFound) {
			s.logger.Warn("CreateBlock: designer id=%s not found", req.DesignerID)
			return nil, ErrDesignerNotFound
		}
		s.logger.Error("CreateBlock: repository error for designer id=%s: %v", req.DesignerID, err)
		return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrInternal, err)
	}

	created, err := s.blockRepo.Create(ctx, req.ToDomainBlock())
	if err != nil {
		s.logger.Error("CreateBlock: repository error: %v", err)
		return nil, fmt.Errorf("%w: CreateBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateBlock: successfully created block id=%d", created.ID)
	return models.FromDomainBlock(created), nil
}

// DeleteBlock удаляет ручную блокировку
func (s *Service) DeleteBlock(ctx context.Context, id int64) error {
	s.logger.Info("DeleteBlock: deleting block id=%d", id)

	if err := s.blockRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockRepo.ErrBlockNotFound) {
			s.logger.Warn("DeleteBlock: block id=%d not found", id)
			return ErrBlockNotFound
		}
		s.logger.Error("DeleteBlock: repository error for block id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBlock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteBlock: successfully deleted block id=%d", id)
	return nil
}

// ListServices возвращает каталог услуг
func (s *Service) ListServices(ctx context.Context) (*models.ServiceItemListResponse, error) {
	s.logger.Info("ListServices: fetching service catalog")

	items, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceItemList(items), nil
}
