package recommend_slots

import (
	"context"
	"errors"
	"fmt"

	designerRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/designer"
	serviceRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/serviceitem"

	"github.com/minari-lab/salon-booking-service/internal/domain"
)

// UseCase use case подбора слотов на день
type UseCase struct {
	designerRepo DesignerRepository
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	serviceRepo  ServiceRepository
	policy       Policy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	designerRepo DesignerRepository,
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	serviceRepo ServiceRepository,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		designerRepo: designerRepo,
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		serviceRepo:  serviceRepo,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет провайдер времени (используется в тестах)
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case подбора слотов
// Операция только читающая, транзакция не требуется
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RecommendSlots: designer=%s, date=%s, services=%v, duration=%d",
		req.DesignerID, req.Date.Format(domain.DateFormat), req.ServiceIDs, req.TotalDurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RecommendSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем дизайнера
	// Неизвестный дизайнер трактуется как отсутствие доступности, не как ошибка
	designer, err := uc.designerRepo.GetByID(ctx, req.DesignerID)
	if err != nil {
		if errors.Is(err, designerRepo.ErrDesignerNotFound) {
			uc.logger.Warn("RecommendSlots: designer id=%s not found, returning empty day", req.DesignerID)
			return &Response{
				Date:                 req.Date,
				DesignerID:           req.DesignerID,
				TotalDurationMinutes: req.TotalDurationMinutes,
				Slots:                []Slot{},
			}, nil
		}
		uc.logger.Error("RecommendSlots: failed to get designer id=%s: %v", req.DesignerID, err)
		return nil, fmt.Errorf("%w: failed to get designer: %v", ErrInternal, err)
	}

	// 4. Определяем суммарную длительность: явная из запроса либо сумма по каталогу
	totalDuration := req.TotalDurationMinutes
	if totalDuration <= 0 {
		services, err := uc.serviceRepo.GetByIDs(ctx, req.ServiceIDs)
		if err != nil {
			if errors.Is(err, serviceRepo.ErrServiceNotFound) {
				uc.logger.Warn("RecommendSlots: unknown service in %v", req.ServiceIDs)
				return nil, ErrServiceNotFound
			}
			uc.logger.Error("RecommendSlots: failed to get services %v: %v", req.ServiceIDs, err)
			return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
		}
		totalDuration = domain.SumDurationMinutes(services)
	}

	if totalDuration <= 0 || totalDuration > domain.MaxDurationMinutes {
		uc.logger.Warn("RecommendSlots: resolved duration %d out of range", totalDuration)
		return nil, fmt.Errorf("%w: total duration %d minutes is out of range", ErrInvalidInput, totalDuration)
	}

	// 5. Получаем занятость дня: бронирования и ручные блокировки
	bookings, err := uc.bookingRepo.GetByDesignerAndDate(ctx, req.DesignerID, req.Date)
	if err != nil {
		uc.logger.Error("RecommendSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	blocks, err := uc.blockRepo.GetByDesignerAndDate(ctx, req.DesignerID, req.Date)
	if err != nil {
		uc.logger.Error("RecommendSlots: failed to get blocks: %v", err)
		return nil, fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
	}

	// 6. Перечисляем слоты и применяем дневные лимиты
	opts := resolveOptions(req, uc.policy)
	slots := buildSlots(designer, req.Date, totalDuration, opts, bookings, blocks, now)
	slots = applyDailyCaps(slots, designer, req.Date, totalDuration, opts.bufferMinutes, bookings)

	available := 0
	for _, s := range slots {
		if s.Available {
			available++
		}
	}
	uc.logger.Info("RecommendSlots: designer=%s, date=%s: %d slots, %d available",
		req.DesignerID, req.Date.Format(domain.DateFormat), len(slots), available)

	return &Response{
		Date:                 req.Date,
		DesignerID:           req.DesignerID,
		TotalDurationMinutes: totalDuration,
		Slots:                fromDomainSlots(slots),
	}, nil
}
