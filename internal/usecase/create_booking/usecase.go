package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/minari-lab/salon-booking-service/internal/domain"
	designerRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/designer"
	serviceRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/serviceitem"
	"github.com/minari-lab/salon-booking-service/pkg/timeutil"
)

// UseCase use case для создания бронирования
type UseCase struct {
	designerRepo DesignerRepository
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	serviceRepo  ServiceRepository
	txManager    TransactionManager
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
	txManager TransactionManager,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		designerRepo: designerRepo,
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		serviceRepo:  serviceRepo,
		txManager:    txManager,
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

// Execute выполняет use case создания бронирования
// Проверка доступности и вставка идут в одной сериализуемой транзакции
// с блокировкой строк дня, что исключает двойное бронирование при гонке
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: designer=%s, start=%s, services=%v",
		req.DesignerID, timeutil.FormatLocalISO(req.StartAt), req.ServiceIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем услуги и считаем суммарную длительность и цену
	services, err := uc.serviceRepo.GetByIDs(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: unknown service in %v", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get services %v: %v", req.ServiceIDs, err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	totalDuration := domain.SumDurationMinutes(services)
	if totalDuration <= 0 || totalDuration > domain.MaxDurationMinutes {
		uc.logger.Warn("CreateBooking: total duration %d out of range", totalDuration)
		return nil, fmt.Errorf("%w: total duration %d minutes is out of range", ErrInvalidInput, totalDuration)
	}
	totalPrice := domain.SumPrice(services)

	date := timeutil.DateOnly(req.StartAt)
	endAt := timeutil.AddMinutes(req.StartAt, totalDuration)
	endBuffered := timeutil.AddMinutes(endAt, uc.policy.BufferMinutes)

	// Переменная для хранения результата
	var result *domain.Booking

	// 4. Выполняем проверку и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем дизайнера
		designer, err := uc.designerRepo.GetByID(txCtx, req.DesignerID)
		if err != nil {
			if errors.Is(err, designerRepo.ErrDesignerNotFound) {
				uc.logger.Warn("CreateBooking: designer id=%s not found", req.DesignerID)
				return ErrDesignerNotFound
			}
			uc.logger.Error("CreateBooking: failed to get designer id=%s: %v", req.DesignerID, err)
			return fmt.Errorf("%w: failed to get designer: %v", ErrInternal, err)
		}

		// 4.2. Проверяем, что время лежит в рабочем окне и на сетке слотов
		window, err := domain.ResolveWorkWindow(designer, date)
		if err != nil {
			uc.logger.Warn("CreateBooking: work window check failed: %v", err)
			if errors.Is(err, domain.ErrDayClosed) {
				return fmt.Errorf("%w: %v", ErrSlotNotFound, err)
			}
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if err := domain.ValidateSlotWindow(window, req.StartAt,
			totalDuration, uc.policy.BufferMinutes, uc.policy.IntervalMinutes); err != nil {
			uc.logger.Warn("CreateBooking: slot window check failed: %v", err)
			return fmt.Errorf("%w: %v", ErrSlotNotFound, err)
		}

		// 4.3. Проверяем лид-тайм
		if err := domain.CheckLeadTime(req.StartAt, endAt, now,
			uc.policy.MinLeadHours, uc.policy.MaxLeadDays); err != nil {
			uc.logger.Warn("CreateBooking: lead time check failed: %v", err)
			if errors.Is(err, domain.ErrLeadTooFar) {
				return fmt.Errorf("%w: %v", ErrSlotTooFar, err)
			}
			return fmt.Errorf("%w: %v", ErrSlotInPast, err)
		}

		// 4.4. Получаем занятость дня с блокировкой строк (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByDesignerAndDate(txCtx, req.DesignerID, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		blocks, err := uc.blockRepo.GetByDesignerAndDate(txCtx, req.DesignerID, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get blocks: %v", err)
			return fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
		}

		// 4.5. Повторная проверка конфликтов уже под блокировкой
		if domain.HasScheduleConflict(designer, date, req.StartAt, endBuffered,
			uc.policy.BufferMinutes, bookings, blocks, 0) {
			uc.logger.Warn("CreateBooking: slot %s conflicts for designer=%s",
				timeutil.FormatLocalISO(req.StartAt), req.DesignerID)
			return ErrSlotConflict
		}

		// 4.6. Проверяем дневные лимиты
		if err := domain.CheckDailyLimits(designer, date, totalDuration,
			uc.policy.BufferMinutes, bookings, 0); err != nil {
			uc.logger.Warn("CreateBooking: daily limit check failed: %v", err)
			return fmt.Errorf("%w: %v", ErrDailyLimitReached, err)
		}

		// 4.7. Создаем бронирование
		booking := &domain.Booking{
			DesignerID:    req.DesignerID,
			StartAt:       req.StartAt,
			EndAt:         endAt,
			ServiceIDs:    req.ServiceIDs,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			AgreedTerms:   req.AgreedTerms,
			AgreedPrivacy: req.AgreedPrivacy,
			ReminderOptIn: req.ReminderOptIn,
			TotalPrice:    totalPrice,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		DesignerID:    result.DesignerID,
		StartAt:       result.StartAt,
		EndAt:         result.EndAt,
		ServiceIDs:    result.ServiceIDs,
		CustomerName:  result.CustomerName,
		CustomerPhone: result.CustomerPhone,
		ReminderOptIn: result.ReminderOptIn,
		TotalPrice:    result.TotalPrice,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
