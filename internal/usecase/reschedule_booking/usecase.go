package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/minari-lab/salon-booking-service/internal/domain"
	bookingRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/booking"
	designerRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/designer"

	"github.com/minari-lab/salon-booking-service/pkg/timeutil"
)

// UseCase use case для переноса бронирования
type UseCase struct {
	designerRepo DesignerRepository
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
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
	txManager TransactionManager,
	policy Policy,
	logger Logger,
) *UseCase {
	return &UseCase{
		designerRepo: designerRepo,
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
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

// Execute выполняет use case переноса бронирования
// Длительность услуги сохраняется, меняется только время начала
// Проверка доступности и обновление идут в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: id=%d, newStart=%s",
		req.BookingID, timeutil.FormatLocalISO(req.NewStartAt))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *Response

	// 3. Выполняем проверку и обновление в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем бронирование и сверяем телефон
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.MatchesPhone(req.CustomerPhone) {
			uc.logger.Warn("RescheduleBooking: phone mismatch for booking id=%d", req.BookingID)
			return ErrBookingNotFound
		}

		// 3.2. Получаем дизайнера
		designer, err := uc.designerRepo.GetByID(txCtx, booking.DesignerID)
		if err != nil {
			if errors.Is(err, designerRepo.ErrDesignerNotFound) {
				uc.logger.Warn("RescheduleBooking: designer id=%s not found", booking.DesignerID)
				return ErrDesignerNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to get designer id=%s: %v", booking.DesignerID, err)
			return fmt.Errorf("%w: failed to get designer: %v", ErrInternal, err)
		}

		totalDuration := booking.DurationMinutes()
		date := timeutil.DateOnly(req.NewStartAt)
		newEndAt := timeutil.AddMinutes(req.NewStartAt, totalDuration)
		newEndBuffered := timeutil.AddMinutes(newEndAt, uc.policy.BufferMinutes)

		// 3.3. Проверяем рабочее окно, сетку и лид-тайм нового времени
		window, err := domain.ResolveWorkWindow(designer, date)
		if err != nil {
			uc.logger.Warn("RescheduleBooking: work window check failed: %v", err)
			if errors.Is(err, domain.ErrDayClosed) {
				return fmt.Errorf("%w: %v", ErrSlotNotFound, err)
			}
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}
		if err := domain.ValidateSlotWindow(window, req.NewStartAt,
			totalDuration, uc.policy.BufferMinutes, uc.policy.IntervalMinutes); err != nil {
			uc.logger.Warn("RescheduleBooking: slot window check failed: %v", err)
			return fmt.Errorf("%w: %v", ErrSlotNotFound, err)
		}
		if err := domain.CheckLeadTime(req.NewStartAt, newEndAt, now,
			uc.policy.MinLeadHours, uc.policy.MaxLeadDays); err != nil {
			uc.logger.Warn("RescheduleBooking: lead time check failed: %v", err)
			if errors.Is(err, domain.ErrLeadTooFar) {
				return fmt.Errorf("%w: %v", ErrSlotTooFar, err)
			}
			return fmt.Errorf("%w: %v", ErrSlotInPast, err)
		}

		// 3.4. Получаем занятость нового дня с блокировкой строк (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetByDesignerAndDate(txCtx, booking.DesignerID, date)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		blocks, err := uc.blockRepo.GetByDesignerAndDate(txCtx, booking.DesignerID, date)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get blocks: %v", err)
			return fmt.Errorf("%w: failed to get blocks: %v", ErrInternal, err)
		}

		// 3.5. Проверяем конфликты, исключая саму переносимую запись
		if domain.HasScheduleConflict(designer, date, req.NewStartAt, newEndBuffered,
			uc.policy.BufferMinutes, bookings, blocks, booking.ID) {
			uc.logger.Warn("RescheduleBooking: slot %s conflicts for designer=%s",
				timeutil.FormatLocalISO(req.NewStartAt), booking.DesignerID)
			return ErrSlotConflict
		}

		// 3.6. Проверяем дневные лимиты нового дня, не считая саму запись:
		// перенос внутри своего дня не упирается в собственный лимит
		if err := domain.CheckDailyLimits(designer, date, totalDuration,
			uc.policy.BufferMinutes, bookings, booking.ID); err != nil {
			uc.logger.Warn("RescheduleBooking: daily limit check failed: %v", err)
			return fmt.Errorf("%w: %v", ErrDailyLimitReached, err)
		}

		// 3.7. Обновляем время бронирования
		if err := uc.bookingRepo.UpdateTimes(txCtx, booking.ID, req.NewStartAt, newEndAt); err != nil {
			uc.logger.Error("RescheduleBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}

		result = &Response{
			ID:            booking.ID,
			DesignerID:    booking.DesignerID,
			StartAt:       req.NewStartAt,
			EndAt:         newEndAt,
			ServiceIDs:    booking.ServiceIDs,
			CustomerName:  booking.CustomerName,
			CustomerPhone: booking.CustomerPhone,
			TotalPrice:    booking.TotalPrice,
			CreatedAt:     booking.CreatedAt,
			UpdatedAt:     now,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully rescheduled booking id=%d to %s",
		result.ID, timeutil.FormatLocalISO(result.StartAt))

	return result, nil
}
