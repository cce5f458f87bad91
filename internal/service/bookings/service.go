package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minari-lab/salon-booking-service/internal/domain"
	bookingRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/booking"
	designerRepo "github.com/minari-lab/salon-booking-service/internal/infra/storage/designer"
	"github.com/minari-lab/salon-booking-service/internal/service/bookings/models"
)

// Service сервис для чтения и отмены бронирований
type Service struct {
	bookingRepo  BookingRepository
	blockRepo    BlockRepository
	designerRepo DesignerRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	blockRepo BlockRepository,
	designerRepo DesignerRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		blockRepo:    blockRepo,
		designerRepo: designerRepo,
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Телефон выступает единственным клиентским credential: без совпадения
// запись считается не найденной
func (s *Service) GetByID(ctx context.Context, id int64, phone string) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !booking.MatchesPhone(phone) {
		s.logger.Warn("GetByID: phone mismatch for booking id=%d", id)
		return nil, ErrBookingNotFound
	}

	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента по телефону
func (s *Service) GetCustomerBookings(ctx context.Context, phone string) (*models.BookingListResponse, error) {
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	s.logger.Info("GetCustomerBookings: fetching bookings by phone")

	bookings, err := s.bookingRepo.GetByCustomerPhone(ctx, phone)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование по ID и телефону клиента
// Отменённая запись удаляется: слот сразу освобождается для других клиентов
func (s *Service) Cancel(ctx context.Context, id int64, phone string) error {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.MatchesPhone(phone) {
		s.logger.Warn("Cancel: phone mismatch for booking id=%d", id)
		return ErrBookingNotFound
	}

	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to delete booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}

// GetDesignerDay возвращает расписание дизайнера на день: бронирования,
// блокировки и рабочее окно (админский обзор)
func (s *Service) GetDesignerDay(ctx context.Context, designerID string, date time.Time) (*models.DesignerDayResponse, error) {
	s.logger.Info("GetDesignerDay: designer=%s, date=%s", designerID, date.Format(domain.DateFormat))

	designer, err := s.designerRepo.GetByID(ctx, designerID)
	if err != nil {
		if errors.Is(err, designerRepo.ErrDesignerNotFound) {
			s.logger.Warn("GetDesignerDay: designer id=%s not found", designerID)
			return nil, ErrDesignerNotFound
		}
		s.logger.Error("GetDesignerDay: repository error for designer id=%s: %v", designerID, err)
		return nil, fmt.Errorf("%w: GetDesignerDay - repository error: %v", ErrInternal, err)
	}

	bookings, err := s.bookingRepo.GetByDesignerAndDate(ctx, designerID, date)
	if err != nil {
		s.logger.Error("GetDesignerDay: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: GetDesignerDay - repository error: %v", ErrInternal, err)
	}

	blocks, err := s.blockRepo.GetByDesignerAndDate(ctx, designerID, date)
	if err != nil {
		s.logger.Error("GetDesignerDay: failed to get blocks: %v", err)
		return nil, fmt.Errorf("%w: GetDesignerDay - repository error: %v", ErrInternal, err)
	}

	resp := &models.DesignerDayResponse{
		DesignerID: designerID,
		Date:       date.Format(domain.DateFormat),
		Bookings:   models.FromDomainBookingList(bookings).Bookings,
		Blocks:     models.FromDomainBlockList(blocks),
	}

	resp.IsHoliday = designer.IsHolidayOn(date)
	if !resp.IsHoliday {
		if sh, ok := designer.SpecialHoursOn(date); ok {
			resp.IsWorkday = true
			resp.WorkStart = sh.Start.String()
			resp.WorkEnd = sh.End.String()
		} else if designer.WorkHours.Includes(date.Weekday()) {
			resp.IsWorkday = true
			resp.WorkStart = designer.WorkHours.Start.String()
			resp.WorkEnd = designer.WorkHours.End.String()
		}
	}

	return resp, nil
}

// GetDesignerMonth возвращает помесячную сводку: для каждого дня счётчики
// бронирований, блокировок и занятых минут
func (s *Service) GetDesignerMonth(ctx context.Context, designerID string, year int, month time.Month) (*models.DesignerMonthResponse, error) {
	s.logger.Info("GetDesignerMonth: designer=%s, month=%d-%02d", designerID, year, int(month))

	designer, err := s.designerRepo.GetByID(ctx, designerID)
	if err != nil {
		if errors.Is(err, designerRepo.ErrDesignerNotFound) {
			s.logger.Warn("GetDesignerMonth: designer id=%s not found", designerID)
			return nil, ErrDesignerNotFound
		}
		s.logger.Error("GetDesignerMonth: repository error for designer id=%s: %v", designerID, err)
		return nil, fmt.Errorf("%w: GetDesignerMonth - repository error: %v", ErrInternal, err)
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, 0)

	bookings, err := s.bookingRepo.GetByDesignerAndRange(ctx, designerID, monthStart, monthEnd)
	if err != nil {
		s.logger.Error("GetDesignerMonth: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: GetDesignerMonth - repository error: %v", ErrInternal, err)
	}

	blocks, err := s.blockRepo.GetByDesignerAndRange(ctx, designerID, monthStart, monthEnd)
	if err != nil {
		s.logger.Error("GetDesignerMonth: failed to get blocks: %v", err)
		return nil, fmt.Errorf("%w: GetDesignerMonth - repository error: %v", ErrInternal, err)
	}

	// Раскладываем записи по дням месяца
	bookingsByDay := make(map[string][]*domain.Booking)
	for _, b := range bookings {
		key := b.StartAt.Format(domain.DateFormat)
		bookingsByDay[key] = append(bookingsByDay[key], b)
	}
	blocksByDay := make(map[string]int)
	for _, bl := range blocks {
		blocksByDay[bl.StartAt.Format(domain.DateFormat)]++
	}

	days := make([]*models.DaySummary, 0, 31)
	for d := monthStart; d.Before(monthEnd); d = d.AddDate(0, 0, 1) {
		key := d.Format(domain.DateFormat)
		summary := &models.DaySummary{
			Date:       key,
			IsHoliday:  designer.IsHolidayOn(d),
			BlockCount: blocksByDay[key],
		}
		if !summary.IsHoliday {
			_, hasSpecial := designer.SpecialHoursOn(d)
			summary.IsWorkday = hasSpecial || designer.WorkHours.Includes(d.Weekday())
		}
		for _, b := range bookingsByDay[key] {
			summary.BookingCount++
			summary.BookedMin += b.DurationMinutes()
		}
		days = append(days, summary)
	}

	return &models.DesignerMonthResponse{
		DesignerID: designerID,
		Year:       year,
		Month:      int(month),
		Days:       days,
	}, nil
}
