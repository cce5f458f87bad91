package designers

import (
	"fmt"
	"time"

	"github.com/minari-lab/salon-booking-service/internal/domain"
	"github.com/minari-lab/salon-booking-service/internal/service/designers/models"
	"github.com/minari-lab/salon-booking-service/pkg/types"
)

// validateUpdateRequest проверяет конфигурацию расписания целиком:
// все времена в формате HH:MM, начала раньше концов, даты в формате YYYY-MM-DD
func validateUpdateRequest(req *models.UpdateDesignerRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if len(req.WorkHours.Weekdays) == 0 {
		return fmt.Errorf("%w: at least one working weekday is required", ErrInvalidSchedule)
	}
	for _, wd := range req.WorkHours.Weekdays {
		if wd < 0 || wd > 6 {
			return fmt.Errorf("%w: weekday %d out of range 0-6", ErrInvalidSchedule, wd)
		}
	}
	if err := validateTimeRange(req.WorkHours.Start, req.WorkHours.End); err != nil {
		return fmt.Errorf("%w: workHours: %v", ErrInvalidSchedule, err)
	}

	for _, h := range req.Holidays {
		if err := validateDate(h); err != nil {
			return fmt.Errorf("%w: holidays: %v", ErrInvalidSchedule, err)
		}
	}

	for _, br := range req.Breaks {
		if err := validateTimeRange(br.Start, br.End); err != nil {
			return fmt.Errorf("%w: breaks: %v", ErrInvalidSchedule, err)
		}
	}

	for _, rb := range req.RecurringBreaks {
		if rb.Weekday < 0 || rb.Weekday > 6 {
			return fmt.Errorf("%w: recurringBreaks: weekday %d out of range 0-6", ErrInvalidSchedule, rb.Weekday)
		}
		if err := validateTimeRange(rb.Start, rb.End); err != nil {
			return fmt.Errorf("%w: recurringBreaks: %v", ErrInvalidSchedule, err)
		}
	}

	for _, db := range req.DefaultBlocks {
		if err := validateDate(db.Date); err != nil {
			return fmt.Errorf("%w: defaultBlocks: %v", ErrInvalidSchedule, err)
		}
		if err := validateTimeRange(db.Start, db.End); err != nil {
			return fmt.Errorf("%w: defaultBlocks: %v", ErrInvalidSchedule, err)
		}
		if len(db.Reason) > domain.MaxReasonLength {
			return fmt.Errorf("%w: defaultBlocks: reason too long", ErrInvalidSchedule)
		}
	}

	for date, sh := range req.SpecialHours {
		if err := validateDate(date); err != nil {
			return fmt.Errorf("%w: specialHours: %v", ErrInvalidSchedule, err)
		}
		if err := validateTimeRange(sh.Start, sh.End); err != nil {
			return fmt.Errorf("%w: specialHours: %v", ErrInvalidSchedule, err)
		}
	}

	if req.DailyMaxAppointments != nil && *req.DailyMaxAppointments <= 0 {
		return fmt.Errorf("%w: dailyMaxAppointments must be positive", ErrInvalidSchedule)
	}
	if req.DailyMaxMinutes != nil && *req.DailyMaxMinutes <= 0 {
		return fmt.Errorf("%w: dailyMaxMinutes must be positive", ErrInvalidSchedule)
	}

	return nil
}

// validateCreateBlockRequest проверяет запрос на создание блокировки
func validateCreateBlockRequest(req *models.CreateBlockRequest) error {
	if req.DesignerID == "" {
		return fmt.Errorf("%w: designerID is required", ErrInvalidInput)
	}

	if req.StartAt.IsZero() || req.EndAt.IsZero() {
		return fmt.Errorf("%w: startAt and endAt are required", ErrInvalidInput)
	}

	if !req.EndAt.After(req.StartAt) {
		return fmt.Errorf("%w: endAt must be after startAt", ErrInvalidInput)
	}

	if req.Reason != nil && len(*req.Reason) > domain.MaxReasonLength {
		return fmt.Errorf("%w: reason too long", ErrInvalidInput)
	}

	return nil
}

func validateTimeRange(start, end types.TimeString) error {
	if err := start.Validate(); err != nil {
		return err
	}
	if err := end.Validate(); err != nil {
		return err
	}
	if !start.IsBefore(end) {
		return fmt.Errorf("start %s must be before end %s", start, end)
	}
	return nil
}

func validateDate(date string) error {
	if _, err := time.ParseInLocation(domain.DateFormat, date, time.Local); err != nil {
		return fmt.Errorf("invalid date %q", date)
	}
	return nil
}
