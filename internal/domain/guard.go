package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/minari-lab/salon-booking-service/pkg/timeutil"
	"github.com/minari-lab/salon-booking-service/pkg/types"
)

// Guard errors returned by the shared scheduling checks. Callers translate
// them into their own sentinels at the package boundary.
var (
	ErrDayClosed          = errors.New("domain: day is closed")
	ErrOutsideWorkWindow  = errors.New("domain: outside work window")
	ErrLeadTooSoon        = errors.New("domain: lead time too soon")
	ErrLeadTooFar         = errors.New("domain: lead time too far")
	ErrDailyLimitExceeded = errors.New("domain: daily limit exceeded")
)

// WorkWindow is the resolved working interval of a designer on a single date
type WorkWindow struct {
	Start time.Time
	End   time.Time
}

// ResolveWorkWindow resolves the designer's working interval for the date.
// Precedence is fixed: a holiday closes the whole day even when special hours
// exist; special hours replace the weekly schedule and make a non-working
// weekday bookable; otherwise the weekly schedule applies.
func ResolveWorkWindow(d *Designer, date time.Time) (WorkWindow, error) {
	if d.IsHolidayOn(date) {
		return WorkWindow{}, fmt.Errorf("%w: holiday", ErrDayClosed)
	}

	dayStart, dayEnd := d.WorkHours.Start, d.WorkHours.End
	if sh, ok := d.SpecialHoursOn(date); ok {
		dayStart, dayEnd = sh.Start, sh.End
	} else if !d.WorkHours.Includes(date.Weekday()) {
		return WorkWindow{}, fmt.Errorf("%w: non-working day", ErrDayClosed)
	}

	start, err := dayStart.On(date)
	if err != nil {
		return WorkWindow{}, fmt.Errorf("invalid work hours: %w", err)
	}
	end, err := dayEnd.On(date)
	if err != nil {
		return WorkWindow{}, fmt.Errorf("invalid work hours: %w", err)
	}

	return WorkWindow{Start: start, End: end}, nil
}

// ValidateSlotWindow checks that startAt is a valid slot candidate within the
// work window: it lies on the interval grid counted from the window start and
// the service plus its buffer finish no later than the window end.
func ValidateSlotWindow(w WorkWindow, startAt time.Time, durationMinutes, bufferMinutes, intervalMinutes int) error {
	if startAt.Before(w.Start) {
		return fmt.Errorf("%w: before working hours", ErrOutsideWorkWindow)
	}

	offset := int(startAt.Sub(w.Start) / time.Minute)
	if offset%intervalMinutes != 0 {
		return fmt.Errorf("%w: start is not on the slot grid", ErrOutsideWorkWindow)
	}

	if timeutil.AddMinutes(startAt, durationMinutes+bufferMinutes).After(w.End) {
		return fmt.Errorf("%w: slot does not fit into working hours", ErrOutsideWorkWindow)
	}

	return nil
}

// CheckLeadTime rejects slots in the past, closer than the minimum notice or
// beyond the booking horizon.
func CheckLeadTime(startAt, endAt, now time.Time, minLeadHours, maxLeadDays int) error {
	if !endAt.After(now) {
		return fmt.Errorf("%w: slot is in the past", ErrLeadTooSoon)
	}

	if startAt.Before(timeutil.AddMinutes(now, minLeadHours*60)) {
		return fmt.Errorf("%w: minimum notice is %d hours", ErrLeadTooSoon, minLeadHours)
	}

	if startAt.After(timeutil.AddMinutes(now, maxLeadDays*24*60)) {
		return fmt.Errorf("%w: booking horizon is %d days", ErrLeadTooFar, maxLeadDays)
	}

	return nil
}

// HasScheduleConflict reports whether the window [startAt, endBuffered)
// overlaps the day's busy intervals: bookings extended by the buffer, manual
// blocks, daily and recurring breaks, and the designer's one-off default
// blocks (all without buffer, they are not services). A booking with
// id = excludeBookingID is skipped (0 = exclude nothing), so a reschedule
// never conflicts with itself.
func HasScheduleConflict(
	d *Designer,
	date time.Time,
	startAt, endBuffered time.Time,
	bufferMinutes int,
	bookings []*Booking,
	blocks []*Block,
	excludeBookingID int64,
) bool {
	for _, b := range bookings {
		if excludeBookingID != 0 && b.ID == excludeBookingID {
			continue
		}
		if b.DesignerID != d.ID || !timeutil.SameDay(b.StartAt, date) {
			continue
		}
		if Overlaps(startAt, endBuffered, b.StartAt, b.BufferedEnd(bufferMinutes)) {
			return true
		}
	}

	for _, bl := range blocks {
		if bl.DesignerID != d.ID || !timeutil.SameDay(bl.StartAt, date) {
			continue
		}
		if Overlaps(startAt, endBuffered, bl.StartAt, bl.EndAt) {
			return true
		}
	}

	for _, br := range d.Breaks {
		if overlapsDayWindow(br.Start, br.End, date, startAt, endBuffered) {
			return true
		}
	}

	for _, rb := range d.RecurringBreaks {
		if rb.Weekday != date.Weekday() {
			continue
		}
		if overlapsDayWindow(rb.Start, rb.End, date, startAt, endBuffered) {
			return true
		}
	}

	for _, db := range d.DefaultBlocksOn(date) {
		if overlapsDayWindow(db.Start, db.End, date, startAt, endBuffered) {
			return true
		}
	}

	return false
}

// overlapsDayWindow checks the window against an interval given as times of day
func overlapsDayWindow(start, end types.TimeString, date, winStart, winEnd time.Time) bool {
	ivStart, err := start.On(date)
	if err != nil {
		return false
	}
	ivEnd, err := end.On(date)
	if err != nil {
		return false
	}
	return Overlaps(winStart, winEnd, ivStart, ivEnd)
}

// CheckDailyLimits verifies the designer's daily ceilings with the new or
// moved appointment counted in. A booking with id = excludeBookingID is left
// out of the day's usage (0 = exclude nothing), so moving a booking within
// its own day does not double-count it.
func CheckDailyLimits(
	d *Designer,
	date time.Time,
	addMinutes, bufferMinutes int,
	bookings []*Booking,
	excludeBookingID int64,
) error {
	if !d.HasDailyLimits() {
		return nil
	}

	count := 0
	usedMinutes := 0
	for _, b := range bookings {
		if excludeBookingID != 0 && b.ID == excludeBookingID {
			continue
		}
		if b.DesignerID != d.ID || !timeutil.SameDay(b.StartAt, date) {
			continue
		}
		count++
		usedMinutes += b.DurationMinutes() + bufferMinutes
	}

	if d.DailyMaxAppointments != nil && count >= *d.DailyMaxAppointments {
		return fmt.Errorf("%w: max %d appointments per day", ErrDailyLimitExceeded, *d.DailyMaxAppointments)
	}

	if d.DailyMaxMinutes != nil && addMinutes+bufferMinutes > *d.DailyMaxMinutes-usedMinutes {
		return fmt.Errorf("%w: max %d booked minutes per day", ErrDailyLimitExceeded, *d.DailyMaxMinutes)
	}

	return nil
}
