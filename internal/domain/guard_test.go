package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minari-lab/salon-booking-service/pkg/ptr"
)

// 2026-09-07 is a Monday
var guardDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)

func guardAt(hour, min int) time.Time {
	return time.Date(guardDate.Year(), guardDate.Month(), guardDate.Day(), hour, min, 0, 0, guardDate.Location())
}

func guardDesigner() *Designer {
	return &Designer{
		ID:   "dsg-anna",
		Name: "Anna",
		WorkHours: WorkHours{
			Weekdays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
			Start:    "10:00",
			End:      "20:00",
		},
	}
}

func TestResolveWorkWindow_WeeklySchedule(t *testing.T) {
	w, err := ResolveWorkWindow(guardDesigner(), guardDate)

	require.NoError(t, err)
	assert.Equal(t, guardAt(10, 0), w.Start)
	assert.Equal(t, guardAt(20, 0), w.End)
}

func TestResolveWorkWindow_HolidayClosesDay(t *testing.T) {
	d := guardDesigner()
	d.Holidays = []string{guardDate.Format(DateFormat)}

	_, err := ResolveWorkWindow(d, guardDate)

	assert.ErrorIs(t, err, ErrDayClosed)
}

func TestResolveWorkWindow_HolidayWinsOverSpecialHours(t *testing.T) {
	d := guardDesigner()
	key := guardDate.Format(DateFormat)
	d.Holidays = []string{key}
	d.SpecialHours = map[string]SpecialHours{key: {Start: "12:00", End: "16:00"}}

	_, err := ResolveWorkWindow(d, guardDate)

	assert.ErrorIs(t, err, ErrDayClosed)
}

func TestResolveWorkWindow_SpecialHoursOverride(t *testing.T) {
	d := guardDesigner()
	d.SpecialHours = map[string]SpecialHours{
		guardDate.Format(DateFormat): {Start: "12:00", End: "16:00"},
	}

	w, err := ResolveWorkWindow(d, guardDate)

	require.NoError(t, err)
	assert.Equal(t, guardAt(12, 0), w.Start)
	assert.Equal(t, guardAt(16, 0), w.End)
}

func TestResolveWorkWindow_SpecialHoursOpenNonWorkingWeekday(t *testing.T) {
	sunday := guardDate.AddDate(0, 0, -1)
	d := guardDesigner()

	_, err := ResolveWorkWindow(d, sunday)
	assert.ErrorIs(t, err, ErrDayClosed)

	d.SpecialHours = map[string]SpecialHours{
		sunday.Format(DateFormat): {Start: "12:00", End: "14:00"},
	}
	w, err := ResolveWorkWindow(d, sunday)
	require.NoError(t, err)
	assert.Equal(t, 12, w.Start.Hour())
}

func TestValidateSlotWindow(t *testing.T) {
	w := WorkWindow{Start: guardAt(10, 0), End: guardAt(20, 0)}

	assert.NoError(t, ValidateSlotWindow(w, guardAt(16, 0), 60, 10, 15))
	// service without buffer ends exactly at the window end
	assert.NoError(t, ValidateSlotWindow(w, guardAt(19, 0), 60, 0, 15))

	assert.ErrorIs(t, ValidateSlotWindow(w, guardAt(9, 45), 60, 10, 15), ErrOutsideWorkWindow)
	assert.ErrorIs(t, ValidateSlotWindow(w, guardAt(16, 5), 60, 10, 15), ErrOutsideWorkWindow)
	assert.ErrorIs(t, ValidateSlotWindow(w, guardAt(19, 15), 60, 10, 15), ErrOutsideWorkWindow)
}

func TestCheckLeadTime(t *testing.T) {
	now := guardAt(9, 0)

	assert.NoError(t, CheckLeadTime(guardAt(14, 0), guardAt(15, 0), now, 2, 30))

	// already finished
	err := CheckLeadTime(guardAt(7, 0), guardAt(8, 0), now, 2, 30)
	assert.ErrorIs(t, err, ErrLeadTooSoon)

	// starts inside the minimum notice
	err = CheckLeadTime(guardAt(10, 0), guardAt(11, 0), now, 2, 30)
	assert.ErrorIs(t, err, ErrLeadTooSoon)

	// beyond the booking horizon
	far := guardDate.AddDate(0, 0, 31)
	err = CheckLeadTime(far.Add(14*time.Hour), far.Add(15*time.Hour), now, 2, 30)
	assert.ErrorIs(t, err, ErrLeadTooFar)
}

func TestHasScheduleConflict_ExcludesOwnBooking(t *testing.T) {
	d := guardDesigner()
	bookings := []*Booking{
		{ID: 1, DesignerID: d.ID, StartAt: guardAt(14, 0), EndAt: guardAt(15, 0)},
	}

	// the window overlaps booking 1, but booking 1 is the one being moved
	conflict := HasScheduleConflict(d, guardDate, guardAt(14, 30), guardAt(15, 40), 10, bookings, nil, 1)
	assert.False(t, conflict)

	// without the exclusion the same window conflicts
	conflict = HasScheduleConflict(d, guardDate, guardAt(14, 30), guardAt(15, 40), 10, bookings, nil, 0)
	assert.True(t, conflict)
}

func TestHasScheduleConflict_BufferedBookingTouchIsFree(t *testing.T) {
	d := guardDesigner()
	bookings := []*Booking{
		{ID: 1, DesignerID: d.ID, StartAt: guardAt(11, 10), EndAt: guardAt(11, 50)},
	}

	// window ends exactly at the booking start
	assert.False(t, HasScheduleConflict(d, guardDate, guardAt(10, 0), guardAt(11, 10), 10, bookings, nil, 0))
	// window starts exactly at the buffered booking end (11:50 + 10)
	assert.False(t, HasScheduleConflict(d, guardDate, guardAt(12, 0), guardAt(13, 10), 10, bookings, nil, 0))
	// anything in between conflicts
	assert.True(t, HasScheduleConflict(d, guardDate, guardAt(11, 0), guardAt(12, 10), 10, bookings, nil, 0))
}

func TestHasScheduleConflict_BreaksAndBlocks(t *testing.T) {
	d := guardDesigner()
	d.Breaks = []Break{{Start: "13:00", End: "14:00"}}
	d.RecurringBreaks = []RecurringBreak{{Weekday: time.Monday, Start: "17:00", End: "18:00"}}
	blocks := []*Block{
		{ID: 1, DesignerID: d.ID, StartAt: guardAt(15, 0), EndAt: guardAt(16, 0)},
	}

	assert.True(t, HasScheduleConflict(d, guardDate, guardAt(13, 30), guardAt(14, 40), 10, nil, blocks, 0))
	assert.True(t, HasScheduleConflict(d, guardDate, guardAt(15, 0), guardAt(16, 10), 10, nil, blocks, 0))
	assert.True(t, HasScheduleConflict(d, guardDate, guardAt(17, 30), guardAt(18, 40), 10, nil, blocks, 0))

	// the recurring break is Monday-only
	tuesday := guardDate.AddDate(0, 0, 1)
	tueAt := func(h, m int) time.Time {
		return time.Date(tuesday.Year(), tuesday.Month(), tuesday.Day(), h, m, 0, 0, tuesday.Location())
	}
	assert.False(t, HasScheduleConflict(d, tuesday, tueAt(17, 30), tueAt(18, 40), 10, nil, nil, 0))
}

func TestCheckDailyLimits_MaxAppointments(t *testing.T) {
	d := guardDesigner()
	d.DailyMaxAppointments = ptr.Ptr(1)
	bookings := []*Booking{
		{ID: 1, DesignerID: d.ID, StartAt: guardAt(14, 0), EndAt: guardAt(15, 0)},
	}

	err := CheckDailyLimits(d, guardDate, 60, 10, bookings, 0)
	assert.ErrorIs(t, err, ErrDailyLimitExceeded)

	// the moved booking itself does not count against its own day
	assert.NoError(t, CheckDailyLimits(d, guardDate, 60, 10, bookings, 1))
}

func TestCheckDailyLimits_MaxMinutes(t *testing.T) {
	d := guardDesigner()
	d.DailyMaxMinutes = ptr.Ptr(120)
	// 60 + 10 buffer used, 50 left
	bookings := []*Booking{
		{ID: 1, DesignerID: d.ID, StartAt: guardAt(10, 0), EndAt: guardAt(11, 0)},
	}

	assert.NoError(t, CheckDailyLimits(d, guardDate, 30, 10, bookings, 0))
	assert.ErrorIs(t, CheckDailyLimits(d, guardDate, 45, 10, bookings, 0), ErrDailyLimitExceeded)
}

func TestCheckDailyLimits_OtherDayIgnored(t *testing.T) {
	d := guardDesigner()
	d.DailyMaxAppointments = ptr.Ptr(1)
	tuesday := guardDate.AddDate(0, 0, 1)
	bookings := []*Booking{
		{ID: 1, DesignerID: d.ID, StartAt: tuesday.Add(14 * time.Hour), EndAt: tuesday.Add(15 * time.Hour)},
	}

	assert.NoError(t, CheckDailyLimits(d, guardDate, 60, 10, bookings, 0))
}
