package recommend_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minari-lab/salon-booking-service/internal/domain"
	"github.com/minari-lab/salon-booking-service/pkg/ptr"
)

// 2026-09-07 - понедельник
var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.Local)

func at(date time.Time, hour, min int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, min, 0, 0, date.Location())
}

func testDesigner() *domain.Designer {
	return &domain.Designer{
		ID:   "dsg-anna",
		Name: "Anna",
		WorkHours: domain.WorkHours{
			Weekdays: []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
			Start:    "10:00",
			End:      "20:00",
		},
	}
}

func defaultOpts() slotOptions {
	return slotOptions{
		intervalMinutes: domain.DefaultIntervalMinutes,
		bufferMinutes:   domain.DefaultBufferMinutes,
		minLeadHours:    domain.DefaultMinLeadHours,
		maxLeadDays:     domain.DefaultMaxLeadDays,
	}
}

// "Далёкое" прошлое относительно testDate, чтобы лид-тайм не мешал сценарию
func farNow(date time.Time) time.Time {
	return at(date.AddDate(0, 0, -3), 9, 0)
}

func TestBuildSlots_Basic(t *testing.T) {
	designer := testDesigner()
	designer.WorkHours.End = "12:00"

	slots := buildSlots(designer, testDate, 60, defaultOpts(), nil, nil, farNow(testDate))

	// Конец дня 12:00, услуга 60 + буфер 10: последний допустимый старт 10:50,
	// сетка с шагом 15 даёт 10:00, 10:15, 10:30, 10:45
	require.Len(t, slots, 4)
	assert.Equal(t, at(testDate, 10, 0), slots[0].StartAt)
	assert.Equal(t, at(testDate, 11, 0), slots[0].EndAt)
	assert.Equal(t, at(testDate, 10, 45), slots[3].StartAt)
	for _, s := range slots {
		assert.True(t, s.Available)
		assert.Empty(t, s.Reason)
	}
}

func TestBuildSlots_HolidayClosesDay(t *testing.T) {
	designer := testDesigner()
	designer.Holidays = []string{testDate.Format(domain.DateFormat)}

	slots := buildSlots(designer, testDate, 60, defaultOpts(), nil, nil, farNow(testDate))

	assert.Empty(t, slots)
}

func TestBuildSlots_HolidayWinsOverSpecialHours(t *testing.T) {
	designer := testDesigner()
	key := testDate.Format(domain.DateFormat)
	designer.Holidays = []string{key}
	designer.SpecialHours = map[string]domain.SpecialHours{
		key: {Start: "12:00", End: "16:00"},
	}

	slots := buildSlots(designer, testDate, 60, defaultOpts(), nil, nil, farNow(testDate))

	assert.Empty(t, slots)
}

func TestBuildSlots_NonWorkingWeekday(t *testing.T) {
	sunday := testDate.AddDate(0, 0, -1)
	designer := testDesigner()

	slots := buildSlots(designer, sunday, 60, defaultOpts(), nil, nil, farNow(sunday))

	assert.Empty(t, slots)
}

func TestBuildSlots_SpecialHoursOpenNonWorkingWeekday(t *testing.T) {
	sunday := testDate.AddDate(0, 0, -1)
	designer := testDesigner()
	designer.SpecialHours = map[string]domain.SpecialHours{
		sunday.Format(domain.DateFormat): {Start: "12:00", End: "14:00"},
	}

	slots := buildSlots(designer, sunday, 60, defaultOpts(), nil, nil, farNow(sunday))

	// 14:00 - 70 минут = последний старт 12:50: слоты 12:00..12:45
	require.Len(t, slots, 4)
	assert.Equal(t, at(sunday, 12, 0), slots[0].StartAt)
	assert.Equal(t, at(sunday, 12, 45), slots[3].StartAt)
}

func TestBuildSlots_BookingConflictIncludesBuffer(t *testing.T) {
	designer := testDesigner()
	opts := defaultOpts()
	bookings := []*domain.Booking{
		{
			ID:         1,
			DesignerID: designer.ID,
			StartAt:    at(testDate, 10, 0),
			EndAt:      at(testDate, 11, 0),
		},
	}

	slots := buildSlots(designer, testDate, 30, opts, bookings, nil, farNow(testDate))

	byStart := slotsByStart(slots)

	// Бронирование с буфером занимает [10:00, 11:10): старт 11:00 конфликтует
	require.Contains(t, byStart, at(testDate, 11, 0))
	assert.False(t, byStart[at(testDate, 11, 0)].Available)
	assert.Equal(t, domain.SlotReasonConflict, byStart[at(testDate, 11, 0)].Reason)

	// А 11:15 уже свободен: встык после буфера разрешено
	require.Contains(t, byStart, at(testDate, 11, 15))
	assert.True(t, byStart[at(testDate, 11, 15)].Available)
}

func TestBuildSlots_BlockConflictWithoutBuffer(t *testing.T) {
	designer := testDesigner()
	blocks := []*domain.Block{
		{
			ID:         1,
			DesignerID: designer.ID,
			StartAt:    at(testDate, 11, 0),
			EndAt:      at(testDate, 11, 30),
		},
	}

	slots := buildSlots(designer, testDate, 30, defaultOpts(), nil, blocks, farNow(testDate))
	byStart := slotsByStart(slots)

	// Слот 10:15 с буфером кончается в 10:55, до блокировки - свободен
	assert.True(t, byStart[at(testDate, 10, 15)].Available)
	// 10:30 с буфером кончается в 11:10, пересекает блокировку
	assert.False(t, byStart[at(testDate, 10, 30)].Available)
	assert.False(t, byStart[at(testDate, 11, 0)].Available)
	// 11:30 начинается ровно в конце блокировки: полуоткрытые интервалы не пересекаются
	assert.True(t, byStart[at(testDate, 11, 30)].Available)
}

func TestBuildSlots_HalfOpenBoundariesTouchBothSides(t *testing.T) {
	designer := testDesigner()
	// Бронирование 11:10-11:50 с буфером занимает [11:10, 12:00)
	bookings := []*domain.Booking{
		{
			ID:         1,
			DesignerID: designer.ID,
			StartAt:    at(testDate, 11, 10),
			EndAt:      at(testDate, 11, 50),
		},
	}

	slots := buildSlots(designer, testDate, 60, defaultOpts(), bookings, nil, farNow(testDate))
	byStart := slotsByStart(slots)

	// Слот 10:00 с буфером кончается ровно в 11:10, в начале бронирования:
	// границы встык не пересекаются
	require.Contains(t, byStart, at(testDate, 10, 0))
	assert.True(t, byStart[at(testDate, 10, 0)].Available)

	// Слот 12:00 начинается ровно в буферном конце бронирования: тоже свободен
	require.Contains(t, byStart, at(testDate, 12, 0))
	assert.True(t, byStart[at(testDate, 12, 0)].Available)

	// А всё между границами конфликтует
	for _, start := range []time.Time{
		at(testDate, 10, 15),
		at(testDate, 11, 0),
		at(testDate, 11, 45),
	} {
		require.Contains(t, byStart, start)
		assert.False(t, byStart[start].Available, "slot %v", start)
		assert.Equal(t, domain.SlotReasonConflict, byStart[start].Reason)
	}
}

func TestBuildSlots_OtherDesignerBookingIgnored(t *testing.T) {
	designer := testDesigner()
	bookings := []*domain.Booking{
		{
			ID:         1,
			DesignerID: "dsg-other",
			StartAt:    at(testDate, 10, 0),
			EndAt:      at(testDate, 11, 0),
		},
	}

	slots := buildSlots(designer, testDate, 30, defaultOpts(), bookings, nil, farNow(testDate))
	byStart := slotsByStart(slots)

	assert.True(t, byStart[at(testDate, 10, 0)].Available)
}

func TestBuildSlots_RecurringBreakOnMatchingWeekday(t *testing.T) {
	designer := testDesigner()
	designer.WorkHours.End = "14:00"
	designer.RecurringBreaks = []domain.RecurringBreak{
		{Weekday: time.Monday, Start: "12:00", End: "13:00"},
	}
	opts := defaultOpts()
	opts.bufferMinutes = 0
	opts.intervalMinutes = 30

	slots := buildSlots(designer, testDate, 30, opts, nil, nil, farNow(testDate))
	byStart := slotsByStart(slots)

	// Слот, кончающийся ровно в начале перерыва, свободен
	assert.True(t, byStart[at(testDate, 11, 30)].Available)
	assert.False(t, byStart[at(testDate, 12, 0)].Available)
	assert.False(t, byStart[at(testDate, 12, 30)].Available)
	// И начинающийся ровно в конце перерыва тоже
	assert.True(t, byStart[at(testDate, 13, 0)].Available)

	// На вторник тот же перерыв не действует
	tuesday := testDate.AddDate(0, 0, 1)
	slots = buildSlots(designer, tuesday, 30, opts, nil, nil, farNow(tuesday))
	byStart = slotsByStart(slots)
	assert.True(t, byStart[at(tuesday, 12, 0)].Available)
}

func TestBuildSlots_FixedBreakEveryDay(t *testing.T) {
	designer := testDesigner()
	designer.Breaks = []domain.Break{{Start: "13:00", End: "14:00"}}

	slots := buildSlots(designer, testDate, 30, defaultOpts(), nil, nil, farNow(testDate))
	byStart := slotsByStart(slots)

	assert.False(t, byStart[at(testDate, 13, 0)].Available)
	assert.False(t, byStart[at(testDate, 13, 30)].Available)
	assert.True(t, byStart[at(testDate, 14, 0)].Available)
}

func TestBuildSlots_DefaultBlockOnDate(t *testing.T) {
	designer := testDesigner()
	designer.DefaultBlocks = []domain.DefaultBlock{
		{Date: testDate.Format(domain.DateFormat), Start: "15:00", End: "16:00", Reason: "supply run"},
	}

	slots := buildSlots(designer, testDate, 30, defaultOpts(), nil, nil, farNow(testDate))
	byStart := slotsByStart(slots)

	assert.False(t, byStart[at(testDate, 15, 0)].Available)
	assert.True(t, byStart[at(testDate, 16, 0)].Available)

	// На другой день разовая блокировка не распространяется
	tuesday := testDate.AddDate(0, 0, 1)
	slots = buildSlots(designer, tuesday, 30, defaultOpts(), nil, nil, farNow(tuesday))
	byStart = slotsByStart(slots)
	assert.True(t, byStart[at(tuesday, 15, 0)].Available)
}

func TestBuildSlots_PastEmittedLeadTimeOmitted(t *testing.T) {
	designer := testDesigner()
	designer.WorkHours.End = "12:00"
	now := at(testDate, 11, 5)

	slots := buildSlots(designer, testDate, 60, defaultOpts(), nil, nil, now)

	// Слот 10:00-11:00 закончился до "сейчас": отдаётся недоступным с причиной past
	// Слоты 10:15-10:45 ещё идут, но начинаются внутри минимального лид-тайма
	// (2 часа) и поэтому не возвращаются вовсе
	require.Len(t, slots, 1)
	assert.Equal(t, at(testDate, 10, 0), slots[0].StartAt)
	assert.False(t, slots[0].Available)
	assert.Equal(t, domain.SlotReasonPast, slots[0].Reason)
}

func TestBuildSlots_MaxLeadDaysOmitsFarFuture(t *testing.T) {
	designer := testDesigner()
	now := at(testDate.AddDate(0, 0, -31), 9, 0)
	opts := defaultOpts() // maxLeadDays = 30

	farDate := testDate
	slots := buildSlots(designer, farDate, 60, opts, nil, nil, now)

	assert.Empty(t, slots)
}

func TestBuildSlots_Deterministic(t *testing.T) {
	designer := testDesigner()
	designer.Breaks = []domain.Break{{Start: "13:00", End: "14:00"}}
	bookings := []*domain.Booking{
		{ID: 1, DesignerID: designer.ID, StartAt: at(testDate, 10, 0), EndAt: at(testDate, 11, 0)},
		{ID: 2, DesignerID: designer.ID, StartAt: at(testDate, 16, 0), EndAt: at(testDate, 17, 0)},
	}
	blocks := []*domain.Block{
		{ID: 1, DesignerID: designer.ID, StartAt: at(testDate, 18, 0), EndAt: at(testDate, 19, 0)},
	}
	now := farNow(testDate)

	first := buildSlots(designer, testDate, 45, defaultOpts(), bookings, blocks, now)
	second := buildSlots(designer, testDate, 45, defaultOpts(), bookings, blocks, now)

	assert.Equal(t, first, second)
}

func TestApplyDailyCaps_MaxAppointmentsEmptiesDay(t *testing.T) {
	designer := testDesigner()
	designer.DailyMaxAppointments = ptr.Ptr(2)
	bookings := []*domain.Booking{
		{ID: 1, DesignerID: designer.ID, StartAt: at(testDate, 10, 0), EndAt: at(testDate, 11, 0)},
		{ID: 2, DesignerID: designer.ID, StartAt: at(testDate, 12, 0), EndAt: at(testDate, 13, 0)},
	}

	slots := buildSlots(designer, testDate, 30, defaultOpts(), bookings, nil, farNow(testDate))
	require.NotEmpty(t, slots)

	capped := applyDailyCaps(slots, designer, testDate, 30, domain.DefaultBufferMinutes, bookings)
	assert.Empty(t, capped)
}

func TestApplyDailyCaps_MaxMinutesEmptiesDay(t *testing.T) {
	designer := testDesigner()
	designer.DailyMaxMinutes = ptr.Ptr(120)
	// Занято 60 + 10 буфера = 70 минут, остаток 50
	bookings := []*domain.Booking{
		{ID: 1, DesignerID: designer.ID, StartAt: at(testDate, 10, 0), EndAt: at(testDate, 11, 0)},
	}

	slots := buildSlots(designer, testDate, 45, defaultOpts(), bookings, nil, farNow(testDate))
	require.NotEmpty(t, slots)

	// 45 + 10 = 55 > 50: не помещается, день пустеет
	capped := applyDailyCaps(slots, designer, testDate, 45, domain.DefaultBufferMinutes, bookings)
	assert.Empty(t, capped)

	// 30 + 10 = 40 <= 50: помещается, список остаётся без изменений
	slots = buildSlots(designer, testDate, 30, defaultOpts(), bookings, nil, farNow(testDate))
	capped = applyDailyCaps(slots, designer, testDate, 30, domain.DefaultBufferMinutes, bookings)
	assert.Equal(t, slots, capped)
}

func TestApplyDailyCaps_NoLimitsPassThrough(t *testing.T) {
	designer := testDesigner()
	slots := buildSlots(designer, testDate, 30, defaultOpts(), nil, nil, farNow(testDate))

	capped := applyDailyCaps(slots, designer, testDate, 30, domain.DefaultBufferMinutes, nil)
	assert.Equal(t, slots, capped)
}

func slotsByStart(slots []domain.Slot) map[time.Time]domain.Slot {
	m := make(map[time.Time]domain.Slot, len(slots))
	for _, s := range slots {
		m[s.StartAt] = s
	}
	return m
}
