package domain

import (
	"time"

	"github.com/minari-lab/salon-booking-service/pkg/types"
)

// WorkHours represents the weekly working schedule of a designer
type WorkHours struct {
	Weekdays []time.Weekday   `json:"weekday"` // 0-6 (Sun-Sat)
	Start    types.TimeString `json:"start"`
	End      types.TimeString `json:"end"`
}

// Includes returns true if the given weekday is a working day
func (wh WorkHours) Includes(weekday time.Weekday) bool {
	for _, wd := range wh.Weekdays {
		if wd == weekday {
			return true
		}
	}
	return false
}

// Break represents a fixed daily break (e.g. lunch), applied on every working day
type Break struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// RecurringBreak represents a weekly break applied only on a specific weekday
type RecurringBreak struct {
	Weekday time.Weekday     `json:"weekday"`
	Start   types.TimeString `json:"start"`
	End     types.TimeString `json:"end"`
}

// DefaultBlock represents a one-off unavailability window on a specific date,
// configured on the designer (as opposed to Block, which is a standalone record)
type DefaultBlock struct {
	Date   string           `json:"date"` // YYYY-MM-DD
	Start  types.TimeString `json:"start"`
	End    types.TimeString `json:"end"`
	Reason string           `json:"reason,omitempty"`
}

// SpecialHours overrides the weekly working hours for a specific date.
// A date with special hours is treated as a working day even if its weekday
// is not in the weekly schedule.
type SpecialHours struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Designer represents a staff member with individual scheduling constraints
type Designer struct {
	ID              string
	Name            string
	Specialties     []string
	WorkHours       WorkHours
	Holidays        []string // full-day-off dates, YYYY-MM-DD
	Breaks          []Break
	RecurringBreaks []RecurringBreak
	DefaultBlocks   []DefaultBlock
	SpecialHours    map[string]SpecialHours // date (YYYY-MM-DD) -> override

	// Daily capacity ceilings; nil = unlimited
	DailyMaxAppointments *int
	DailyMaxMinutes      *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsHolidayOn returns true if the given date is a full-day holiday
func (d *Designer) IsHolidayOn(date time.Time) bool {
	key := date.Format(DateFormat)
	for _, h := range d.Holidays {
		if h == key {
			return true
		}
	}
	return false
}

// SpecialHoursOn returns the special-hours override for the given date, if any
func (d *Designer) SpecialHoursOn(date time.Time) (SpecialHours, bool) {
	sh, ok := d.SpecialHours[date.Format(DateFormat)]
	return sh, ok
}

// DefaultBlocksOn returns the one-off unavailability windows for the given date
func (d *Designer) DefaultBlocksOn(date time.Time) []DefaultBlock {
	key := date.Format(DateFormat)
	var blocks []DefaultBlock
	for _, db := range d.DefaultBlocks {
		if db.Date == key {
			blocks = append(blocks, db)
		}
	}
	return blocks
}

// HasDailyLimits returns true if any daily capacity ceiling is configured
func (d *Designer) HasDailyLimits() bool {
	return d.DailyMaxAppointments != nil || d.DailyMaxMinutes != nil
}
