package domain

import "time"

// Booking represents a confirmed customer appointment.
// Start and end are timezone-naive local instants; the end does NOT include
// the post-service buffer (the buffer is applied at conflict-check time).
type Booking struct {
	ID         int64
	DesignerID string
	StartAt    time.Time
	EndAt      time.Time
	ServiceIDs []string

	// The customer phone doubles as the only customer-side credential:
	// lookup, reschedule and cancellation all match on booking id + phone.
	CustomerName  string
	CustomerPhone string

	AgreedTerms   bool
	AgreedPrivacy bool
	ReminderOptIn bool

	// Denormalized from the service catalog at confirmation time
	TotalPrice int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes returns the booked service duration in whole minutes
func (b *Booking) DurationMinutes() int {
	return int(b.EndAt.Sub(b.StartAt) / time.Minute)
}

// BufferedEnd returns the booking end extended by the post-service buffer
func (b *Booking) BufferedEnd(bufferMinutes int) time.Time {
	return b.EndAt.Add(time.Duration(bufferMinutes) * time.Minute)
}

// MatchesPhone reports whether the given phone matches the booking's customer phone
func (b *Booking) MatchesPhone(phone string) bool {
	return b.CustomerPhone != "" && b.CustomerPhone == phone
}
