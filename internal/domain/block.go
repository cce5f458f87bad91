package domain

import "time"

// Block represents an administrator-created manual unavailability window.
// For conflict purposes it behaves like a booking without a customer;
// unlike bookings, blocks are never extended by the service buffer.
type Block struct {
	ID         int64
	DesignerID string
	StartAt    time.Time
	EndAt      time.Time
	Reason     *string

	CreatedAt time.Time
}
