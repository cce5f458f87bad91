package domain

import "time"

// SlotReason explains why a slot is unavailable
type SlotReason string

const (
	SlotReasonPast     SlotReason = "past"
	SlotReasonConflict SlotReason = "conflict"
)

// Slot represents a candidate time window evaluated for availability.
// Slots are derived data: recomputed on every query, never persisted.
type Slot struct {
	StartAt   time.Time
	EndAt     time.Time
	Available bool
	Reason    SlotReason // empty when available
}

// Overlaps reports whether the half-open intervals [startA, endA) and
// [startB, endB) intersect. Touching endpoints do not count: back-to-back
// windows are legal. Every conflict check in the system goes through this
// predicate so the tie-break semantics stay consistent.
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}
