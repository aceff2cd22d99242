// Package trip contains the pure business logic for trip completion
// progress. Transitions are saturating: the counter never exceeds the
// planned count and never drops below zero.
package trip

// Status is the lifecycle state of a trip.
type Status string

const (
	// StatusInProgress is the initial state; the trip still has deliveries
	// outstanding (or was manually reopened).
	StatusInProgress Status = "in_progress"
	// StatusCompleted means the counter has reached the planned count.
	StatusCompleted Status = "completed"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	return s == StatusInProgress || s == StatusCompleted
}

// Progress is the completion counter of a trip.
type Progress struct {
	Planned   int
	Completed int
}

// DeriveStatus returns the status implied by the counter alone.
func (p Progress) DeriveStatus() Status {
	if p.Completed >= p.Planned {
		return StatusCompleted
	}
	return StatusInProgress
}

// Advance records one more completed delivery, saturating at the planned
// count. At the ceiling the counter is unchanged and the status stays
// completed.
func Advance(p Progress) (Progress, Status) {
	next := p
	if next.Completed < next.Planned {
		next.Completed++
	}
	return next, next.DeriveStatus()
}

// Regress takes back one completed delivery, flooring at zero. The status
// is always forced back to in_progress, even when the counter still equals
// the planned count (manual-undo semantics).
func Regress(p Progress) (Progress, Status) {
	next := p
	if next.Completed > 0 {
		next.Completed--
	}
	return next, StatusInProgress
}
