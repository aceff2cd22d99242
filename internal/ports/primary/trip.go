package primary

import "context"

// TripService defines the primary port for trip lifecycle and the
// completion-progress state machine.
type TripService interface {
	// CreateTrip schedules a new trip with a zero completion counter.
	CreateTrip(ctx context.Context, req CreateTripRequest) (*Trip, error)

	// GetTrip retrieves a trip by ID.
	GetTrip(ctx context.Context, id int64) (*Trip, error)

	// ListTrips lists all trips, newest-scheduled first.
	ListTrips(ctx context.Context) ([]*Trip, error)

	// ListTripsByTruck lists one truck's trips, newest-scheduled first.
	ListTripsByTruck(ctx context.Context, truckID int64) ([]*Trip, error)

	// ListInProgress lists in-progress trips, soonest scheduled first.
	ListInProgress(ctx context.Context) ([]*Trip, error)

	// IncrementCompleted records one more completed delivery. The counter
	// saturates at the planned count; a delivery event is appended
	// best-effort either way.
	IncrementCompleted(ctx context.Context, id int64) (*ProgressResult, error)

	// DecrementCompleted takes back the most recent delivery. The counter
	// floors at zero and the status is forced back to in progress.
	DecrementCompleted(ctx context.Context, id int64) (*ProgressResult, error)

	// SetStatus overrides a trip's status without touching the counter.
	SetStatus(ctx context.Context, id int64, status string) error

	// DeleteTrip deletes a trip and its delivery events.
	DeleteTrip(ctx context.Context, id int64) error

	// DailyStats aggregates trips by scheduled date, most recent 30 dates.
	DailyStats(ctx context.Context) ([]*DailyStat, error)
}

// CreateTripRequest contains the parameters for scheduling a trip.
type CreateTripRequest struct {
	TruckID       int64
	DestinationID int64
	PlannedCount  int
	ScheduledDate string
}

// Trip is the service-level view of a trip, including joined names when
// the backing query provides them.
type Trip struct {
	ID                  int64
	TruckID             int64
	DestinationID       int64
	PlannedCount        int
	CompletedCount      int
	ScheduledDate       string
	Status              string
	CreatedAt           string
	UpdatedAt           string
	TruckName           string
	DestinationName     string
	DestinationLocation string
}

// ProgressResult is the counter state after an increment or decrement.
type ProgressResult struct {
	CompletedCount int
	Status         string
}

// DailyStat is one scheduled date's aggregate.
type DailyStat struct {
	ScheduledDate  string
	TripCount      int
	PlannedTotal   int
	CompletedTotal int
}
