// Package secondary defines the secondary ports (driven adapters) for the
// application: the persistence interfaces the data layer is driven through.
// No other module reads or writes the tables directly.
package secondary

import (
	"context"
	"errors"
)

// ErrNotFound marks operations that referenced a missing record. Callers
// test for it with errors.Is.
var ErrNotFound = errors.New("not found")

// TruckRepository defines the secondary port for truck persistence.
type TruckRepository interface {
	// Create persists a new truck and returns its identity.
	Create(ctx context.Context, name string) (int64, error)

	// GetByID retrieves a truck with its completed-trip total, or
	// (nil, nil) when the id does not match.
	GetByID(ctx context.Context, id int64) (*TruckRecord, error)

	// List retrieves all trucks with completed-trip totals, newest first.
	List(ctx context.Context) ([]*TruckRecord, error)

	// Update renames a truck.
	Update(ctx context.Context, id int64, name string) error

	// Delete removes a truck. Trips referencing it are left in place.
	Delete(ctx context.Context, id int64) error
}

// TruckRecord represents a truck as stored, plus the derived sum of
// completed deliveries across all its trips.
type TruckRecord struct {
	ID             int64
	Name           string
	TripsCompleted int
}

// DestinationRepository defines the secondary port for destination persistence.
type DestinationRepository interface {
	// Create persists a new destination and returns its identity.
	Create(ctx context.Context, name, location string) (int64, error)

	// GetByID retrieves a destination, or (nil, nil) when absent.
	GetByID(ctx context.Context, id int64) (*DestinationRecord, error)

	// List retrieves all destinations ordered by name.
	List(ctx context.Context) ([]*DestinationRecord, error)

	// Update replaces a destination's name and location.
	Update(ctx context.Context, id int64, name, location string) error

	// Delete removes a destination. Trips referencing it are left in place.
	Delete(ctx context.Context, id int64) error
}

// DestinationRecord represents a destination as stored.
type DestinationRecord struct {
	ID       int64
	Name     string
	Location string
}

// TripRepository defines the secondary port for trip persistence.
type TripRepository interface {
	// Create persists a new trip with a zero counter and returns its identity.
	Create(ctx context.Context, trip *NewTrip) (int64, error)

	// GetByID retrieves a trip; ErrNotFound when absent.
	GetByID(ctx context.Context, id int64) (*TripRecord, error)

	// List retrieves all trips with truck/destination names,
	// newest-scheduled first, newest id first within a date.
	List(ctx context.Context) ([]*TripRecord, error)

	// GetByTruck retrieves one truck's trips, newest-scheduled first.
	GetByTruck(ctx context.Context, truckID int64) ([]*TripRecord, error)

	// ListInProgress retrieves in-progress trips, soonest scheduled first.
	ListInProgress(ctx context.Context) ([]*TripRecord, error)

	// UpdateProgress persists a new counter value and status.
	UpdateProgress(ctx context.Context, id int64, completed int, status string) error

	// UpdateStatus writes the status directly, leaving the counter alone.
	UpdateStatus(ctx context.Context, id int64, status string) error

	// Delete removes a trip; its delivery events cascade away.
	Delete(ctx context.Context, id int64) error

	// DailyStats aggregates trips by scheduled date, most recent 30 dates.
	DailyStats(ctx context.Context) ([]*DailyStatRecord, error)
}

// NewTrip carries the fields required to create a trip.
type NewTrip struct {
	TruckID       int64
	DestinationID int64
	PlannedCount  int
	ScheduledDate string
}

// TripRecord represents a trip as stored, joined with truck and
// destination names where the query provides them.
type TripRecord struct {
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

// DailyStatRecord is one scheduled date's aggregate.
type DailyStatRecord struct {
	ScheduledDate  string
	TripCount      int
	PlannedTotal   int
	CompletedTotal int
}

// DeliveryLogRepository defines the secondary port for the append-only
// delivery event log.
type DeliveryLogRepository interface {
	// Record appends one delivery event for the given local calendar date.
	Record(ctx context.Context, tripID int64, date string, quantity int) error

	// RemoveMostRecent deletes the most recently created event for a trip;
	// silent no-op when the trip has none.
	RemoveMostRecent(ctx context.Context, tripID int64) error

	// ListByTrip retrieves a trip's events, newest delivery date first.
	ListByTrip(ctx context.Context, tripID int64) ([]*DeliveryEventRecord, error)

	// CountByTrip returns the number of events recorded for a trip.
	CountByTrip(ctx context.Context, tripID int64) (int, error)

	// HistoryByDate aggregates deliveries by (date, truck, destination,
	// trip), newest date first.
	HistoryByDate(ctx context.Context) ([]*HistoryRecord, error)

	// HistoryByTruck is HistoryByDate scoped to one truck.
	HistoryByTruck(ctx context.Context, truckID int64) ([]*HistoryRecord, error)
}

// DeliveryEventRecord represents one logged delivery.
type DeliveryEventRecord struct {
	ID           int64
	TripID       int64
	DeliveryDate string
	Quantity     int
	CreatedAt    string
}

// HistoryRecord is one (date, truck, destination, trip) aggregate row.
type HistoryRecord struct {
	DeliveryDate    string
	TruckName       string
	DestinationName string
	TripID          int64
	TotalDeliveries int
}
