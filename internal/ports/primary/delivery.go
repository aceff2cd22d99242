package primary

import "context"

// DeliveryLogService defines the primary port for delivery history views.
type DeliveryLogService interface {
	// HistoryByDate returns deliveries grouped by (date, truck,
	// destination, trip), newest date first.
	HistoryByDate(ctx context.Context) ([]*HistoryEntry, error)

	// HistoryByTruck is HistoryByDate scoped to one truck.
	HistoryByTruck(ctx context.Context, truckID int64) ([]*HistoryEntry, error)

	// ListByTrip returns a trip's individual delivery events, newest
	// delivery date first.
	ListByTrip(ctx context.Context, tripID int64) ([]*DeliveryEvent, error)
}

// HistoryEntry is one grouped history row.
type HistoryEntry struct {
	DeliveryDate    string
	TruckName       string
	DestinationName string
	TripID          int64
	TotalDeliveries int
}

// DeliveryEvent is the service-level view of one logged delivery.
type DeliveryEvent struct {
	ID           int64
	TripID       int64
	DeliveryDate string
	Quantity     int
	CreatedAt    string
}
