// Package primary defines the primary ports: the service interfaces the
// presentation layer drives the application through.
package primary

import "context"

// TruckService defines the primary port for truck operations.
type TruckService interface {
	// CreateTruck creates a new truck.
	CreateTruck(ctx context.Context, name string) (*Truck, error)

	// GetTruck retrieves a truck by ID, or nil when it does not exist.
	GetTruck(ctx context.Context, id int64) (*Truck, error)

	// ListTrucks lists all trucks with their completed-delivery totals.
	ListTrucks(ctx context.Context) ([]*Truck, error)

	// RenameTruck updates a truck's name.
	RenameTruck(ctx context.Context, id int64, name string) error

	// DeleteTruck deletes a truck unconditionally.
	DeleteTruck(ctx context.Context, id int64) error
}

// Truck is the service-level view of a truck.
type Truck struct {
	ID             int64
	Name           string
	TripsCompleted int
}
