package primary

import "context"

// DestinationService defines the primary port for destination operations.
type DestinationService interface {
	// CreateDestination creates a new destination.
	CreateDestination(ctx context.Context, name, location string) (*Destination, error)

	// GetDestination retrieves a destination by ID, or nil when absent.
	GetDestination(ctx context.Context, id int64) (*Destination, error)

	// ListDestinations lists all destinations ordered by name.
	ListDestinations(ctx context.Context) ([]*Destination, error)

	// UpdateDestination replaces a destination's name and location.
	UpdateDestination(ctx context.Context, id int64, name, location string) error

	// DeleteDestination deletes a destination unconditionally.
	DeleteDestination(ctx context.Context, id int64) error
}

// Destination is the service-level view of a destination.
type Destination struct {
	ID       int64
	Name     string
	Location string
}
