package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/example/fleetctl/internal/ports/primary"
	"github.com/example/fleetctl/internal/ports/secondary"
)

// DestinationServiceImpl implements the DestinationService interface.
type DestinationServiceImpl struct {
	destinationRepo secondary.DestinationRepository
	log             *zap.Logger
}

// NewDestinationService creates a new DestinationService with injected
// dependencies.
func NewDestinationService(destinationRepo secondary.DestinationRepository, log *zap.Logger) *DestinationServiceImpl {
	return &DestinationServiceImpl{destinationRepo: destinationRepo, log: log}
}

// CreateDestination creates a new destination. Location is optional.
func (s *DestinationServiceImpl) CreateDestination(ctx context.Context, name, location string) (*primary.Destination, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("destination name is required")
	}

	id, err := s.destinationRepo.Create(ctx, name, strings.TrimSpace(location))
	if err != nil {
		return nil, err
	}

	return s.GetDestination(ctx, id)
}

// GetDestination retrieves a destination by ID, or nil when absent.
func (s *DestinationServiceImpl) GetDestination(ctx context.Context, id int64) (*primary.Destination, error) {
	record, err := s.destinationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return destinationFromRecord(record), nil
}

// ListDestinations lists all destinations ordered by name.
func (s *DestinationServiceImpl) ListDestinations(ctx context.Context) ([]*primary.Destination, error) {
	records, err := s.destinationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	destinations := make([]*primary.Destination, 0, len(records))
	for _, r := range records {
		destinations = append(destinations, destinationFromRecord(r))
	}
	return destinations, nil
}

// UpdateDestination replaces a destination's name and location.
func (s *DestinationServiceImpl) UpdateDestination(ctx context.Context, id int64, name, location string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("destination name is required")
	}
	return s.destinationRepo.Update(ctx, id, name, strings.TrimSpace(location))
}

// DeleteDestination deletes a destination unconditionally.
func (s *DestinationServiceImpl) DeleteDestination(ctx context.Context, id int64) error {
	return s.destinationRepo.Delete(ctx, id)
}

func destinationFromRecord(r *secondary.DestinationRecord) *primary.Destination {
	return &primary.Destination{
		ID:       r.ID,
		Name:     r.Name,
		Location: r.Location,
	}
}

// Ensure DestinationServiceImpl implements the interface
var _ primary.DestinationService = (*DestinationServiceImpl)(nil)
