package app

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/example/fleetctl/internal/ports/primary"
	"github.com/example/fleetctl/internal/ports/secondary"
)

// TruckServiceImpl implements the TruckService interface.
type TruckServiceImpl struct {
	truckRepo secondary.TruckRepository
	log       *zap.Logger
}

// NewTruckService creates a new TruckService with injected dependencies.
func NewTruckService(truckRepo secondary.TruckRepository, log *zap.Logger) *TruckServiceImpl {
	return &TruckServiceImpl{truckRepo: truckRepo, log: log}
}

// CreateTruck creates a new truck.
func (s *TruckServiceImpl) CreateTruck(ctx context.Context, name string) (*primary.Truck, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("truck name is required")
	}

	id, err := s.truckRepo.Create(ctx, name)
	if err != nil {
		return nil, err
	}

	return &primary.Truck{ID: id, Name: name}, nil
}

// GetTruck retrieves a truck by ID, or nil when it does not exist.
func (s *TruckServiceImpl) GetTruck(ctx context.Context, id int64) (*primary.Truck, error) {
	record, err := s.truckRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, nil
	}
	return truckFromRecord(record), nil
}

// ListTrucks lists all trucks with their completed-delivery totals.
func (s *TruckServiceImpl) ListTrucks(ctx context.Context) ([]*primary.Truck, error) {
	records, err := s.truckRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	trucks := make([]*primary.Truck, 0, len(records))
	for _, r := range records {
		trucks = append(trucks, truckFromRecord(r))
	}
	return trucks, nil
}

// RenameTruck updates a truck's name.
func (s *TruckServiceImpl) RenameTruck(ctx context.Context, id int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("truck name is required")
	}
	return s.truckRepo.Update(ctx, id, name)
}

// DeleteTruck deletes a truck unconditionally.
func (s *TruckServiceImpl) DeleteTruck(ctx context.Context, id int64) error {
	return s.truckRepo.Delete(ctx, id)
}

func truckFromRecord(r *secondary.TruckRecord) *primary.Truck {
	return &primary.Truck{
		ID:             r.ID,
		Name:           r.Name,
		TripsCompleted: r.TripsCompleted,
	}
}

// Ensure TruckServiceImpl implements the interface
var _ primary.TruckService = (*TruckServiceImpl)(nil)
