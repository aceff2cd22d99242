package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/example/fleetctl/internal/ports/primary"
	"github.com/example/fleetctl/internal/ports/secondary"
)

// DeliveryLogServiceImpl implements the DeliveryLogService interface.
type DeliveryLogServiceImpl struct {
	deliveryRepo secondary.DeliveryLogRepository
	log          *zap.Logger
}

// NewDeliveryLogService creates a new DeliveryLogService with injected
// dependencies.
func NewDeliveryLogService(deliveryRepo secondary.DeliveryLogRepository, log *zap.Logger) *DeliveryLogServiceImpl {
	return &DeliveryLogServiceImpl{deliveryRepo: deliveryRepo, log: log}
}

// HistoryByDate returns deliveries grouped by (date, truck, destination,
// trip), newest date first.
func (s *DeliveryLogServiceImpl) HistoryByDate(ctx context.Context) ([]*primary.HistoryEntry, error) {
	records, err := s.deliveryRepo.HistoryByDate(ctx)
	if err != nil {
		return nil, err
	}
	return historyFromRecords(records), nil
}

// HistoryByTruck is HistoryByDate scoped to one truck.
func (s *DeliveryLogServiceImpl) HistoryByTruck(ctx context.Context, truckID int64) ([]*primary.HistoryEntry, error) {
	records, err := s.deliveryRepo.HistoryByTruck(ctx, truckID)
	if err != nil {
		return nil, err
	}
	return historyFromRecords(records), nil
}

// ListByTrip returns a trip's individual delivery events, newest delivery
// date first.
func (s *DeliveryLogServiceImpl) ListByTrip(ctx context.Context, tripID int64) ([]*primary.DeliveryEvent, error) {
	records, err := s.deliveryRepo.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	events := make([]*primary.DeliveryEvent, 0, len(records))
	for _, r := range records {
		events = append(events, &primary.DeliveryEvent{
			ID:           r.ID,
			TripID:       r.TripID,
			DeliveryDate: r.DeliveryDate,
			Quantity:     r.Quantity,
			CreatedAt:    r.CreatedAt,
		})
	}
	return events, nil
}

func historyFromRecords(records []*secondary.HistoryRecord) []*primary.HistoryEntry {
	entries := make([]*primary.HistoryEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, &primary.HistoryEntry{
			DeliveryDate:    r.DeliveryDate,
			TruckName:       r.TruckName,
			DestinationName: r.DestinationName,
			TripID:          r.TripID,
			TotalDeliveries: r.TotalDeliveries,
		})
	}
	return entries
}

// Ensure DeliveryLogServiceImpl implements the interface
var _ primary.DeliveryLogService = (*DeliveryLogServiceImpl)(nil)
