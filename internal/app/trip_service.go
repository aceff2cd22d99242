// Package app implements the primary ports on top of the repository
// secondary ports.
package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/fleetctl/internal/core/trip"
	"github.com/example/fleetctl/internal/ports/primary"
	"github.com/example/fleetctl/internal/ports/secondary"
)

// TripServiceImpl implements the TripService interface.
type TripServiceImpl struct {
	tripRepo     secondary.TripRepository
	deliveryRepo secondary.DeliveryLogRepository
	log          *zap.Logger
	now          func() time.Time
}

// NewTripService creates a new TripService with injected dependencies.
func NewTripService(
	tripRepo secondary.TripRepository,
	deliveryRepo secondary.DeliveryLogRepository,
	log *zap.Logger,
) *TripServiceImpl {
	return &TripServiceImpl{
		tripRepo:     tripRepo,
		deliveryRepo: deliveryRepo,
		log:          log,
		now:          time.Now,
	}
}

// localDate is the device-local calendar day, no timezone conversion.
// Delivery events are dated by whatever the local clock says, so the
// midnight boundary follows the device zone, not UTC.
func (s *TripServiceImpl) localDate() string {
	return s.now().Format("2006-01-02")
}

// CreateTrip schedules a new trip with a zero completion counter.
func (s *TripServiceImpl) CreateTrip(ctx context.Context, req primary.CreateTripRequest) (*primary.Trip, error) {
	if req.TruckID == 0 {
		return nil, fmt.Errorf("truck id is required")
	}
	if req.DestinationID == 0 {
		return nil, fmt.Errorf("destination id is required")
	}
	if req.PlannedCount < 1 {
		return nil, fmt.Errorf("planned count must be at least 1")
	}
	if req.ScheduledDate == "" {
		return nil, fmt.Errorf("scheduled date is required")
	}

	id, err := s.tripRepo.Create(ctx, &secondary.NewTrip{
		TruckID:       req.TruckID,
		DestinationID: req.DestinationID,
		PlannedCount:  req.PlannedCount,
		ScheduledDate: req.ScheduledDate,
	})
	if err != nil {
		return nil, err
	}

	return s.GetTrip(ctx, id)
}

// GetTrip retrieves a trip by ID.
func (s *TripServiceImpl) GetTrip(ctx context.Context, id int64) (*primary.Trip, error) {
	record, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return tripFromRecord(record), nil
}

// ListTrips lists all trips, newest-scheduled first.
func (s *TripServiceImpl) ListTrips(ctx context.Context) ([]*primary.Trip, error) {
	records, err := s.tripRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return tripsFromRecords(records), nil
}

// ListTripsByTruck lists one truck's trips, newest-scheduled first.
func (s *TripServiceImpl) ListTripsByTruck(ctx context.Context, truckID int64) ([]*primary.Trip, error) {
	records, err := s.tripRepo.GetByTruck(ctx, truckID)
	if err != nil {
		return nil, err
	}
	return tripsFromRecords(records), nil
}

// ListInProgress lists in-progress trips, soonest scheduled first.
func (s *TripServiceImpl) ListInProgress(ctx context.Context) ([]*primary.Trip, error) {
	records, err := s.tripRepo.ListInProgress(ctx)
	if err != nil {
		return nil, err
	}
	return tripsFromRecords(records), nil
}

// IncrementCompleted records one more completed delivery.
//
// The delivery-log append is attempted first and is best-effort: a failure
// is logged and swallowed, and the counter update still proceeds. The two
// writes are not atomic; a crash between them leaves the log and counter
// inconsistent, which is an accepted limitation.
//
// At the ceiling the counter saturates but a delivery event is still
// appended, matching the historical behavior of the tracker.
func (s *TripServiceImpl) IncrementCompleted(ctx context.Context, id int64) (*primary.ProgressResult, error) {
	record, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, status := trip.Advance(trip.Progress{
		Planned:   record.PlannedCount,
		Completed: record.CompletedCount,
	})

	if err := s.deliveryRepo.Record(ctx, id, s.localDate(), 1); err != nil {
		s.log.Warn("delivery log append failed, counter update proceeds",
			zap.Int64("trip_id", id), zap.Error(err))
	}

	if err := s.tripRepo.UpdateProgress(ctx, id, next.Completed, string(status)); err != nil {
		return nil, err
	}

	return &primary.ProgressResult{CompletedCount: next.Completed, Status: string(status)}, nil
}

// DecrementCompleted takes back the most recent delivery. Unlike the
// increment path, a failing log delete aborts the operation. The status is
// always forced back to in_progress.
func (s *TripServiceImpl) DecrementCompleted(ctx context.Context, id int64) (*primary.ProgressResult, error) {
	record, err := s.tripRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	next, status := trip.Regress(trip.Progress{
		Planned:   record.PlannedCount,
		Completed: record.CompletedCount,
	})

	if err := s.deliveryRepo.RemoveMostRecent(ctx, id); err != nil {
		return nil, err
	}

	if err := s.tripRepo.UpdateProgress(ctx, id, next.Completed, string(status)); err != nil {
		return nil, err
	}

	return &primary.ProgressResult{CompletedCount: next.Completed, Status: string(status)}, nil
}

// SetStatus overrides a trip's status without touching the counter. This
// is the manual override: it can leave status and counter out of sync.
func (s *TripServiceImpl) SetStatus(ctx context.Context, id int64, status string) error {
	if !trip.Status(status).Valid() {
		return fmt.Errorf("invalid status %q", status)
	}
	return s.tripRepo.UpdateStatus(ctx, id, status)
}

// DeleteTrip deletes a trip and, via cascade, its delivery events.
func (s *TripServiceImpl) DeleteTrip(ctx context.Context, id int64) error {
	return s.tripRepo.Delete(ctx, id)
}

// DailyStats aggregates trips by scheduled date.
func (s *TripServiceImpl) DailyStats(ctx context.Context) ([]*primary.DailyStat, error) {
	records, err := s.tripRepo.DailyStats(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]*primary.DailyStat, 0, len(records))
	for _, r := range records {
		stats = append(stats, &primary.DailyStat{
			ScheduledDate:  r.ScheduledDate,
			TripCount:      r.TripCount,
			PlannedTotal:   r.PlannedTotal,
			CompletedTotal: r.CompletedTotal,
		})
	}
	return stats, nil
}

func tripFromRecord(r *secondary.TripRecord) *primary.Trip {
	return &primary.Trip{
		ID:                  r.ID,
		TruckID:             r.TruckID,
		DestinationID:       r.DestinationID,
		PlannedCount:        r.PlannedCount,
		CompletedCount:      r.CompletedCount,
		ScheduledDate:       r.ScheduledDate,
		Status:              r.Status,
		CreatedAt:           r.CreatedAt,
		UpdatedAt:           r.UpdatedAt,
		TruckName:           r.TruckName,
		DestinationName:     r.DestinationName,
		DestinationLocation: r.DestinationLocation,
	}
}

func tripsFromRecords(records []*secondary.TripRecord) []*primary.Trip {
	trips := make([]*primary.Trip, 0, len(records))
	for _, r := range records {
		trips = append(trips, tripFromRecord(r))
	}
	return trips
}

// Ensure TripServiceImpl implements the interface
var _ primary.TripService = (*TripServiceImpl)(nil)
