package app

import (
	"context"
	"fmt"

	"github.com/example/fleetctl/internal/ports/secondary"
)

// mockTruckRepo is an in-memory TruckRepository for service tests.
type mockTruckRepo struct {
	trucks map[int64]*secondary.TruckRecord
	nextID int64
}

func newMockTruckRepo() *mockTruckRepo {
	return &mockTruckRepo{trucks: make(map[int64]*secondary.TruckRecord), nextID: 1}
}

func (m *mockTruckRepo) Create(ctx context.Context, name string) (int64, error) {
	id := m.nextID
	m.nextID++
	m.trucks[id] = &secondary.TruckRecord{ID: id, Name: name}
	return id, nil
}

func (m *mockTruckRepo) GetByID(ctx context.Context, id int64) (*secondary.TruckRecord, error) {
	return m.trucks[id], nil
}

func (m *mockTruckRepo) List(ctx context.Context) ([]*secondary.TruckRecord, error) {
	var records []*secondary.TruckRecord
	for _, t := range m.trucks {
		records = append(records, t)
	}
	return records, nil
}

func (m *mockTruckRepo) Update(ctx context.Context, id int64, name string) error {
	truck, ok := m.trucks[id]
	if !ok {
		return fmt.Errorf("truck %d: %w", id, secondary.ErrNotFound)
	}
	truck.Name = name
	return nil
}

func (m *mockTruckRepo) Delete(ctx context.Context, id int64) error {
	delete(m.trucks, id)
	return nil
}

// mockDestinationRepo is an in-memory DestinationRepository.
type mockDestinationRepo struct {
	destinations map[int64]*secondary.DestinationRecord
	nextID       int64
}

func newMockDestinationRepo() *mockDestinationRepo {
	return &mockDestinationRepo{destinations: make(map[int64]*secondary.DestinationRecord), nextID: 1}
}

func (m *mockDestinationRepo) Create(ctx context.Context, name, location string) (int64, error) {
	id := m.nextID
	m.nextID++
	m.destinations[id] = &secondary.DestinationRecord{ID: id, Name: name, Location: location}
	return id, nil
}

func (m *mockDestinationRepo) GetByID(ctx context.Context, id int64) (*secondary.DestinationRecord, error) {
	return m.destinations[id], nil
}

func (m *mockDestinationRepo) List(ctx context.Context) ([]*secondary.DestinationRecord, error) {
	var records []*secondary.DestinationRecord
	for _, d := range m.destinations {
		records = append(records, d)
	}
	return records, nil
}

func (m *mockDestinationRepo) Update(ctx context.Context, id int64, name, location string) error {
	dest, ok := m.destinations[id]
	if !ok {
		return fmt.Errorf("destination %d: %w", id, secondary.ErrNotFound)
	}
	dest.Name = name
	dest.Location = location
	return nil
}

func (m *mockDestinationRepo) Delete(ctx context.Context, id int64) error {
	delete(m.destinations, id)
	return nil
}

// mockTripRepo is an in-memory TripRepository. Progress updates are applied
// to the stored record so sequences of increments observe each other.
type mockTripRepo struct {
	trips  map[int64]*secondary.TripRecord
	nextID int64

	updateProgressErr error
}

func newMockTripRepo() *mockTripRepo {
	return &mockTripRepo{trips: make(map[int64]*secondary.TripRecord), nextID: 1}
}

func (m *mockTripRepo) Create(ctx context.Context, newTrip *secondary.NewTrip) (int64, error) {
	id := m.nextID
	m.nextID++
	m.trips[id] = &secondary.TripRecord{
		ID:            id,
		TruckID:       newTrip.TruckID,
		DestinationID: newTrip.DestinationID,
		PlannedCount:  newTrip.PlannedCount,
		ScheduledDate: newTrip.ScheduledDate,
		Status:        "in_progress",
	}
	return id, nil
}

func (m *mockTripRepo) GetByID(ctx context.Context, id int64) (*secondary.TripRecord, error) {
	trip, ok := m.trips[id]
	if !ok {
		return nil, fmt.Errorf("trip %d: %w", id, secondary.ErrNotFound)
	}
	copied := *trip
	return &copied, nil
}

func (m *mockTripRepo) List(ctx context.Context) ([]*secondary.TripRecord, error) {
	var records []*secondary.TripRecord
	for _, t := range m.trips {
		records = append(records, t)
	}
	return records, nil
}

func (m *mockTripRepo) GetByTruck(ctx context.Context, truckID int64) ([]*secondary.TripRecord, error) {
	var records []*secondary.TripRecord
	for _, t := range m.trips {
		if t.TruckID == truckID {
			records = append(records, t)
		}
	}
	return records, nil
}

func (m *mockTripRepo) ListInProgress(ctx context.Context) ([]*secondary.TripRecord, error) {
	var records []*secondary.TripRecord
	for _, t := range m.trips {
		if t.Status == "in_progress" {
			records = append(records, t)
		}
	}
	return records, nil
}

func (m *mockTripRepo) UpdateProgress(ctx context.Context, id int64, completed int, status string) error {
	if m.updateProgressErr != nil {
		return m.updateProgressErr
	}
	trip, ok := m.trips[id]
	if !ok {
		return fmt.Errorf("trip %d: %w", id, secondary.ErrNotFound)
	}
	trip.CompletedCount = completed
	trip.Status = status
	return nil
}

func (m *mockTripRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	trip, ok := m.trips[id]
	if !ok {
		return fmt.Errorf("trip %d: %w", id, secondary.ErrNotFound)
	}
	trip.Status = status
	return nil
}

func (m *mockTripRepo) Delete(ctx context.Context, id int64) error {
	delete(m.trips, id)
	return nil
}

func (m *mockTripRepo) DailyStats(ctx context.Context) ([]*secondary.DailyStatRecord, error) {
	return nil, nil
}

// mockDeliveryRepo is an in-memory DeliveryLogRepository with injectable
// failures for the best-effort paths.
type mockDeliveryRepo struct {
	events []*secondary.DeliveryEventRecord
	nextID int64

	recordErr error
	removeErr error
}

func newMockDeliveryRepo() *mockDeliveryRepo {
	return &mockDeliveryRepo{nextID: 1}
}

func (m *mockDeliveryRepo) Record(ctx context.Context, tripID int64, date string, quantity int) error {
	if m.recordErr != nil {
		return m.recordErr
	}
	m.events = append(m.events, &secondary.DeliveryEventRecord{
		ID:           m.nextID,
		TripID:       tripID,
		DeliveryDate: date,
		Quantity:     quantity,
	})
	m.nextID++
	return nil
}

func (m *mockDeliveryRepo) RemoveMostRecent(ctx context.Context, tripID int64) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	for i := len(m.events) - 1; i >= 0; i-- {
		if m.events[i].TripID == tripID {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *mockDeliveryRepo) ListByTrip(ctx context.Context, tripID int64) ([]*secondary.DeliveryEventRecord, error) {
	var records []*secondary.DeliveryEventRecord
	for _, e := range m.events {
		if e.TripID == tripID {
			records = append(records, e)
		}
	}
	return records, nil
}

func (m *mockDeliveryRepo) CountByTrip(ctx context.Context, tripID int64) (int, error) {
	count := 0
	for _, e := range m.events {
		if e.TripID == tripID {
			count++
		}
	}
	return count, nil
}

func (m *mockDeliveryRepo) HistoryByDate(ctx context.Context) ([]*secondary.HistoryRecord, error) {
	return nil, nil
}

func (m *mockDeliveryRepo) HistoryByTruck(ctx context.Context, truckID int64) ([]*secondary.HistoryRecord, error) {
	return nil, nil
}

var (
	_ secondary.TruckRepository       = (*mockTruckRepo)(nil)
	_ secondary.DestinationRepository = (*mockDestinationRepo)(nil)
	_ secondary.TripRepository        = (*mockTripRepo)(nil)
	_ secondary.DeliveryLogRepository = (*mockDeliveryRepo)(nil)
)
