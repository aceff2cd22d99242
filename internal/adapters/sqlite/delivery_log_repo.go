package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/fleetctl/internal/ports/secondary"
)

// DeliveryLogRepository implements secondary.DeliveryLogRepository with
// SQLite. Events are append-only: created by increments, removed (most
// recent only) by decrements, never updated.
type DeliveryLogRepository struct {
	db  *sql.DB
	log *zap.Logger
}

// NewDeliveryLogRepository creates a new SQLite delivery log repository.
func NewDeliveryLogRepository(db *sql.DB, log *zap.Logger) *DeliveryLogRepository {
	return &DeliveryLogRepository{db: db, log: log}
}

// Record appends one delivery event.
func (r *DeliveryLogRepository) Record(ctx context.Context, tripID int64, date string, quantity int) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO delivery_events (trip_id, delivery_date, quantity) VALUES (?, ?, ?)",
		tripID, date, quantity,
	)
	if err != nil {
		r.log.Error("failed to record delivery", zap.Int64("trip_id", tripID), zap.Error(err))
		return fmt.Errorf("failed to record delivery: %w", err)
	}
	return nil
}

// RemoveMostRecent deletes the single most recently created event for a
// trip. The id tiebreak keeps the choice deterministic when two events
// share a creation second. No rows is a silent no-op.
func (r *DeliveryLogRepository) RemoveMostRecent(ctx context.Context, tripID int64) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM delivery_events WHERE id = (
			SELECT id FROM delivery_events
			WHERE trip_id = ?
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		)`, tripID)
	if err != nil {
		r.log.Error("failed to remove delivery", zap.Int64("trip_id", tripID), zap.Error(err))
		return fmt.Errorf("failed to remove delivery: %w", err)
	}
	return nil
}

// ListByTrip retrieves a trip's events, newest delivery date first.
func (r *DeliveryLogRepository) ListByTrip(ctx context.Context, tripID int64) ([]*secondary.DeliveryEventRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, trip_id, delivery_date, quantity, created_at
		FROM delivery_events
		WHERE trip_id = ?
		ORDER BY delivery_date DESC`, tripID)
	if err != nil {
		r.log.Error("failed to list deliveries", zap.Int64("trip_id", tripID), zap.Error(err))
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	defer rows.Close()

	var events []*secondary.DeliveryEventRecord
	for rows.Next() {
		record := &secondary.DeliveryEventRecord{}
		if err := rows.Scan(&record.ID, &record.TripID, &record.DeliveryDate, &record.Quantity, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan delivery event: %w", err)
		}
		events = append(events, record)
	}

	return events, rows.Err()
}

// CountByTrip returns the number of events recorded for a trip.
func (r *DeliveryLogRepository) CountByTrip(ctx context.Context, tripID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM delivery_events WHERE trip_id = ?", tripID).Scan(&count)
	if err != nil {
		r.log.Error("failed to count deliveries", zap.Int64("trip_id", tripID), zap.Error(err))
		return 0, fmt.Errorf("failed to count deliveries: %w", err)
	}
	return count, nil
}

// HistoryByDate aggregates deliveries by (date, truck, destination, trip),
// newest date first.
func (r *DeliveryLogRepository) HistoryByDate(ctx context.Context) ([]*secondary.HistoryRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			e.delivery_date,
			t.name AS truck_name,
			d.name AS destination_name,
			v.id AS trip_id,
			SUM(e.quantity) AS total_deliveries
		FROM delivery_events e
		INNER JOIN trips v ON e.trip_id = v.id
		INNER JOIN trucks t ON v.truck_id = t.id
		INNER JOIN destinations d ON v.destination_id = d.id
		GROUP BY e.delivery_date, t.id, d.id, v.id
		ORDER BY e.delivery_date DESC
	`)
	if err != nil {
		r.log.Error("failed to get delivery history", zap.Error(err))
		return nil, fmt.Errorf("failed to get delivery history: %w", err)
	}
	defer rows.Close()

	return scanHistory(rows)
}

// HistoryByTruck is HistoryByDate scoped to one truck.
func (r *DeliveryLogRepository) HistoryByTruck(ctx context.Context, truckID int64) ([]*secondary.HistoryRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			e.delivery_date,
			t.name AS truck_name,
			d.name AS destination_name,
			v.id AS trip_id,
			SUM(e.quantity) AS total_deliveries
		FROM delivery_events e
		INNER JOIN trips v ON e.trip_id = v.id
		INNER JOIN trucks t ON v.truck_id = t.id
		INNER JOIN destinations d ON v.destination_id = d.id
		WHERE v.truck_id = ?
		GROUP BY e.delivery_date, d.id, v.id
		ORDER BY e.delivery_date DESC
	`, truckID)
	if err != nil {
		r.log.Error("failed to get truck history", zap.Int64("truck_id", truckID), zap.Error(err))
		return nil, fmt.Errorf("failed to get truck history: %w", err)
	}
	defer rows.Close()

	return scanHistory(rows)
}

func scanHistory(rows *sql.Rows) ([]*secondary.HistoryRecord, error) {
	var history []*secondary.HistoryRecord
	for rows.Next() {
		record := &secondary.HistoryRecord{}
		if err := rows.Scan(&record.DeliveryDate, &record.TruckName, &record.DestinationName, &record.TripID, &record.TotalDeliveries); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		history = append(history, record)
	}
	return history, rows.Err()
}

// Ensure DeliveryLogRepository implements the interface
var _ secondary.DeliveryLogRepository = (*DeliveryLogRepository)(nil)
