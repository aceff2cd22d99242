package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/fleetctl/internal/core/trip"
	"github.com/example/fleetctl/internal/ports/secondary"
)

// TripRepository implements secondary.TripRepository with SQLite.
type TripRepository struct {
	db  *sql.DB
	log *zap.Logger
}

// NewTripRepository creates a new SQLite trip repository.
func NewTripRepository(db *sql.DB, log *zap.Logger) *TripRepository {
	return &TripRepository{db: db, log: log}
}

// tripJoinSelect joins truck and destination names. LEFT JOINs because a
// referenced truck or destination may have been deleted out from under the
// trip.
const tripJoinSelect = `
	SELECT
		v.id, v.truck_id, v.destination_id, v.planned_count, v.completed_count,
		v.scheduled_date, v.status, v.created_at, v.updated_at,
		COALESCE(t.name, ''), COALESCE(d.name, ''), COALESCE(d.location, '')
	FROM trips v
	LEFT JOIN trucks t ON v.truck_id = t.id
	LEFT JOIN destinations d ON v.destination_id = d.id
`

func scanTrip(scanner interface{ Scan(dest ...any) error }) (*secondary.TripRecord, error) {
	record := &secondary.TripRecord{}
	err := scanner.Scan(
		&record.ID, &record.TruckID, &record.DestinationID,
		&record.PlannedCount, &record.CompletedCount,
		&record.ScheduledDate, &record.Status, &record.CreatedAt, &record.UpdatedAt,
		&record.TruckName, &record.DestinationName, &record.DestinationLocation,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}

func (r *TripRepository) queryTrips(ctx context.Context, query string, args ...any) ([]*secondary.TripRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*secondary.TripRecord
	for rows.Next() {
		record, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, record)
	}

	return trips, rows.Err()
}

// Create persists a new trip with a zero counter and returns its identity.
func (r *TripRepository) Create(ctx context.Context, newTrip *secondary.NewTrip) (int64, error) {
	result, err := r.db.ExecContext(ctx, `
		INSERT INTO trips (truck_id, destination_id, planned_count, scheduled_date, status)
		VALUES (?, ?, ?, ?, ?)`,
		newTrip.TruckID, newTrip.DestinationID, newTrip.PlannedCount,
		newTrip.ScheduledDate, string(trip.StatusInProgress),
	)
	if err != nil {
		r.log.Error("failed to create trip", zap.Error(err))
		return 0, fmt.Errorf("failed to create trip: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new trip id: %w", err)
	}
	return id, nil
}

// GetByID retrieves a trip; ErrNotFound when absent.
func (r *TripRepository) GetByID(ctx context.Context, id int64) (*secondary.TripRecord, error) {
	row := r.db.QueryRowContext(ctx, tripJoinSelect+" WHERE v.id = ?", id)
	record, err := scanTrip(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("trip %d: %w", id, secondary.ErrNotFound)
	}
	if err != nil {
		r.log.Error("failed to get trip", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}
	return record, nil
}

// List retrieves all trips, newest-scheduled first, newest id first within
// a date.
func (r *TripRepository) List(ctx context.Context) ([]*secondary.TripRecord, error) {
	trips, err := r.queryTrips(ctx, tripJoinSelect+" ORDER BY v.scheduled_date DESC, v.id DESC")
	if err != nil {
		r.log.Error("failed to list trips", zap.Error(err))
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	return trips, nil
}

// GetByTruck retrieves one truck's trips, newest-scheduled first.
func (r *TripRepository) GetByTruck(ctx context.Context, truckID int64) ([]*secondary.TripRecord, error) {
	trips, err := r.queryTrips(ctx,
		tripJoinSelect+" WHERE v.truck_id = ? ORDER BY v.scheduled_date DESC", truckID)
	if err != nil {
		r.log.Error("failed to get trips by truck", zap.Int64("truck_id", truckID), zap.Error(err))
		return nil, fmt.Errorf("failed to get trips by truck: %w", err)
	}
	return trips, nil
}

// ListInProgress retrieves in-progress trips ordered by ascending
// scheduled date, soonest first.
func (r *TripRepository) ListInProgress(ctx context.Context) ([]*secondary.TripRecord, error) {
	trips, err := r.queryTrips(ctx,
		tripJoinSelect+" WHERE v.status = ? ORDER BY v.scheduled_date ASC",
		string(trip.StatusInProgress))
	if err != nil {
		r.log.Error("failed to list in-progress trips", zap.Error(err))
		return nil, fmt.Errorf("failed to list in-progress trips: %w", err)
	}
	return trips, nil
}

// UpdateProgress persists a new counter value and status.
func (r *TripRepository) UpdateProgress(ctx context.Context, id int64, completed int, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE trips SET completed_count = ?, status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		completed, status, id,
	)
	if err != nil {
		r.log.Error("failed to update trip progress", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to update trip progress: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("trip %d: %w", id, secondary.ErrNotFound)
	}

	return nil
}

// UpdateStatus writes the status directly, leaving the counter alone.
func (r *TripRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE trips SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		status, id,
	)
	if err != nil {
		r.log.Error("failed to update trip status", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to update trip status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("trip %d: %w", id, secondary.ErrNotFound)
	}

	return nil
}

// Delete removes a trip; delivery events cascade via the foreign key.
func (r *TripRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", id); err != nil {
		r.log.Error("failed to delete trip", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	return nil
}

// DailyStats aggregates trips by scheduled date: trip count, planned sum,
// and planned sum over completed trips. Most recent 30 dates.
func (r *TripRepository) DailyStats(ctx context.Context) ([]*secondary.DailyStatRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			scheduled_date,
			COUNT(*) AS trip_count,
			SUM(planned_count) AS planned_total,
			SUM(CASE WHEN status = 'completed' THEN planned_count ELSE 0 END) AS completed_total
		FROM trips
		GROUP BY scheduled_date
		ORDER BY scheduled_date DESC
		LIMIT 30
	`)
	if err != nil {
		r.log.Error("failed to get daily stats", zap.Error(err))
		return nil, fmt.Errorf("failed to get daily stats: %w", err)
	}
	defer rows.Close()

	var stats []*secondary.DailyStatRecord
	for rows.Next() {
		record := &secondary.DailyStatRecord{}
		if err := rows.Scan(&record.ScheduledDate, &record.TripCount, &record.PlannedTotal, &record.CompletedTotal); err != nil {
			return nil, fmt.Errorf("failed to scan daily stat: %w", err)
		}
		stats = append(stats, record)
	}

	return stats, rows.Err()
}

// Ensure TripRepository implements the interface
var _ secondary.TripRepository = (*TripRepository)(nil)
