// Package sqlite contains SQLite implementations of the repository
// interfaces. Every failure is logged before being re-signaled to the
// caller; there is no retry anywhere.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/fleetctl/internal/ports/secondary"
)

// TruckRepository implements secondary.TruckRepository with SQLite.
type TruckRepository struct {
	db  *sql.DB
	log *zap.Logger
}

// NewTruckRepository creates a new SQLite truck repository.
func NewTruckRepository(db *sql.DB, log *zap.Logger) *TruckRepository {
	return &TruckRepository{db: db, log: log}
}

// truckSelect joins trips to derive the completed-delivery total per truck.
// Trucks without trips sum to zero.
const truckSelect = `
	SELECT t.id, t.name, COALESCE(SUM(tr.completed_count), 0) AS trips_completed
	FROM trucks t
	LEFT JOIN trips tr ON t.id = tr.truck_id
`

// Create persists a new truck and returns its identity.
func (r *TruckRepository) Create(ctx context.Context, name string) (int64, error) {
	result, err := r.db.ExecContext(ctx, "INSERT INTO trucks (name) VALUES (?)", name)
	if err != nil {
		r.log.Error("failed to create truck", zap.String("name", name), zap.Error(err))
		return 0, fmt.Errorf("failed to create truck: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new truck id: %w", err)
	}
	return id, nil
}

// GetByID retrieves a truck with its completed total. A missing id yields
// (nil, nil), not an error.
func (r *TruckRepository) GetByID(ctx context.Context, id int64) (*secondary.TruckRecord, error) {
	record := &secondary.TruckRecord{}
	err := r.db.QueryRowContext(ctx,
		truckSelect+" WHERE t.id = ? GROUP BY t.id, t.name", id,
	).Scan(&record.ID, &record.Name, &record.TripsCompleted)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("failed to get truck", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get truck: %w", err)
	}

	return record, nil
}

// List retrieves all trucks with completed totals, newest first.
func (r *TruckRepository) List(ctx context.Context) ([]*secondary.TruckRecord, error) {
	rows, err := r.db.QueryContext(ctx, truckSelect+" GROUP BY t.id, t.name ORDER BY t.id DESC")
	if err != nil {
		r.log.Error("failed to list trucks", zap.Error(err))
		return nil, fmt.Errorf("failed to list trucks: %w", err)
	}
	defer rows.Close()

	var trucks []*secondary.TruckRecord
	for rows.Next() {
		record := &secondary.TruckRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.TripsCompleted); err != nil {
			return nil, fmt.Errorf("failed to scan truck: %w", err)
		}
		trucks = append(trucks, record)
	}

	return trucks, rows.Err()
}

// Update renames a truck.
func (r *TruckRepository) Update(ctx context.Context, id int64, name string) error {
	result, err := r.db.ExecContext(ctx, "UPDATE trucks SET name = ? WHERE id = ?", name, id)
	if err != nil {
		r.log.Error("failed to update truck", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to update truck: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("truck %d: %w", id, secondary.ErrNotFound)
	}

	return nil
}

// Delete removes a truck. Trips referencing it keep their dangling
// truck_id; there is no referential guard.
func (r *TruckRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM trucks WHERE id = ?", id); err != nil {
		r.log.Error("failed to delete truck", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete truck: %w", err)
	}
	return nil
}

// Ensure TruckRepository implements the interface
var _ secondary.TruckRepository = (*TruckRepository)(nil)
