package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/fleetctl/internal/ports/secondary"
)

// DestinationRepository implements secondary.DestinationRepository with SQLite.
type DestinationRepository struct {
	db  *sql.DB
	log *zap.Logger
}

// NewDestinationRepository creates a new SQLite destination repository.
func NewDestinationRepository(db *sql.DB, log *zap.Logger) *DestinationRepository {
	return &DestinationRepository{db: db, log: log}
}

func scanDestination(scanner interface{ Scan(dest ...any) error }) (*secondary.DestinationRecord, error) {
	var location sql.NullString
	record := &secondary.DestinationRecord{}
	if err := scanner.Scan(&record.ID, &record.Name, &location); err != nil {
		return nil, err
	}
	record.Location = location.String
	return record, nil
}

// Create persists a new destination and returns its identity.
func (r *DestinationRepository) Create(ctx context.Context, name, location string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO destinations (name, location) VALUES (?, ?)", name, location)
	if err != nil {
		r.log.Error("failed to create destination", zap.String("name", name), zap.Error(err))
		return 0, fmt.Errorf("failed to create destination: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new destination id: %w", err)
	}
	return id, nil
}

// GetByID retrieves a destination; a missing id yields (nil, nil).
func (r *DestinationRepository) GetByID(ctx context.Context, id int64) (*secondary.DestinationRecord, error) {
	row := r.db.QueryRowContext(ctx, "SELECT id, name, location FROM destinations WHERE id = ?", id)
	record, err := scanDestination(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("failed to get destination", zap.Int64("id", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get destination: %w", err)
	}
	return record, nil
}

// List retrieves all destinations ordered by name.
func (r *DestinationRepository) List(ctx context.Context) ([]*secondary.DestinationRecord, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, name, location FROM destinations ORDER BY name")
	if err != nil {
		r.log.Error("failed to list destinations", zap.Error(err))
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	defer rows.Close()

	var destinations []*secondary.DestinationRecord
	for rows.Next() {
		record, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan destination: %w", err)
		}
		destinations = append(destinations, record)
	}

	return destinations, rows.Err()
}

// Update replaces a destination's name and location.
func (r *DestinationRepository) Update(ctx context.Context, id int64, name, location string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE destinations SET name = ?, location = ? WHERE id = ?", name, location, id)
	if err != nil {
		r.log.Error("failed to update destination", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to update destination: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("destination %d: %w", id, secondary.ErrNotFound)
	}

	return nil
}

// Delete removes a destination. Trips referencing it are left dangling.
func (r *DestinationRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM destinations WHERE id = ?", id); err != nil {
		r.log.Error("failed to delete destination", zap.Int64("id", id), zap.Error(err))
		return fmt.Errorf("failed to delete destination: %w", err)
	}
	return nil
}

// Ensure DestinationRepository implements the interface
var _ secondary.DestinationRepository = (*DestinationRepository)(nil)
