package db

import (
	"database/sql"
	"fmt"
	"time"
)

// EnsureSchema upgrades any legacy table layout in place and then creates
// the steady-state schema. It is idempotent and safe to run on every
// launch: introspection of a table that does not exist yet means "no
// legacy data", never an error.
//
// Two independent legacy shapes are handled:
//   - trucks carrying a denormalized total_trips column (rebuilt without it)
//   - trips predating planned_count (full rewrite with defaults) or
//     predating only completed_count (additive column change)
func EnsureSchema(database *sql.DB) error {
	if err := migrateLegacyTrucks(database); err != nil {
		return err
	}
	if err := migrateLegacyTrips(database); err != nil {
		return err
	}

	if _, err := database.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// tableColumns returns the column names of a table, or nil if the table
// does not exist.
func tableColumns(database *sql.DB, table string) (map[string]bool, error) {
	rows, err := database.Query(fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		// Introspection failure is treated as "table absent".
		return nil, nil
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var (
			cid       int
			name      string
			colType   string
			notNull   int
			dfltValue sql.NullString
			pk        int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dfltValue, &pk); err != nil {
			return nil, fmt.Errorf("failed to read table info for %s: %w", table, err)
		}
		cols[name] = true
	}
	if len(cols) == 0 {
		return nil, nil
	}
	return cols, nil
}

// migrateLegacyTrucks rebuilds the trucks table without the obsolete
// total_trips column. Completed-trip counts are derived from trips at read
// time instead of being stored.
func migrateLegacyTrucks(database *sql.DB) error {
	cols, err := tableColumns(database, "trucks")
	if err != nil {
		return err
	}
	if cols == nil || !cols["total_trips"] {
		return nil
	}

	steps := []string{
		`CREATE TABLE IF NOT EXISTS trucks_new (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL
		)`,
		`INSERT INTO trucks_new (id, name) SELECT id, name FROM trucks`,
		`DROP TABLE trucks`,
		`ALTER TABLE trucks_new RENAME TO trucks`,
	}
	for _, stmt := range steps {
		if _, err := database.Exec(stmt); err != nil {
			return fmt.Errorf("failed to migrate trucks table: %w", err)
		}
	}

	return nil
}

// migrateLegacyTrips upgrades trips created before planned/completed
// counters existed. A pre-planned_count table is rewritten wholesale with
// defaults; a table missing only completed_count gets the column added.
func migrateLegacyTrips(database *sql.DB) error {
	cols, err := tableColumns(database, "trips")
	if err != nil {
		return err
	}
	if cols == nil {
		return nil
	}

	switch {
	case !cols["planned_count"]:
		return rewriteLegacyTrips(database, cols)
	case !cols["completed_count"]:
		if _, err := database.Exec(`ALTER TABLE trips ADD COLUMN completed_count INTEGER DEFAULT 0`); err != nil {
			return fmt.Errorf("failed to add completed_count column: %w", err)
		}
	}

	return nil
}

func rewriteLegacyTrips(database *sql.DB, cols map[string]bool) error {
	_, err := database.Exec(`
		CREATE TABLE IF NOT EXISTS trips_new (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			truck_id INTEGER,
			destination_id INTEGER,
			planned_count INTEGER NOT NULL,
			completed_count INTEGER DEFAULT 0,
			scheduled_date TEXT NOT NULL,
			status TEXT DEFAULT 'in_progress' CHECK(status IN ('in_progress', 'completed')),
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create trips_new: %w", err)
	}

	// Pre-counter rows had at most a free-form quantity and date; default
	// everything else: counter to zero, date to today, status to
	// in_progress, timestamps to now.
	today := time.Now().Format("2006-01-02")
	now := time.Now().Format(time.RFC3339)

	quantityExpr := "1"
	if cols["quantity"] {
		quantityExpr = "COALESCE(quantity, 1)"
	}
	dateExpr := fmt.Sprintf("'%s'", today)
	if cols["trip_date"] {
		dateExpr = fmt.Sprintf("COALESCE(trip_date, '%s')", today)
	}
	createdExpr := fmt.Sprintf("'%s'", now)
	if cols["created_at"] {
		createdExpr = fmt.Sprintf("COALESCE(created_at, '%s')", now)
	}
	updatedExpr := fmt.Sprintf("'%s'", now)
	if cols["updated_at"] {
		updatedExpr = fmt.Sprintf("COALESCE(updated_at, '%s')", now)
	}

	copyStmt := fmt.Sprintf(`
		INSERT INTO trips_new (truck_id, destination_id, planned_count, completed_count, scheduled_date, status, created_at, updated_at)
		SELECT truck_id, destination_id, %s, 0, %s, 'in_progress', %s, %s
		FROM trips
	`, quantityExpr, dateExpr, createdExpr, updatedExpr)
	if _, err := database.Exec(copyStmt); err != nil {
		return fmt.Errorf("failed to copy legacy trips: %w", err)
	}

	if _, err := database.Exec(`DROP TABLE trips`); err != nil {
		return fmt.Errorf("failed to drop legacy trips table: %w", err)
	}
	if _, err := database.Exec(`ALTER TABLE trips_new RENAME TO trips`); err != nil {
		return fmt.Errorf("failed to rename trips_new: %w", err)
	}

	return nil
}
