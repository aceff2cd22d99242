package db

import (
	"database/sql"
	"fmt"
)

// Seed inserts example trucks on a first run against an empty database.
// Existing data is never touched.
func Seed(database *sql.DB) error {
	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM trucks").Scan(&count); err != nil {
		return fmt.Errorf("failed to count trucks: %w", err)
	}
	if count > 0 {
		return nil
	}

	for _, name := range []string{"Truck F1", "Truck F2", "Truck F3"} {
		if _, err := database.Exec("INSERT INTO trucks (name) VALUES (?)", name); err != nil {
			return fmt.Errorf("failed to seed truck %s: %w", name, err)
		}
	}

	return nil
}
