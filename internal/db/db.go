// Package db owns the embedded SQLite database: opening the handle,
// keeping the schema current, and seeding first-run data.
package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Open opens (or creates) the database at the given path, enables foreign
// keys, and brings the schema up to date. The returned handle is shared by
// all repositories; the caller owns its lifecycle and must Close it at
// process end.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	database, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Cascade delete of delivery events relies on this pragma.
	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := EnsureSchema(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	if err := Seed(database); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	return database, nil
}
