// Package sqlite_test contains integration tests for SQLite repositories.
//
// # Schema Protection
//
// This file is the SINGLE POINT where the database schema is loaded for
// tests. All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema, preventing drift between test and production.
//
// DO NOT hardcode CREATE TABLE statements in test files. Use setupTestDB()
// and the seed* helpers instead.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/fleetctl/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
// Foreign keys are enabled to match the production handle, so cascade
// behavior is exercised the same way.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	// Use the authoritative schema from schema.go
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedTruck inserts a test truck and returns its ID.
func seedTruck(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	if name == "" {
		name = "Test Truck"
	}
	result, err := db.Exec("INSERT INTO trucks (name) VALUES (?)", name)
	if err != nil {
		t.Fatalf("failed to seed truck: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// seedDestination inserts a test destination and returns its ID.
func seedDestination(t *testing.T, db *sql.DB, name, location string) int64 {
	t.Helper()
	if name == "" {
		name = "Test Destination"
	}
	result, err := db.Exec("INSERT INTO destinations (name, location) VALUES (?, ?)", name, location)
	if err != nil {
		t.Fatalf("failed to seed destination: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// seedTrip inserts a test trip and returns its ID.
func seedTrip(t *testing.T, db *sql.DB, truckID, destinationID int64, planned, completed int, date, status string) int64 {
	t.Helper()
	if date == "" {
		date = "2026-08-30"
	}
	if status == "" {
		status = "in_progress"
	}
	result, err := db.Exec(`
		INSERT INTO trips (truck_id, destination_id, planned_count, completed_count, scheduled_date, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		truckID, destinationID, planned, completed, date, status)
	if err != nil {
		t.Fatalf("failed to seed trip: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// seedEvent inserts a delivery event with an explicit created_at so ordering
// tests control recency, and returns its ID.
func seedEvent(t *testing.T, db *sql.DB, tripID int64, date, createdAt string) int64 {
	t.Helper()
	if createdAt == "" {
		createdAt = "2026-08-30 12:00:00"
	}
	result, err := db.Exec(`
		INSERT INTO delivery_events (trip_id, delivery_date, quantity, created_at)
		VALUES (?, ?, 1, ?)`,
		tripID, date, createdAt)
	if err != nil {
		t.Fatalf("failed to seed delivery event: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}
