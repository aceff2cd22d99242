package db

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}

func TestEnsureSchema_FreshDatabase(t *testing.T) {
	database := openTestDB(t)

	if err := EnsureSchema(database); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	for _, table := range []string{"trucks", "destinations", "trips", "delivery_events"} {
		var name string
		err := database.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		if err != nil {
			t.Errorf("table %s missing after EnsureSchema: %v", table, err)
		}
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	database := openTestDB(t)

	if err := EnsureSchema(database); err != nil {
		t.Fatalf("first EnsureSchema failed: %v", err)
	}

	if _, err := database.Exec("INSERT INTO trucks (name) VALUES ('Keeper')"); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if err := EnsureSchema(database); err != nil {
		t.Fatalf("second EnsureSchema failed: %v", err)
	}

	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM trucks").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("truck rows after rerun = %d, want 1", count)
	}
}

func TestEnsureSchema_LegacyTrucksRewrite(t *testing.T) {
	database := openTestDB(t)

	// Old layout stored a denormalized trip total on the truck itself.
	mustExec(t, database, `
		CREATE TABLE trucks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			total_trips INTEGER DEFAULT 0
		)`)
	mustExec(t, database, "INSERT INTO trucks (id, name, total_trips) VALUES (7, 'Veteran', 42)")

	if err := EnsureSchema(database); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	cols, err := tableColumns(database, "trucks")
	if err != nil {
		t.Fatalf("tableColumns failed: %v", err)
	}
	if cols["total_trips"] {
		t.Error("total_trips column survived the rewrite")
	}

	// Identity and name survive.
	var name string
	if err := database.QueryRow("SELECT name FROM trucks WHERE id = 7").Scan(&name); err != nil {
		t.Fatalf("row lost in rewrite: %v", err)
	}
	if name != "Veteran" {
		t.Errorf("name = %q, want Veteran", name)
	}
}

func TestEnsureSchema_LegacyTripsFullRewrite(t *testing.T) {
	database := openTestDB(t)

	// Pre-counter layout: free-form quantity and trip_date, no counters.
	mustExec(t, database, `
		CREATE TABLE trips (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			truck_id INTEGER,
			destination_id INTEGER,
			quantity INTEGER,
			trip_date TEXT
		)`)
	mustExec(t, database, "INSERT INTO trips (truck_id, destination_id, quantity, trip_date) VALUES (1, 2, 5, '2025-12-01')")
	mustExec(t, database, "INSERT INTO trips (truck_id, destination_id, quantity, trip_date) VALUES (1, 2, NULL, NULL)")

	if err := EnsureSchema(database); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	type row struct {
		planned, completed int
		date, status       string
	}
	rows, err := database.Query("SELECT planned_count, completed_count, scheduled_date, status FROM trips ORDER BY id")
	if err != nil {
		t.Fatalf("query rewritten trips: %v", err)
	}
	defer rows.Close()

	var got []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.planned, &r.completed, &r.date, &r.status); err != nil {
			t.Fatalf("scan: %v", err)
		}
		got = append(got, r)
	}
	if len(got) != 2 {
		t.Fatalf("rewrote %d rows, want 2", len(got))
	}

	if got[0].planned != 5 || got[0].date != "2025-12-01" {
		t.Errorf("row 1 = %+v, want planned 5, date 2025-12-01", got[0])
	}
	// NULL quantity defaults to 1, NULL date to today, counter to 0.
	if got[1].planned != 1 {
		t.Errorf("row 2 planned = %d, want 1 for NULL quantity", got[1].planned)
	}
	if got[1].date == "" {
		t.Error("row 2 scheduled_date empty, want today's date")
	}
	for i, r := range got {
		if r.completed != 0 {
			t.Errorf("row %d completed = %d, want 0", i+1, r.completed)
		}
		if r.status != "in_progress" {
			t.Errorf("row %d status = %q, want in_progress", i+1, r.status)
		}
	}
}

func TestEnsureSchema_LegacyTripsAddCompletedCount(t *testing.T) {
	database := openTestDB(t)

	// Intermediate layout: planned_count exists but completed_count does not.
	mustExec(t, database, `
		CREATE TABLE trips (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			truck_id INTEGER,
			destination_id INTEGER,
			planned_count INTEGER NOT NULL,
			scheduled_date TEXT NOT NULL,
			status TEXT DEFAULT 'in_progress',
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`)
	mustExec(t, database, "INSERT INTO trips (truck_id, destination_id, planned_count, scheduled_date) VALUES (1, 2, 4, '2026-01-15')")

	if err := EnsureSchema(database); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	var completed, planned int
	err := database.QueryRow("SELECT completed_count, planned_count FROM trips WHERE truck_id = 1").Scan(&completed, &planned)
	if err != nil {
		t.Fatalf("query after additive migration: %v", err)
	}
	if completed != 0 {
		t.Errorf("completed_count = %d, want default 0", completed)
	}
	if planned != 4 {
		t.Errorf("planned_count = %d, want 4 (untouched)", planned)
	}
}

func TestSeed_EmptyDatabase(t *testing.T) {
	database := openTestDB(t)

	if err := EnsureSchema(database); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	if err := Seed(database); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM trucks").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("seeded %d trucks, want 3", count)
	}
}

func TestSeed_SkipsNonEmpty(t *testing.T) {
	database := openTestDB(t)

	if err := EnsureSchema(database); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}
	mustExec(t, database, "INSERT INTO trucks (name) VALUES ('Existing')")

	if err := Seed(database); err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM trucks").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("truck rows = %d, want 1 (seed must not run on non-empty db)", count)
	}
}

func mustExec(t *testing.T, database *sql.DB, query string, args ...any) {
	t.Helper()
	if _, err := database.Exec(query, args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}
