package db

// SchemaSQL is the complete modern schema for fresh installs.
//
// This is the single source of truth for the database layout. Tests build
// their in-memory databases from GetSchemaSQL() instead of hardcoding
// CREATE TABLE statements, so any column a repository references that is
// missing here fails immediately with "no such column".
//
// trips carries truck_id/destination_id without foreign key constraints: a
// trip may outlive its truck or destination, and the dangling id is kept.
// Only delivery_events declares a foreign key, cascading with its trip.
const SchemaSQL = `
-- Trucks (fleet vehicles)
CREATE TABLE IF NOT EXISTS trucks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL
);

-- Destinations (delivery sites)
CREATE TABLE IF NOT EXISTS destinations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	location TEXT
);

-- Trips (scheduled work: one truck to one destination, N planned deliveries)
CREATE TABLE IF NOT EXISTS trips (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	truck_id INTEGER,
	destination_id INTEGER,
	planned_count INTEGER NOT NULL,
	completed_count INTEGER DEFAULT 0,
	scheduled_date TEXT NOT NULL,
	status TEXT DEFAULT 'in_progress' CHECK(status IN ('in_progress', 'completed')),
	created_at TEXT DEFAULT CURRENT_TIMESTAMP,
	updated_at TEXT DEFAULT CURRENT_TIMESTAMP
);

-- Delivery events (append-only log, one row per completed delivery)
CREATE TABLE IF NOT EXISTS delivery_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	trip_id INTEGER NOT NULL,
	delivery_date TEXT NOT NULL,
	quantity INTEGER DEFAULT 1,
	created_at TEXT DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (trip_id) REFERENCES trips (id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_trips_truck ON trips(truck_id);
CREATE INDEX IF NOT EXISTS idx_trips_status ON trips(status);
CREATE INDEX IF NOT EXISTS idx_trips_scheduled ON trips(scheduled_date DESC);
CREATE INDEX IF NOT EXISTS idx_delivery_events_trip ON delivery_events(trip_id);
CREATE INDEX IF NOT EXISTS idx_delivery_events_date ON delivery_events(delivery_date DESC);
`

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
func GetSchemaSQL() string {
	return SchemaSQL
}
