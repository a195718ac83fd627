package repositories

import (
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the database schema. Safe to run repeatedly.
func InitSchema(database *sql.DB) error {
	if database == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := database.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createRouteStopsQuery := `
	CREATE TABLE IF NOT EXISTS route_stops (
		position INTEGER PRIMARY KEY,
		stop_id INTEGER NOT NULL,
		name TEXT NOT NULL,
		passengers INTEGER NOT NULL,
		distance_km REAL NOT NULL,
		time_minutes REAL NOT NULL
	);
	`

	createNameIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_stops_name
	ON route_stops(name);
	`

	statements := []string{
		createRouteStopsQuery,
		createNameIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
