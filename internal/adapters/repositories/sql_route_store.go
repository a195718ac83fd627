package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bus-route-service/internal/domain"
	"bus-route-service/internal/platform/db"
)

// SQL-backed implementation of the RouteStore port. Works against SQLite and
// Postgres; queries are written with ? placeholders and rebound for the
// postgres dialect.
type SQLRouteStore struct {
	DB      *sql.DB
	Dialect db.Dialect
}

func NewSQLRouteStore(database *sql.DB, dialect db.Dialect) *SQLRouteStore {
	return &SQLRouteStore{DB: database, Dialect: dialect}
}

// Save replaces the stored stop sequence inside a single transaction, so a
// failed write leaves the previous sequence intact.
func (s *SQLRouteStore) Save(ctx context.Context, stops []domain.Stop) error {
	if s.DB == nil {
		return errors.New("sql route store: DB is nil")
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("save route: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM route_stops;`); err != nil {
		return fmt.Errorf("save route: clear route_stops table: %w", err)
	}

	query := Rebind(s.Dialect, `
	INSERT INTO route_stops (
		position,
		stop_id,
		name,
		passengers,
		distance_km,
		time_minutes
	)
	VALUES (?, ?, ?, ?, ?, ?);
	`)
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("save route: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, st := range stops {
		if _, err := stmt.ExecContext(ctx, i+1, st.ID, st.Name, st.Passengers, st.DistanceKM, st.TimeMinutes); err != nil {
			return fmt.Errorf("save route: insert position=%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("save route: commit tx: %w", err)
	}
	return nil
}

// Load returns the stored stop sequence in position order. Stored stop ids
// are not surfaced; the route re-mints ids on import.
func (s *SQLRouteStore) Load(ctx context.Context) ([]domain.StopDetails, error) {
	if s.DB == nil {
		return nil, errors.New("sql route store: DB is nil")
	}

	query := `
	SELECT
		name,
		passengers,
		distance_km,
		time_minutes
	FROM route_stops
	ORDER BY position;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("load route: query route_stops table: %w", err)
	}
	defer rows.Close()

	stops := make([]domain.StopDetails, 0, 16)
	for rows.Next() {
		var d domain.StopDetails
		if err := rows.Scan(&d.Name, &d.Passengers, &d.DistanceKM, &d.TimeMinutes); err != nil {
			return nil, fmt.Errorf("load route: scan row: %w", err)
		}
		stops = append(stops, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load route: row iteration: %w", err)
	}

	return stops, nil
}

// Rebind rewrites ? placeholders to $1..$n for the postgres dialect. SQLite
// takes ? as-is.
func Rebind(dialect db.Dialect, query string) string {
	if dialect != db.DialectPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
