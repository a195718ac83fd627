package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// Dialect selects the database/sql driver behind a connection URL.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "pgx"
)

// DialectFor picks the driver for a connection string: postgres URLs go to
// pgx, anything else is treated as a SQLite file path (or ":memory:").
func DialectFor(databaseURL string) Dialect {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

func Open(databaseURL string) (*sql.DB, error) {
	dialect := DialectFor(databaseURL)

	db, err := sql.Open(string(dialect), databaseURL)
	if err != nil {
		return nil, fmt.Errorf("openDB: open %s database: %w", dialect, err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify %s connection: %w", dialect, err)
	}

	return db, nil
}
