package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"bus-route-service/internal/domain"
	"bus-route-service/internal/platform/db"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every pooled connection would get its own in-memory database
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, InitSchema(database))
	return database
}

func TestSQLRouteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSQLRouteStore(openTestDB(t), db.DialectSQLite)

	saved := []domain.Stop{
		{ID: 1, Name: "Central Station", Passengers: 12, DistanceKM: 2.5, TimeMinutes: 6},
		{ID: 2, Name: "Market Road", Passengers: 5, DistanceKM: 1.2, TimeMinutes: 3},
	}
	require.NoError(t, store.Save(ctx, saved))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	for i, d := range loaded {
		assert.Equal(t, saved[i].Details(), d)
	}
}

func TestSQLRouteStoreSaveReplaces(t *testing.T) {
	ctx := context.Background()
	store := NewSQLRouteStore(openTestDB(t), db.DialectSQLite)

	require.NoError(t, store.Save(ctx, []domain.Stop{
		{ID: 1, Name: "Old A", Passengers: 1, DistanceKM: 1, TimeMinutes: 1},
		{ID: 2, Name: "Old B", Passengers: 2, DistanceKM: 2, TimeMinutes: 2},
	}))
	require.NoError(t, store.Save(ctx, []domain.Stop{
		{ID: 9, Name: "New Only", Passengers: 3, DistanceKM: 3, TimeMinutes: 3},
	}))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "New Only", loaded[0].Name)
}

func TestSQLRouteStoreLoadEmpty(t *testing.T) {
	store := NewSQLRouteStore(openTestDB(t), db.DialectSQLite)

	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestRebind(t *testing.T) {
	q := "INSERT INTO t (a, b, c) VALUES (?, ?, ?);"

	assert.Equal(t, q, Rebind(db.DialectSQLite, q))
	assert.Equal(t,
		"INSERT INTO t (a, b, c) VALUES ($1, $2, $3);",
		Rebind(db.DialectPostgres, q),
	)
}
