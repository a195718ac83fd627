package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bus-route-service/internal/adapters/memstore"
)

// Drives whole commands against an in-memory store and checks the persisted
// route after each one.
func TestAppCommandsMutateStore(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	app := App(store)

	require.NoError(t, app.Run([]string{"busroute", "seed"}))
	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 5)
	assert.Equal(t, "Central Station", loaded[0].Name)

	require.NoError(t, app.Run([]string{
		"busroute", "insert",
		"--name", "Depot",
		"--passengers", "1",
		"--distance", "0.5",
		"--time", "2",
	}))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 6)
	assert.Equal(t, "Depot", loaded[5].Name)

	require.NoError(t, app.Run([]string{
		"busroute", "insert",
		"--name", "Annex",
		"--after", "library",
		"--distance", "0.1",
		"--time", "1",
	}))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 7)
	assert.Equal(t, "Annex", loaded[3].Name)

	require.NoError(t, app.Run([]string{"busroute", "delete", "--name", "market road"}))
	loaded, err = store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 6)
	for _, d := range loaded {
		assert.NotEqual(t, "Market Road", d.Name)
	}
}

func TestInsertRejectsInvalidStop(t *testing.T) {
	store := memstore.New()
	app := App(store)

	require.NoError(t, app.Run([]string{"busroute", "seed"}))
	err := app.Run([]string{
		"busroute", "insert",
		"--name", "Bad",
		"--passengers", "-3",
	})
	assert.Error(t, err)
}

func TestInsertRejectsConflictingPlacement(t *testing.T) {
	store := memstore.New()
	app := App(store)

	require.NoError(t, app.Run([]string{"busroute", "seed"}))
	err := app.Run([]string{
		"busroute", "insert",
		"--name", "X",
		"--after", "Park",
		"--position", "2",
	})
	assert.Error(t, err)
}
