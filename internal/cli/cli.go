package cli

import (
	"context"
	"errors"
	"os"

	"github.com/urfave/cli/v2"

	"bus-route-service/internal/domain"
	"bus-route-service/internal/ports"
	"bus-route-service/internal/services"
)

// App builds the busroute command-line application. The store carries the
// route between invocations; commands load it, operate, and save it back.
// Handlers stay unaware of which concrete adapter backs the store.
func App(store ports.RouteStore) *cli.App {
	env := &commandEnv{store: store}

	return &cli.App{
		Name:  "busroute",
		Usage: "inspect and edit a circular bus route",

		Commands: []*cli.Command{
			viewCommand(env),
			findCommand(env),
			insertCommand(env),
			deleteCommand(env),
			passengersCommand(env),
			totalCommand(env),
			betweenCommand(env),
			seedCommand(env),
			exportCommand(env),
			importCommand(env),
		},
	}
}

type commandEnv struct {
	store ports.RouteStore
}

// load rebuilds the route from the store. A store with nothing behind it yet
// (no CSV file written so far) yields an empty route rather than an error.
func (e *commandEnv) load(ctx context.Context) (*domain.Route, error) {
	route := domain.New()
	if _, err := services.ImportRoute(ctx, route, e.store); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return route, nil
		}
		return nil, err
	}
	return route, nil
}

func (e *commandEnv) save(ctx context.Context, route *domain.Route) error {
	_, err := services.ExportRoute(ctx, route, e.store)
	return err
}
