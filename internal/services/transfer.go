package services

import (
	"context"
	"fmt"

	"bus-route-service/internal/domain"
	"bus-route-service/internal/platform/obs"
	"bus-route-service/internal/ports"
)

// ExportRoute writes the route's stops to the store in ring order, starting
// from the designated first stop. An empty route exports an empty sequence.
// Returns the number of stops written.
func ExportRoute(ctx context.Context, route *domain.Route, store ports.RouteStore) (n int, err error) {
	defer obs.Time("export route")(&err)

	records := route.Records()
	if err := store.Save(ctx, records); err != nil {
		return 0, fmt.Errorf("export route: %w", err)
	}
	return len(records), nil
}

// ImportRoute replaces the route's contents with the stored sequence, each
// stop receiving a freshly minted id. The sequence is fully loaded before the
// route is touched, so a failed load leaves the route exactly as it was.
// Returns the number of stops imported.
func ImportRoute(ctx context.Context, route *domain.Route, store ports.RouteStore) (n int, err error) {
	defer obs.Time("import route")(&err)

	records, err := store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("import route: %w", err)
	}
	route.Replace(records)
	return len(records), nil
}
