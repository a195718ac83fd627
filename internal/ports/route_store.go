package ports

import (
	"context"

	"bus-route-service/internal/domain"
)

// Port: a boundary for persisting the ordered stop sequence of a route.
//
// Adapters store rows in ring order starting from the designated first stop.
// A Save replaces whatever the medium held before, atomically: either the
// full sequence becomes durable or none of it does.
type RouteStore interface {
	// Write the full stop sequence, replacing any previous contents.
	Save(ctx context.Context, stops []domain.Stop) error

	// Read back the stored sequence in order. Stored ids are deliberately
	// not returned: a route mints fresh ids on import so they can never
	// collide with stops created later.
	Load(ctx context.Context) ([]domain.StopDetails, error)
}
