package memstore

import (
	"context"
	"errors"
	"slices"

	"bus-route-service/internal/domain"
)

// In-memory implementation of the RouteStore port. Used as a scratch store
// and by service tests that need to exercise persistence without a filesystem
// or database.
type Store struct {
	stops []domain.Stop
	saved bool

	// Err, when set, is returned by both operations. Lets callers exercise
	// failure paths.
	Err error
}

func New() *Store {
	return &Store{}
}

func (s *Store) Save(ctx context.Context, stops []domain.Stop) error {
	if s.Err != nil {
		return s.Err
	}
	s.stops = slices.Clone(stops)
	s.saved = true
	return nil
}

func (s *Store) Load(ctx context.Context) ([]domain.StopDetails, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if !s.saved {
		return nil, errors.New("memory route store: nothing saved yet")
	}
	out := make([]domain.StopDetails, 0, len(s.stops))
	for _, st := range s.stops {
		out = append(out, st.Details())
	}
	return out, nil
}
