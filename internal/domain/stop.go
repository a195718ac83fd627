package domain

// Represents a single stop on a bus route.
// A Stop carries the count of passengers waiting at it and the weighted
// edge (distance and travel time) to its successor in ring order.
// The ID is minted by the owning Route and is never reused, even after
// the stop is deleted.
type Stop struct {
	ID          int
	Name        string
	Passengers  int
	DistanceKM  float64
	TimeMinutes float64
}

// Caller-supplied attributes for a stop about to be created.
// The owning Route assigns the ID. Validation tags describe the
// data-model constraints enforced at the input boundary.
type StopDetails struct {
	Name        string  `validate:"required"`
	Passengers  int     `validate:"min=0"`
	DistanceKM  float64 `validate:"min=0"`
	TimeMinutes float64 `validate:"min=0"`
}

// Return the mutable attributes of the stop, without its identity.
func (s Stop) Details() StopDetails {
	return StopDetails{
		Name:        s.Name,
		Passengers:  s.Passengers,
		DistanceKM:  s.DistanceKM,
		TimeMinutes: s.TimeMinutes,
	}
}

// Distance and travel time accumulated over one or more consecutive edges.
type Leg struct {
	DistanceKM  float64
	TimeMinutes float64
}
