package services

import "bus-route-service/internal/domain"

// SampleRoute builds the demo route used by seed commands and local runs.
func SampleRoute() *domain.Route {
	route := domain.New()
	for _, d := range []domain.StopDetails{
		{Name: "Central Station", Passengers: 12, DistanceKM: 2.5, TimeMinutes: 6.0},
		{Name: "Market Road", Passengers: 5, DistanceKM: 1.2, TimeMinutes: 3.0},
		{Name: "Library", Passengers: 3, DistanceKM: 0.9, TimeMinutes: 2.0},
		{Name: "College", Passengers: 8, DistanceKM: 1.8, TimeMinutes: 4.0},
		{Name: "Park", Passengers: 2, DistanceKM: 2.0, TimeMinutes: 5.0},
	} {
		route.InsertEnd(d)
	}
	return route
}
