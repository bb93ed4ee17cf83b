// README: Road-distance estimation backed by the Google Maps Directions API.
package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// RouteEstimate is the travel estimate for one origin/destination pair.
type RouteEstimate struct {
	DistanceKm float64
	Duration   time.Duration
}

// RouteService handles interactions with the Google Maps API.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a new RouteService with the given API key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// RoadDistance returns the driving distance and duration between two
// addresses. Used by the dashboard when a freight has no measured distance;
// the returned value still goes through the operator before pricing.
func (s *RouteService) RoadDistance(ctx context.Context, origin, destination string) (RouteEstimate, error) {
	r := &maps.DirectionsRequest{
		Origin:      origin,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
		Language:    "pt-BR",
		Region:      "BR", // bias results to Brazil
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return RouteEstimate{}, fmt.Errorf("maps api error: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return RouteEstimate{}, fmt.Errorf("no route found")
	}

	var meters int
	var duration time.Duration
	for _, leg := range routes[0].Legs {
		meters += leg.Distance.Meters
		duration += leg.Duration
	}
	return RouteEstimate{DistanceKm: float64(meters) / 1000, Duration: duration}, nil
}
