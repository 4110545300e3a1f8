package ports

import (
	"context"
	"errors"

	"github.com/kleniltonsilva/gerenciador-motoboys/internal/domain"
)

// ErrNoRoute means no drivable path could be obtained between two coordinates.
// It is a soft failure: the caller falls back to great-circle distance.
var ErrNoRoute = errors.New("no drivable route found")

// Driving distance and travel duration for a single route.
type RouteResult struct {
	DistanceMeters  float64
	DurationSeconds float64
}

// Contract for computing a drivable route between two coordinates.
type Router interface {
	// Return distance and duration of the best route, or ErrNoRoute.
	Route(ctx context.Context, origin, destination domain.Coordinate) (RouteResult, error)
}
