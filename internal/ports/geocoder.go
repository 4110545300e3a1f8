package ports

import (
	"context"
	"errors"

	"github.com/kleniltonsilva/gerenciador-motoboys/internal/domain"
)

// ErrUnresolved means an address could not be mapped to a coordinate.
// It is a soft failure: callers surface "check the address", never a crash.
var ErrUnresolved = errors.New("address could not be resolved")

// Contract for resolving a free-text address to geographic coordinates.
type Geocoder interface {
	// Return the best-match coordinate for the address, or ErrUnresolved.
	Geocode(ctx context.Context, address string) (domain.Coordinate, error)
}
