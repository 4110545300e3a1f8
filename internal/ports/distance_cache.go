package ports

import (
	"context"

	"github.com/kleniltonsilva/gerenciador-motoboys/internal/domain"
)

// Port: tenant-scoped persistent cache of resolved address-pair distances.
// Keys are normalized address strings; at most one live entry per
// (tenant, origin, destination).
type DistanceCache interface {
	// Look up a cached estimate. The second return reports a hit.
	Get(ctx context.Context, tenantID int, origin, destination string) (domain.DistanceEstimate, bool, error)

	// Store an estimate. A later Put for the same key supersedes the earlier one.
	Put(ctx context.Context, tenantID int, origin, destination string, est domain.DistanceEstimate) error

	// Delete every entry for the tenant. Invoked when the tenant's base
	// address changes and all cached distances become stale.
	InvalidateTenant(ctx context.Context, tenantID int) error
}
