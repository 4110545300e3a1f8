package ports

import (
	"context"

	"github.com/kleniltonsilva/gerenciador-motoboys/internal/domain"
)

// Port: read-only source of per-tenant delivery pricing.
type PricingRepository interface {
	// Return the tenant's pricing config, or (nil, nil) when the tenant
	// has no pricing configured. Absence is a valid state, not an error.
	GetPricing(ctx context.Context, tenantID int) (*domain.PricingConfig, error)
}
