package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kleniltonsilva/gerenciador-motoboys/internal/domain"
)

// Postgres-backed implementation of the PricingRepository port.
type SQLPricingRepository struct{ DB *sql.DB }

func NewSQLPricingRepository(db *sql.DB) *SQLPricingRepository {
	return &SQLPricingRepository{DB: db}
}

// Return the tenant's pricing config, or (nil, nil) when none is configured.
func (s *SQLPricingRepository) GetPricing(ctx context.Context, tenantID int) (*domain.PricingConfig, error) {
	if s.DB == nil {
		return nil, errors.New("pricing repository: DB is nil")
	}

	query := `
	SELECT
		base_fee,
		base_distance_km,
		extra_fee_per_km
	FROM delivery_pricing
	WHERE tenant_id = $1;
	`

	var cfg domain.PricingConfig
	err := s.DB.QueryRowContext(ctx, query, tenantID).Scan(&cfg.BaseFee, &cfg.BaseDistanceKm, &cfg.ExtraFeePerKm)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get pricing: query delivery_pricing table: %w", err)
	}

	return &cfg, nil
}
