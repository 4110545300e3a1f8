package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/kleniltonsilva/gerenciador-motoboys/internal/domain"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/platform/obs"
)

// SQLDistanceCache is a Postgres-backed, tenant-scoped cache of resolved
// address-pair distances.
type SQLDistanceCache struct {
	DB *sql.DB
}

func NewSQLDistanceCache(db *sql.DB) *SQLDistanceCache {
	return &SQLDistanceCache{DB: db}
}

// Fetch the cached estimate for one address pair under a tenant.
func (s *SQLDistanceCache) Get(
	ctx context.Context,
	tenantID int,
	origin string,
	destination string,
) (_ domain.DistanceEstimate, _ bool, err error) {
	defer obs.Time(ctx, "distance.cache.Get")(&err)

	if s.DB == nil {
		return domain.DistanceEstimate{}, false, errors.New("distance cache: db is nil")
	}

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return domain.DistanceEstimate{}, false, errors.New("get distance cache: origin and destination must not be empty")
	}

	q := `
	SELECT distance_km, minutes
	FROM distance_cache
	WHERE tenant_id = $1
		AND origin = $2
		AND destination = $3;
	`

	var est domain.DistanceEstimate
	err = s.DB.QueryRowContext(ctx, q, tenantID, origin, destination).Scan(&est.DistanceKm, &est.Minutes)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.DistanceEstimate{}, false, nil
	}
	if err != nil {
		return domain.DistanceEstimate{}, false, fmt.Errorf("get distance cache: query distance_cache table: %w", err)
	}

	return est, true, nil
}

// Store an estimate for one address pair. Upsert semantics: a later Put
// for the same key supersedes the earlier one.
func (s *SQLDistanceCache) Put(
	ctx context.Context,
	tenantID int,
	origin string,
	destination string,
	est domain.DistanceEstimate,
) error {
	if s.DB == nil {
		return errors.New("distance cache: db is nil")
	}

	if strings.TrimSpace(origin) == "" || strings.TrimSpace(destination) == "" {
		return errors.New("insert distance cache: origin and destination must not be empty")
	}

	q := `
	INSERT INTO distance_cache (tenant_id, origin, destination, distance_km, minutes, computed_at)
	VALUES ($1, $2, $3, $4, $5, NOW())
	ON CONFLICT (tenant_id, origin, destination) DO UPDATE
	SET distance_km = EXCLUDED.distance_km,
		minutes = EXCLUDED.minutes,
		computed_at = EXCLUDED.computed_at;
	`

	if _, err := s.DB.ExecContext(ctx, q, tenantID, origin, destination, est.DistanceKm, est.Minutes); err != nil {
		return fmt.Errorf("insert distance cache %q -> %q: %w", origin, destination, err)
	}

	return nil
}

// Delete every cached pair for the tenant.
func (s *SQLDistanceCache) InvalidateTenant(ctx context.Context, tenantID int) (err error) {
	defer obs.Time(ctx, "distance.cache.InvalidateTenant")(&err)

	if s.DB == nil {
		return errors.New("distance cache: db is nil")
	}

	q := `DELETE FROM distance_cache WHERE tenant_id = $1;`

	if _, err := s.DB.ExecContext(ctx, q, tenantID); err != nil {
		return fmt.Errorf("invalidate distance cache tenant=%d: %w", tenantID, err)
	}

	return nil
}
