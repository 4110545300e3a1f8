package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Initialize the Postgres schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDistanceCacheQuery := `
	CREATE TABLE IF NOT EXISTS distance_cache (
		tenant_id INTEGER NOT NULL,
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		distance_km DOUBLE PRECISION NOT NULL,
		minutes INTEGER NOT NULL,
		computed_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (tenant_id, origin, destination)
	);
	`

	createPricingQuery := `
	CREATE TABLE IF NOT EXISTS delivery_pricing (
		tenant_id INTEGER PRIMARY KEY,
		base_fee DOUBLE PRECISION NOT NULL,
		base_distance_km DOUBLE PRECISION NOT NULL,
		extra_fee_per_km DOUBLE PRECISION NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_distance_cache_tenant
	ON distance_cache(tenant_id);
	`

	statements := []string{
		createDistanceCacheQuery,
		createPricingQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PricingSeed struct {
	TenantID       int     `json:"tenant_id"`
	BaseFee        float64 `json:"base_fee"`
	BaseDistanceKm float64 `json:"base_distance_km"`
	ExtraFeePerKm  float64 `json:"extra_fee_per_km"`
}

// Populate delivery_pricing from a JSON file for local runs.
func SeedPricingFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed pricing: read %q: %w", jsonPath, err)
	}

	var data []PricingSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed pricing: parse json: %w", err)
	}

	for i, item := range data {
		if item.TenantID <= 0 {
			return fmt.Errorf("seed pricing: invalid tenant_id at index %d: %d", i+1, item.TenantID)
		}
		if item.BaseFee < 0 || item.BaseDistanceKm < 0 || item.ExtraFeePerKm < 0 {
			return fmt.Errorf("seed pricing: negative value at index %d", i+1)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed pricing: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO delivery_pricing (
		tenant_id,
		base_fee,
		base_distance_km,
		extra_fee_per_km
	)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (tenant_id) DO UPDATE
	SET base_fee = EXCLUDED.base_fee,
		base_distance_km = EXCLUDED.base_distance_km,
		extra_fee_per_km = EXCLUDED.extra_fee_per_km;
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed pricing: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range data {
		if _, err := stmt.Exec(p.TenantID, p.BaseFee, p.BaseDistanceKm, p.ExtraFeePerKm); err != nil {
			return fmt.Errorf("seed pricing: insert tenant_id=%d: %w", p.TenantID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed pricing: commit tx: %w", err)
	}

	return nil
}
