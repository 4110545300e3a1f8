package domain

// Resolved travel distance and time between two addresses.
// DistanceKm is rounded to 2 decimals; Minutes is a whole-minute estimate.
type DistanceEstimate struct {
	DistanceKm float64
	Minutes    int
}

// Full quote for one delivery: resolved distance/time plus the fee
// computed from the tenant's pricing config.
type DeliveryQuote struct {
	DistanceKm float64
	Minutes    int
	Fee        float64
}

// Per-tenant delivery pricing. BaseFee covers the first BaseDistanceKm;
// each km beyond that adds ExtraFeePerKm.
type PricingConfig struct {
	BaseFee        float64
	BaseDistanceKm float64
	ExtraFeePerKm  float64
}
