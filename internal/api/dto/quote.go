package dto

type QuoteRequest struct {
	TenantID    int    `json:"tenant_id"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	UseCache    *bool  `json:"use_cache"`
}

type QuoteResponse struct {
	DistanceKm       float64 `json:"distance_km"`
	EstimatedMinutes int     `json:"estimated_minutes"`
	DeliveryFee      float64 `json:"delivery_fee"`
}

type DistanceResponse struct {
	DistanceKm       float64 `json:"distance_km"`
	EstimatedMinutes int     `json:"estimated_minutes"`
}

type InvalidateCacheResponse struct {
	Invalidated bool `json:"invalidated"`
}
