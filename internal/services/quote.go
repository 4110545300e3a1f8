package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/kleniltonsilva/gerenciador-motoboys/internal/domain"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/platform/obs"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/ports"
)

// Average urban motoboy speed assumed when no routed duration is
// available: 25 km/h is 0.4 km per minute.
const fallbackKmPerMinute = 0.4

// QuoteService orchestrates delivery distance resolution and pricing.
//
// Resolution order: tenant cache, then geocoding both endpoints, then the
// routing provider, then great-circle fallback. External failures are
// absorbed as soft values; the only terminal failure surfaced to callers
// is ports.ErrUnresolved.
type QuoteService struct {
	Geocoder ports.Geocoder
	Router   ports.Router
	Cache    ports.DistanceCache
	Pricing  ports.PricingRepository
}

func NewQuoteService(
	geocoder ports.Geocoder,
	router ports.Router,
	cache ports.DistanceCache,
	pricing ports.PricingRepository,
) *QuoteService {
	return &QuoteService{
		Geocoder: geocoder,
		Router:   router,
		Cache:    cache,
		Pricing:  pricing,
	}
}

// normalizeAddress produces consistent cache keys: trimmed, internal
// whitespace collapsed, lowercased.
func normalizeAddress(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ResolveDistanceAndTime resolves two addresses to a road distance and
// travel time. Cache I/O failures never fail the operation: a read error
// counts as a miss and a write error is logged and dropped.
func (s *QuoteService) ResolveDistanceAndTime(
	ctx context.Context,
	tenantID int,
	originAddress string,
	destinationAddress string,
	useCache bool,
) (_ domain.DistanceEstimate, err error) {
	defer obs.Time(ctx, "quote.ResolveDistanceAndTime")(&err)

	origin := normalizeAddress(originAddress)
	destination := normalizeAddress(destinationAddress)
	if origin == "" || destination == "" {
		return domain.DistanceEstimate{}, fmt.Errorf("empty address: %w", ports.ErrUnresolved)
	}

	if useCache && s.Cache != nil {
		est, ok, err := s.Cache.Get(ctx, tenantID, origin, destination)
		if err != nil {
			log.Printf("distance cache read failed tenant=%d err=%v", tenantID, err)
		} else if ok {
			return est, nil
		}
	}

	originCoord, err := s.Geocoder.Geocode(ctx, origin)
	if err != nil {
		return domain.DistanceEstimate{}, fmt.Errorf("geocode origin %q: %w", origin, err)
	}

	destinationCoord, err := s.Geocoder.Geocode(ctx, destination)
	if err != nil {
		return domain.DistanceEstimate{}, fmt.Errorf("geocode destination %q: %w", destination, err)
	}

	var est domain.DistanceEstimate
	route, err := s.Router.Route(ctx, originCoord, destinationCoord)
	if err != nil {
		if !errors.Is(err, ports.ErrNoRoute) {
			log.Printf("routing failed tenant=%d err=%v", tenantID, err)
		}
		km := round2(domain.HaversineKm(originCoord, destinationCoord))
		est = domain.DistanceEstimate{
			DistanceKm: km,
			Minutes:    int(math.Round(km / fallbackKmPerMinute)),
		}
	} else {
		est = domain.DistanceEstimate{
			DistanceKm: round2(route.DistanceMeters / 1000),
			Minutes:    int(math.Round(route.DurationSeconds / 60)),
		}
	}

	if useCache && s.Cache != nil {
		if err := s.Cache.Put(ctx, tenantID, origin, destination, est); err != nil {
			log.Printf("distance cache write failed tenant=%d err=%v", tenantID, err)
		}
	}

	return est, nil
}

// CalculateDeliveryFee prices a resolved distance against the tenant's
// pricing config. A tenant without pricing quotes 0.0: that is the
// "no pricing configured" sentinel, not an error.
func (s *QuoteService) CalculateDeliveryFee(ctx context.Context, tenantID int, distanceKm float64) (float64, error) {
	cfg, err := s.Pricing.GetPricing(ctx, tenantID)
	if err != nil {
		return 0, fmt.Errorf("load pricing tenant=%d: %w", tenantID, err)
	}
	if cfg == nil {
		return 0.0, nil
	}

	if distanceKm <= cfg.BaseDistanceKm {
		return cfg.BaseFee, nil
	}

	return round2(cfg.BaseFee + (distanceKm-cfg.BaseDistanceKm)*cfg.ExtraFeePerKm), nil
}

// ProcessFullDelivery resolves distance and time and prices the delivery
// in one call. ports.ErrUnresolved propagates when either address cannot
// be geocoded.
func (s *QuoteService) ProcessFullDelivery(
	ctx context.Context,
	tenantID int,
	originAddress string,
	destinationAddress string,
) (domain.DeliveryQuote, error) {
	est, err := s.ResolveDistanceAndTime(ctx, tenantID, originAddress, destinationAddress, true)
	if err != nil {
		return domain.DeliveryQuote{}, err
	}

	fee, err := s.CalculateDeliveryFee(ctx, tenantID, est.DistanceKm)
	if err != nil {
		return domain.DeliveryQuote{}, err
	}

	return domain.DeliveryQuote{
		DistanceKm: est.DistanceKm,
		Minutes:    est.Minutes,
		Fee:        fee,
	}, nil
}

// InvalidateTenantCache drops every cached distance for the tenant.
// Called when the tenant's base address changes.
func (s *QuoteService) InvalidateTenantCache(ctx context.Context, tenantID int) error {
	if s.Cache == nil {
		return nil
	}

	if err := s.Cache.InvalidateTenant(ctx, tenantID); err != nil {
		return fmt.Errorf("invalidate tenant cache: %w", err)
	}

	return nil
}
