package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/kleniltonsilva/gerenciador-motoboys/internal/domain"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/platform/obs"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/ports"
)

// Geocoder resolves free-text Brazilian addresses through the Mapbox
// Geocoding API (mapbox.places). Every failure mode maps to
// ports.ErrUnresolved; nothing here is fatal to the caller.
type Geocoder struct {
	client *Client
}

func NewGeocoder(client *Client) *Geocoder {
	return &Geocoder{client: client}
}

type geocodeResponse struct {
	Features []struct {
		// Mapbox returns [lng, lat]; swapped into Coordinate at this boundary.
		Center []float64 `json:"center"`
	} `json:"features"`
}

func (g *Geocoder) Geocode(ctx context.Context, address string) (_ domain.Coordinate, err error) {
	defer obs.Time(ctx, "mapbox.geocode")(&err)

	if strings.TrimSpace(address) == "" {
		return domain.Coordinate{}, fmt.Errorf("empty address: %w", ports.ErrUnresolved)
	}

	if g.client.Disabled() {
		return domain.Coordinate{}, fmt.Errorf("mapbox token not configured: %w", ports.ErrUnresolved)
	}

	endpoint := fmt.Sprintf(
		"%s/geocoding/v5/mapbox.places/%s.json",
		g.client.baseURL, url.PathEscape(address),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("create geocode request: %w", err)
	}

	q := req.URL.Query()
	q.Set("limit", "1")
	q.Set("country", "BR")
	q.Set("language", "pt")
	req.URL.RawQuery = q.Encode()

	resp, err := g.client.do(req)
	if err != nil {
		log.Printf("geocode request failed addr=%q err=%v", address, err)
		return domain.Coordinate{}, ports.ErrUnresolved
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Printf("decode geocode response addr=%q err=%v", address, err)
		return domain.Coordinate{}, ports.ErrUnresolved
	}

	if len(decoded.Features) == 0 {
		return domain.Coordinate{}, fmt.Errorf("no geocode results for %q: %w", address, ports.ErrUnresolved)
	}

	center := decoded.Features[0].Center
	if len(center) != 2 {
		return domain.Coordinate{}, fmt.Errorf("invalid coordinate format for %q: %w", address, ports.ErrUnresolved)
	}

	return domain.Coordinate{Lat: center[1], Lng: center[0]}, nil
}
