package mapbox

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/kleniltonsilva/gerenciador-motoboys/internal/domain"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/platform/obs"
	"github.com/kleniltonsilva/gerenciador-motoboys/internal/ports"
)

// Router computes driving routes through the Mapbox Directions API.
// Every failure mode maps to ports.ErrNoRoute so the caller can fall
// back to great-circle distance.
type Router struct {
	client *Client
}

func NewRouter(client *Client) *Router {
	return &Router{client: client}
}

type directionsResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
	} `json:"routes"`
}

func (r *Router) Route(ctx context.Context, origin, destination domain.Coordinate) (_ ports.RouteResult, err error) {
	defer obs.Time(ctx, "mapbox.route")(&err)

	if r.client.Disabled() {
		return ports.RouteResult{}, fmt.Errorf("mapbox token not configured: %w", ports.ErrNoRoute)
	}

	// Path segment is lng,lat;lng,lat per the Directions API convention.
	o := origin.LngLat()
	d := destination.LngLat()
	endpoint := fmt.Sprintf(
		"%s/directions/v5/mapbox/driving/%f,%f;%f,%f",
		r.client.baseURL, o[0], o[1], d[0], d[1],
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ports.RouteResult{}, fmt.Errorf("create directions request: %w", err)
	}

	// Route geometry is not consumed downstream, so it is not requested.
	q := req.URL.Query()
	q.Set("overview", "false")
	q.Set("steps", "false")
	req.URL.RawQuery = q.Encode()

	resp, err := r.client.do(req)
	if err != nil {
		log.Printf("directions request failed err=%v", err)
		return ports.RouteResult{}, ports.ErrNoRoute
	}
	defer resp.Body.Close()

	var decoded directionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.Printf("decode directions response err=%v", err)
		return ports.RouteResult{}, ports.ErrNoRoute
	}

	if len(decoded.Routes) == 0 {
		return ports.RouteResult{}, fmt.Errorf("empty route list: %w", ports.ErrNoRoute)
	}

	best := decoded.Routes[0]
	return ports.RouteResult{
		DistanceMeters:  best.Distance,
		DurationSeconds: best.Duration,
	}, nil
}
