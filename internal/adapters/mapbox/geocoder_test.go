package mapbox

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kleniltonsilva/gerenciador-motoboys/internal/ports"
)

func newTestClient(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

func TestGeocodeSwapsCoordinateOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("limit = %q, want 1", got)
		}
		if got := r.URL.Query().Get("country"); got != "BR" {
			t.Errorf("country = %q, want BR", got)
		}
		if got := r.URL.Query().Get("language"); got != "pt" {
			t.Errorf("language = %q, want pt", got)
		}
		if got := r.URL.Query().Get("access_token"); got != "test-token" {
			t.Errorf("access_token = %q, want test-token", got)
		}

		// Mapbox center is [lng, lat].
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"features":[{"center":[-46.6333,-23.5505]}]}`))
	}))
	defer srv.Close()

	g := NewGeocoder(newTestClient("test-token", srv.URL))

	coord, err := g.Geocode(context.Background(), "praça da sé, são paulo, sp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if coord.Lat != -23.5505 {
		t.Fatalf("lat = %f, want -23.5505", coord.Lat)
	}
	if coord.Lng != -46.6333 {
		t.Fatalf("lng = %f, want -46.6333", coord.Lng)
	}
}

func TestGeocodeEmptyResultIsUnresolved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features":[]}`))
	}))
	defer srv.Close()

	g := NewGeocoder(newTestClient("test-token", srv.URL))

	_, err := g.Geocode(context.Background(), "endereço inexistente 99999")
	if !errors.Is(err, ports.ErrUnresolved) {
		t.Fatalf("error = %v, want ErrUnresolved", err)
	}
}

func TestGeocodeServerErrorIsUnresolved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	g := NewGeocoder(newTestClient("test-token", srv.URL))

	_, err := g.Geocode(context.Background(), "rua augusta, são paulo")
	if !errors.Is(err, ports.ErrUnresolved) {
		t.Fatalf("error = %v, want ErrUnresolved", err)
	}
}

func TestGeocodeEmptyAddressSkipsNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	g := NewGeocoder(newTestClient("test-token", srv.URL))

	_, err := g.Geocode(context.Background(), "   ")
	if !errors.Is(err, ports.ErrUnresolved) {
		t.Fatalf("error = %v, want ErrUnresolved", err)
	}
	if calls != 0 {
		t.Fatalf("server calls = %d, want 0 for empty address", calls)
	}
}

func TestGeocodeDisabledClientSkipsNetwork(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	g := NewGeocoder(newTestClient("", srv.URL))

	_, err := g.Geocode(context.Background(), "praça da sé, são paulo, sp")
	if !errors.Is(err, ports.ErrUnresolved) {
		t.Fatalf("error = %v, want ErrUnresolved", err)
	}
	if calls != 0 {
		t.Fatalf("server calls = %d, want 0 when token is missing", calls)
	}
}
