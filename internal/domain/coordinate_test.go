package domain

import (
	"math"
	"testing"
)

func TestLngLatOrder(t *testing.T) {
	c := Coordinate{Lat: -23.5505, Lng: -46.6333}

	pair := c.LngLat()
	if len(pair) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(pair))
	}
	if pair[0] != c.Lng {
		t.Fatalf("expected longitude first, got %f", pair[0])
	}
	if pair[1] != c.Lat {
		t.Fatalf("expected latitude second, got %f", pair[1])
	}
}

func TestHaversineKmZeroDistance(t *testing.T) {
	c := Coordinate{Lat: -23.5505, Lng: -46.6333}

	if d := HaversineKm(c, c); d != 0 {
		t.Fatalf("distance to self = %f, want 0", d)
	}
}

func TestHaversineKmKnownDistance(t *testing.T) {
	// Praça da Sé to Aeroporto de Congonhas, São Paulo: roughly 8.6 km
	// in a straight line.
	se := Coordinate{Lat: -23.5505, Lng: -46.6333}
	cgh := Coordinate{Lat: -23.6261, Lng: -46.6564}

	d := HaversineKm(se, cgh)
	if d < 8.0 || d > 9.2 {
		t.Fatalf("distance = %f, want roughly 8.6", d)
	}
}

func TestHaversineKmSymmetry(t *testing.T) {
	a := Coordinate{Lat: -23.5505, Lng: -46.6333}
	b := Coordinate{Lat: -22.9068, Lng: -43.1729}

	if d1, d2 := HaversineKm(a, b), HaversineKm(b, a); math.Abs(d1-d2) > 1e-9 {
		t.Fatalf("asymmetric distance: %f vs %f", d1, d2)
	}
}

func TestHaversineKmOneDegreeLatitude(t *testing.T) {
	// One degree of latitude is about 111.2 km everywhere on the globe.
	a := Coordinate{Lat: 0, Lng: 0}
	b := Coordinate{Lat: 1, Lng: 0}

	d := HaversineKm(a, b)
	if math.Abs(d-111.2) > 0.5 {
		t.Fatalf("distance = %f, want about 111.2", d)
	}
}
