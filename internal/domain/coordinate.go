package domain

import "math"

// Geographic coordinates (latitude, longitude).
type Coordinate struct {
	Lat float64
	Lng float64
}

// Return coordinates as [lng, lat] for external API compatibility.
// Mapbox request strings and response pairs use longitude-first order.
func (c Coordinate) LngLat() []float64 { return []float64{c.Lng, c.Lat} }

const earthRadiusKm = 6371.0

// HaversineKm computes the great-circle distance between two points in km.
// Used as a distance proxy when no drivable route is available.
func HaversineKm(a, b Coordinate) float64 {
	lat1 := degToRad(a.Lat)
	lat2 := degToRad(b.Lat)
	dLat := degToRad(b.Lat - a.Lat)
	dLng := degToRad(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
