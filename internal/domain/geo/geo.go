// Package geo provides great-circle distance math and display formatting
// for geographic coordinates.
package geo

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Coordinate represents a geographic coordinate in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Point converts the coordinate to an orb.Point (lng, lat order).
func (c Coordinate) Point() orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// FromPoint builds a Coordinate from an orb.Point (lng, lat order).
func FromPoint(p orb.Point) Coordinate {
	return Coordinate{Lat: p[1], Lng: p[0]}
}

// Distance calculates the great-circle distance between two coordinates
// in kilometers using the haversine formula. It is pure and performs no
// range validation; callers validate their inputs.
func Distance(a, b Coordinate) float64 {
	return haversineDistance(a.Point(), b.Point())
}

func haversineDistance(p1, p2 orb.Point) float64 {
	lat1Rad := p1[1] * math.Pi / 180
	lng1Rad := p1[0] * math.Pi / 180
	lat2Rad := p2[1] * math.Pi / 180
	lng2Rad := p2[0] * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// FormatDistance renders a distance for display: sub-kilometer distances
// as truncated integer meters, everything else as kilometers with one
// decimal place.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%d m", int(km*1000))
	}

	return fmt.Sprintf("%.1f km", km)
}

// RoundKm rounds a distance to two decimal places for display. The
// rounded value is only for presentation; radius checks use the full
// precision distance.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}
