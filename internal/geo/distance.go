// Package geo holds the pure geometry used by the planner: great-circle
// distance, straight-line route sampling, and geohash cell coverage.
package geo

import (
	"math"

	"github.com/pkordes/abidjan-route/internal/domain"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

const deg2rad = math.Pi / 180.0

// DistanceKm returns the great-circle distance between a and b in
// kilometres, rounded to one decimal place.
func DistanceKm(a, b domain.Point) float64 {
	return math.Round(HaversineKm(a, b)*10) / 10
}

// HaversineKm is the unrounded great-circle distance in kilometres.
// Radius checks use it so a point just outside a radius is not rounded in.
func HaversineKm(a, b domain.Point) float64 {
	dLat := (b.Lat - a.Lat) * deg2rad
	dLng := (b.Lng - a.Lng) * deg2rad

	sinDLat := math.Sin(dLat / 2)
	sinDLng := math.Sin(dLng / 2)
	h := sinDLat*sinDLat + math.Cos(a.Lat*deg2rad)*math.Cos(b.Lat*deg2rad)*sinDLng*sinDLng
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// ValidPoint reports whether p is a finite coordinate within WGS84 bounds.
func ValidPoint(p domain.Point) bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) {
		return false
	}
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}
