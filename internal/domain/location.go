// Package domain contains the core data types for the Abidjan Route API.
// It is imported by every other internal package (geo, planner, repo,
// service, handler) and depends on nothing outside the standard library
// except google/uuid.
package domain

// LocationType classifies a Location as an administrative area or a sub-area.
type LocationType string

const (
	LocationCommune  LocationType = "commune"
	LocationQuartier LocationType = "quartier"
)

// Valid reports whether t is one of the known location types.
func (t LocationType) Valid() bool {
	return t == LocationCommune || t == LocationQuartier
}

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64
	Lng float64
}

// Location is a named place usable as a trip origin or destination.
// Locations are reference data and never change at runtime.
type Location struct {
	ID       string
	Name     string
	Type     LocationType
	ParentID string // empty for communes
	Lat      float64
	Lng      float64
}

// Point returns the coordinates of l.
func (l Location) Point() Point {
	return Point{Lat: l.Lat, Lng: l.Lng}
}

// LocationFilter narrows a location listing. Zero values match everything.
type LocationFilter struct {
	Type     LocationType
	ParentID string
	// Query matches a case-insensitive substring of the display name.
	Query string
}
