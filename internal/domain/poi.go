package domain

// POIKind is the category of a point of interest.
type POIKind string

const (
	POIHotel      POIKind = "hotel"
	POIRestaurant POIKind = "restaurant"
	POICarRental  POIKind = "car_rental"
)

// Valid reports whether k is one of the known POI kinds.
func (k POIKind) Valid() bool {
	switch k {
	case POIHotel, POIRestaurant, POICarRental:
		return true
	}
	return false
}

// POI is a hotel, restaurant, or rental agency shown alongside a route.
type POI struct {
	ID         string
	Name       string
	Kind       POIKind
	Lat        float64
	Lng        float64
	Rating     *float64 // nil when unrated
	PriceRange string
	Address    string
	Phone      string
}

// Point returns the coordinates of p.
func (p POI) Point() Point {
	return Point{Lat: p.Lat, Lng: p.Lng}
}

// NearbyPOI pairs a POI with its distance from the query point.
type NearbyPOI struct {
	POI
	DistanceKm float64
}

// POIQuery selects POIs. A nil Near disables the proximity filter.
type POIQuery struct {
	Kind     POIKind // empty matches every kind
	Near     *Point
	RadiusKm float64
	Limit    int // 0 means no limit
}
