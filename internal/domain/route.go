package domain

import "github.com/google/uuid"

// RouteResult is everything a client needs to render one search: the
// synthesized options, the recommended one, and POIs near the destination.
// It is rebuilt from scratch on every search or criterion change.
type RouteResult struct {
	ID                uuid.UUID
	From              Location
	To                Location
	Criterion         Criterion
	Distance          float64 // km
	Options           []TransportOption
	RecommendedOption string
	Hotels            []NearbyPOI
	Restaurants       []NearbyPOI
}

// Recommended returns the option named by RecommendedOption.
func (r RouteResult) Recommended() (TransportOption, bool) {
	for _, o := range r.Options {
		if o.ID == r.RecommendedOption {
			return o, true
		}
	}
	return TransportOption{}, false
}

// ScoredOption pairs an option id with its balanced composite score.
type ScoredOption struct {
	OptionID string
	Score    float64
}
