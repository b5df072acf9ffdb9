package handler

import (
	"github.com/google/uuid"

	"github.com/pkordes/abidjan-route/internal/domain"
)

// JSON wire types. Domain types stay free of struct tags; every response is
// built through the mappers below.

type Location struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	ParentID *string `json:"parent_id,omitempty"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

type LocationList struct {
	Data       []Location `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type TransportMode struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

type TransportOption struct {
	ID                  string        `json:"id"`
	Mode                TransportMode `json:"mode"`
	Price               int           `json:"price"`
	Duration            int           `json:"duration"`
	Distance            float64       `json:"distance"`
	Stops               []string      `json:"stops,omitempty"`
	NearestStop         string        `json:"nearest_stop,omitempty"`
	NearestStopDistance *int          `json:"nearest_stop_distance,omitempty"`
	SecurityRating      int           `json:"security_rating"`
	ComfortRating       int           `json:"comfort_rating"`
	Route               []Point       `json:"route,omitempty"`
}

type POI struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	Rating     *float64 `json:"rating,omitempty"`
	PriceRange string   `json:"price_range,omitempty"`
	Address    string   `json:"address,omitempty"`
	Phone      string   `json:"phone,omitempty"`
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

type RouteResult struct {
	ID                uuid.UUID         `json:"id"`
	From              Location          `json:"from"`
	To                Location          `json:"to"`
	Criterion         string            `json:"criterion"`
	Distance          float64           `json:"distance"`
	Options           []TransportOption `json:"options"`
	RecommendedOption string            `json:"recommended_option"`
	Hotels            []POI             `json:"hotels"`
	Restaurants       []POI             `json:"restaurants"`
}

type RecommendRequest struct {
	Options   []TransportOption `json:"options"`
	Criterion string            `json:"criterion"`
}

type OptionScore struct {
	OptionID string  `json:"option_id"`
	Score    float64 `json:"score"`
}

type RecommendResponse struct {
	RecommendedOption string        `json:"recommended_option"`
	Scores            []OptionScore `json:"scores"`
}

type ExportRow struct {
	From           string   `json:"from"`
	To             string   `json:"to"`
	Criterion      string   `json:"criterion"`
	OptionID       string   `json:"option_id"`
	Mode           string   `json:"mode"`
	Price          int      `json:"price"`
	Duration       int      `json:"duration"`
	Distance       float64  `json:"distance"`
	SecurityRating int      `json:"security_rating"`
	ComfortRating  int      `json:"comfort_rating"`
	Score          float64  `json:"score"`
	Recommended    bool     `json:"recommended"`
	Stops          []string `json:"stops"`
}

// ---- mappers ---------------------------------------------------------------

func locationToResponse(l domain.Location) Location {
	out := Location{ID: l.ID, Name: l.Name, Type: string(l.Type), Lat: l.Lat, Lng: l.Lng}
	if l.ParentID != "" {
		out.ParentID = &l.ParentID
	}
	return out
}

func modeToResponse(m domain.TransportMode) TransportMode {
	return TransportMode{ID: m.ID, Name: m.Name, Kind: string(m.Kind), Icon: m.Icon, Color: m.Color}
}

func modeFromRequest(m TransportMode) domain.TransportMode {
	return domain.TransportMode{ID: m.ID, Name: m.Name, Kind: domain.TransportKind(m.Kind), Icon: m.Icon, Color: m.Color}
}

func optionToResponse(o domain.TransportOption) TransportOption {
	route := make([]Point, len(o.Route))
	for i, p := range o.Route {
		route[i] = Point{Lat: p.Lat, Lng: p.Lng}
	}
	return TransportOption{
		ID:                  o.ID,
		Mode:                modeToResponse(o.Mode),
		Price:               o.Price,
		Duration:            o.Duration,
		Distance:            o.Distance,
		Stops:               o.Stops,
		NearestStop:         o.NearestStop,
		NearestStopDistance: o.NearestStopDistance,
		SecurityRating:      o.SecurityRating,
		ComfortRating:       o.ComfortRating,
		Route:               route,
	}
}

func optionFromRequest(o TransportOption) domain.TransportOption {
	var route []domain.Point
	for _, p := range o.Route {
		route = append(route, domain.Point{Lat: p.Lat, Lng: p.Lng})
	}
	return domain.TransportOption{
		ID:                  o.ID,
		Mode:                modeFromRequest(o.Mode),
		Price:               o.Price,
		Duration:            o.Duration,
		Distance:            o.Distance,
		Stops:               o.Stops,
		NearestStop:         o.NearestStop,
		NearestStopDistance: o.NearestStopDistance,
		SecurityRating:      o.SecurityRating,
		ComfortRating:       o.ComfortRating,
		Route:               route,
	}
}

func poiToResponse(p domain.POI) POI {
	return POI{
		ID:         p.ID,
		Name:       p.Name,
		Type:       string(p.Kind),
		Lat:        p.Lat,
		Lng:        p.Lng,
		Rating:     p.Rating,
		PriceRange: p.PriceRange,
		Address:    p.Address,
		Phone:      p.Phone,
	}
}

func nearbyToResponse(pois []domain.NearbyPOI, withDistance bool) []POI {
	out := make([]POI, len(pois))
	for i, p := range pois {
		out[i] = poiToResponse(p.POI)
		if withDistance {
			d := p.DistanceKm
			out[i].DistanceKm = &d
		}
	}
	return out
}

func routeToResponse(r domain.RouteResult) RouteResult {
	options := make([]TransportOption, len(r.Options))
	for i, o := range r.Options {
		options[i] = optionToResponse(o)
	}
	return RouteResult{
		ID:                r.ID,
		From:              locationToResponse(r.From),
		To:                locationToResponse(r.To),
		Criterion:         string(r.Criterion),
		Distance:          r.Distance,
		Options:           options,
		RecommendedOption: r.RecommendedOption,
		Hotels:            nearbyToResponse(r.Hotels, true),
		Restaurants:       nearbyToResponse(r.Restaurants, true),
	}
}

func exportRowToResponse(r domain.ExportRow) ExportRow {
	stops := r.Stops
	if stops == nil {
		stops = []string{}
	}
	return ExportRow{
		From:           r.From,
		To:             r.To,
		Criterion:      r.Criterion,
		OptionID:       r.OptionID,
		Mode:           r.Mode,
		Price:          r.Price,
		Duration:       r.Duration,
		Distance:       r.Distance,
		SecurityRating: r.SecurityRating,
		ComfortRating:  r.ComfortRating,
		Score:          r.Score,
		Recommended:    r.Recommended,
		Stops:          stops,
	}
}
