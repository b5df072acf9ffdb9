package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/abidjan-route/internal/domain"
)

// defaultPOIRadiusKm applies when ?lat= and ?lng= are given without ?radius_km=.
const defaultPOIRadiusKm = 5.0

// ListPOIs handles GET /pois.
// ?type= filters by kind. Supplying both ?lat= and ?lng= switches to a
// proximity search within ?radius_km=, nearest first, with distance_km set.
func (s *Server) ListPOIs(w http.ResponseWriter, r *http.Request) {
	var (
		kind          *string
		lat, lng, rad *float64
		limit         *int
	)
	if err := bindQuery(r,
		queryParam{"type", &kind},
		queryParam{"lat", &lat},
		queryParam{"lng", &lng},
		queryParam{"radius_km", &rad},
		queryParam{"limit", &limit},
	); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
		return
	}
	if (lat == nil) != (lng == nil) {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("lat and lng must be given together"))
		return
	}

	q := domain.POIQuery{Kind: domain.POIKind(deref(kind)), Limit: deref(limit)}
	if lat != nil {
		q.Near = &domain.Point{Lat: *lat, Lng: *lng}
		q.RadiusKm = defaultPOIRadiusKm
		if rad != nil {
			q.RadiusKm = *rad
		}
	}

	pois, err := s.pois.Nearby(r.Context(), q)
	if err != nil {
		s.writeError(w, r, err, "point of interest not found")
		return
	}
	writeJSON(w, http.StatusOK, nearbyToResponse(pois, q.Near != nil))
}

// GetPOI handles GET /pois/{id}.
func (s *Server) GetPOI(w http.ResponseWriter, r *http.Request) {
	p, err := s.pois.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err, "point of interest not found")
		return
	}
	writeJSON(w, http.StatusOK, poiToResponse(p))
}
